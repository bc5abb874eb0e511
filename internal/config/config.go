package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	Bucket         string

	ServerPort int

	RedisAddr     string
	RedisPassword string

	ChromeDevtoolsURL string
	RenderTimeout     time.Duration
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	if !viper.IsSet("MINIO_ENDPOINT") {
		return nil, fmt.Errorf("MINIO_ENDPOINT is required")
	}
	if !viper.IsSet("MINIO_ACCESS_KEY") {
		return nil, fmt.Errorf("MINIO_ACCESS_KEY is required")
	}
	if !viper.IsSet("MINIO_SECRET_KEY") {
		return nil, fmt.Errorf("MINIO_SECRET_KEY is required")
	}
	if !viper.IsSet("BUCKET") {
		return nil, fmt.Errorf("BUCKET is required")
	}
	if !viper.IsSet("SERVER_PORT") {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}

	viper.SetDefault("RENDER_TIMEOUT", 30)

	return &Settings{
		MinioEndpoint:     viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey:    viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey:    viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:       viper.GetBool("MINIO_USE_SSL"),
		Bucket:            viper.GetString("BUCKET"),
		ServerPort:        viper.GetInt("SERVER_PORT"),
		RedisAddr:         viper.GetString("REDIS_ADDR"),
		RedisPassword:     viper.GetString("REDIS_PASSWORD"),
		ChromeDevtoolsURL: viper.GetString("CHROME_DEVTOOLS_URL"),
		RenderTimeout:     time.Duration(viper.GetInt("RENDER_TIMEOUT")) * time.Second,
	}, nil
}
