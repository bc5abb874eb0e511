package validation

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Tell the validator to use the JSON tag as the “field name”
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// Grab the value of `json:"foo,omitempty"`
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			// fallback to the Go field name or skip
			return fld.Name
		}
		return name
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ErrorsToString flattens validation errors into a single message naming
// every offending field, e.g. `deviceType: required; url: url`.
func ErrorsToString(validationErrs error) string {
	var parts []string
	for _, fieldErr := range validationErrs.(validator.ValidationErrors) {
		parts = append(parts, fmt.Sprintf("%s: %s", fieldErr.Field(), fieldErr.Tag()))
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
