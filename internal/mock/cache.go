package mock

import "context"

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	DeviceListOut   []byte
	EtagDeviceList  string
	ScreenshotEtags map[string]string

	// errors
	GetDeviceListErr error
	GetEtagErr       error

	// call flags
	GetDeviceListCalled  bool
	SetDeviceListCalled  bool
	SetEtagDevicesCalled bool
	SetEtagScreenCalled  bool
}

func (m *Cache) GetDeviceList(ctx context.Context) ([]byte, error) {
	m.GetDeviceListCalled = true
	return m.DeviceListOut, m.GetDeviceListErr
}

func (m *Cache) GetEtagDeviceList(ctx context.Context) (string, error) {
	return m.EtagDeviceList, m.GetEtagErr
}

func (m *Cache) SetDeviceList(ctx context.Context, data []byte) {
	m.SetDeviceListCalled = true
	m.DeviceListOut = data
}

func (m *Cache) SetEtagDeviceList(ctx context.Context, etag string) {
	m.SetEtagDevicesCalled = true
	m.EtagDeviceList = etag
}

func (m *Cache) GetEtagScreenshot(ctx context.Context, key string) (string, error) {
	if m.GetEtagErr != nil {
		return "", m.GetEtagErr
	}
	return m.ScreenshotEtags[key], nil
}

func (m *Cache) SetEtagScreenshot(ctx context.Context, key, etag string) {
	m.SetEtagScreenCalled = true
	if m.ScreenshotEtags == nil {
		m.ScreenshotEtags = make(map[string]string)
	}
	m.ScreenshotEtags[key] = etag
}
