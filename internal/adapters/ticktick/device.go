package ticktick

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// Device descriptor the session surface expects in the X-Device header. The
// values mimic the vendor's own web client; only the id varies per session.
const (
	devicePlatform = "web"
	deviceOS       = "macOS 10.15.7"
	deviceName     = "Chrome 121.0.0.0"
	deviceVersion  = 6070
	deviceChannel  = "website"
)

// NewDeviceID returns a fresh 16-byte identifier, hex-encoded. It stays
// stable for the lifetime of a session and is carried over across refreshes
// so the service sees a consistent device fingerprint.
func NewDeviceID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// NewEntityID mints a 24-hex identifier for entities created through the
// batch surface, which expects the client to supply ids on add.
func NewEntityID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:12])
}

// deviceHeader builds the X-Device value for the given device id, in the
// spaced wire format.
func deviceHeader(deviceID string) (string, error) {
	return encodeSpaced([]pair{
		{"platform", devicePlatform},
		{"os", deviceOS},
		{"device", deviceName},
		{"name", ""},
		{"version", deviceVersion},
		{"id", deviceID},
		{"channel", deviceChannel},
		{"campaign", ""},
		{"websocket", ""},
	})
}
