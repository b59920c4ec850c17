package ticktick

import (
	"strings"
	"testing"
)

// The exact byte output matters: the service rejects sign-ons whose body or
// device header use compact JSON separators.
func TestEncodeSpaced_PinnedBytes(t *testing.T) {
	got, err := encodeSpaced([]pair{
		{"username", "u@example.com"},
		{"password", "s3cret"},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := `{"username": "u@example.com", "password": "s3cret"}`
	if got != want {
		t.Errorf("encodeSpaced =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeSpaced_EscapesValues(t *testing.T) {
	got, err := encodeSpaced([]pair{{"password", `a"b, c: d`}})
	if err != nil {
		t.Fatal(err)
	}

	want := `{"password": "a\"b, c: d"}`
	if got != want {
		t.Errorf("encodeSpaced = %s, want %s", got, want)
	}
}

func TestEncodeSpaced_MixedValueTypes(t *testing.T) {
	got, err := encodeSpaced([]pair{
		{"version", 6070},
		{"name", ""},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := `{"version": 6070, "name": ""}`
	if got != want {
		t.Errorf("encodeSpaced = %s, want %s", got, want)
	}
}

func TestDeviceHeader_PinnedShape(t *testing.T) {
	got, err := deviceHeader("00112233445566778899aabbccddeeff")
	if err != nil {
		t.Fatal(err)
	}

	want := `{"platform": "web", "os": "macOS 10.15.7", "device": "Chrome 121.0.0.0", ` +
		`"name": "", "version": 6070, "id": "00112233445566778899aabbccddeeff", ` +
		`"channel": "website", "campaign": "", "websocket": ""}`
	if got != want {
		t.Errorf("deviceHeader =\n%s\nwant\n%s", got, want)
	}
}

func TestNewDeviceID(t *testing.T) {
	id := NewDeviceID()
	if len(id) != 32 {
		t.Errorf("device id length = %d, want 32 hex chars", len(id))
	}
	if strings.ToLower(id) != id {
		t.Errorf("device id not lowercase hex: %s", id)
	}
	if NewDeviceID() == id {
		t.Error("two device ids should not collide")
	}
}
