package application

import "fmt"

// ResourceLocator is the host workflow engine's "string or {mode, value}"
// parameter shape, modeled as a tagged union so call sites normalize exactly
// once instead of type-switching everywhere.
type ResourceLocator struct {
	located bool
	mode    string
	value   string
}

// DirectLocator wraps a bare string reference.
func DirectLocator(value string) ResourceLocator {
	return ResourceLocator{value: value}
}

// LocatedLocator wraps a {mode, value} reference.
func LocatedLocator(mode, value string) ResourceLocator {
	return ResourceLocator{located: true, mode: mode, value: value}
}

// ParseLocator accepts the raw decoded form the engine hands over: either a
// string or a map with "mode" and "value" keys.
func ParseLocator(raw any) (ResourceLocator, error) {
	switch v := raw.(type) {
	case string:
		return DirectLocator(v), nil
	case map[string]any:
		mode, _ := v["mode"].(string)
		value, _ := v["value"].(string)
		return LocatedLocator(mode, value), nil
	default:
		return ResourceLocator{}, &ValidationError{
			Field:   "locator",
			Message: fmt.Sprintf("expected string or {mode, value}, got %T", raw),
		}
	}
}

// Normalize resolves the locator to the plain identifier string.
func (l ResourceLocator) Normalize() (string, error) {
	if l.value == "" {
		return "", &ValidationError{Field: "locator", Message: "empty resource reference"}
	}
	return l.value, nil
}

// Mode reports the locator mode ("" for direct references).
func (l ResourceLocator) Mode() string {
	if !l.located {
		return ""
	}
	return l.mode
}
