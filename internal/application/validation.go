package application

import (
	"fmt"
	"regexp"
)

// pathParamPattern is the allow-list for caller-supplied strings interpolated
// into URL path segments. Anything else (slashes, dots, whitespace) could
// redirect the request to a different endpoint.
var pathParamPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidatePathParam returns value unchanged when it is safe to interpolate
// into a path segment, or a ValidationError naming the offending field.
func ValidatePathParam(fieldName, value string) (string, error) {
	if !pathParamPattern.MatchString(value) {
		return "", &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("invalid value %q (letters, digits, _ and - only)", value),
		}
	}
	return value, nil
}

// ValidateRequired checks that a string field is non-empty.
func ValidateRequired(fieldName, value string) error {
	if value == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}
