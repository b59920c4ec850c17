package ticktick

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The sign-on endpoint and the X-Device header must be serialized with a
// space after every ':' and ','. The service silently rejects the compact
// form, so this is a wire-format requirement, not cosmetics. All such
// payloads go through encodeSpaced; nothing else may hand-build them.

type pair struct {
	key   string
	value any
}

// encodeSpaced renders an ordered set of key/value pairs as a JSON object in
// the vendor's spaced convention. Values are encoded with encoding/json, so
// strings stay correctly escaped regardless of content.
func encodeSpaced(pairs []pair) (string, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		k, err := json.Marshal(p.key)
		if err != nil {
			return "", fmt.Errorf("encode key %q: %w", p.key, err)
		}
		v, err := json.Marshal(p.value)
		if err != nil {
			return "", fmt.Errorf("encode value for %q: %w", p.key, err)
		}
		b.Write(k)
		b.WriteString(": ")
		b.Write(v)
	}
	b.WriteByte('}')
	return b.String(), nil
}
