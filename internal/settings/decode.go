// Package settings decodes admin-configured key/value rows whose values are
// opaque strings, conventionally but not reliably JSON-encoded.
package settings

import "encoding/json"

// Decode attempts a JSON decode of a stored value and falls back to the raw
// string when it is not valid JSON. The fallback is a permanent contract:
// some settings are stored as bare strings and must round-trip unchanged.
func Decode(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

// KeyValue is the subset of a settings row the decoder needs.
type KeyValue struct {
	Key   string
	Value string
}

// DecodeRows assembles a key -> decoded-value map from settings rows.
func DecodeRows(rows []KeyValue) map[string]any {
	out := make(map[string]any, len(rows))
	for _, r := range rows {
		out[r.Key] = Decode(r.Value)
	}
	return out
}

// DecodeStrict decodes a value that must be valid JSON, such as homepage
// content metadata. An empty value decodes to nil.
func DecodeStrict(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}
	return v, nil
}
