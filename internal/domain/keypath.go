package domain

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// ParseDocument decodes raw response bytes into a generic JSON value.
// Top-level scalars and fragments are allowed ("42", "\"x\"", "null").
// Numbers decode as json.Number so that subtrees selected by a key path
// re-encode exactly, without float64 rounding of large integers.
// Returns false when the bytes are not valid JSON; the adapter treats
// that as "no JSON value", not as a distinct error.
func ParseDocument(data []byte) (any, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, false
	}
	// Exactly one value: trailing garbage is not a JSON document.
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return doc, true
}

// LookupKeyPath navigates a decoded JSON value through a dotted key path
// (e.g. "data.user" or "items.0.name"). Object segments index into JSON
// objects; numeric segments additionally index into JSON arrays.
// Returns false when any segment does not resolve. An empty path resolves
// to the document itself.
func LookupKeyPath(doc any, path string) (any, bool) {
	if path == "" {
		return doc, true
	}
	return lookup(doc, strings.Split(path, "."))
}

func lookup(value any, segments []string) (any, bool) {
	if len(segments) == 0 {
		return value, true
	}
	head, rest := segments[0], segments[1:]

	switch v := value.(type) {
	case map[string]any:
		child, ok := v[head]
		if !ok {
			return nil, false
		}
		return lookup(child, rest)
	case []any:
		idx, err := strconv.Atoi(head)
		if err != nil || idx < 0 || idx >= len(v) {
			return nil, false
		}
		return lookup(v[idx], rest)
	default:
		// Scalar or null mid-path: the path cannot descend further.
		return nil, false
	}
}
