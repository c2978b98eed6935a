package domain

import (
	"encoding/json"
	"testing"
)

func TestParseDocument(t *testing.T) {
	tests := []struct {
		name string
		data string
		ok   bool
	}{
		{"object", `{"a":1}`, true},
		{"array", `[1,2,3]`, true},
		{"top-level number", `42`, true},
		{"top-level string", `"x"`, true},
		{"top-level null", `null`, true},
		{"not JSON", `<html>`, false},
		{"truncated", `{"a":`, false},
		{"trailing garbage", `{"a":1} extra`, false},
		{"two documents", `{"a":1}{"b":2}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseDocument([]byte(tt.data))
			if ok != tt.ok {
				t.Errorf("ParseDocument(%q) ok = %v, want %v", tt.data, ok, tt.ok)
			}
		})
	}
}

func TestLookupKeyPath(t *testing.T) {
	doc, ok := ParseDocument([]byte(`{
		"a": {"b": {"name": "x"}},
		"items": [{"id": 1}, {"id": 2}],
		"n": 7,
		"z": null
	}`))
	if !ok {
		t.Fatal("failed to parse test document")
	}

	tests := []struct {
		name  string
		path  string
		found bool
		check func(any) bool
	}{
		{"empty path returns document", "", true, func(v any) bool {
			_, isMap := v.(map[string]any)
			return isMap
		}},
		{"nested object", "a.b", true, func(v any) bool {
			m, isMap := v.(map[string]any)
			return isMap && m["name"] == "x"
		}},
		{"leaf scalar", "a.b.name", true, func(v any) bool { return v == "x" }},
		{"top-level number", "n", true, func(v any) bool { return v == json.Number("7") }},
		{"array index", "items.1.id", true, func(v any) bool { return v == json.Number("2") }},
		{"null value resolves", "z", true, func(v any) bool { return v == nil }},
		{"missing key", "a.missing", false, nil},
		{"missing root", "nope", false, nil},
		{"index out of range", "items.5", false, nil},
		{"negative index", "items.-1", false, nil},
		{"non-numeric index into array", "items.first", false, nil},
		{"descend through scalar", "n.deeper", false, nil},
		{"descend through null", "z.deeper", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, found := LookupKeyPath(doc, tt.path)
			if found != tt.found {
				t.Fatalf("LookupKeyPath(%q) found = %v, want %v", tt.path, found, tt.found)
			}
			if found && tt.check != nil && !tt.check(v) {
				t.Errorf("LookupKeyPath(%q) = %#v, failed value check", tt.path, v)
			}
		})
	}
}

func TestLookupKeyPathScalarRoot(t *testing.T) {
	doc, ok := ParseDocument([]byte(`42`))
	if !ok {
		t.Fatal("failed to parse fragment")
	}

	if v, found := LookupKeyPath(doc, ""); !found || v != json.Number("42") {
		t.Errorf("empty path on scalar root = (%v, %v), want (42, true)", v, found)
	}
	if _, found := LookupKeyPath(doc, "anything"); found {
		t.Error("expected path into scalar root to miss")
	}
}

func TestParseDocumentPreservesLargeIntegers(t *testing.T) {
	// 2^53+1 is not representable as float64; the decoded value must
	// carry the exact literal.
	doc, ok := ParseDocument([]byte(`{"id":9007199254740993}`))
	if !ok {
		t.Fatal("failed to parse document")
	}
	v, found := LookupKeyPath(doc, "id")
	if !found {
		t.Fatal("expected key path to resolve")
	}
	n, isNumber := v.(json.Number)
	if !isNumber {
		t.Fatalf("expected json.Number, got %T", v)
	}
	if n.String() != "9007199254740993" {
		t.Errorf("expected exact literal, got %s", n)
	}

	// And it survives re-encoding untouched.
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if string(raw) != "9007199254740993" {
		t.Errorf("expected exact re-encoding, got %s", raw)
	}
}
