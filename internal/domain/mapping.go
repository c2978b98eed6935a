package domain

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
)

// MapperOptions tunes the JSON-to-object mapper. The zero value matches
// encoding/json defaults. Options are forwarded untouched to the decoder.
type MapperOptions struct {
	// DisallowUnknownFields makes the mapper reject JSON objects that
	// carry fields absent from the target type.
	DisallowUnknownFields bool

	// UseNumber decodes JSON numbers into json.Number instead of float64
	// for interface{} targets.
	UseNumber bool
}

// MappingContext is the caller-supplied configuration for one mapping
// operation. All fields are optional; the zero value (or a nil pointer)
// means "construct a new object, no persistence".
type MappingContext[T any] struct {
	// Target, when non-nil, is updated in place instead of a new object
	// being constructed. The same storage the caller supplied carries
	// the mapped fields after a successful call. Ignored for array
	// mapping, which always constructs a fresh sequence.
	Target *T

	// Store, when non-nil, scopes the mapping inside one write
	// transaction against this store. The transaction commits before
	// the outcome is returned and is never left open across the
	// callback boundary.
	Store Store

	// Collection names the store collection mapped objects are written
	// to. Empty means the Go type name of T.
	Collection string

	// ObjectID keys the persisted object. Empty means a generated ID.
	// Ignored for array mapping, where every element gets its own
	// generated ID.
	ObjectID string

	// Options is forwarded untouched to the mapper.
	Options MapperOptions
}

// DecodeBytes maps raw JSON bytes into the target, honoring the mapper
// options. This is the single coercion point shared by the object and
// array operations.
func DecodeBytes[T any](data []byte, opts MapperOptions, into *T) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if opts.DisallowUnknownFields {
		dec.DisallowUnknownFields()
	}
	if opts.UseNumber {
		dec.UseNumber()
	}
	return dec.Decode(into)
}

// DecodeValue maps an already-decoded generic JSON value into the target
// by re-encoding it. Used after key-path extraction, where the value is
// a subtree of the parsed document rather than raw bytes.
func DecodeValue[T any](value any, opts MapperOptions, into *T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return DecodeBytes(raw, opts, into)
}

// CollectionFor derives the default store collection name for a mapped
// type: the lower-cased Go type name, "object" when the type is
// anonymous.
func CollectionFor[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		return "object"
	}
	return strings.ToLower(name)
}
