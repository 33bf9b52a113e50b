// Package record provides the untyped boundary type for loosely shaped JSON.
// Stored rosters, import files and legacy schemas are decoded into Records,
// migrated, and then converted into typed entities by the normalizers. Nothing
// past the normalizers sees a Record.
package record

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

// Record is a decoded JSON object
type Record map[string]any

// Decode parses data as a JSON object. Numbers are kept as json.Number.
func Decode(data []byte) (Record, error) {
	value, err := DecodeValue(data)
	if err != nil {
		return nil, err
	}
	rec, ok := From(value)
	if !ok {
		return nil, errors.InvalidArgument("JSON value is not an object")
	}
	return rec, nil
}

// DecodeValue parses a single JSON value. Numbers are kept as json.Number.
// Anything but whitespace after the value is an error.
func DecodeValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid JSON")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.InvalidArgument("invalid JSON: unexpected data after the value")
	}
	return value, nil
}

// FromStruct converts a typed value into its Record form through JSON
func FromStruct(v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal value")
	}
	return Decode(data)
}

// From returns v as a Record when it is a JSON object
func From(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, m != nil
	case map[string]any:
		return Record(m), m != nil
	default:
		return nil, false
	}
}

// Has reports whether key is present with a non-null value
func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// Get returns the value stored under key, or nil
func (r Record) Get(key string) any {
	return r[key]
}

// First returns the first non-null value among keys, probing them in order
func (r Record) First(keys ...string) (any, bool) {
	for _, key := range keys {
		if r.Has(key) {
			return r[key], true
		}
	}
	return nil, false
}

// String returns the value under key in string form, or "" when it has none
func (r Record) String(key string) string {
	s, _ := Stringify(r[key])
	return s
}

// Record returns the nested object under key
func (r Record) Record(key string) (Record, bool) {
	return From(r[key])
}

// List returns the array under key
func (r Record) List(key string) ([]any, bool) {
	list, ok := r[key].([]any)
	return list, ok
}

// Clone returns a shallow copy
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Stringify converts scalar JSON values to strings. Objects, arrays and null
// have no string form.
func Stringify(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case bool:
		return strconv.FormatBool(s), true
	default:
		return "", false
	}
}
