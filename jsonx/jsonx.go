// Package jsonx wraps JSON encoding for values and typed decoding into a
// caller-chosen shape.
package jsonx

import (
	"encoding/json"
	"fmt"
	"io"
)

// Stringify encodes v as compact JSON.
func Stringify(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("stringify: %w", err)
	}
	return string(data), nil
}

// StringifyIndent encodes v as JSON indented with two spaces.
func StringifyIndent(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("stringify: %w", err)
	}
	return string(data), nil
}

// Parse decodes text into a new value of type T. The result carries T's
// methods, so a decoded rect.Rectangle still answers Area().
func Parse[T any](text string) (T, error) {
	var v T
	if err := ParseInto(text, &v); err != nil {
		return v, err
	}
	return v, nil
}

// ParseInto decodes text into proto, which must be a non-nil pointer.
// Fields absent from text keep the values proto already holds.
func ParseInto(text string, proto any) error {
	if err := json.Unmarshal([]byte(text), proto); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	return nil
}

// Decode reads one JSON document from r into a new value of type T.
// Unknown fields are rejected.
func Decode[T any](r io.Reader) (T, error) {
	var v T
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("decode: %w", err)
	}
	return v, nil
}

// Write encodes v as indented JSON followed by a newline.
func Write(w io.Writer, v any) error {
	s, err := StringifyIndent(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}
