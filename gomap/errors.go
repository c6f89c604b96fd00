package gomap

import (
	"fmt"
	"reflect"
)

// ConversionError reports a Go value with no IR counterpart.
type ConversionError struct {
	FieldPath string // e.g. "user.tags[2]"
	Type      reflect.Type
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("unsupported native type %s", e.Type)
	if e.FieldPath != "" {
		return fmt.Sprintf("conversion error at %s: %s", e.FieldPath, msg)
	}
	return msg
}

// MarshalError wraps a failure returned by a Marshaler.
type MarshalError struct {
	FieldPath string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %v", e.FieldPath, e.Err)
	}
	return fmt.Sprintf("marshal error: %v", e.Err)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}
