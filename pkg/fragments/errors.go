package fragments

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema matches any DecodeError of kind SchemaError.
	ErrSchema = errors.New("schema error")
	// ErrUnrecognizedTextShape matches any DecodeError of kind UnrecognizedTextShape.
	ErrUnrecognizedTextShape = errors.New("unrecognized text shape")
)

type DecodeErrorKind int

const (
	SchemaError DecodeErrorKind = iota
	UnrecognizedTextShape
)

// DecodeError reports why a response or fragment could not be decoded.
type DecodeError struct {
	Kind  DecodeErrorKind
	Field string // set for SchemaError
	Index int    // position in matchingText, -1 when not applicable
	Err   error
}

func (e *DecodeError) Error() string {
	var msg string
	switch e.Kind {
	case SchemaError:
		msg = fmt.Sprintf("schema error: field %q missing or mistyped", e.Field)
	case UnrecognizedTextShape:
		msg = "unrecognized text shape"
		if e.Err != nil {
			msg += ": " + e.Err.Error()
		}
	default:
		msg = "decode error"
	}
	if e.Index >= 0 {
		msg += fmt.Sprintf(" (fragment %d)", e.Index)
	}
	return msg
}

func (e *DecodeError) Is(target error) bool {
	switch target {
	case ErrSchema:
		return e.Kind == SchemaError
	case ErrUnrecognizedTextShape:
		return e.Kind == UnrecognizedTextShape
	}
	return false
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func schemaError(field string, index int) *DecodeError {
	return &DecodeError{Kind: SchemaError, Field: field, Index: index}
}
