package textapi

import (
	"errors"
	"fmt"
)

var (
	ErrBadURL    = errors.New("malformed URL")
	ErrTimeout   = errors.New("request timed out")
	ErrNetwork   = errors.New("network failure")
	ErrBadStatus = errors.New("bad status")
	ErrBadBody   = errors.New("bad body")
)

type ErrorKind int

const (
	BadURL ErrorKind = iota
	Timeout
	Network
	BadStatus
	BadBody
)

func (k ErrorKind) sentinel() error {
	switch k {
	case BadURL:
		return ErrBadURL
	case Timeout:
		return ErrTimeout
	case Network:
		return ErrNetwork
	case BadStatus:
		return ErrBadStatus
	default:
		return ErrBadBody
	}
}

// TransportError is a failure to obtain a usable body from the text API.
type TransportError struct {
	Kind       ErrorKind
	StatusCode int    // BadStatus only
	Detail     string // diagnostic text for display
	Err        error
}

func (e *TransportError) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.Kind == BadStatus {
		msg = fmt.Sprintf("%s %d", msg, e.StatusCode)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *TransportError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
