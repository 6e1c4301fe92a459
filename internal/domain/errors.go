package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure for the HTTP layer and for logging.
type ErrorKind int

const (
	// KindInvalidInput: the caller's input failed validation; no external
	// service was contacted.
	KindInvalidInput ErrorKind = iota + 1
	// KindNotFound: the input was well-formed but nothing matched it.
	KindNotFound
	// KindUpstream: an external provider failed, timed out, or returned a
	// malformed payload.
	KindUpstream
	// KindConfig: a required credential or endpoint is missing. Fatal at
	// startup, never produced per-request.
	KindConfig
)

// Error is the typed failure returned by the locator pipeline and the
// catalog services. Provider is set for KindUpstream only.
type Error struct {
	Kind     ErrorKind
	Provider string
	Detail   string
	Err      error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindUpstream && e.Err != nil:
		return fmt.Sprintf("upstream %s: %s: %v", e.Provider, e.Detail, e.Err)
	case e.Kind == KindUpstream:
		return fmt.Sprintf("upstream %s: %s", e.Provider, e.Detail)
	default:
		return e.Detail
	}
}

func (e *Error) Unwrap() error { return e.Err }

func InvalidInput(detail string) *Error {
	return &Error{Kind: KindInvalidInput, Detail: detail}
}

func NotFound(detail string) *Error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

func Upstream(provider, detail string, err error) *Error {
	return &Error{Kind: KindUpstream, Provider: provider, Detail: detail, Err: err}
}

func ConfigError(detail string) *Error {
	return &Error{Kind: KindConfig, Detail: detail}
}

// KindOf extracts the ErrorKind from an error chain. Unclassified errors
// report KindUpstream so the HTTP layer treats them as server-side.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstream
}
