package api

import (
	"errors"
	"fmt"
)

// Kind classifies client failures. The rest of the app never looks past
// this taxonomy.
type Kind int

const (
	// KindBadURL means the request could not be built. Programmer error;
	// should not occur at runtime.
	KindBadURL Kind = iota
	// KindBadRequest means the request body failed client-side validation
	// and was never sent.
	KindBadRequest
	// KindRequestFailed covers transport errors and non-2xx statuses
	// without a structured reason.
	KindRequestFailed
	// KindDecoding means the response did not match the expected shape.
	KindDecoding
	// KindCustom carries a server-reported structured rejection.
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindBadURL:
		return "bad url"
	case KindBadRequest:
		return "bad request"
	case KindRequestFailed:
		return "request failed"
	case KindDecoding:
		return "decoding error"
	case KindCustom:
		return "server rejection"
	}
	return "unknown"
}

// Error is the only error type the client returns.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the failure kind, reporting false for foreign errors.
func KindOf(err error) (Kind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

func badURL(err error) *Error {
	return &Error{Kind: KindBadURL, Err: err}
}

func badRequest(err error) *Error {
	return &Error{Kind: KindBadRequest, Err: err}
}

func requestFailed(status int) *Error {
	return &Error{Kind: KindRequestFailed, Message: fmt.Sprintf("request failed with status %d", status)}
}

func transport(err error) *Error {
	return &Error{Kind: KindRequestFailed, Err: err}
}

func decoding(err error) *Error {
	return &Error{Kind: KindDecoding, Err: err}
}

func custom(reason string) *Error {
	return &Error{Kind: KindCustom, Message: reason}
}
