package unsplash

import (
	"fmt"
	"strings"
)

// Kind classifies an Error into exactly one failure category.
type Kind int

const (
	// KindTransport indicates the request could not be sent or the
	// connection failed before a response was obtained.
	KindTransport Kind = iota + 1
	// KindForbidden indicates the server answered 403; the supplied access
	// key or bearer token does not grant access to the endpoint.
	KindForbidden
	// KindMalformedResponse indicates a response was obtained but its body
	// could not be decoded, or the body stream broke mid-transfer.
	KindMalformedResponse
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindForbidden:
		return "forbidden"
	case KindMalformedResponse:
		return "malformed response"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every dispatch operation. It carries
// one Kind and wraps the underlying cause.
type Error struct {
	kind  Kind
	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.kind {
	case KindTransport:
		return fmt.Sprintf("unsplash: failed to send request: %v", e.cause)
	case KindForbidden:
		return fmt.Sprintf("unsplash: not authorized to access endpoint: %v", e.cause)
	default:
		return fmt.Sprintf("unsplash: failed to parse response: %v", e.cause)
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the failure category.
func (e *Error) Kind() Kind {
	return e.kind
}

// IsTransport reports whether the error is a transport failure.
func (e *Error) IsTransport() bool {
	return e.kind == KindTransport
}

// IsForbidden reports whether the error indicates an authorization failure.
func (e *Error) IsForbidden() bool {
	return e.kind == KindForbidden
}

// IsMalformed reports whether the error indicates an undecodable response.
func (e *Error) IsMalformed() bool {
	return e.kind == KindMalformedResponse
}

// Errors is the list of error strings Unsplash returns in a non-success
// response body. It is normally found as the wrapped cause of an *Error.
type Errors []string

// Error implements the error interface.
func (e Errors) Error() string {
	return strings.Join(e, "\n")
}
