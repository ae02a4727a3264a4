package failure

import (
	"net/url"
	"strconv"
)

// The adapters below convert the client's underlying failure categories into
// an Error. Each conversion is deliberately lossy: only the textual description
// of the source failure survives, category-specific structure is discarded.
// None of them mark the result unrecoverable; callers do that explicitly where
// the fatality of the failure is known.

// FromDecodeError adapts a structured-data decode or encode failure, such as
// an encoding/json error for a malformed runtime API response body.
func FromDecodeError(err error) *Error {
	return New(err.Error())
}

// FromURLError adapts a malformed endpoint address failure from net/url.
func FromURLError(err *url.Error) *Error {
	return New(err.Error())
}

// FromTransportError adapts an HTTP round-trip or other network-level failure.
func FromTransportError(err error) *Error {
	return New(err.Error())
}

// FromHeaderError adapts a header or text-encoding failure, such as an invalid
// value in a runtime API response header.
func FromHeaderError(err error) *Error {
	return New(err.Error())
}

// FromNumError adapts an integer parsing failure from strconv, such as a bad
// deadline or status code value.
func FromNumError(err *strconv.NumError) *Error {
	return New(err.Error())
}

// FromIOError adapts a generic I/O failure, such as a short read of a response
// body.
func FromIOError(err error) *Error {
	return New(err.Error())
}
