package notify

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a fetch failed.
type ErrorKind string

const (
	// KindTransport covers network failures, timeouts and non-200 responses.
	KindTransport ErrorKind = "transport"
	// KindDecode covers bodies that are not a JSON array.
	KindDecode ErrorKind = "decode"
)

// ErrNotAcknowledged is returned by MarkRead when the backend answers with
// success=false.
var ErrNotAcknowledged = errors.New("notification not acknowledged")

// FetchError is returned by Client.Fetch for every failure mode.
type FetchError struct {
	Kind       ErrorKind
	Endpoint   string
	StatusCode int // zero unless the server responded
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Kind, e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is a transport failure.
func IsTransport(err error) bool {
	return kindOf(err) == KindTransport
}

// IsDecode reports whether err is a decode failure.
func IsDecode(err error) bool {
	return kindOf(err) == KindDecode
}

func kindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
