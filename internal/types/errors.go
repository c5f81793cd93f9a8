package types

import "errors"

// ErrTimeout marks a remote call that did not complete within the client
// timeout.
var ErrTimeout = errors.New("timeout")

// ErrInputClosed is returned by an interactive confirmation when standard
// input has no more lines.
var ErrInputClosed = errors.New("no more input available")

// StatusError is a non-2xx answer from the hosting service. Message holds the
// HTTP reason phrase, which is what the user sees.
type StatusError struct {
	StatusCode int
	URL        string
	Message    string
}

func (e *StatusError) Error() string {
	return e.Message
}
