package openlibrary

import "fmt"

// FetchError is the single error type surfaced by the client. Transport
// failures, non-2xx statuses and malformed payloads are all normalized into
// it with a human-readable message; callers are not expected to distinguish
// the causes.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func fetchErrorf(err error, format string, args ...any) *FetchError {
	return &FetchError{
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}
