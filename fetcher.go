package policyscan

import (
	"context"
	"fmt"
)

// Fetcher retrieves the raw bytes of a URL.
type Fetcher interface {
	// Fetch retrieves the document at url. Expected network failures are
	// returned as *FetchError; the session treats them as per-target
	// failures, never as fatal errors.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetchErrorKind classifies an expected fetch failure.
type FetchErrorKind int

// FetchErrorKind values.
const (
	FetchTimeout FetchErrorKind = iota
	FetchNonSuccessStatus
	FetchTransportError
)

// String returns the kind's name.
func (k FetchErrorKind) String() string {
	switch k {
	case FetchTimeout:
		return "Timeout"
	case FetchNonSuccessStatus:
		return "NonSuccessStatus"
	case FetchTransportError:
		return "TransportError"
	}
	return "Unknown"
}

// FetchError is a typed fetch outcome for expected network failures.
type FetchError struct {
	Kind FetchErrorKind

	// URL that was being fetched.
	URL string

	// StatusCode is set for FetchNonSuccessStatus.
	StatusCode int

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface. The message always names the kind so
// failure results stay classifiable after serialization.
func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchNonSuccessStatus:
		return fmt.Sprintf("%s: HTTP %d for %s", e.Kind, e.StatusCode, e.URL)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Kind, e.URL, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Kind, e.URL)
	}
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}
