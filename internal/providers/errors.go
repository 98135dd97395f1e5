package providers

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a request that names no known team or id. Nothing is fetched.
var ErrInvalidInput = errors.New("invalid input")

// FetchError captures a failed upstream request: transport errors, non-2xx
// responses, and bodies that could not be decoded.
type FetchError struct {
	Provider   string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("%s: fetch %s failed", e.Provider, e.URL)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

// LayoutError reports that an upstream document no longer contains the
// element a scraper anchors on.
type LayoutError struct {
	Provider string
	Selector string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s: layout changed, no element matches %q", e.Provider, e.Selector)
}

// IsFetchFailure reports whether err should surface to clients as a failed upstream fetch.
func IsFetchFailure(err error) bool {
	if err == nil {
		return false
	}
	var fetchErr *FetchError
	var layoutErr *LayoutError
	return errors.As(err, &fetchErr) || errors.As(err, &layoutErr)
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}
