package network

import (
	"errors"
	"fmt"
)

var (
	ErrNetwork      = errors.New("network error")
	ErrStatus       = errors.New("unexpected status")
	ErrBodyTooLarge = errors.New("response body too large")
)

// NetworkError reports a request that produced no usable response.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}
