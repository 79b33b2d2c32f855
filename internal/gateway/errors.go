package gateway

import (
	"fmt"
)

// NetworkError means the request never produced an HTTP response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response. Message is the body's error field, or
// "HTTP error! status: N" when the body has none.
type APIError struct {
	Op      string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// PayloadError is a 2xx response whose body could not be decoded.
type PayloadError struct {
	Op  string
	Err error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("%s: malformed payload: %v", e.Op, e.Err)
}

func (e *PayloadError) Unwrap() error {
	return e.Err
}
