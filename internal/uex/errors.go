package uex

import (
	"errors"
	"fmt"
)

// Client error taxonomy. StatusError carries anything the API rejected that
// is not a known case.
var (
	ErrNotFound    = errors.New("resource not found")
	ErrRateLimited = errors.New("rate limit exceeded")
)

// StatusError is a non-2xx API response.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}
