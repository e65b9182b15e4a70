package explorer

import "errors"

var (
	// ErrInvalidInput is returned when a hash or address is malformed. No
	// request is made in that case.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when the explorer does not know the requested
	// transaction or address.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable is returned when the explorer could not be reached or
	// kept failing after retries.
	ErrUnavailable = errors.New("explorer unavailable")

	// ErrTimeout is returned when the explorer did not answer in time.
	ErrTimeout = errors.New("explorer timed out")

	// ErrDecode is returned when the explorer answered with an unexpected body.
	ErrDecode = errors.New("unexpected explorer response")
)
