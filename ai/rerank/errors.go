package rerank

import "errors"

var (
	// ErrEmptyHost is returned when no service host is configured.
	ErrEmptyHost = errors.New("rerank host cannot be empty")

	// ErrServiceUnavailable indicates a non-200 response from the service.
	ErrServiceUnavailable = errors.New("rerank service unavailable")
)
