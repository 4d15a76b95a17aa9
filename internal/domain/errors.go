package domain

import "errors"

// Sentinel errors for remote operations
var (
	// ErrNetwork indicates the request failed or the service answered non-2xx
	ErrNetwork = errors.New("artwork service request failed")

	// ErrDecode indicates the response did not have the expected shape
	ErrDecode = errors.New("unexpected response from artwork service")

	// ErrNotFound indicates the requested artwork does not exist
	ErrNotFound = errors.New("artwork not found")
)
