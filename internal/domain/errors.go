package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrSessionExpired indicates the backend rejected the session credential.
	// The session guard has already run by the time a caller sees this;
	// callers clean up locally and must not trigger a second logout.
	ErrSessionExpired = errors.New("session credential is invalid or expired")

	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrValidation indicates the backend rejected the request payload
	ErrValidation = errors.New("request rejected by server")

	// ErrServerOffline indicates the remote service is unreachable
	ErrServerOffline = errors.New("server is unreachable")
)
