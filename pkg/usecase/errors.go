package usecase

import "errors"

// Sentinel errors for the use case layer
var (
	ErrExecutionNotFound = errors.New("checklist execution not found")

	// Auth errors. Unknown user and wrong password map to the same
	// error on purpose: the login response must not allow user
	// enumeration.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
)
