package apperrors

import "errors"

// Sentinel errors for every recoverable outcome the stores can produce.
// Callers branch with errors.Is; anything else is treated as an internal
// failure of the current request.
var (
	// ErrValidation means an input field was empty after trimming.
	ErrValidation = errors.New("validation failed")

	// ErrConflict means the username is already taken.
	ErrConflict = errors.New("username already exists")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotOwner means the caller tried to act on another user's task.
	ErrNotOwner = errors.New("not the task owner")

	// ErrNotFound means the requested task does not exist.
	ErrNotFound = errors.New("task not found")
)
