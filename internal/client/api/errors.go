package api

import "errors"

var (
	// ErrAuthRejected means the backend refused the credentials or the
	// account conflicts. Matched with errors.Is; the concrete value is an
	// *AuthError carrying the backend's message.
	ErrAuthRejected = errors.New("authentication rejected")

	// ErrProfileUnavailable means the profile could not be fetched: invalid
	// or expired credential, network error, or malformed response. Callers
	// decide per context whether this invalidates the session.
	ErrProfileUnavailable = errors.New("profile unavailable")

	// ErrUnavailable means the backend could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")
)

// AuthError is a login rejection with a human-readable message safe to show
// to the user verbatim. errors.Is(err, ErrAuthRejected) matches it.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Is(target error) bool { return target == ErrAuthRejected }
