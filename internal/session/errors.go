package session

import (
	"errors"
	"fmt"
)

var (
	// ErrAttemptInProgress is returned when a sign-in or sign-up is
	// requested while another one has not finished yet.
	ErrAttemptInProgress = errors.New("authentication attempt already in progress")

	// ErrAlreadyLoggedIn is returned by SignIn/SignUp outside LoggedOut.
	ErrAlreadyLoggedIn = errors.New("already logged in")
)

// Operation names used in errors, logs and metrics.
const (
	OpSignIn = "sign_in"
	OpSignUp = "sign_up"
)

// AuthError is an identity provider failure: rejected credentials, a
// duplicate account, or an unreachable provider. They are not told apart
// here. Error returns the provider message unchanged so it can be shown
// to the user as is.
type AuthError struct {
	Op      string
	Message string
	Err     error
}

func newAuthError(op string, err error) *AuthError {
	return &AuthError{Op: op, Message: err.Error(), Err: err}
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Err }

// StoreError is a profile write failure after a successful sign-up.
// It is logged and never returned to callers of the controller.
type StoreError struct {
	UserID string
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("profile store: create %s: %v", e.UserID, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
