package identity

import (
	"fmt"
	"strings"
)

// Error is a provider failure. Code is the provider's machine-readable
// code; Error returns the human-readable Message.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Is matches errors by Code, so errors.Is(err, ErrEmailExists) works on
// values built from a provider response.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrEmailExists         = &Error{Code: "EMAIL_EXISTS", Message: "The email address is already in use by another account."}
	ErrInvalidPassword     = &Error{Code: "INVALID_PASSWORD", Message: "The password is invalid or the user does not have a password."}
	ErrUserNotFound        = &Error{Code: "EMAIL_NOT_FOUND", Message: "There is no user record corresponding to this identifier. The user may have been deleted."}
	ErrInvalidCredentials  = &Error{Code: "INVALID_LOGIN_CREDENTIALS", Message: "The supplied auth credential is malformed or has expired."}
	ErrInvalidEmail        = &Error{Code: "INVALID_EMAIL", Message: "The email address is badly formatted."}
	ErrMissingPassword     = &Error{Code: "MISSING_PASSWORD", Message: "An email address and password are required."}
	ErrWeakPassword        = &Error{Code: "WEAK_PASSWORD", Message: "The password must be 6 characters long or more."}
	ErrUserDisabled        = &Error{Code: "USER_DISABLED", Message: "The user account has been disabled by an administrator."}
	ErrTooManyAttempts     = &Error{Code: "TOO_MANY_ATTEMPTS_TRY_LATER", Message: "We have blocked all requests from this device due to unusual activity. Try again later."}
	ErrOperationNotAllowed = &Error{Code: "OPERATION_NOT_ALLOWED", Message: "The given sign-in provider is disabled for this Firebase project."}
	ErrNetwork             = &Error{Code: "NETWORK_ERROR", Message: "Network error (such as timeout, interrupted connection or unreachable host) has occurred."}
	ErrInternal            = &Error{Code: "INTERNAL_ERROR", Message: "An internal error has occurred, print and inspect the error details for more information."}
)

var known = map[string]*Error{}

func init() {
	for _, e := range []*Error{
		ErrEmailExists, ErrInvalidPassword, ErrUserNotFound, ErrInvalidCredentials,
		ErrInvalidEmail, ErrMissingPassword, ErrWeakPassword, ErrUserDisabled,
		ErrTooManyAttempts, ErrOperationNotAllowed,
	} {
		known[e.Code] = e
	}
}

// fromCode maps a provider message such as "WEAK_PASSWORD : Password
// should be at least 6 characters" to an *Error. Unknown codes keep the
// raw message.
func fromCode(raw string) *Error {
	code, _, _ := strings.Cut(raw, " : ")
	code = strings.TrimSpace(code)
	if e, ok := known[code]; ok {
		return &Error{Code: e.Code, Message: e.Message}
	}
	if raw == "" {
		return &Error{Code: ErrInternal.Code, Message: ErrInternal.Message}
	}
	return &Error{Code: code, Message: raw}
}

func wrap(base *Error, err error) *Error {
	return &Error{Code: base.Code, Message: base.Message, Err: err}
}

func internalf(format string, args ...any) *Error {
	return wrap(ErrInternal, fmt.Errorf(format, args...))
}
