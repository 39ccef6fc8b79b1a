package services

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput means the email or password field was empty. Checked
	// before any gateway call is made.
	ErrInvalidInput = errors.New("please enter valid credentials")

	// ErrNoMatchingAccount means the subject authenticated but is registered
	// in neither the customers nor the freelancers collection.
	ErrNoMatchingAccount = errors.New("login credentials do not match any account type")
)

// BadCredentialsError means the authenticator rejected the email/password
// pair. It carries the underlying failure so the message can be shown to the
// user as-is.
type BadCredentialsError struct {
	Err error
}

func (e *BadCredentialsError) Error() string {
	return fmt.Sprintf("login failed: %v", e.Err)
}

func (e *BadCredentialsError) Unwrap() error { return e.Err }
