package client

import (
	"errors"
	"fmt"
)

// Field validation and flow errors, surfaced before or after the network
// call as appropriate. None of them are retried automatically; every
// operation is safe to re-invoke from the caller.
var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrUsernameRequired = errors.New("username is required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmailTaken       = errors.New("email already exists")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrEmailNotFound    = errors.New("email not found")
	ErrWrongPassword    = errors.New("wrong password")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionInvalid   = errors.New("session invalid")
)

// The server distinguishes the two login failure kinds by message; these
// mirror its wire strings.
const (
	msgEmailNotFound = "email not found"
	msgWrongPassword = "wrong password"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}
