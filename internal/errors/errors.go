package errors

import (
	"errors"
)

var (
	ErrEmailAndPasswordRequired = errors.New("email and password are required")
	ErrInvalidEmail             = errors.New("please provide a valid email")
	ErrEmailAlreadyRegistered   = errors.New("email already registered")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrInvalidToken             = errors.New("invalid token")
	ErrMissingFields            = errors.New("missing required fields")
	ErrEmailNotFound            = errors.New("email not found")
)
