package auth

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnknownCity        = errors.New("unknown city")
	ErrNotFound           = errors.New("not found")
)
