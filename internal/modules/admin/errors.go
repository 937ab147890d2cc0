package admin

import "errors"

var (
	ErrValidation       = errors.New("invalid admin payload")
	ErrNotFound         = errors.New("provider not found")
	ErrProviderRejected = errors.New("provider was rejected and cannot be approved")
)
