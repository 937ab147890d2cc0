package review

import "errors"

var (
	ErrValidation      = errors.New("invalid review payload")
	ErrNotFound        = errors.New("booking not found")
	ErrForbidden       = errors.New("booking belongs to another customer")
	ErrInvalidState    = errors.New("booking is not completed")
	ErrDuplicateReview = errors.New("booking already reviewed")
)
