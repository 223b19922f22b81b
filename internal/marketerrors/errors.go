package marketerrors

import "errors"

// Repository-level errors
var (
	ErrJobNotFound = errors.New("job not found")
	ErrBidNotFound = errors.New("bid not found")
)

// business logic errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicateBid = errors.New("bid already placed on this job")
)

// auth errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrForbidden    = errors.New("forbidden access")
)
