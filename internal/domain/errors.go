package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrDuplicateVote   = errors.New("duplicate vote")
	ErrInvalidAmount   = errors.New("invalid amount")
)
