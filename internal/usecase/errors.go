package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrEmptyResultSet        = errors.New("empty result set")
	ErrAbsentValue           = errors.New("arithmetic on absent value")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
