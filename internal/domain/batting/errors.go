package batting

import "errors"

var (
	ErrInvalidRow    = errors.New("invalid batting row")
	ErrInvalidSeason = errors.New("invalid player season")
)
