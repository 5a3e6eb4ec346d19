package cli

import (
	"errors"

	"github.com/riskibarqy/baseball-stats/internal/usecase"
)

const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInvalidArgs = 2
)

type mappedError struct {
	Reason   string
	ExitCode int
}

func mapError(err error) mappedError {
	switch {
	case err == nil:
		return mappedError{ExitCode: ExitOK}
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{Reason: "invalidInput", ExitCode: ExitInvalidArgs}
	case errors.Is(err, usecase.ErrEmptyResultSet):
		return mappedError{Reason: "emptyResultSet", ExitCode: ExitFailure}
	case errors.Is(err, usecase.ErrAbsentValue):
		return mappedError{Reason: "absentValue", ExitCode: ExitFailure}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{Reason: "dependencyUnavailable", ExitCode: ExitFailure}
	default:
		return mappedError{Reason: "internalError", ExitCode: ExitFailure}
	}
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	return mapError(err).ExitCode
}

// Reason returns a short machine-readable label for err.
func Reason(err error) string {
	return mapError(err).Reason
}
