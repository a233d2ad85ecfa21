package cli

import (
	"context"
	"errors"
)

// ErrHeroNotFound is returned when a requested hero id has no record.
var ErrHeroNotFound = errors.New("hero not found")

// Process exit codes.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitNotFound    = 2
	ExitInterrupted = 130
)

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrHeroNotFound):
		return ExitNotFound
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return ExitError
	}
}
