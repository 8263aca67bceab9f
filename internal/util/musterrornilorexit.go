package util

import (
	"context"
	"github.com/bokysan/b64stream/internal/session"
	"github.com/bokysan/b64stream/internal/util/enc"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

// Exit codes of the application. Errors from the flags package exit with their flags.ErrorType.
const (
	ErrInvalidArgument = 64
	ErrMalformedInput  = 65
	ErrAllocation      = 71
	ErrIO              = 74
	ErrInterrupted     = 130
	ErrGeneric         = 99
)

// ExitCode maps the error to the exit code of the application, 0 for nil and help requests
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var flagsError *flags.Error
	switch {
	case errors.As(err, &flagsError):
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	case errors.Is(err, enc.ErrInvalidArgument):
		return ErrInvalidArgument
	case errors.Is(err, enc.ErrMalformedInput):
		return ErrMalformedInput
	case errors.Is(err, enc.ErrAllocation):
		return ErrAllocation
	case errors.Is(err, session.ErrIO):
		return ErrIO
	case errors.Is(err, context.Canceled):
		return ErrInterrupted
	default:
		return ErrGeneric
	}
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the exit code
// of the error kind, see ExitCode.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(code)
}
