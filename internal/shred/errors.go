package shred

import (
	"github.com/cockroachdb/errors"
)

// Failure taxonomy. Every error returned in Result.Err is marked with
// exactly one of these sentinels so callers can branch with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAccessDenied    = errors.New("access denied")
	ErrNotInitialized  = errors.New("logger not initialized")
	ErrIO              = errors.New("i/o failure")
	ErrUnlinkFailed    = errors.New("unlink failed")
	ErrCancelled       = errors.New("operation cancelled")
)

func invalidArgf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidArgument)
}

func accessDenied(cause error, path string) error {
	return errors.Mark(errors.Wrapf(cause, "cannot get exclusive write access to %s", path), ErrAccessDenied)
}

func ioFailure(cause error, format string, args ...interface{}) error {
	return errors.Mark(errors.Wrapf(cause, format, args...), ErrIO)
}
