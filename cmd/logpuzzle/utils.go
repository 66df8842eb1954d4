package main

import (
	"github.com/go-shiori/logpuzzle"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	exitOK = iota
	exitUsage
	exitFileRead
	exitMissingHost
	exitDirectoryCreate
	exitFetch
	exitOther
)

// exitCode maps an error returned by the command to the process exit status.
func exitCode(err error) int {
	var (
		readErr  *logpuzzle.FileReadError
		dirErr   *logpuzzle.DirectoryCreateError
		fetchErr *logpuzzle.FetchError
		failures logpuzzle.DownloadErrors
		argsErr  *argsError
	)

	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &argsErr):
		return exitUsage
	case errors.As(err, &readErr):
		return exitFileRead
	case errors.Is(err, logpuzzle.ErrMissingHostFragment):
		return exitMissingHost
	case errors.As(err, &dirErr):
		return exitDirectoryCreate
	case errors.As(err, &fetchErr), errors.As(err, &failures):
		return exitFetch
	default:
		return exitOther
	}
}

// argsError marks a wrong number of positional arguments.
type argsError struct {
	err error
}

func (e *argsError) Error() string { return e.err.Error() }

func (e *argsError) Unwrap() error { return e.err }

// exactlyOneLogFile accepts the single LOGFILE argument.
func exactlyOneLogFile(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return &argsError{err: err}
	}
	return nil
}
