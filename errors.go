package logpuzzle

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrMissingHostFragment is returned when the log file path has no "code"
// token to use as the host of the rebuilt URLs.
var ErrMissingHostFragment = errors.New("log file name has no \"code\" host fragment")

// FileReadError is returned when the log file can't be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read log file %q: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// DirectoryCreateError is returned when the destination directory
// can't be created.
type DirectoryCreateError struct {
	Dir string
	Err error
}

func (e *DirectoryCreateError) Error() string {
	return fmt.Sprintf("failed to create directory %q: %v", e.Dir, e.Err)
}

func (e *DirectoryCreateError) Unwrap() error { return e.Err }

// FetchError is returned when a single image can't be downloaded.
// StatusCode is zero when the request never got a response.
type FetchError struct {
	Index      int
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s failed with status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s failed: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DownloadErrors collects every fetch failure of a best-effort download.
type DownloadErrors []*FetchError

func (e DownloadErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d of the downloads failed: %s", len(e), strings.Join(msgs, "; "))
}

// Unwrap lets errors.As find the individual fetch errors.
func (e DownloadErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}
