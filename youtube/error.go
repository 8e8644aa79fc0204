package youtube

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

const InstallHint = "Install it with: pip install yt-dlp"

var (
	// ErrUsage is returned when the youtube url argument is missing.
	ErrUsage = errors.New("youtube url is required")
	// ErrToolNotFound marks errors caused by a yt-dlp executable that can't be located.
	ErrToolNotFound = errors.New("yt-dlp not found")
)

type ToolExecutionError struct {
	ExitCode int
	Err      error
}

func newToolExecutionError(code int, err error) *ToolExecutionError {
	return &ToolExecutionError{code, err}
}

func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("yt-dlp exited with status %d: %v", e.ExitCode, e.Err)
}

func (e *ToolExecutionError) Unwrap() error {
	return e.Err
}

func newToolNotFoundError(path string, err error) error {
	err = errors.Wrapf(err, "%s not found", path)
	err = errors.Mark(err, ErrToolNotFound)
	return errors.WithHint(err, InstallHint)
}
