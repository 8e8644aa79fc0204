package youtube

import (
	"context"
	"io"
	"io/fs"
	"os"
	"os/exec"

	"github.com/alessio/shellescape"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const (
	FormatSelector     = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"
	MergeOutputFormat  = "mp4"
	RecodeVideoFormat  = "mp4"
	VideoCodec         = "libx264"
	AudioCodec         = "aac"
	FastStartFlag      = "+faststart"
	OutputExtensionMP4 = ".mp4"
)

// PostprocessorArgs is handed to yt-dlp's ffmpeg postprocessor as a single argument.
const PostprocessorArgs = "ffmpeg:-c:v " + VideoCodec + " -c:a " + AudioCodec + " -movflags " + FastStartFlag

type YtDlp struct {
	Path   string
	Stdout io.Writer
	Stderr io.Writer
}

func NewYtDlp(path string) *YtDlp {
	return &YtDlp{Path: path, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Args builds the yt-dlp argument vector, without the executable itself.
func (y *YtDlp) Args(url, outputTemplate string) []string {
	return []string{
		"-f", FormatSelector,
		"--merge-output-format", MergeOutputFormat,
		"--recode-video", RecodeVideoFormat,
		"--postprocessor-args", PostprocessorArgs,
		"-o", outputTemplate,
		url,
	}
}

// Download runs yt-dlp and blocks until it exits. The tool's own output is
// passed through untouched.
func (y *YtDlp) Download(ctx context.Context, url, outputTemplate string) error {
	args := y.Args(url, outputTemplate)
	zap.L().Debug("Running yt-dlp", zap.String("cmd", shellescape.QuoteCommand(append([]string{y.Path}, args...))))

	cmd := exec.CommandContext(ctx, y.Path, args...)
	cmd.Stdout = y.Stdout
	cmd.Stderr = y.Stderr
	err := cmd.Run()
	if err == nil {
		return nil
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return newToolNotFoundError(y.Path, err)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return newToolExecutionError(exitErr.ExitCode(), err)
	}
	return errors.Wrap(err, "run yt-dlp")
}
