package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fanyang89/download-video/youtube"
)

// report prints err the way a user expects to see it and returns the process
// exit status.
func report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var execErr *youtube.ToolExecutionError
	switch {
	case errors.Is(err, youtube.ErrUsage):
	case errors.Is(err, youtube.ErrToolNotFound):
		_, _ = fmt.Fprintf(w, "Error: %v. %s\n", err, errors.FlattenHints(err))
	case errors.As(err, &execErr):
		_, _ = fmt.Fprintf(w, "Error downloading video: %v\n", err)
		zap.L().Error("yt-dlp failed", zap.Int("status", execErr.ExitCode), zap.Error(execErr.Err))
	default:
		zap.L().Error("Unexpected error", zap.Error(err))
	}
	return 1
}

func main() {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.OutputPaths = []string{"stdout"}
	logger, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)

	err = youtube.NewRootCmd().Run(context.Background(), os.Args)
	code := report(os.Stdout, err)
	_ = logger.Sync()
	os.Exit(code)
}
