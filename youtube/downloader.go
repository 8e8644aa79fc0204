package youtube

import (
	"context"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type downloader struct {
	ytdlp      *YtDlp
	outputPath string
	history    *History
}

func newDownloader(config *Config) (*downloader, error) {
	d := &downloader{
		ytdlp:      NewYtDlp(config.YtDlp),
		outputPath: config.Output,
	}
	if d.outputPath == "" {
		d.outputPath = defaultConfig().Output
	}

	if config.HistoryDB != "" {
		history, err := NewHistory(config.HistoryDB)
		if err != nil {
			return nil, err
		}
		d.history = history
	}
	return d, nil
}

func (d *downloader) Close() error {
	if d.history == nil {
		return nil
	}
	return d.history.Close()
}

// OutputFilePath joins dir and the file name for videoID, keeping dir as
// written (a leading "./" survives).
func OutputFilePath(dir string, videoID string) string {
	trimmed := strings.TrimRight(dir, `/\`)
	if dir == "" {
		trimmed = "."
	}
	return trimmed + "/" + videoID + OutputExtensionMP4
}

// Download fetches url into the output directory and returns the output path.
func (d *downloader) Download(ctx context.Context, url string) (string, error) {
	err := os.MkdirAll(d.outputPath, 0755)
	if err != nil {
		return "", errors.Wrapf(err, "create output directory %s", d.outputPath)
	}

	videoID := ExtractVideoID(url)
	outputFile := OutputFilePath(d.outputPath, videoID)

	zap.L().Info("Downloading", zap.String("url", url))
	zap.L().Info("Output", zap.String("path", outputFile))

	err = d.ytdlp.Download(ctx, url, outputFile)
	if err != nil {
		return "", err
	}
	zap.L().Info("Download complete", zap.String("path", outputFile))

	if d.history != nil {
		err = d.history.Save(&HistoryEntry{
			VideoID:  videoID,
			URL:      url,
			FileName: outputFile,
		})
		if err != nil {
			return outputFile, errors.Wrap(err, "save history")
		}
	}
	return outputFile, nil
}
