package youtube

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const usageText = `Usage: download-video <youtube_url> [output_path]
Example: download-video https://youtube.com/watch?v=xxxxx ./public
A youtube_url of "history" or "config" runs that subcommand instead.`

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, usageText)
}

func loadConfigFromCliCommand(command *cli.Command) (*Config, error) {
	config, err := LoadConfig(command.String("config"))
	if err != nil {
		return nil, err
	}
	if ytdlp := command.String("ytdlp"); ytdlp != "" {
		config.YtDlp = ytdlp
	}
	return config, nil
}

func newHistoryCmd() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List recorded downloads",
		Action: func(ctx context.Context, command *cli.Command) error {
			config, err := loadConfigFromCliCommand(command)
			if err != nil {
				return err
			}
			if config.HistoryDB == "" {
				return errors.New("history is disabled, set history_db in the config file")
			}

			history, err := NewHistory(config.HistoryDB)
			if err != nil {
				return err
			}
			defer func() { _ = history.Close() }()

			entries, err := history.List()
			if err != nil {
				return err
			}
			w := command.Root().Writer
			for _, e := range entries {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					e.DownloadedAt.Format("2006-01-02 15:04:05"), e.VideoID, e.FileName, e.URL)
			}
			return nil
		},
	}
}

func newConfigCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Write the effective configuration to the config file",
		Action: func(ctx context.Context, command *cli.Command) error {
			config, err := loadConfigFromCliCommand(command)
			if err != nil {
				return err
			}
			configPath := command.String("config")
			err = SaveConfig(configPath, config)
			if err != nil {
				return err
			}
			zap.L().Info("Config saved", zap.String("path", configPath))
			return nil
		},
	}
}

// NewRootCmd returns a fresh command tree, a cli.Command keeps its parse
// state between runs.
func NewRootCmd() *cli.Command {
	return &cli.Command{
		Name:      "download-video",
		Usage:     "Download a YouTube video as mp4 with yt-dlp",
		ArgsUsage: "<youtube_url> [output_path]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yml",
			},
			&cli.StringFlag{
				Name:  "ytdlp",
				Usage: "yt-dlp executable, overrides the config file",
			},
		},
		Commands: []*cli.Command{
			newHistoryCmd(),
			newConfigCmd(),
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			// The url goes to yt-dlp verbatim, an empty one included.
			args := command.Args()
			if args.Len() < 1 {
				printUsage(command.Root().Writer)
				return ErrUsage
			}
			url := args.Get(0)

			config, err := loadConfigFromCliCommand(command)
			if err != nil {
				return err
			}
			if output := args.Get(1); output != "" {
				config.Output = output
			}

			d, err := newDownloader(config)
			if err != nil {
				return err
			}
			defer func() { _ = d.Close() }()

			_, err = d.Download(ctx, url)
			return err
		},
	}
}
