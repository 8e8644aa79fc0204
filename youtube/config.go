package youtube

import (
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Output    string `yaml:"output"`
	YtDlp     string `yaml:"ytdlp"`
	HistoryDB string `yaml:"history_db"`
}

func defaultExecutableFileExtension() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}

func defaultConfig() *Config {
	return &Config{
		Output:    "./public",
		YtDlp:     "yt-dlp" + defaultExecutableFileExtension(),
		HistoryDB: "",
	}
}

func (c *Config) fillDefaults() {
	d := defaultConfig()
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.YtDlp == "" {
		c.YtDlp = d.YtDlp
	}
}

func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(buf, &config)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	config.fillDefaults()
	return &config, nil
}

func SaveConfig(path string, config *Config) error {
	buf, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}
