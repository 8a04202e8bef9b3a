package store

import (
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the storage location and the season boundary used by the
// season-long task expansion.
type Config interface {
	BasePath() string
	SeasonEnd() (time.Month, int)
}

const (
	defaultPath      = "~/.winterplan.db"
	defaultSeasonEnd = "02-28"
)

// LoadConfig reads .winterplan (yaml implicit) from the working directory
// or WINTERPLAN_CONFIG_PATH, with WINTERPLAN_* env overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", defaultPath)
	viper.SetDefault("season_end", defaultSeasonEnd)
	viper.SetConfigName(".winterplan") // .yaml is implicit
	viper.SetEnvPrefix("WINTERPLAN")
	viper.AutomaticEnv()

	if override := os.Getenv("WINTERPLAN_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	month, day, err := ParseSeasonEnd(viper.GetString("season_end"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path, EndMonth: month, EndDay: day}, nil
}

// ParseSeasonEnd parses an MM-DD boundary such as "02-28".
func ParseSeasonEnd(s string) (time.Month, int, error) {
	t, err := time.Parse("01-02", s)
	if err != nil {
		return 0, 0, fmt.Errorf("store: invalid season_end %q: %w", s, err)
	}
	return t.Month(), t.Day(), nil
}

type fileConfig struct {
	Path     string `json:"path"`
	EndMonth time.Month
	EndDay   int
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) SeasonEnd() (time.Month, int) {
	return f.EndMonth, f.EndDay
}
