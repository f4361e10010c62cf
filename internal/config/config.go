// Package config loads editor settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/JackWReid/zor/internal/syntax"
)

const (
	TabStopDefault         = 8
	QuitTimesDefault       = 1
	MessageTimeoutDefault  = 5 * time.Second
	CommandCapacityDefault = 256
)

// Config is the resolved editor configuration.
type Config struct {
	TabStop         int
	QuitTimes       int
	MessageTimeout  time.Duration
	CommandCapacity int
	Profiles        []syntax.Profile
}

type fileConfig struct {
	TabStop         *int          `toml:"tab_stop"`
	QuitTimes       *int          `toml:"quit_times"`
	MessageTimeout  string        `toml:"message_timeout"`
	CommandCapacity *int          `toml:"command_capacity"`
	Syntax          []fileProfile `toml:"syntax"`
}

type fileProfile struct {
	FileType string   `toml:"filetype"`
	Match    []string `toml:"match"`
	Numbers  bool     `toml:"numbers"`
	Strings  bool     `toml:"strings"`
}

func Default() Config {
	return Config{
		TabStop:         TabStopDefault,
		QuitTimes:       QuitTimesDefault,
		MessageTimeout:  MessageTimeoutDefault,
		CommandCapacity: CommandCapacityDefault,
		Profiles:        append([]syntax.Profile(nil), syntax.DefaultProfiles...),
	}
}

// Dir returns the directory holding config.toml. $ZOR_CONFIG_DIR wins over
// the user config directory.
func Dir() string {
	if dir := os.Getenv("ZOR_CONFIG_DIR"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ".zor"
	}
	return filepath.Join(base, "zor")
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config at path. A missing file yields the defaults; a
// file that fails to parse is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults. Out of range values fall back
// to their defaults.
func Parse(data []byte) (Config, error) {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if fc.TabStop != nil {
		cfg.TabStop = *fc.TabStop
	}
	if fc.QuitTimes != nil {
		cfg.QuitTimes = *fc.QuitTimes
	}
	if fc.CommandCapacity != nil {
		cfg.CommandCapacity = *fc.CommandCapacity
	}
	if fc.MessageTimeout != "" {
		d, err := time.ParseDuration(fc.MessageTimeout)
		if err == nil {
			cfg.MessageTimeout = d
		} else {
			cfg.MessageTimeout = 0
		}
	}
	if len(fc.Syntax) > 0 {
		cfg.Profiles = cfg.Profiles[:0]
		for _, p := range fc.Syntax {
			cfg.Profiles = append(cfg.Profiles, syntax.Profile{
				FileType: p.FileType,
				Match:    p.Match,
				Numbers:  p.Numbers,
				Strings:  p.Strings,
			})
		}
	}
	return Normalise(cfg), nil
}

// Normalise replaces invalid values with defaults.
func Normalise(cfg Config) Config {
	if cfg.TabStop < 1 {
		cfg.TabStop = TabStopDefault
	}
	if cfg.QuitTimes < 0 {
		cfg.QuitTimes = QuitTimesDefault
	}
	if cfg.MessageTimeout <= 0 {
		cfg.MessageTimeout = MessageTimeoutDefault
	}
	if cfg.CommandCapacity < 1 {
		cfg.CommandCapacity = CommandCapacityDefault
	}
	return cfg
}
