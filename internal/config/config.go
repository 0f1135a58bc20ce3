// Package config loads the winarea YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Norgate-AV/winarea/internal/geom"
	"github.com/Norgate-AV/winarea/internal/logger"
	"github.com/Norgate-AV/winarea/internal/match"
	"github.com/Norgate-AV/winarea/internal/resolver"
	"github.com/Norgate-AV/winarea/internal/timeouts"
)

// EnvConfigPath overrides the default config file location
const EnvConfigPath = "WINAREA_CONFIG"

// Config is the decoded configuration file
type Config struct {
	Log        LogConfig         `yaml:"log"`
	Watch      WatchConfig       `yaml:"watch"`
	Borderless []BorderlessEntry `yaml:"borderless"`
}

// LogConfig tunes log file rotation
type LogConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days"`
	Compress   bool `yaml:"compress"`
}

type WatchConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// BorderlessEntry crops undecorated windows matched by a selector
type BorderlessEntry struct {
	Name   string `yaml:"name"`
	Match  string `yaml:"match"`
	Offset Offset `yaml:"offset"`
}

// Offset is the number of pixels to trim from each side
type Offset struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// Area expresses the offset the way the resolver consumes it: the point
// moves in by left/top and the size shrinks by both sides of each axis
func (o Offset) Area() geom.Area {
	return geom.NewArea(o.Left, o.Top, o.Left+o.Right, o.Top+o.Bottom)
}

// ValidationError reports an invalid value and where it sits in the file
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Log: LogConfig{
			MaxSizeMB:  logger.DefaultLogMaxSize,
			MaxBackups: logger.DefaultLogMaxBackups,
			MaxAgeDays: logger.DefaultLogMaxAge,
			Compress:   true,
		},
		Watch: WatchConfig{
			Interval: timeouts.WatchPollingInterval,
		},
	}
}

// DefaultPath returns <user config dir>/winarea/config.yaml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	return filepath.Join(dir, "winarea", "config.yaml"), nil
}

// ResolvePath picks the config file: the flag value, then $WINAREA_CONFIG,
// then the default location. explicit is false only for the default.
func ResolvePath(flag string) (path string, explicit bool, err error) {
	if flag != "" {
		return flag, true, nil
	}

	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, true, nil
	}

	path, err = DefaultPath()
	return path, false, err
}

// Load reads the file at path. A missing file yields the defaults unless
// the path was given explicitly.
func Load(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}

		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a YAML document over the defaults and validates it.
// Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return &ValidationError{Path: "log", Err: fmt.Errorf("rotation values must be >= 0")}
	}

	if c.Watch.Interval < timeouts.MinWatchInterval {
		return &ValidationError{
			Path: "watch.interval",
			Err:  fmt.Errorf("must be at least %s, got %s", timeouts.MinWatchInterval, c.Watch.Interval),
		}
	}

	_, err := c.Rules()
	return err
}

// Rules converts the borderless entries into resolver rules, in file order
func (c *Config) Rules() ([]resolver.BorderlessRule, error) {
	rules := make([]resolver.BorderlessRule, 0, len(c.Borderless))

	for i, entry := range c.Borderless {
		path := fmt.Sprintf("borderless[%d]", i)

		sel, err := match.Parse(entry.Match)
		if err != nil {
			return nil, &ValidationError{Path: path + ".match", Err: err}
		}

		o := entry.Offset
		if o.Left < 0 || o.Top < 0 || o.Right < 0 || o.Bottom < 0 {
			return nil, &ValidationError{Path: path + ".offset", Err: fmt.Errorf("offset values must be >= 0")}
		}

		name := entry.Name
		if name == "" {
			name = entry.Match
		}

		rules = append(rules, resolver.BorderlessRule{
			Name:   name,
			Match:  sel.Match,
			Offset: o.Area(),
		})
	}

	return rules, nil
}

// LoggerOptions maps the log section onto logger options
func (c *Config) LoggerOptions(verbose bool) logger.LoggerOptions {
	return logger.LoggerOptions{
		Verbose:    verbose,
		MaxSize:    c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAgeDays,
		Compress:   c.Log.Compress,
	}
}
