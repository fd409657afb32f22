// Package config loads engine settings from a TOML file and provides
// live reload of that file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidSetting indicates a setting value outside its valid range.
var ErrInvalidSetting = errors.New("invalid setting")

// Defaults.
const (
	DefaultCapacity     = 256
	DefaultPreviewWidth = 64
	DefaultPollInterval = 500 * time.Millisecond
)

// Config holds all engine settings.
type Config struct {
	History HistoryConfig `toml:"history"`
	Yank    YankConfig    `toml:"yank"`
	Poll    PollConfig    `toml:"poll"`
	Display DisplayConfig `toml:"display"`
}

// HistoryConfig configures the history buffer.
type HistoryConfig struct {
	// Capacity is the maximum number of retained entries.
	Capacity int `toml:"capacity"`

	// AllowDuplicates keeps repeated text as separate entries instead
	// of repositioning the older occurrence.
	AllowDuplicates bool `toml:"allow_duplicates"`
}

// YankConfig configures yank mode.
type YankConfig struct {
	// ExplicitMode requires yank mode to be toggled on before clips
	// are collected on the yank stack, and keeps those clips off the
	// regular history.
	ExplicitMode bool `toml:"explicit_mode"`
}

// PollConfig configures the OS clipboard poller.
type PollConfig struct {
	// Enabled turns background clipboard polling on.
	Enabled bool `toml:"enabled"`

	// Interval is the polling period, e.g. "500ms".
	Interval Duration `toml:"interval"`
}

// Duration is a time.Duration that unmarshals from TOML strings like
// "500ms" or "2s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("%w: poll.interval: %v", ErrInvalidSetting, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// DisplayConfig configures display projections.
type DisplayConfig struct {
	// PreviewWidth is the truncation width for entry previews.
	PreviewWidth int `toml:"preview_width"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		History: HistoryConfig{Capacity: DefaultCapacity},
		Poll:    PollConfig{Interval: Duration(DefaultPollInterval)},
		Display: DisplayConfig{PreviewWidth: DefaultPreviewWidth},
	}
}

// Load reads configuration from path, layered over the defaults.
// A missing file is not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks setting ranges, normalizing unset values to defaults.
func (c *Config) Validate() error {
	if c.History.Capacity < 0 {
		return fmt.Errorf("%w: history.capacity must be positive, got %d", ErrInvalidSetting, c.History.Capacity)
	}
	if c.History.Capacity == 0 {
		c.History.Capacity = DefaultCapacity
	}
	if c.Poll.Interval < 0 {
		return fmt.Errorf("%w: poll.interval must be positive, got %s", ErrInvalidSetting, c.Poll.Interval.Std())
	}
	if c.Poll.Interval == 0 {
		c.Poll.Interval = Duration(DefaultPollInterval)
	}
	if c.Display.PreviewWidth < 0 {
		return fmt.Errorf("%w: display.preview_width must be positive, got %d", ErrInvalidSetting, c.Display.PreviewWidth)
	}
	if c.Display.PreviewWidth == 0 {
		c.Display.PreviewWidth = DefaultPreviewWidth
	}
	return nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
