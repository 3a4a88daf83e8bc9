// Package config loads and validates termio runtime settings from
// TOML files and supports live reload through a file watcher.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Errors returned by configuration operations.
var (
	// ErrValidationFailed indicates a setting is out of range.
	ErrValidationFailed = errors.New("validation failed")
)

// Duration is a time.Duration that unmarshals from TOML strings like
// "50ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// InputConfig controls the terminal input parser.
type InputConfig struct {
	// FlushTimeout is how long to wait after a read before flushing
	// the escape sequence buffer.
	FlushTimeout Duration `toml:"flush_timeout"`
}

// ScrollConfig controls scrollable pane behaviour.
type ScrollConfig struct {
	MaxAvailableHeight       int    `toml:"max_available_height"`
	KeepCursorVisible        bool   `toml:"keep_cursor_visible"`
	KeepFocusedWindowVisible bool   `toml:"keep_focused_window_visible"`
	ShowScrollbar            bool   `toml:"show_scrollbar"`
	DisplayArrows            bool   `toml:"display_arrows"`
	OffsetTop                int    `toml:"offset_top"`
	OffsetBottom             int    `toml:"offset_bottom"`
	UpArrow                  string `toml:"up_arrow"`
	DownArrow                string `toml:"down_arrow"`
}

// GeneratorConfig controls background generators.
type GeneratorConfig struct {
	BufferSize int `toml:"buffer_size"`
}

// Config is the root configuration.
type Config struct {
	Input     InputConfig     `toml:"input"`
	Scroll    ScrollConfig    `toml:"scroll"`
	Generator GeneratorConfig `toml:"generator"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Input: InputConfig{
			FlushTimeout: Duration(50 * time.Millisecond),
		},
		Scroll: ScrollConfig{
			MaxAvailableHeight:       10000,
			KeepCursorVisible:        true,
			KeepFocusedWindowVisible: true,
			ShowScrollbar:            true,
			DisplayArrows:            true,
			OffsetTop:                1,
			OffsetBottom:             1,
			UpArrow:                  "^",
			DownArrow:                "v",
		},
		Generator: GeneratorConfig{
			BufferSize: 1000,
		},
	}
}

// Load reads a TOML file over the defaults. A missing file is not an
// error; the defaults are returned.
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
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Input.FlushTimeout <= 0 {
		return fmt.Errorf("%w: input.flush_timeout must be positive", ErrValidationFailed)
	}
	if c.Scroll.MaxAvailableHeight <= 0 {
		return fmt.Errorf("%w: scroll.max_available_height must be positive", ErrValidationFailed)
	}
	if c.Scroll.OffsetTop < 0 || c.Scroll.OffsetBottom < 0 {
		return fmt.Errorf("%w: scroll offsets must not be negative", ErrValidationFailed)
	}
	if c.Generator.BufferSize <= 0 {
		return fmt.Errorf("%w: generator.buffer_size must be positive", ErrValidationFailed)
	}
	return nil
}
