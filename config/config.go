// Package config loads collage settings from YAML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Common errors
var (
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidLevel = errors.New("invalid log level")
)

// ConfigError represents a configuration error with context.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// InteractionConfig tunes gesture recognition.
type InteractionConfig struct {
	// LineTolerance is the half-width of the band around a line that
	// picks it up on pointer down.
	LineTolerance float64 `yaml:"line-tolerance" json:"line_tolerance"`

	// LineMargin is the closest a dragged line may come to its neighbours.
	LineMargin float64 `yaml:"line-margin" json:"line_margin"`

	// SwapDelay is how long a piece must be held before it can be swapped.
	SwapDelay time.Duration `yaml:"swap-delay" json:"swap_delay"`

	// MoveCancel is the pointer travel that cancels a pending swap.
	MoveCancel float64 `yaml:"move-cancel" json:"move_cancel"`

	// ClickThreshold is the pointer travel below which a release counts
	// as a tap.
	ClickThreshold float64 `yaml:"click-threshold" json:"click_threshold"`

	// MinZoom and MaxZoom bound pinch zooming.
	MinZoom float64 `yaml:"min-zoom" json:"min_zoom"`
	MaxZoom float64 `yaml:"max-zoom" json:"max_zoom"`

	// NudgeStep is the distance a nudge moves a piece.
	NudgeStep float64 `yaml:"nudge-step" json:"nudge_step"`
}

// PieceConfig holds piece appearance and animation settings.
type PieceConfig struct {
	// AnimationDuration is the length of fill animations. Zero disables
	// animation.
	AnimationDuration time.Duration `yaml:"animation-duration" json:"animation_duration"`

	// Padding insets every area.
	Padding float64 `yaml:"padding" json:"padding"`

	// Radian is the corner radius of every area.
	Radian float64 `yaml:"radian" json:"radian"`

	// ResetMatrix re-crops pieces after a resize instead of refilling
	// their current placement.
	ResetMatrix bool `yaml:"reset-matrix" json:"reset_matrix"`
}

// DrawConfig holds the colors and line settings used when rendering.
type DrawConfig struct {
	LineSize       float64 `yaml:"line-size" json:"line_size"`
	LineColor      string  `yaml:"line-color" json:"line_color"`
	SelectedColor  string  `yaml:"selected-color" json:"selected_color"`
	HandleBarColor string  `yaml:"handle-bar-color" json:"handle_bar_color"`
	Background     string  `yaml:"background" json:"background"`
	DrawLines      bool    `yaml:"draw-lines" json:"draw_lines"`
	DrawOuterLines bool    `yaml:"draw-outer-lines" json:"draw_outer_lines"`
}

// Flags enables or disables gestures.
type Flags struct {
	CanDrag     bool `yaml:"can-drag" json:"can_drag"`
	CanMoveLine bool `yaml:"can-move-line" json:"can_move_line"`
	CanZoom     bool `yaml:"can-zoom" json:"can_zoom"`
	CanSwap     bool `yaml:"can-swap" json:"can_swap"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level" json:"level,omitempty"`

	// Format is the log format (text, json).
	Format string `yaml:"format" json:"format,omitempty"`
}

// Config is the complete collage configuration.
type Config struct {
	Interaction InteractionConfig `yaml:"interaction" json:"interaction"`
	Pieces      PieceConfig       `yaml:"pieces" json:"pieces"`
	Draw        DrawConfig        `yaml:"draw" json:"draw"`
	Flags       Flags             `yaml:"flags" json:"flags"`
	Logging     LoggingConfig     `yaml:"logging" json:"logging"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Interaction: InteractionConfig{
			LineTolerance:  20,
			LineMargin:     80,
			SwapDelay:      500 * time.Millisecond,
			MoveCancel:     10,
			ClickThreshold: 3,
			MinZoom:        0.3,
			MaxZoom:        4.5,
			NudgeStep:      5,
		},
		Pieces: PieceConfig{
			AnimationDuration: 300 * time.Millisecond,
			ResetMatrix:       true,
		},
		Draw: DrawConfig{
			LineSize:       4,
			LineColor:      "#FFFFFF",
			SelectedColor:  "#99BBFB",
			HandleBarColor: "#99BBFB",
			Background:     "#FFFFFF",
		},
		Flags: Flags{
			CanDrag:     true,
			CanMoveLine: true,
			CanZoom:     true,
			CanSwap:     true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads a configuration from a YAML file. Keys missing from the file
// keep their defaults.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses configuration from YAML data over the defaults and
// validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	in := c.Interaction
	switch {
	case in.LineTolerance <= 0:
		return NewConfigError("interaction.line-tolerance", "must be positive")
	case in.LineMargin < 0:
		return NewConfigError("interaction.line-margin", "must not be negative")
	case in.SwapDelay <= 0:
		return NewConfigError("interaction.swap-delay", "must be positive")
	case in.MoveCancel < 0:
		return NewConfigError("interaction.move-cancel", "must not be negative")
	case in.ClickThreshold < 0:
		return NewConfigError("interaction.click-threshold", "must not be negative")
	case in.MinZoom <= 0 || in.MaxZoom <= in.MinZoom:
		return NewConfigError("interaction.min-zoom",
			fmt.Sprintf("zoom band [%g, %g] is empty", in.MinZoom, in.MaxZoom))
	case in.NudgeStep <= 0:
		return NewConfigError("interaction.nudge-step", "must be positive")
	}

	p := c.Pieces
	switch {
	case p.AnimationDuration < 0:
		return NewConfigError("pieces.animation-duration", "must not be negative")
	case p.Padding < 0:
		return NewConfigError("pieces.padding", "must not be negative")
	case p.Radian < 0:
		return NewConfigError("pieces.radian", "must not be negative")
	}

	if c.Draw.LineSize <= 0 {
		return NewConfigError("draw.line-size", "must be positive")
	}
	for _, f := range []struct{ field, value string }{
		{"draw.line-color", c.Draw.LineColor},
		{"draw.selected-color", c.Draw.SelectedColor},
		{"draw.handle-bar-color", c.Draw.HandleBarColor},
		{"draw.background", c.Draw.Background},
	} {
		if _, err := ParseColor(f.value); err != nil {
			return &ConfigError{Field: f.field, Message: err.Error(), Err: err}
		}
	}

	if _, err := c.Logging.level(); err != nil {
		return &ConfigError{Field: "logging.level", Message: err.Error(), Err: err}
	}
	if f := c.Logging.Format; f != "text" && f != "json" {
		return NewConfigError("logging.format", fmt.Sprintf("unknown format %q", f))
	}
	return nil
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB".
func ParseColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}
	return ARGB(uint32(v)), nil
}

// ARGB converts a packed 0xAARRGGBB value.
func ARGB(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(v >> 24)}
}

func (c LoggingConfig) level() (slog.Level, error) {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, c.Level)
}

// NewLogger returns a logger writing to w in the configured format and
// level.
func (c LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	lvl, err := c.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
