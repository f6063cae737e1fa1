// Package config holds the knobs that control how netgraph draws and reacts.
//
// Configuration is layered: [Default] returns the built-in values, and [Load]
// decodes a TOML file on top of them. Every loaded configuration is checked
// with [Config.Validate] before use.
//
// # File Format
//
//	enable_zoom = true
//	zoom_in_limit = 10
//	zoom_out_limit = 10
//
//	[edge]
//	antialiased = false
//	drag_mode = "component_only"  # disabled | component_only | all
//	offset = -150
//	line_segments = 30
//
//	[edge.label]
//	gap = 20
//	color = "black"
//
//	[node]
//	enable_dragging = true
//	radius = 50
//
// # Reactive Fields
//
// EnableZoom is an [Observable]: setting it at runtime immediately rebinds or
// unbinds the zoom gesture of every manager subscribed to it.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	nerrors "github.com/matzehuels/netgraph/pkg/errors"
)

// appName names the configuration directory.
const appName = "netgraph"

// DragMode selects what dragging an edge moves.
type DragMode string

const (
	// DragDisabled makes edge drags do nothing.
	DragDisabled DragMode = "disabled"
	// DragComponentOnly moves the component the edge belongs to.
	DragComponentOnly DragMode = "component_only"
	// DragAll moves everything on the surface.
	DragAll DragMode = "all"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DragMode) UnmarshalText(text []byte) error {
	switch m := DragMode(strings.ToLower(string(text))); m {
	case DragDisabled, DragComponentOnly, DragAll:
		*d = m
		return nil
	default:
		return fmt.Errorf("unknown drag mode %q", text)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d DragMode) MarshalText() ([]byte, error) {
	return []byte(d), nil
}

// EdgeText configures an edge label or weight.
type EdgeText struct {
	Gap   float64 `toml:"gap"`
	Color string  `toml:"color" validate:"required"`
}

// Edge configures edge drawing and interaction.
type Edge struct {
	Antialiased  bool     `toml:"antialiased"`
	Label        EdgeText `toml:"label"`
	Weight       EdgeText `toml:"weight"`
	LineColor    string   `toml:"line_color" validate:"required"`
	LineWidth    float64  `toml:"line_width" validate:"gt=0"`
	DragMode     DragMode `toml:"drag_mode" validate:"oneof=disabled component_only all"`
	Offset       int      `toml:"offset"`
	LineSegments int      `toml:"line_segments" validate:"min=1"`
}

// Node configures node drawing and interaction.
type Node struct {
	Antialiased    bool    `toml:"antialiased"`
	EnableDragging bool    `toml:"enable_dragging"`
	LabelColor     string  `toml:"label_color" validate:"required"`
	Radius         float64 `toml:"radius" validate:"gt=0"`
}

// Config is the full configuration bundle.
type Config struct {
	EnableZoom   *Observable[bool] `toml:"enable_zoom"`
	ZoomInLimit  int               `toml:"zoom_in_limit" validate:"min=0"`
	ZoomOutLimit int               `toml:"zoom_out_limit" validate:"min=0"`
	Edge         Edge              `toml:"edge"`
	Node         Node              `toml:"node"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		EnableZoom:   NewObservable(true),
		ZoomInLimit:  10,
		ZoomOutLimit: 10,
		Edge: Edge{
			Label:        EdgeText{Gap: 20, Color: "black"},
			Weight:       EdgeText{Gap: -20, Color: "black"},
			LineColor:    "black",
			LineWidth:    1.5,
			DragMode:     DragComponentOnly,
			Offset:       -150,
			LineSegments: 30,
		},
		Node: Node{
			EnableDragging: true,
			LabelColor:     "black",
			Radius:         50,
		},
	}
}

// Path returns the default configuration file path
// ($XDG_CONFIG_HOME/netgraph/config.toml or ~/.config/netgraph/config.toml).
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load decodes the TOML file at path on top of [Default] and validates the
// result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, nerrors.Wrap(nerrors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := Decode(string(data), cfg); err != nil {
		return nil, nerrors.Wrap(nerrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode decodes TOML text into cfg, keeping values the text does not set.
// Keys that do not map to a field are rejected.
func Decode(text string, cfg *Config) error {
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// Encode writes cfg as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// =============================================================================
// Validation
// =============================================================================

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks every field against its constraints and reports all
// failures at once.
func (c *Config) Validate() error {
	var fields []string
	if c.EnableZoom == nil {
		fields = append(fields, "enable_zoom is required")
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nerrors.Wrap(nerrors.ErrCodeInvalidConfig, err, "validate")
		}
		for _, fe := range verrs {
			fields = append(fields, formatFieldError(fe))
		}
	}
	if len(fields) > 0 {
		return &nerrors.FieldsError{Fields: fields}
	}
	return nil
}

func formatFieldError(e validator.FieldError) string {
	field := strings.TrimPrefix(e.Namespace(), "Config.")
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
