package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dshills/cellbridge/internal/bridge"
	"github.com/dshills/cellbridge/internal/host"
)

// Palette names accepted by colours.palette.
const (
	PaletteNone  = ""
	PaletteXterm = "xterm"
)

// ColoursConfig contains colour conversion settings.
type ColoursConfig struct {
	DefaultFg string
	DefaultBg string
	// Palette selects a base indexed palette, "xterm" or empty.
	Palette string
	// Indexed overrides the first palette entries, in order.
	Indexed []string
	// Script is the path of a Lua colour script, relative to the config file.
	Script string
}

// HostConfig contains host console settings.
type HostConfig struct {
	Columns    int
	Rows       int
	FontWidth  int
	FontHeight int
	FPS        int
}

// Colours returns the colour settings.
func (c *Config) Colours() ColoursConfig {
	return ColoursConfig{
		DefaultFg: c.getStringOr("colours.default_fg", "white"),
		DefaultBg: c.getStringOr("colours.default_bg", "black"),
		Palette:   strings.ToLower(c.getStringOr("colours.palette", PaletteNone)),
		Indexed:   c.getStringSliceOr("colours.indexed", nil),
		Script:    c.getStringOr("colours.script", ""),
	}
}

// Host returns the host console settings.
func (c *Config) Host() HostConfig {
	return HostConfig{
		Columns:    c.getIntOr("host.columns", 80),
		Rows:       c.getIntOr("host.rows", 50),
		FontWidth:  c.getIntOr("host.font_width", 8),
		FontHeight: c.getIntOr("host.font_height", 8),
		FPS:        c.getIntOr("host.fps", 30),
	}
}

// Basic builds the table-driven converter these settings describe. Without
// a palette or indexed entries the converter has no palette at all, so every
// indexed colour falls back to the default.
func (cc ColoursConfig) Basic() (bridge.BasicColourConverter, error) {
	var conv bridge.BasicColourConverter
	var errs []error

	fg, err := host.ParseColor(cc.DefaultFg)
	if err != nil {
		errs = append(errs, &ValidationError{Path: "colours.default_fg", Message: err.Error(), Value: cc.DefaultFg})
	}
	bg, err := host.ParseColor(cc.DefaultBg)
	if err != nil {
		errs = append(errs, &ValidationError{Path: "colours.default_bg", Message: err.Error(), Value: cc.DefaultBg})
	}
	conv.DefaultFg, conv.DefaultBg = fg, bg

	switch cc.Palette {
	case PaletteNone:
	case PaletteXterm:
		conv.IndexedColours = bridge.XtermPalette()
	default:
		errs = append(errs, &ValidationError{Path: "colours.palette", Message: "unknown palette", Value: cc.Palette})
	}

	for i, s := range cc.Indexed {
		rgba, err := host.ParseColor(s)
		if err != nil {
			errs = append(errs, &ValidationError{Path: fmt.Sprintf("colours.indexed[%d]", i), Message: err.Error(), Value: s})
			continue
		}
		if i < len(conv.IndexedColours) {
			conv.IndexedColours[i] = rgba
		} else {
			conv.IndexedColours = append(conv.IndexedColours, rgba)
		}
	}

	if len(errs) > 0 {
		return bridge.BasicColourConverter{}, errors.Join(errs...)
	}
	return conv, nil
}

// Converter builds the colour converter for the loaded settings. When a
// script is configured the result is a Lua converter falling back to the
// basic one; the returned close function releases it.
func (c *Config) Converter() (bridge.ColourConverter, func(), error) {
	cc := c.Colours()
	basic, err := cc.Basic()
	if err != nil {
		return nil, nil, err
	}
	if cc.Script == "" {
		return basic, func() {}, nil
	}

	path := c.scriptPath(cc.Script)
	src, err := c.fs.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading colour script: %w", err)
	}
	lc, err := bridge.NewLuaColourConverter(string(src), basic)
	if err != nil {
		return nil, nil, fmt.Errorf("colour script %s: %w", path, err)
	}
	return lc, lc.Close, nil
}

// ScriptPath returns the resolved colour script path, or "" when none is set.
func (c *Config) ScriptPath() string {
	script := c.Colours().Script
	if script == "" {
		return ""
	}
	return c.scriptPath(script)
}

func (c *Config) scriptPath(script string) string {
	if filepath.IsAbs(script) || c.path == "" {
		return script
	}
	return filepath.Join(filepath.Dir(c.path), script)
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Colours().Basic(); err != nil {
		errs = append(errs, err)
	}

	h := c.Host()
	for _, s := range []struct {
		path  string
		value int
		lo    int
		hi    int
	}{
		{"host.columns", h.Columns, 1, 1000},
		{"host.rows", h.Rows, 1, 1000},
		{"host.font_width", h.FontWidth, 1, 64},
		{"host.font_height", h.FontHeight, 1, 64},
		{"host.fps", h.FPS, 1, 240},
	} {
		if s.value < s.lo || s.value > s.hi {
			errs = append(errs, &ValidationError{
				Path:    s.path,
				Message: fmt.Sprintf("must be between %d and %d", s.lo, s.hi),
				Value:   s.value,
			})
		}
	}

	for path, err := range c.ConfigErrors() {
		errs = append(errs, fmt.Errorf("%s: %w", path, err))
	}

	return errors.Join(errs...)
}

// These methods only return the default for ErrSettingNotFound. Type errors
// are recorded and also return the default; Validate reports them.

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getIntOr(path string, defaultValue int) int {
	v, err := c.GetInt(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getStringSliceOr(path string, defaultValue []string) []string {
	v, err := c.GetStringSlice(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return append([]string(nil), defaultValue...)
	}
	return v
}
