package config

import (
	"fmt"
	"maps"
	"sync"

	"github.com/dshills/cellbridge/internal/config/loader"
)

// DefaultEnvPrefix is the prefix of environment overrides.
const DefaultEnvPrefix = "CELLBRIDGE_"

// Config holds the merged cellbridge configuration: built-in defaults, then
// the config file, then environment overrides, then explicit Set calls.
type Config struct {
	mu sync.RWMutex

	data      map[string]any
	overrides map[string]any

	path      string
	fs        loader.FileSystem
	envPrefix string
	environ   func() []string
	skipEnv   bool

	// configErrors stores type mismatches met while reading sections.
	configErrors map[string]error
}

// Option configures a Config instance.
type Option func(*Config)

// WithFileSystem reads the config file and colour script from fsys.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// WithEnvPrefix changes the environment override prefix.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithEnviron replaces the environment source, os.Environ by default.
func WithEnviron(environ func() []string) Option {
	return func(c *Config) {
		c.environ = environ
	}
}

// WithoutEnv disables environment overrides.
func WithoutEnv() Option {
	return func(c *Config) {
		c.skipEnv = true
	}
}

// New creates a config that reads path. An empty path uses defaults and
// the environment only. Call Load before reading settings.
func New(path string, opts ...Option) *Config {
	c := &Config{
		data:      defaultConfig(),
		overrides: make(map[string]any),
		path:      path,
		fs:        loader.DefaultFS(),
		envPrefix: DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load creates a config for path and loads it.
func Load(path string, opts ...Option) (*Config, error) {
	c := New(path, opts...)
	if err := c.Load(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads every source again and replaces the merged configuration.
// On error the previous configuration is kept.
func (c *Config) Load() error {
	merged := defaultConfig()

	if c.path != "" {
		l, err := loader.ForPath(c.fs, c.path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", c.path, err)
		}
		file, err := l.Load()
		if err != nil {
			return err
		}
		merged = loader.DeepMerge(merged, file)
	}

	if !c.skipEnv {
		env := loader.NewEnvLoader(c.envPrefix).WithEnviron(c.environ)
		vars, err := env.Load()
		if err != nil {
			return fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, vars)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for path, value := range c.overrides {
		if err := setPath(merged, path, value); err != nil {
			return fmt.Errorf("applying %s: %w", path, err)
		}
	}
	c.data = merged
	c.configErrors = nil
	return nil
}

// Path returns the config file path.
func (c *Config) Path() string {
	return c.path
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return loader.Lookup(c.data, path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case uint64:
		return int(val), nil
	case float64:
		if val != float64(int(val)) {
			return 0, &TypeError{Path: path, Expected: "int", Actual: "float64"}
		}
		return int(val), nil
	default:
		return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
	}
}

// GetStringSlice returns a string slice at the given path. A single string
// is treated as a one-element list.
func (c *Config) GetStringSlice(path string) ([]string, error) {
	v, ok := c.Get(path)
	if !ok {
		return nil, ErrSettingNotFound
	}

	switch val := v.(type) {
	case string:
		return []string{val}, nil
	case []string:
		return append([]string(nil), val...), nil
	case []any:
		result := make([]string, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, &TypeError{Path: path, Expected: "[]string", Actual: typeName(v)}
			}
			result[i] = s
		}
		return result, nil
	default:
		return nil, &TypeError{Path: path, Expected: "[]string", Actual: typeName(v)}
	}
}

// Set overrides the value at path. Overrides survive Load.
func (c *Config) Set(path string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := setPath(c.data, path, value); err != nil {
		return err
	}
	c.overrides[path] = value
	return nil
}

// Merged returns a deep copy of the merged configuration.
func (c *Config) Merged() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return loader.Clone(c.data)
}

func defaultConfig() map[string]any {
	return map[string]any{
		"colours": map[string]any{
			"default_fg": "white",
			"default_bg": "black",
			"palette":    "",
			"indexed":    []any{},
			"script":     "",
		},
		"host": map[string]any{
			"columns":     int64(80),
			"rows":        int64(50),
			"font_width":  int64(8),
			"font_height": int64(8),
			"fps":         int64(30),
		},
	}
}

// setPath sets a value in a nested map using a dot-separated path.
func setPath(m map[string]any, path string, value any) error {
	parts := splitPath(path)
	if len(parts) == 0 {
		return ErrInvalidPath
	}

	current := m
	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]
		next, ok := current[part]
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		nextMap, ok := next.(map[string]any)
		if !ok {
			return ErrInvalidPath
		}
		current = nextMap
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// splitPath splits a dot-separated path into parts.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}

	var parts []string
	current := ""
	for _, c := range path {
		if c == '.' {
			if current != "" {
				parts = append(parts, current)
				current = ""
			}
		} else {
			current += string(c)
		}
	}
	if current != "" {
		parts = append(parts, current)
	}
	return parts
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64, uint64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return "unknown"
	}
}

// recordConfigError stores the first error seen for path.
func (c *Config) recordConfigError(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.configErrors == nil {
		c.configErrors = make(map[string]error)
	}
	if _, exists := c.configErrors[path]; !exists {
		c.configErrors[path] = err
	}
}

// ConfigErrors returns any configuration errors encountered during access.
func (c *Config) ConfigErrors() map[string]error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.configErrors == nil {
		return nil
	}
	return maps.Clone(c.configErrors)
}
