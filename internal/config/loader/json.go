package loader

import (
	"errors"
	"io"

	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("invalid JSON")

// JSONLoader loads configuration from JSON files.
type JSONLoader struct {
	fs   FileSystem
	path string
}

// NewJSONLoader creates a new JSON loader for the given path.
func NewJSONLoader(path string) *JSONLoader {
	return NewJSONLoaderWithFS(DefaultFS(), path)
}

// NewJSONLoaderWithFS creates a JSON loader with a custom file system.
func NewJSONLoaderWithFS(fs FileSystem, path string) *JSONLoader {
	return &JSONLoader{fs: fs, path: path}
}

// Load reads configuration from the configured path.
func (l *JSONLoader) Load() (map[string]any, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads configuration from a specific path.
func (l *JSONLoader) LoadFrom(path string) (map[string]any, error) {
	data, err := readFile(l.fs, path)
	if data == nil || err != nil {
		return nil, err
	}
	return l.parse(path, data)
}

// LoadFromReader reads configuration from an io.Reader.
func (l *JSONLoader) LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return l.parse("<reader>", data)
}

func (l *JSONLoader) parse(source string, data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{
			Path:    source,
			Format:  FormatJSON,
			Message: "malformed document",
			Err:     errInvalidJSON,
		}
	}

	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		return nil, &ParseError{
			Path:    source,
			Format:  FormatJSON,
			Message: "top level must be an object",
			Err:     errInvalidJSON,
		}
	}

	config, _ := result.Value().(map[string]any)
	return normalizeJSON(config), nil
}

// normalizeJSON converts integral numbers to int64 so JSON maps match the
// TOML loader's types.
func normalizeJSON(m map[string]any) map[string]any {
	for k, v := range m {
		m[k] = normalizeJSONValue(v)
	}
	return m
}

func normalizeJSONValue(v any) any {
	switch x := v.(type) {
	case float64:
		if x == float64(int64(x)) {
			return int64(x)
		}
		return x
	case map[string]any:
		return normalizeJSON(x)
	case []any:
		for i := range x {
			x[i] = normalizeJSONValue(x[i])
		}
		return x
	default:
		return v
	}
}
