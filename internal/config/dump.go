package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Dump renders the merged configuration as indented JSON with sorted keys.
func (c *Config) Dump() ([]byte, error) {
	doc := []byte("{}")
	var err error

	var walk func(prefix []string, m map[string]any) error
	walk = func(prefix []string, m map[string]any) error {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		for _, k := range keys {
			path := append(slices.Clone(prefix), escapeKey(k))
			if sub, ok := m[k].(map[string]any); ok && len(sub) > 0 {
				if err := walk(path, sub); err != nil {
					return err
				}
				continue
			}
			doc, err = sjson.SetBytes(doc, strings.Join(path, "."), m[k])
			if err != nil {
				return fmt.Errorf("dumping %s: %w", strings.Join(path, "."), err)
			}
		}
		return nil
	}

	if err := walk(nil, c.Merged()); err != nil {
		return nil, err
	}
	return pretty.PrettyOptions(doc, &pretty.Options{Width: 80, Indent: "  "}), nil
}

// escapeKey escapes the characters sjson treats as path syntax.
func escapeKey(k string) string {
	var b strings.Builder
	for _, r := range k {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', ':':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
