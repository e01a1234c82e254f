package loader

import "testing"

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"colours": map[string]any{"default_fg": "white", "default_bg": "black"},
		"host":    map[string]any{"columns": int64(80)},
	}
	src := map[string]any{
		"colours": map[string]any{"default_bg": "navy"},
		"host":    "replaced",
		"extra":   true,
	}

	got := DeepMerge(dst, src)

	if v, _ := Lookup(got, "colours.default_fg"); v != "white" {
		t.Errorf("default_fg = %v, want kept", v)
	}
	if v, _ := Lookup(got, "colours.default_bg"); v != "navy" {
		t.Errorf("default_bg = %v, want overridden", v)
	}
	if got["host"] != "replaced" || got["extra"] != true {
		t.Errorf("merged = %v", got)
	}

	if DeepMerge(nil, nil) == nil {
		t.Error("DeepMerge(nil, nil) should return an empty map")
	}
}

func TestClone(t *testing.T) {
	src := map[string]any{
		"colours": map[string]any{"indexed": []any{"#000", map[string]any{"x": 1}}},
	}
	dst := Clone(src)

	dst["colours"].(map[string]any)["indexed"].([]any)[0] = "#fff"
	dst["colours"].(map[string]any)["indexed"].([]any)[1].(map[string]any)["x"] = 2

	list := src["colours"].(map[string]any)["indexed"].([]any)
	if list[0] != "#000" || list[1].(map[string]any)["x"] != 1 {
		t.Errorf("Clone shares state with the source: %v", src)
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}

func TestLookup(t *testing.T) {
	data := map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}, "x": 2}

	tests := []struct {
		path   string
		want   any
		wantOK bool
	}{
		{"a.b.c", 1, true},
		{"x", 2, true},
		{"a.b.missing", nil, false},
		{"x.y", nil, false},
		{"missing", nil, false},
	}
	for _, tt := range tests {
		got, ok := Lookup(data, tt.path)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("Lookup(%q) = %v, %v", tt.path, got, ok)
		}
	}
}
