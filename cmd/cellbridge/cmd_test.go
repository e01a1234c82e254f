package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHeadlessDemo(t *testing.T) {
	for _, variant := range []string{"direct", "batch"} {
		t.Run(variant, func(t *testing.T) {
			out, err := execute(t, variant, "--headless", "--frames", "3", "--seed", "1")
			if err != nil {
				t.Fatalf("%s failed: %v", variant, err)
			}
			lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
			if len(lines) != 50 {
				t.Fatalf("printed %d rows, want 50", len(lines))
			}
			if !strings.HasPrefix(lines[2], "  Hello world") {
				t.Errorf("row 2 = %q", lines[2])
			}
			if !strings.Contains(lines[7], "█") {
				t.Errorf("row 7 has no bars: %q", lines[7])
			}
		})
	}
}

func TestHeadlessUsesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cellbridge.yaml")
	if err := os.WriteFile(path, []byte("host:\n  columns: 40\n  rows: 12\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", path, "batch", "--headless", "--seed", "2")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 12 || len([]rune(lines[0])) != 40 {
		t.Errorf("console is %d rows of %d, want 12 of 40", len(lines), len([]rune(lines[0])))
	}
}

func TestDemoErrors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("[host]\nfps = 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"negative frames", []string{"direct", "--headless", "--frames=-1"}},
		{"invalid config", []string{"-c", bad, "direct", "--headless"}},
		{"unknown format", []string{"-c", "cellbridge.ini", "batch", "--headless"}},
		{"extra args", []string{"batch", "extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestConfigDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cellbridge.toml")
	if err := os.WriteFile(path, []byte("[colours]\npalette = \"xterm\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "config", "dump", "--config", path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("dump is not JSON: %v\n%s", err, out)
	}
	if decoded["colours"]["palette"] != "xterm" {
		t.Errorf("palette = %v", decoded["colours"]["palette"])
	}
	if _, ok := decoded["host"]["fps"]; !ok {
		t.Errorf("host section missing defaults: %v", decoded["host"])
	}
}

func TestConfigValidate(t *testing.T) {
	out, err := execute(t, "config", "validate")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "ok" {
		t.Errorf("output = %q", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "cellbridge dev") {
		t.Errorf("output = %q", out)
	}
}
