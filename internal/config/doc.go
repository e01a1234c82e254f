// Package config loads cellbridge settings.
//
// Settings come from three sources, later ones overriding earlier ones:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← CELLBRIDGE_HOST_FPS=60
//	├─────────────────────────────┤
//	│  2. Config File             │  ← cellbridge.toml / .yaml / .json
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// Values passed to Set override all three and survive a reload.
//
// # Sub-packages
//
//   - loader: Configuration file loading (TOML, YAML, JSON, environment variables)
//   - watcher: File watching for live reload
//
// # Basic Usage
//
//	cfg, err := config.Load("cellbridge.toml")
//	if err != nil {
//		return err
//	}
//	if err := cfg.Validate(); err != nil {
//		return err
//	}
//	conv, closeConv, err := cfg.Converter()
//	if err != nil {
//		return err
//	}
//	defer closeConv()
//
// # File Format
//
//	[colours]
//	default_fg = "white"
//	default_bg = "#000000"
//	palette = "xterm"          # or omit for no indexed palette
//	indexed = ["#101010"]      # overrides palette entries from index 0
//	script = "colours.lua"     # optional Lua converter
//
//	[host]
//	columns = 80
//	rows = 50
//	font_width = 8
//	font_height = 8
//	fps = 30
package config
