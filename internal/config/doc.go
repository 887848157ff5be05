// Package config provides kilo's settings.
//
// Configuration is merged from several sources, later ones winning:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← KILO_TAB_STOP, KILO_EDITOR_QUIT_TIMES, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/kilo/config.toml (or .yaml)
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sections
//
//	[editor]
//	tab_stop = 8            # columns per tab stop
//	quit_times = 3          # extra Ctrl-Q presses to quit with unsaved changes
//	message_timeout = "5s"  # how long status messages stay visible
//	read_timeout = "100ms"  # input poll interval
//
//	[ui]
//	backend = "ansi"        # "ansi" or "tcell"
//	theme = "kilo"          # "kilo" or any chroma style name
//	true_color = true       # false reduces theme colours to 256
//
//	[logging]
//	level = "info"          # debug, info, warn, error
//	file = ""               # empty disables logging
//
// Durations accept Go duration strings or whole seconds.
//
// # Sub-packages
//
//   - loader: file loading (TOML, YAML) and environment variables
package config
