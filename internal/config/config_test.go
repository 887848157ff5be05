package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.Editor.TabStop != 8 {
		t.Errorf("TabStop = %d, want 8", c.Editor.TabStop)
	}
	if c.Editor.QuitTimes != 3 {
		t.Errorf("QuitTimes = %d, want 3", c.Editor.QuitTimes)
	}
	if c.Editor.MessageTimeout != 5*time.Second {
		t.Errorf("MessageTimeout = %v, want 5s", c.Editor.MessageTimeout)
	}
	if c.UI.Backend != BackendANSI || c.UI.Theme != "kilo" || !c.UI.TrueColor {
		t.Errorf("UI = %+v", c.UI)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoad_UserConfigDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.toml"), `
[editor]
tab_stop = 4
message_timeout = "2s"

[ui]
theme = "monokai"

[extra]
key = 1
`)

	c, err := Load(WithUserConfigDir(dir), WithEnviron(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Editor.TabStop != 4 {
		t.Errorf("TabStop = %d, want 4", c.Editor.TabStop)
	}
	if c.Editor.MessageTimeout != 2*time.Second {
		t.Errorf("MessageTimeout = %v, want 2s", c.Editor.MessageTimeout)
	}
	if c.UI.Theme != "monokai" {
		t.Errorf("Theme = %q", c.UI.Theme)
	}
	if c.Source() != filepath.Join(dir, "config.toml") {
		t.Errorf("Source() = %q", c.Source())
	}
	if unknown := c.Unknown(); len(unknown) != 1 || unknown[0] != "extra.key" {
		t.Errorf("Unknown() = %v", unknown)
	}
}

func TestLoad_YAMLAndEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kilo.yaml")
	writeFile(t, path, "editor:\n  tab_stop: 2\n  quit_times: 1\nui:\n  backend: tcell\n")

	c, err := Load(WithFile(path), WithEnviron([]string{
		"KILO_TAB_STOP=6",
		"KILO_LOG_LEVEL=debug",
		"KILO_EDITOR_READ_TIMEOUT=50ms",
	}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Editor.TabStop != 6 {
		t.Errorf("TabStop = %d, env should win with 6", c.Editor.TabStop)
	}
	if c.Editor.QuitTimes != 1 {
		t.Errorf("QuitTimes = %d, want 1", c.Editor.QuitTimes)
	}
	if c.UI.Backend != BackendTCell {
		t.Errorf("Backend = %q", c.UI.Backend)
	}
	if c.Logging.Level != "debug" {
		t.Errorf("Level = %q", c.Logging.Level)
	}
	if c.Editor.ReadTimeout != 50*time.Millisecond {
		t.Errorf("ReadTimeout = %v", c.Editor.ReadTimeout)
	}
}

func TestLoad_NoFile(t *testing.T) {
	c, err := Load(WithUserConfigDir(t.TempDir()), WithEnviron(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Source() != "" {
		t.Errorf("Source() = %q, want empty", c.Source())
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(WithFile(filepath.Join(dir, "missing.toml")), WithEnviron(nil))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("missing file: error = %v, want ErrFileNotFound", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, "[editor]\ntab_stop = \"wide\"\n")
	_, err = Load(WithFile(bad), WithEnviron(nil))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("bad type: error = %v, want ErrTypeMismatch", err)
	}

	_, err = Load(WithUserConfigDir(dir), WithEnviron([]string{"KILO_UI_TRUE_COLOR=maybe"}))
	var te *TypeError
	if !errors.As(err, &te) || te.Path != "ui.true_color" {
		t.Errorf("env type: error = %v, want TypeError for ui.true_color", err)
	}
}

func TestSet(t *testing.T) {
	c := Default()

	tests := []struct {
		path  string
		value any
		check func() bool
	}{
		{"editor.tab_stop", "4", func() bool { return c.Editor.TabStop == 4 }},
		{"editor.quit_times", 0, func() bool { return c.Editor.QuitTimes == 0 }},
		{"editor.message_timeout", "3", func() bool { return c.Editor.MessageTimeout == 3*time.Second }},
		{"editor.read_timeout", "250ms", func() bool { return c.Editor.ReadTimeout == 250*time.Millisecond }},
		{"ui.true_color", "false", func() bool { return !c.UI.TrueColor }},
		{"ui.theme", "dracula", func() bool { return c.UI.Theme == "dracula" }},
		{"logging.file", "/tmp/k.log", func() bool { return c.Logging.File == "/tmp/k.log" }},
	}
	for _, tt := range tests {
		if err := c.Set(tt.path, tt.value); err != nil {
			t.Errorf("Set(%q) error = %v", tt.path, err)
			continue
		}
		if !tt.check() {
			t.Errorf("Set(%q, %v) did not apply", tt.path, tt.value)
		}
	}

	if err := c.Set("editor.nope", 1); !errors.Is(err, ErrSettingNotFound) {
		t.Errorf("unknown path: error = %v, want ErrSettingNotFound", err)
	}
	if err := c.Set("editor.tab_stop", 2.5); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("fractional tab stop: error = %v, want ErrTypeMismatch", err)
	}
	if c.Editor.TabStop != 4 {
		t.Errorf("failed Set should keep the old value, TabStop = %d", c.Editor.TabStop)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		path   string
		code   ValidationErrorCode
	}{
		{"tab stop", func(c *Config) { c.Editor.TabStop = 0 }, "editor.tab_stop", ErrCodeOutOfRange},
		{"quit times", func(c *Config) { c.Editor.QuitTimes = -1 }, "editor.quit_times", ErrCodeOutOfRange},
		{"message timeout", func(c *Config) { c.Editor.MessageTimeout = 0 }, "editor.message_timeout", ErrCodeOutOfRange},
		{"backend", func(c *Config) { c.UI.Backend = "gui" }, "ui.backend", ErrCodeInvalidEnum},
		{"level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level", ErrCodeInvalidEnum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(c)
			err := c.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("Validate() error = %v, want ErrValidationFailed", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if ve.Path != tt.path || ve.Code != tt.code {
				t.Errorf("got %s/%s, want %s/%s", ve.Path, ve.Code, tt.path, tt.code)
			}
		})
	}

	c := Default()
	c.UI.Backend = "TCELL"
	if err := c.Validate(); err != nil {
		t.Errorf("backend names are case-insensitive, got %v", err)
	}
}

func TestPaths(t *testing.T) {
	paths := Paths()
	if len(paths) != 9 {
		t.Fatalf("expected 9 settings, got %d", len(paths))
	}
	if paths[0] != "editor.message_timeout" {
		t.Errorf("paths not sorted: %v", paths)
	}
}
