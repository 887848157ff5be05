package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/kilo/internal/config/loader"
)

// Config is the merged configuration.
type Config struct {
	Editor  EditorConfig
	UI      UIConfig
	Logging LoggingConfig

	// source is the config file that was read, if any.
	source string

	// unknown collects setting paths found in a source but not recognised.
	unknown []string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor:  DefaultEditorConfig(),
		UI:      DefaultUIConfig(),
		Logging: DefaultLoggingConfig(),
	}
}

// Option configures Load.
type Option func(*options)

type options struct {
	file          string
	userConfigDir string
	fs            loader.FileSystem
	environ       []string
	useEnviron    bool
	envPrefix     string
}

// WithFile names the config file explicitly. It must exist.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithUserConfigDir sets the directory searched for config.toml,
// config.yaml or config.yml when no file is named.
func WithUserConfigDir(dir string) Option {
	return func(o *options) {
		o.userConfigDir = dir
	}
}

// WithFS sets the file system config files are read from.
func WithFS(fs loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithEnviron replaces the process environment.
func WithEnviron(environ []string) Option {
	return func(o *options) {
		o.environ = environ
		o.useEnviron = true
	}
}

// Load builds the configuration from defaults, the config file and the
// environment.
func Load(opts ...Option) (*Config, error) {
	o := options{
		fs:        loader.DefaultFS(),
		envPrefix: loader.DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.userConfigDir == "" {
		o.userConfigDir = defaultUserConfigDir()
	}

	c := Default()

	path, err := o.findFile()
	if err != nil {
		return nil, err
	}
	if path != "" {
		l, err := loader.ForPath(o.fs, path)
		if err != nil {
			return nil, err
		}
		data, err := l.Load()
		if err != nil {
			return nil, err
		}
		if err := c.Apply(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		c.source = path
	}

	env := loader.NewEnvLoader(o.envPrefix)
	if o.useEnviron {
		env = loader.NewEnvLoaderWithEnviron(o.envPrefix, o.environ)
	}
	data, err := env.Load()
	if err != nil {
		return nil, err
	}
	if err := c.Apply(data); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	return c, nil
}

// findFile returns the config file to read, or "" for none.
func (o *options) findFile() (string, error) {
	if o.file != "" {
		if _, err := o.fs.Stat(o.file); err != nil {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, o.file)
		}
		return o.file, nil
	}
	if o.userConfigDir == "" {
		return "", nil
	}
	for _, ext := range loader.Extensions {
		p := filepath.Join(o.userConfigDir, "config"+ext)
		if _, err := o.fs.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// defaultUserConfigDir returns $XDG_CONFIG_HOME/kilo or the platform
// equivalent.
func defaultUserConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "kilo")
}

// Source returns the config file that was read, or "".
func (c *Config) Source() string {
	return c.source
}

// Unknown returns setting paths that were present in a source but are not
// kilo settings, sorted.
func (c *Config) Unknown() []string {
	out := slices.Clone(c.unknown)
	sort.Strings(out)
	return out
}

// setters maps each setting path to its assignment.
var setters = map[string]func(c *Config, path string, v any) error{
	"editor.tab_stop": func(c *Config, p string, v any) (err error) {
		c.Editor.TabStop, err = toInt(p, v, c.Editor.TabStop)
		return err
	},
	"editor.quit_times": func(c *Config, p string, v any) (err error) {
		c.Editor.QuitTimes, err = toInt(p, v, c.Editor.QuitTimes)
		return err
	},
	"editor.message_timeout": func(c *Config, p string, v any) (err error) {
		c.Editor.MessageTimeout, err = toDuration(p, v, c.Editor.MessageTimeout)
		return err
	},
	"editor.read_timeout": func(c *Config, p string, v any) (err error) {
		c.Editor.ReadTimeout, err = toDuration(p, v, c.Editor.ReadTimeout)
		return err
	},
	"ui.backend": func(c *Config, p string, v any) (err error) {
		c.UI.Backend, err = toString(p, v, c.UI.Backend)
		return err
	},
	"ui.theme": func(c *Config, p string, v any) (err error) {
		c.UI.Theme, err = toString(p, v, c.UI.Theme)
		return err
	},
	"ui.true_color": func(c *Config, p string, v any) (err error) {
		c.UI.TrueColor, err = toBool(p, v, c.UI.TrueColor)
		return err
	},
	"logging.level": func(c *Config, p string, v any) (err error) {
		c.Logging.Level, err = toString(p, v, c.Logging.Level)
		return err
	},
	"logging.file": func(c *Config, p string, v any) (err error) {
		c.Logging.File, err = toString(p, v, c.Logging.File)
		return err
	},
}

// Paths returns every setting path, sorted.
func Paths() []string {
	paths := make([]string, 0, len(setters))
	for p := range setters {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Set assigns one setting. Strings are converted to the setting's type.
func (c *Config) Set(path string, value any) error {
	set, ok := setters[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}
	return set(c, path, value)
}

// Apply assigns every setting found in a nested section map. Paths that are
// not settings are recorded and skipped.
func (c *Config) Apply(data map[string]any) error {
	var errs []error
	for section, raw := range data {
		values, ok := raw.(map[string]any)
		if !ok {
			c.unknown = append(c.unknown, section)
			continue
		}
		for name, v := range values {
			path := section + "." + name
			if _, ok := setters[path]; !ok {
				c.unknown = append(c.unknown, path)
				continue
			}
			if err := c.Set(path, v); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Validate checks setting values.
func (c *Config) Validate() error {
	var errs []error
	if c.Editor.TabStop < 1 {
		errs = append(errs, &ValidationError{Path: "editor.tab_stop", Message: "must be at least 1", Value: c.Editor.TabStop, Code: ErrCodeOutOfRange})
	}
	if c.Editor.QuitTimes < 0 {
		errs = append(errs, &ValidationError{Path: "editor.quit_times", Message: "must not be negative", Value: c.Editor.QuitTimes, Code: ErrCodeOutOfRange})
	}
	if c.Editor.MessageTimeout <= 0 {
		errs = append(errs, &ValidationError{Path: "editor.message_timeout", Message: "must be positive", Value: c.Editor.MessageTimeout, Code: ErrCodeOutOfRange})
	}
	if c.Editor.ReadTimeout <= 0 {
		errs = append(errs, &ValidationError{Path: "editor.read_timeout", Message: "must be positive", Value: c.Editor.ReadTimeout, Code: ErrCodeOutOfRange})
	}
	if !slices.Contains(validBackends, strings.ToLower(c.UI.Backend)) {
		errs = append(errs, &ValidationError{Path: "ui.backend", Message: "must be one of " + strings.Join(validBackends, ", "), Value: c.UI.Backend, Code: ErrCodeInvalidEnum})
	}
	if !slices.Contains(validLevels, strings.ToLower(c.Logging.Level)) {
		errs = append(errs, &ValidationError{Path: "logging.level", Message: "must be one of " + strings.Join(validLevels, ", "), Value: c.Logging.Level, Code: ErrCodeInvalidEnum})
	}
	return errors.Join(errs...)
}

func toInt(path string, v any, cur int) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i, nil
		}
	}
	return cur, &TypeError{Path: path, Expected: "integer", Actual: fmt.Sprintf("%T", v)}
}

// toDuration accepts a duration, a duration string or whole seconds.
func toDuration(path string, v any, cur time.Duration) (time.Duration, error) {
	switch d := v.(type) {
	case time.Duration:
		return d, nil
	case int:
		return time.Duration(d) * time.Second, nil
	case int64:
		return time.Duration(d) * time.Second, nil
	case string:
		if parsed, err := time.ParseDuration(strings.TrimSpace(d)); err == nil {
			return parsed, nil
		}
		if secs, err := strconv.Atoi(strings.TrimSpace(d)); err == nil {
			return time.Duration(secs) * time.Second, nil
		}
	}
	return cur, &TypeError{Path: path, Expected: "duration", Actual: fmt.Sprintf("%T", v)}
}

func toBool(path string, v any, cur bool) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
			return parsed, nil
		}
	}
	return cur, &TypeError{Path: path, Expected: "bool", Actual: fmt.Sprintf("%T", v)}
}

func toString(path string, v any, cur string) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return cur, &TypeError{Path: path, Expected: "string", Actual: fmt.Sprintf("%T", v)}
}
