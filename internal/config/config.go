// Package config loads the xfs CLI's configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mtth/xfs"
	"github.com/mtth/xfs/internal/fspath"
	"gopkg.in/yaml.v3"
)

// Config holds CLI options. The zero value is not valid, use Default or one of the loading functions.
type Config struct {
	// Base directory of relative command arguments. Defaults to the working directory.
	Root xfs.Path `yaml:"root"`
	// Name of the normalization profile used by the normalize command: host, unix, or windows.
	Profile string `yaml:"profile"`
	// Maximum number of concurrently running background tasks. 0 is unbounded.
	MaxTasks int64 `yaml:"max_tasks"`
	// Minimum level of log messages.
	LogLevel slog.Level `yaml:"log_level"`
}

const (
	// DefaultName is the name of the configuration file looked up in the working directory.
	DefaultName = ".xfs.yaml"

	xdgName = "xfs/config.yaml"
)

var (
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Root:     xfs.CurrentPath(),
		Profile:  "host",
		LogLevel: slog.LevelDebug,
	}
}

// PathProfile returns the configured normalization profile.
func (c *Config) PathProfile() fspath.Profile {
	p, ok := fspath.Named(c.Profile)
	if !ok {
		return fspath.Host
	}
	return p
}

// Dispatcher returns a dispatcher honoring the configured task limit.
func (c *Config) Dispatcher() *xfs.Dispatcher {
	return xfs.NewDispatcher(c.MaxTasks)
}

func (c *Config) validate() error {
	var errs []error
	if _, ok := fspath.Named(c.Profile); !ok {
		errs = append(errs, fmt.Errorf("unknown profile %q", c.Profile))
	}
	if c.MaxTasks < 0 {
		errs = append(errs, fmt.Errorf("negative task limit %d", c.MaxTasks))
	}
	return errors.Join(errs...)
}

// Read parses the configuration at the given path. If the path is a folder, DefaultName is read
// inside it. Unset fields keep their Default value.
func Read(fp string) (*Config, error) {
	info, err := os.Stat(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}
	if info.IsDir() {
		fp = filepath.Join(fp, DefaultName)
	}
	data, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	slog.Debug("Read configuration.", slog.String("path", fp))
	return cfg, nil
}

// searchXDG is swapped out for testing.
var searchXDG = func() (string, error) {
	return xdg.SearchConfigFile(xdgName)
}

// Find looks for a configuration file in dpath, then in the XDG configuration directories. It
// returns the Default configuration if neither exists.
func Find(dpath string) (*Config, error) {
	if _, err := os.Stat(filepath.Join(dpath, DefaultName)); err == nil {
		return Read(dpath)
	}
	if fp, err := searchXDG(); err == nil {
		return Read(fp)
	}
	slog.Debug("No configuration found, using defaults.")
	return Default(), nil
}
