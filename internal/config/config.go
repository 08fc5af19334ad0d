// Package config holds the run configuration of the icon generator.
//
// Values come from three layers, later ones winning: struct tag defaults,
// ICONGEN_* environment variables, then command line flags applied by the
// caller. Validate must be called once all layers are applied.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/caarlos0/env/v11"

	"github.com/gogpu/ggicon/internal/fontload"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ICONGEN_"

// DefaultOutput is the PNG written when nothing else is configured.
const DefaultOutput = "icon.png"

var (
	// ErrEmptyOutput is returned when the PNG output path is empty.
	ErrEmptyOutput = errors.New("config: output path is empty")

	// ErrSameOutput is returned when two outputs would overwrite each other.
	ErrSameOutput = errors.New("config: output paths collide")
)

// Config configures one generator run.
type Config struct {
	// Output is the PNG path.
	Output string `env:"OUTPUT" envDefault:"icon.png"`

	// ICO is an optional Windows icon path. Empty skips it.
	ICO string `env:"ICO"`

	// ICNS is an optional macOS icon path. Empty skips it.
	ICNS string `env:"ICNS"`

	// Fonts replaces the default font candidates when non-empty.
	Fonts []string `env:"FONTS" envSeparator:","`

	// Verbose enables debug logging.
	Verbose bool `env:"VERBOSE"`
}

// FromEnv loads the configuration from the process environment.
func FromEnv() (Config, error) {
	return Parse(nil)
}

// Parse loads the configuration from environ, or from the process
// environment when environ is nil.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}

// FontCandidates returns the font paths to try, in order.
func (c Config) FontCandidates() []string {
	if len(c.Fonts) == 0 {
		return slices.Clone(fontload.DefaultCandidates)
	}
	return slices.Clone(c.Fonts)
}

// Validate checks that the configuration can be executed.
func (c Config) Validate() error {
	if c.Output == "" {
		return ErrEmptyOutput
	}

	seen := map[string]string{filepath.Clean(c.Output): "output"}
	for _, o := range []struct{ name, path string }{{"ico", c.ICO}, {"icns", c.ICNS}} {
		if o.path == "" {
			continue
		}
		clean := filepath.Clean(o.path)
		if prev, ok := seen[clean]; ok {
			return fmt.Errorf("%w: %s and %s both write %s", ErrSameOutput, prev, o.name, o.path)
		}
		seen[clean] = o.name
	}
	return nil
}
