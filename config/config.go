// SPDX-License-Identifier: MIT
//
// Package config resolves the runtime settings of the visualiser.
//
// Sources, lowest to highest precedence:
//
//	Default()                       built-in values
//	YAML file       (FromFile)      gopkg.in/yaml.v3
//	.env file       (FromDotEnv)    github.com/joho/godotenv
//	process env     (FromEnv)       ALGOVIZ_* variables
//	CLI flags                        applied by cmd/algoviz
//
// Each layer only overrides the keys it sets. Validate rejects values the
// coordinator and renderer cannot work with.
package config

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoviz/core"
)

// Environment variable names.
const (
	EnvPacing     = "ALGOVIZ_PACING"
	EnvNodeRadius = "ALGOVIZ_NODE_RADIUS"
	EnvFrameRate  = "ALGOVIZ_FRAME_RATE"
	EnvDirected   = "ALGOVIZ_DIRECTED"
	EnvLogLevel   = "ALGOVIZ_LOG_LEVEL"
	EnvLogFormat  = "ALGOVIZ_LOG_FORMAT"
)

// Defaults.
const (
	DefaultPacing    = 100 * time.Millisecond
	DefaultFrameRate = 60.0
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every runtime setting.
type Config struct {
	// Pacing is the delay between two traversal steps.
	Pacing time.Duration `yaml:"pacing"`
	// NodeRadius is the radius of a node; regions are 2r squares.
	NodeRadius float64 `yaml:"nodeRadius"`
	// FrameRate bounds how often the renderer polls, in frames per second.
	FrameRate float64 `yaml:"frameRate"`
	Directed  bool    `yaml:"directed"`
	// LogLevel is "debug", "info", "warn" or "error".
	LogLevel string `yaml:"logLevel"`
	// LogFormat is "console" or "json".
	LogFormat string `yaml:"logFormat"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Pacing:     DefaultPacing,
		NodeRadius: core.DefaultNodeRadius,
		FrameRate:  DefaultFrameRate,
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
	}
}

// FromFile overlays the YAML file at path onto c. Keys absent from the file
// keep their current values; unknown keys are an error.
func (c *Config) FromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil && err != io.EOF {
		return errors.Wrapf(err, "decode config %s", path)
	}
	return nil
}

// FromDotEnv overlays ALGOVIZ_* keys read from a .env file onto c without
// touching the process environment. A missing file is not an error.
func (c *Config) FromDotEnv(path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return nil
		}
		return errors.Wrapf(err, "read env file %s", path)
	}
	return errors.Wrapf(c.apply(func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}), "env file %s", path)
}

// FromEnv overlays ALGOVIZ_* process environment variables onto c.
func (c *Config) FromEnv() error {
	return errors.Wrap(c.apply(os.LookupEnv), "environment")
}

// apply reads every known key through lookup. errors.Wrap(nil) is nil, so
// callers may wrap the result unconditionally.
func (c *Config) apply(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPacing); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "%s", EnvPacing)
		}
		c.Pacing = d
	}
	if v, ok := lookup(EnvNodeRadius); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvNodeRadius)
		}
		c.NodeRadius = f
	}
	if v, ok := lookup(EnvFrameRate); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvFrameRate)
		}
		c.FrameRate = f
	}
	if v, ok := lookup(EnvDirected); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "%s", EnvDirected)
		}
		c.Directed = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}
	return nil
}

// Validate reports the first unusable value, wrapped in ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.Pacing <= 0:
		return errors.Wrapf(ErrInvalid, "pacing must be positive, got %s", c.Pacing)
	case c.NodeRadius <= 0:
		return errors.Wrapf(ErrInvalid, "node radius must be positive, got %g", c.NodeRadius)
	case c.FrameRate <= 0:
		return errors.Wrapf(ErrInvalid, "frame rate must be positive, got %g", c.FrameRate)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrInvalid, "log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return errors.Wrapf(ErrInvalid, "log format %q", c.LogFormat)
	}
	return nil
}

// Load resolves Default, then the YAML file (if path is non-empty), then the
// .env file (if envPath is non-empty), then the process environment, and
// validates the result.
func Load(path, envPath string) (Config, error) {
	c := Default()
	if path != "" {
		if err := c.FromFile(path); err != nil {
			return c, err
		}
	}
	if envPath != "" {
		if err := c.FromDotEnv(envPath); err != nil {
			return c, err
		}
	}
	if err := c.FromEnv(); err != nil {
		return c, err
	}
	return c, c.Validate()
}
