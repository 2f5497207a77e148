// Package config holds the settings of the recover command.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/share-recovery/internal/params"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is read from an optional YAML file, then overridden by command line flags.
type Config struct {
	// Workers bounds the number of records reconstructed concurrently; 0 means one per CPU.
	Workers int `yaml:"workers"`
	// Verify checks the shares beyond the threshold against the interpolated polynomial.
	Verify bool `yaml:"verify"`
	// OutputBase is the radix secrets are printed in.
	OutputBase int `yaml:"output_base"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when neither a file nor flags set a value.
func Default() Config {
	return Config{
		Workers:    params.DefaultWorkers,
		OutputBase: params.DefaultOutputBase,
		LogLevel:   zerolog.LevelInfoValue,
	}
}

// Load decodes YAML from r on top of c. Unknown fields are rejected.
func (c *Config) Load(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LoadFile decodes the YAML file at path on top of c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return c.Load(bytes.NewReader(data))
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.OutputBase < params.MinBase || c.OutputBase > params.MaxAlphanumericBase {
		return fmt.Errorf("%w: output_base must be in [%d, %d], got %d", ErrInvalidConfig, params.MinBase, params.MaxAlphanumericBase, c.OutputBase)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	if strings.TrimSpace(c.LogLevel) == "" {
		return zerolog.NoLevel, fmt.Errorf("%w: log_level must not be empty", ErrInvalidConfig)
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	return lvl, nil
}

// Flags binds the command line flags of the recover command.
type Flags struct {
	ConfigPath string
	Convert    string
	cfg        Config
	fs         *flag.FlagSet
}

// NewFlags registers the flags on fs.
func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs, cfg: Default()}
	fs.StringVar(&f.ConfigPath, "config", "", "YAML configuration `file`")
	fs.StringVar(&f.Convert, "convert", "", "write the CBOR encoding of the single input to `file` instead of recovering")
	fs.IntVar(&f.cfg.Workers, "workers", f.cfg.Workers, "records reconstructed concurrently (0: one per CPU)")
	fs.BoolVar(&f.cfg.Verify, "verify", f.cfg.Verify, "check shares beyond the threshold against the recovered polynomial")
	fs.IntVar(&f.cfg.OutputBase, "base", f.cfg.OutputBase, "radix secrets are printed in")
	fs.StringVar(&f.cfg.LogLevel, "log-level", f.cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	return f
}

// Config resolves the configuration once fs has been parsed: defaults, then the YAML file
// if one was given, then every flag set explicitly on the command line.
func (f *Flags) Config() (Config, error) {
	cfg := Default()
	if f.ConfigPath != "" {
		if err := cfg.LoadFile(f.ConfigPath); err != nil {
			return Config{}, err
		}
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "workers":
			cfg.Workers = f.cfg.Workers
		case "verify":
			cfg.Verify = f.cfg.Verify
		case "base":
			cfg.OutputBase = f.cfg.OutputBase
		case "log-level":
			cfg.LogLevel = f.cfg.LogLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
