package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.OutputBase)
	assert.False(t, cfg.Verify)
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)
}

func TestLoad(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Load(strings.NewReader("workers: 3\nverify: true\noutput_base: 16\nlog_level: DEBUG\n")))
	assert.Equal(t, Config{Workers: 3, Verify: true, OutputBase: 16, LogLevel: "DEBUG"}, cfg)
	require.NoError(t, cfg.Validate())

	// an empty document keeps the defaults
	cfg = Default()
	require.NoError(t, cfg.Load(strings.NewReader("")))
	assert.Equal(t, Default(), cfg)

	cfg = Default()
	assert.ErrorIs(t, cfg.Load(strings.NewReader("threads: 3\n")), ErrInvalidConfig)
	assert.ErrorIs(t, cfg.Load(strings.NewReader("workers: [")), ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	for _, cfg := range []Config{
		{Workers: -1, OutputBase: 10, LogLevel: "info"},
		{OutputBase: 1, LogLevel: "info"},
		{OutputBase: 37, LogLevel: "info"},
		{OutputBase: 10, LogLevel: "loud"},
		{OutputBase: 10, LogLevel: ""},
		{OutputBase: 10, LogLevel: "  "},
	} {
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, "%+v", cfg)
	}
}

func TestFlags_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recover.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 3\noutput_base: 16\nverify: true\n"), 0o600))

	fs := flag.NewFlagSet("recover", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := NewFlags(fs)
	require.NoError(t, fs.Parse([]string{"-config", path, "-base", "2", "a.json"}))

	cfg, err := f.Config()
	require.NoError(t, err)
	// flag beats file, file beats default
	assert.Equal(t, 2, cfg.OutputBase)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.Verify)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"a.json"}, fs.Args())
}

func TestFlags_Errors(t *testing.T) {
	fs := flag.NewFlagSet("recover", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := NewFlags(fs)
	require.NoError(t, fs.Parse([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}))
	_, err := f.Config()
	assert.Error(t, err)

	fs = flag.NewFlagSet("recover", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f = NewFlags(fs)
	require.NoError(t, fs.Parse([]string{"-workers", "-2"}))
	_, err = f.Config()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
