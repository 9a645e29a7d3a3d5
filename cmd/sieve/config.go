package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the CLI defaults. Zero-valued fields in a YAML file keep the
// values from DefaultConfig; command-line flags override both.
//
// Thread Safety: read-only after load.
type Config struct {
	// MaxModulus caps the compressor's trial moduli; 0 means window width.
	MaxModulus int `yaml:"max_modulus" validate:"gte=0"`

	// Concurrency bounds the number of batch lines evaluated at once.
	Concurrency int `yaml:"concurrency" validate:"gte=1,lte=256"`

	// Output selects the result format.
	Output string `yaml:"output" validate:"oneof=text json"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Recompress replaces formula text with its compressed form.
	Recompress bool `yaml:"recompress"`
}

// configValidate is shared by every LoadConfig/Validate call.
var configValidate = validator.New()

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		MaxModulus:  0,
		Concurrency: 4,
		Output:      "text",
		LogLevel:    "warn",
	}
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// LoadConfig reads a YAML file on top of DefaultConfig. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// newLogger builds the text logger the commands write to.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
