// Package config loads logger settings from a TOML file and maps them onto
// rlog options.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/mordilloSan/go-rlog/rlog"
)

var validate = validator.New()

// File is the on-disk configuration.
type File struct {
	Logging Logging `toml:"logging"`
}

// Logging is the [logging] table.
type Logging struct {
	// Level is the minimum severity: debug, info, warn, error or fatal.
	// Empty keeps the default (debug).
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn warning error fatal"`
	// Regions is the comma-separated region filter. Empty keeps the
	// default ("all").
	Regions string `toml:"regions"`
	// Color enables ANSI colors. Absent means enabled.
	Color *bool `toml:"color"`
	// BufferSize is the write-buffer size in bytes. Zero keeps the
	// default.
	BufferSize int `toml:"buffer_size" validate:"gte=0"`
	// FilePath appends rendered lines to this file instead of stdout.
	FilePath string `toml:"file"`
}

// Load reads and validates a TOML configuration file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &f, nil
}

// LogConfig maps the file contents onto core logger options writing to the
// given sink.
func (f *File) LogConfig(sink io.Writer) (rlog.Config, error) {
	cfg := rlog.Config{
		Regions:    f.Logging.Regions,
		Sink:       sink,
		BufferSize: f.Logging.BufferSize,
	}
	if f.Logging.Level != "" {
		level, err := rlog.ParseLevel(f.Logging.Level)
		if err != nil {
			return rlog.Config{}, err
		}
		cfg.MinLevel = level
	}
	if f.Logging.Color != nil {
		cfg.NoColor = !*f.Logging.Color
	}
	return cfg, nil
}
