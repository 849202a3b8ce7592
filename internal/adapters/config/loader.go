// Package config provides the configuration loader for freeze.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"slices"

	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/freeze/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path and overlays it on the defaults.
// A missing file is not an error.
func (l *Loader) Load(path string) (domain.BuildConfig, error) {
	cfg := domain.DefaultBuildConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("no " + path + " found, using built-in defaults")
			return cfg, nil
		}
		return domain.BuildConfig{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	file, err := parse(data)
	if err != nil {
		return domain.BuildConfig{}, zerr.With(err, "path", path)
	}

	apply(&cfg, file)

	if err := cfg.Validate(); err != nil {
		return domain.BuildConfig{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func parse(data []byte) (Freezefile, error) {
	var file Freezefile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		failure := zerr.Wrap(domain.ErrInvalidConfig, "failed to parse config file")
		return Freezefile{}, zerr.With(failure, "reason", err.Error())
	}
	return file, nil
}

func apply(cfg *domain.BuildConfig, file Freezefile) {
	if file.Interpreter != "" {
		cfg.Interpreter = file.Interpreter
	}
	if file.Script != "" {
		cfg.Script = file.Script
	}
	if file.Resource != "" {
		cfg.Resource = file.Resource
	}
	if len(file.Packages) > 0 {
		cfg.Packages = slices.Clone(file.Packages)
	}
	if file.OutputDir != "" {
		cfg.OutputDir = file.OutputDir
	}
	if file.WorkDir != "" {
		cfg.WorkDir = file.WorkDir
	}
}
