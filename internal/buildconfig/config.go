// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package buildconfig loads ropes.json, the per-project file that records the
// options and settings a project is usually configured with.
package buildconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tailscale/hujson"

	"go.jetify.com/ropescfg/internal/options"
	"go.jetify.com/ropescfg/internal/ropescli/usererr"
	"go.jetify.com/ropescfg/internal/settings"
)

const DefaultName = "ropes.json"

// Config is the content of ropes.json. The file is JSON that may contain
// comments and trailing commas.
type Config struct {
	// AbsRootPath is the absolute path to ropes.json. It is empty when the
	// project has no config file.
	AbsRootPath string `json:"-"`

	Options  map[string]OptionValue `json:"options,omitempty"`
	Settings map[string]string      `json:"settings,omitempty"`

	raw []byte
}

// OptionValue accepts both strings and booleans so that pass-through
// package options can be written naturally.
type OptionValue string

func (v *OptionValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = OptionValue(s)
		return nil
	}
	var flag bool
	if err := json.Unmarshal(b, &flag); err != nil {
		return errors.Errorf("option value %s must be a string or a boolean", b)
	}
	*v = OptionValue(strconv.FormatBool(flag))
	return nil
}

// Open loads ropes.json from dir. A missing file is not an error; it yields
// an empty config.
func Open(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultName)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	cfg, err := LoadBytes(b)
	if err != nil {
		return nil, usererr.WithUserMessage(err, "Failed to parse %s", path)
	}
	cfg.AbsRootPath, err = filepath.Abs(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return cfg, nil
}

func LoadBytes(b []byte) (*Config, error) {
	jsonb, err := hujson.Standardize(slices.Clone(b))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	cfg := &Config{raw: b}
	if err := json.Unmarshal(jsonb, cfg); err != nil {
		return nil, errors.WithStack(err)
	}
	return cfg, nil
}

// Bytes returns the file as it was read, comments included.
func (c *Config) Bytes() []byte { return c.raw }

// OptionSet parses the options section. Options that are not mentioned stay
// unspecified.
func (c *Config) OptionSet() (options.Set, error) {
	m := make(map[string]string, len(c.Options))
	for k, v := range c.Options {
		m[k] = string(v)
	}
	set, err := options.ParseMap(m)
	if err != nil {
		return options.Set{}, usererr.WithUserMessage(err, "Invalid options in %s: %v", c.displayPath(), err)
	}
	return set, nil
}

// BuildSettings parses the settings section.
func (c *Config) BuildSettings() (settings.Settings, error) {
	s, err := settings.ParseMap(c.Settings)
	if err != nil {
		return settings.Settings{}, usererr.WithUserMessage(err, "Invalid settings in %s: %v", c.displayPath(), err)
	}
	return s, nil
}

func (c *Config) displayPath() string {
	if c.AbsRootPath == "" {
		return DefaultName
	}
	return c.AbsRootPath
}
