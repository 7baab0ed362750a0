// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package settings describes the host and toolchain a build is configured
// for. Settings shape the generated build files but never the dependency
// set.
package settings

import (
	"fmt"
	"maps"
	"runtime"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Setting names.
const (
	OS        = "os"
	Arch      = "arch"
	Compiler  = "compiler"
	CppStd    = "compiler.cppstd"
	BuildType = "build_type"
)

var domains = map[string][]string{
	OS:        {"Linux", "Macos", "Windows"},
	Arch:      {"x86_64", "armv8", "x86"},
	Compiler:  {"gcc", "clang", "apple-clang", "msvc"},
	CppStd:    {"17", "20", "23"},
	BuildType: {"Debug", "Release", "RelWithDebInfo", "MinSizeRel"},
}

// Settings of a build configuration pass. Empty fields are unspecified.
type Settings struct {
	OS        string `json:"os,omitempty" yaml:"os,omitempty" toml:"os,omitempty"`
	Arch      string `json:"arch,omitempty" yaml:"arch,omitempty" toml:"arch,omitempty"`
	Compiler  string `json:"compiler,omitempty" yaml:"compiler,omitempty" toml:"compiler,omitempty"`
	CppStd    string `json:"compiler.cppstd,omitempty" yaml:"compiler.cppstd,omitempty" toml:"compiler.cppstd,omitempty"`
	BuildType string `json:"build_type,omitempty" yaml:"build_type,omitempty" toml:"build_type,omitempty"`
}

// Detect returns the settings of the running host with defaults for the
// rest.
func Detect() Settings {
	return detect(runtime.GOOS, runtime.GOARCH)
}

func detect(goos, goarch string) Settings {
	s := Settings{
		CppStd:    "20",
		BuildType: "Release",
	}
	switch goos {
	case "linux":
		s.OS, s.Compiler = "Linux", "gcc"
	case "darwin":
		s.OS, s.Compiler = "Macos", "apple-clang"
	case "windows":
		s.OS, s.Compiler = "Windows", "msvc"
	default:
		s.OS, s.Compiler = goos, "clang"
	}
	switch goarch {
	case "amd64":
		s.Arch = "x86_64"
	case "arm64":
		s.Arch = "armv8"
	case "386":
		s.Arch = "x86"
	default:
		s.Arch = goarch
	}
	return s
}

// Parse builds Settings from "key=value" assignments given with -s.
func Parse(assignments []string) (Settings, error) {
	s := Settings{}
	for _, a := range assignments {
		key, value, ok := strings.Cut(a, "=")
		if !ok || key == "" {
			return Settings{}, errors.Errorf("setting %q is not of the form key=value", a)
		}
		if err := s.set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return Settings{}, err
		}
	}
	return s, s.Validate()
}

// ParseMap is Parse for settings already split into keys and values.
func ParseMap(m map[string]string) (Settings, error) {
	s := Settings{}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		if err := s.set(key, m[key]); err != nil {
			return Settings{}, err
		}
	}
	return s, s.Validate()
}

func (s *Settings) set(key, value string) error {
	switch key {
	case OS:
		s.OS = value
	case Arch:
		s.Arch = value
	case Compiler:
		s.Compiler = value
	case CppStd:
		s.CppStd = value
	case BuildType:
		s.BuildType = value
	default:
		return errors.Errorf("unknown setting %q", key)
	}
	return nil
}

// Merge returns s overridden by the specified fields of over.
func (s Settings) Merge(over Settings) Settings {
	if over.OS != "" {
		s.OS = over.OS
	}
	if over.Arch != "" {
		s.Arch = over.Arch
	}
	if over.Compiler != "" {
		s.Compiler = over.Compiler
	}
	if over.CppStd != "" {
		s.CppStd = over.CppStd
	}
	if over.BuildType != "" {
		s.BuildType = over.BuildType
	}
	return s
}

// Validate checks specified fields against their domains.
func (s Settings) Validate() error {
	for _, kv := range s.pairs() {
		if kv[1] == "" {
			continue
		}
		if !slices.Contains(domains[kv[0]], kv[1]) {
			return errors.Errorf("invalid value %q for setting %q, possible values are: %s",
				kv[1], kv[0], strings.Join(domains[kv[0]], ", "))
		}
	}
	return nil
}

// IsMultiConfig reports whether the CMake generator for s builds several
// configurations from one build folder.
func (s Settings) IsMultiConfig() bool {
	return s.Compiler == "msvc"
}

// Values returns the specified settings keyed by name.
func (s Settings) Values() map[string]string {
	m := map[string]string{}
	for _, kv := range s.pairs() {
		if kv[1] != "" {
			m[kv[0]] = kv[1]
		}
	}
	return m
}

func (s Settings) String() string {
	parts := []string{}
	for _, kv := range s.pairs() {
		if kv[1] != "" {
			parts = append(parts, fmt.Sprintf("%s=%s", kv[0], kv[1]))
		}
	}
	return strings.Join(parts, " ")
}

func (s Settings) pairs() [][2]string {
	return [][2]string{
		{OS, s.OS},
		{Arch, s.Arch},
		{Compiler, s.Compiler},
		{CppStd, s.CppStd},
		{BuildType, s.BuildType},
	}
}
