// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package options holds the user-selectable choices that shape the
// dependency set of a build configuration pass.
package options

import (
	"maps"
	"slices"
	"strings"
)

// Option names as they appear on the command line and in ropes.json.
const (
	CheckOpenGLCompatibility = "check_opengl_compatibility"
	OpenGLSource             = "opengl_source"
	SDLSource                = "sdl_source"
)

// Toggle is a yes/no option value.
type Toggle string

const (
	Yes Toggle = "yes"
	No  Toggle = "no"
)

var toggles = []string{string(Yes), string(No)}

// Source says where a group of dependencies comes from.
type Source string

const (
	// Resolver means the dependency resolver fetches the packages.
	Resolver Source = "conan"
	// System means the host's pre-installed copy is used.
	System Source = "system"
)

var sources = []string{string(Resolver), string(System)}

// Set is the full set of recognized options. An empty field means the
// option was not specified; WithDefaults fills it in.
type Set struct {
	CheckOpenGLCompatibility Toggle
	OpenGLSource             Source
	SDLSource                Source

	// PackageOptions are passed through to individual dependencies without
	// being interpreted. Keys use the "package:option" form.
	PackageOptions map[string]string
}

// Default returns the option set used when nothing is specified.
func Default() Set {
	return Set{
		CheckOpenGLCompatibility: Yes,
		OpenGLSource:             Resolver,
		SDLSource:                Resolver,
		PackageOptions:           defaultPackageOptions(),
	}
}

// WithDefaults returns a copy of s where every unspecified option holds its
// default value.
func (s Set) WithDefaults() Set {
	d := Default()
	out := s.Merge(Set{})
	if out.CheckOpenGLCompatibility == "" {
		out.CheckOpenGLCompatibility = d.CheckOpenGLCompatibility
	}
	if out.OpenGLSource == "" {
		out.OpenGLSource = d.OpenGLSource
	}
	if out.SDLSource == "" {
		out.SDLSource = d.SDLSource
	}
	for k, v := range d.PackageOptions {
		if _, ok := out.PackageOptions[k]; !ok {
			out.PackageOptions[k] = v
		}
	}
	return out
}

// Merge returns a copy of s overridden by every option specified in over.
func (s Set) Merge(over Set) Set {
	out := s
	if over.CheckOpenGLCompatibility != "" {
		out.CheckOpenGLCompatibility = over.CheckOpenGLCompatibility
	}
	if over.OpenGLSource != "" {
		out.OpenGLSource = over.OpenGLSource
	}
	if over.SDLSource != "" {
		out.SDLSource = over.SDLSource
	}
	out.PackageOptions = make(map[string]string, len(s.PackageOptions)+len(over.PackageOptions))
	maps.Copy(out.PackageOptions, s.PackageOptions)
	maps.Copy(out.PackageOptions, over.PackageOptions)
	return out
}

// Validate checks every specified option against its domain. Unspecified
// options are valid.
func (s Set) Validate() error {
	if err := check(CheckOpenGLCompatibility, string(s.CheckOpenGLCompatibility), toggles); err != nil {
		return err
	}
	if err := check(OpenGLSource, string(s.OpenGLSource), sources); err != nil {
		return err
	}
	if err := check(SDLSource, string(s.SDLSource), sources); err != nil {
		return err
	}
	for _, key := range slices.Sorted(maps.Keys(s.PackageOptions)) {
		decl, ok := packageOptions[key]
		if !ok {
			return &UnknownOptionError{Key: key}
		}
		value := s.PackageOptions[key]
		if value == "" || !slices.Contains(decl.allowed, value) {
			return &InvalidValueError{Option: key, Value: value, Allowed: decl.allowed}
		}
	}
	return nil
}

// Values returns the string form of every option, including package options.
// Unspecified options are omitted.
func (s Set) Values() map[string]string {
	m := map[string]string{}
	if s.CheckOpenGLCompatibility != "" {
		m[CheckOpenGLCompatibility] = string(s.CheckOpenGLCompatibility)
	}
	if s.OpenGLSource != "" {
		m[OpenGLSource] = string(s.OpenGLSource)
	}
	if s.SDLSource != "" {
		m[SDLSource] = string(s.SDLSource)
	}
	maps.Copy(m, s.PackageOptions)
	return m
}

// PackageOptionsFor returns the pass-through options addressed to pkg, keyed
// by the bare option name.
func (s Set) PackageOptionsFor(pkg string) map[string]string {
	m := map[string]string{}
	for key, value := range s.PackageOptions {
		p, opt, _ := strings.Cut(key, ":")
		if p == pkg {
			m[opt] = value
		}
	}
	return m
}

func check(option, value string, allowed []string) error {
	if value == "" || slices.Contains(allowed, value) {
		return nil
	}
	return &InvalidValueError{Option: option, Value: value, Allowed: allowed}
}
