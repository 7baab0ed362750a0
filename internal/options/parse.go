// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package options

import (
	"maps"
	"slices"
	"strings"
)

// Parse builds a Set from "key=value" assignments such as the ones given
// with -o on the command line. Later assignments win. Options that are not
// mentioned stay unspecified.
func Parse(assignments []string) (Set, error) {
	s := Set{PackageOptions: map[string]string{}}
	for _, a := range assignments {
		key, value, ok := strings.Cut(a, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return Set{}, &SyntaxError{Assignment: a}
		}
		if err := s.set(key, strings.TrimSpace(value)); err != nil {
			return Set{}, err
		}
	}
	return s, s.Validate()
}

// ParseMap is Parse for options that are already split into keys and
// values, as they are in ropes.json.
func ParseMap(m map[string]string) (Set, error) {
	s := Set{PackageOptions: map[string]string{}}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		if err := s.set(key, m[key]); err != nil {
			return Set{}, err
		}
	}
	return s, s.Validate()
}

// set records one option. An empty value is rejected rather than read as
// unspecified.
func (s *Set) set(key, value string) error {
	switch key {
	case CheckOpenGLCompatibility:
		if value == "" {
			return &InvalidValueError{Option: key, Value: value, Allowed: toggles}
		}
		s.CheckOpenGLCompatibility = Toggle(value)
	case OpenGLSource:
		if value == "" {
			return &InvalidValueError{Option: key, Value: value, Allowed: sources}
		}
		s.OpenGLSource = Source(value)
	case SDLSource:
		if value == "" {
			return &InvalidValueError{Option: key, Value: value, Allowed: sources}
		}
		s.SDLSource = Source(value)
	default:
		key = canonicalPackageKey(key)
		decl, ok := packageOptions[key]
		if !ok {
			return &UnknownOptionError{Key: key}
		}
		if normalized, ok := decl.normalize(value); ok {
			value = normalized
		}
		s.PackageOptions[key] = value
	}
	return nil
}
