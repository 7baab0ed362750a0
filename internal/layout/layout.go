// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package layout decides where the downstream CMake build keeps its build
// tree and generated files.
package layout

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"go.jetify.com/ropescfg/internal/fileutil"
	"go.jetify.com/ropescfg/internal/settings"
)

const (
	buildDirName      = "build"
	generatorsDirName = "generators"
)

// Layout is the directory layout of one build configuration.
type Layout struct {
	SourceDir     string
	BuildDir      string
	GeneratorsDir string
	// MultiConfig is true when one build folder holds every build type.
	MultiConfig bool
}

// For returns the layout of sourceDir for s. Single-config generators get
// one build folder per build type (build/Release); multi-config generators
// share build/.
func For(sourceDir string, s settings.Settings) Layout {
	buildDir := filepath.Join(sourceDir, buildDirName)
	if !s.IsMultiConfig() {
		buildDir = filepath.Join(buildDir, s.BuildType)
	}
	return Layout{
		SourceDir:     sourceDir,
		BuildDir:      buildDir,
		GeneratorsDir: filepath.Join(buildDir, generatorsDirName),
		MultiConfig:   s.IsMultiConfig(),
	}
}

// Configure creates the build and generators folders.
func (l Layout) Configure() error {
	if _, err := fileutil.EnsureDir(l.GeneratorsDir); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Clean removes the generators folder, then every enclosing folder up to
// and including build/ that is left empty.
func (l Layout) Clean() error {
	if err := os.RemoveAll(l.GeneratorsDir); err != nil {
		return errors.WithStack(err)
	}
	root := filepath.Join(l.SourceDir, buildDirName)
	for dir := l.BuildDir; ; dir = filepath.Dir(dir) {
		empty, err := fileutil.IsDirEmpty(dir)
		if errors.Is(err, os.ErrNotExist) {
			empty = false
		} else if err != nil {
			return errors.WithStack(err)
		}
		if empty {
			if err := os.Remove(dir); err != nil {
				return errors.WithStack(err)
			}
		}
		if dir == root || !empty {
			return nil
		}
	}
}
