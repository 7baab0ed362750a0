// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package projopt

import (
	"context"
	"io"

	"go.jetify.com/ropescfg/internal/deps"
	"go.jetify.com/ropescfg/internal/layout"
	"go.jetify.com/ropescfg/internal/options"
	"go.jetify.com/ropescfg/internal/settings"
)

// Naming Convention:
// - suffix Opts for structs corresponding to a project api function
// - omit suffix Opts for other structs that are composed into an Opts struct

type Opts struct {
	Dir string
	// Options and Settings are key=value overrides, as given with -o and -s.
	// They win over ropes.json.
	Options  []string
	Settings []string
	Stderr   io.Writer

	// The collaborators below default to the real implementations when nil.
	Installer  Installer
	Generators []Generator
	Layout     LayoutConfigurator
	Prober     Prober
}

// Pass is what a generator gets to see of a build configuration pass.
type Pass struct {
	ID       string
	Spec     *deps.Spec
	Options  options.Set
	Settings settings.Settings
	Layout   layout.Layout
	Packages interface {
		PackageDir(ref deps.Ref) string
	}
}

// Installer records each required reference of a pass.
type Installer interface {
	Require(ctx context.Context, ref deps.Ref) error
	Tidy(spec *deps.Spec)
	SetContext(opts options.Set, s settings.Settings)
	PackageDir(ref deps.Ref) string
	Save() error
}

// Generator writes build files for a pass.
type Generator interface {
	Generate(ctx context.Context, pass *Pass) error
}

// LayoutConfigurator prepares the build folders of a pass.
type LayoutConfigurator interface {
	Configure(l layout.Layout) error
}

// Prober checks the host capability behind a phantom reference.
type Prober interface {
	Probe(ctx context.Context, ref deps.Ref) error
}
