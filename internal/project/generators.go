// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package project

import (
	"context"

	"go.jetify.com/ropescfg/internal/cmakegen"
	"go.jetify.com/ropescfg/internal/project/projopt"
)

// DefaultGenerators are the toolchain file and dependency file generators.
func DefaultGenerators() []projopt.Generator {
	return []projopt.Generator{toolchainGenerator{}, depsGenerator{}}
}

type toolchainGenerator struct{}

func (toolchainGenerator) Generate(_ context.Context, pass *projopt.Pass) error {
	tc := &cmakegen.Toolchain{
		Layout:   pass.Layout,
		Settings: pass.Settings,
	}
	return tc.Generate()
}

type depsGenerator struct{}

func (depsGenerator) Generate(_ context.Context, pass *projopt.Pass) error {
	d := &cmakegen.Deps{
		Layout:   pass.Layout,
		Spec:     pass.Spec,
		Packages: pass.Packages,
		Options:  pass.Options,
	}
	return d.Generate()
}
