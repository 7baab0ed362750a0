// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package cmakegen

import (
	"go.jetify.com/ropescfg/internal/debug"
	"go.jetify.com/ropescfg/internal/layout"
	"go.jetify.com/ropescfg/internal/settings"
)

// ToolchainFileName is passed to CMake with -DCMAKE_TOOLCHAIN_FILE.
const ToolchainFileName = "ropes_toolchain.cmake"

// Toolchain generates the CMake toolchain file.
type Toolchain struct {
	Layout   layout.Layout
	Settings settings.Settings
}

type toolchainPlan struct {
	Settings      settings.Settings
	MultiConfig   bool
	GeneratorsDir string
}

func (t *Toolchain) Generate() error {
	defer debug.FunctionTimer().End()
	plan := toolchainPlan{
		Settings:      t.Settings,
		MultiConfig:   t.Layout.MultiConfig,
		GeneratorsDir: t.Layout.GeneratorsDir,
	}
	return writeFromTemplate(t.Layout.GeneratorsDir, plan, "toolchain.cmake", ToolchainFileName)
}
