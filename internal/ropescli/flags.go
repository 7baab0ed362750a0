// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package ropescli

import (
	"github.com/spf13/cobra"

	"go.jetify.com/ropescfg/internal/project/projopt"
)

// to be composed into xyzCmdFlags structs
type configFlags struct {
	path string
}

func (flags *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(
		&flags.path, "config", "c", "", "path to directory containing the CMake project and its ropes.json",
	)
}

// overrideFlags are the -o and -s overrides of a build configuration pass.
type overrideFlags struct {
	configFlags
	options  []string
	settings []string
}

func (flags *overrideFlags) register(cmd *cobra.Command) {
	flags.configFlags.register(cmd)
	cmd.Flags().StringArrayVarP(
		&flags.options, "option", "o", nil,
		"option override as key=value, e.g. -o sdl_source=system (repeatable)",
	)
	cmd.Flags().StringArrayVarP(
		&flags.settings, "setting", "s", nil,
		"setting override as key=value, e.g. -s build_type=Debug (repeatable)",
	)
}

func (flags *overrideFlags) opts(cmd *cobra.Command) *projopt.Opts {
	return &projopt.Opts{
		Dir:      flags.path,
		Options:  flags.options,
		Settings: flags.settings,
		Stderr:   cmd.ErrOrStderr(),
	}
}
