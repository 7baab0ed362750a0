// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package ropescli

import (
	"github.com/spf13/cobra"

	"go.jetify.com/ropescfg/internal/project"
	"go.jetify.com/ropescfg/internal/ux"
)

type cleanCmdFlags struct {
	overrideFlags
}

func cleanCmd() *cobra.Command {
	flags := cleanCmdFlags{}
	command := &cobra.Command{
		Use:   "clean",
		Short: "Remove the generated files of the selected build type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := project.Open(flags.opts(cmd))
			if err != nil {
				return err
			}
			if err := p.Clean(); err != nil {
				return err
			}
			ux.Fsuccess(cmd.ErrOrStderr(), "Removed %s\n", p.Layout().GeneratorsDir)
			return nil
		},
	}
	flags.overrideFlags.register(command)
	return command
}
