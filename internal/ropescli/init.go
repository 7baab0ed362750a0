// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package ropescli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.jetify.com/ropescfg/internal/buildconfig"
	"go.jetify.com/ropescfg/internal/project"
	"go.jetify.com/ropescfg/internal/ropescli/usererr"
	"go.jetify.com/ropescfg/internal/ux"
)

func initCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "init [<dir>]",
		Short: "Create a ropes.json in a CMake project",
		Long: "Create a ropes.json holding the default options in the given " +
			"directory, or the current one. An existing ropes.json is left alone.",
		Args: cobra.MaximumNArgs(1),
		RunE: runInitCmd,
	}
	return command
}

func runInitCmd(cmd *cobra.Command, args []string) error {
	path := pathArg(args)
	if path == "" {
		path = "."
	}

	created, err := project.InitConfig(path)
	if err != nil {
		return errors.WithStack(err)
	}
	if !created {
		return usererr.NewWarning("%s already exists, leaving it unchanged", buildconfig.DefaultName)
	}
	ux.Fsuccess(cmd.ErrOrStderr(), "Created %s\n", buildconfig.DefaultName)
	return nil
}

func pathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
