// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package ropescli

import (
	"context"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"go.jetify.com/ropescfg/internal/debug"
	"go.jetify.com/ropescfg/internal/ropescli/midcobra"
)

var (
	debugMiddleware = &midcobra.DebugMiddleware{}
	traceMiddleware = &midcobra.TraceMiddleware{}
)

type rootCmdFlags struct {
	quiet bool
}

func RootCmd() *cobra.Command {
	flags := rootCmdFlags{}
	command := &cobra.Command{
		Use:   "ropescfg",
		Short: "Configure the dependencies of a CMake project",
		Long: heredoc.Doc(`
			ropescfg resolves the third-party dependencies of a CMake project
			from a small set of options, records them in ropes.lock and writes
			the toolchain and find_package files the build consumes.

			Options come from built-in defaults, then ropes.json, then -o flags.
			Settings come from the host, then ropes.json, then -s flags.
		`),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.quiet {
				cmd.SetErr(io.Discard)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	command.AddCommand(cleanCmd())
	command.AddCommand(configureCmd())
	command.AddCommand(initCmd())
	command.AddCommand(optionsCmd())
	command.AddCommand(resolveCmd())
	command.AddCommand(versionCmd())

	command.PersistentFlags().BoolVarP(
		&flags.quiet, "quiet", "q", false, "suppresses logs")
	debugMiddleware.AttachToFlag(command.PersistentFlags(), "debug")
	traceMiddleware.AttachToFlag(command.PersistentFlags(), "trace")

	return command
}

func Execute(ctx context.Context, args []string) int {
	defer debug.Recover()
	exe := midcobra.New(RootCmd())
	exe.AddMiddleware(traceMiddleware)
	exe.AddMiddleware(debugMiddleware)
	return exe.Execute(ctx, args)
}

func Main() {
	os.Exit(Execute(context.Background(), os.Args[1:]))
}
