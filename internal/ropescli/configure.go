// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package ropescli

import (
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"al.essio.dev/pkg/shellescape"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"go.jetify.com/ropescfg/internal/buildconfig"
	"go.jetify.com/ropescfg/internal/cmakegen"
	"go.jetify.com/ropescfg/internal/project"
	"go.jetify.com/ropescfg/internal/ropescli/usererr"
	"go.jetify.com/ropescfg/internal/ux"
	"go.jetify.com/ropescfg/internal/ux/stepper"
)

type configureCmdFlags struct {
	overrideFlags
	watch bool
}

func configureCmd() *cobra.Command {
	flags := configureCmdFlags{}
	command := &cobra.Command{
		Use:   "configure",
		Short: "Resolve, install and generate the build files of a project",
		Long: heredoc.Doc(`
			Run a build configuration pass: resolve the dependencies the options
			select, record them in ropes.lock, check host capabilities such as
			OpenGL, and write the CMake toolchain and dependency files into the
			generators folder of the build tree.
		`),
		Example: heredoc.Doc(`
			ropescfg configure
			ropescfg configure -o sdl_source=system -s build_type=Debug
			ropescfg configure --watch
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigureCmd(cmd, &flags)
		},
	}
	flags.overrideFlags.register(command)
	command.Flags().BoolVarP(
		&flags.watch, "watch", "w", false, "run again every time ropes.json changes, until interrupted")
	return command
}

func runConfigureCmd(cmd *cobra.Command, flags *configureCmdFlags) error {
	if flags.watch {
		return runConfigureWatch(cmd, flags)
	}
	p, err := project.Open(flags.opts(cmd))
	if err != nil {
		return err
	}

	w := cmd.ErrOrStderr()
	step := stepper.Start(w, "Configuring %s", p.ProjectDir())
	res, err := p.Configure(cmd.Context())
	if err != nil {
		step.Fail("Configuration failed")
		return err
	}
	step.Success("Configured %d dependencies (%s)", res.Spec.Len(), res.Settings)
	printCMakeHint(w, res)
	return nil
}

func runConfigureWatch(cmd *cobra.Command, flags *configureCmdFlags) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	w := cmd.ErrOrStderr()
	err := project.Watch(ctx, flags.opts(cmd), func(res *project.Result, err error) {
		if err != nil {
			ux.Ferror(w, "%s\n", usererr.Message(err))
			return
		}
		ux.Fsuccess(w, "Configured %d dependencies (%s)\n", res.Spec.Len(), res.Settings)
		printCMakeHint(w, res)
	})
	if err != nil {
		return err
	}
	ux.Finfo(w, "Stopped watching %s\n", buildconfig.DefaultName)
	return nil
}

func printCMakeHint(w io.Writer, res *project.Result) {
	toolchain := filepath.Join(res.Layout.GeneratorsDir, cmakegen.ToolchainFileName)
	ux.Finfo(w, "Pass %s to cmake and include %s\n",
		shellescape.Quote("-DCMAKE_TOOLCHAIN_FILE="+filepath.ToSlash(toolchain)),
		cmakegen.DepsFileName)
}
