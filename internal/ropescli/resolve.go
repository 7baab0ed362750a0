// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package ropescli

import (
	"fmt"
	"io"
	"slices"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.jetify.com/ropescfg/internal/cuecfg"
	"go.jetify.com/ropescfg/internal/deps"
	"go.jetify.com/ropescfg/internal/project"
	"go.jetify.com/ropescfg/internal/ropescli/usererr"
)

var outputFormats = []string{"table", "json", "yaml", "toml"}

type resolveCmdFlags struct {
	overrideFlags
	format string
}

// resolveOutput is what resolve prints in the structured formats.
type resolveOutput struct {
	Options  map[string]string `json:"options" yaml:"options" toml:"options"`
	Requires []deps.Entry      `json:"requires" yaml:"requires" toml:"requires"`
}

func resolveCmd() *cobra.Command {
	flags := resolveCmdFlags{}
	command := &cobra.Command{
		Use:   "resolve",
		Short: "Print the dependencies the options select",
		Long: "Print the dependencies the options select, in the order they are " +
			"required. Nothing is installed or written.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolveCmd(cmd, &flags)
		},
	}
	flags.overrideFlags.register(command)
	command.Flags().StringVarP(
		&flags.format, "format", "f", "table", "output format, one of: table, json, yaml, toml")
	return command
}

func runResolveCmd(cmd *cobra.Command, flags *resolveCmdFlags) error {
	if !slices.Contains(outputFormats, flags.format) {
		return usererr.New("Unsupported format %q. Use one of: table, json, yaml, toml", flags.format)
	}
	p, err := project.Open(flags.opts(cmd))
	if err != nil {
		return err
	}
	spec, err := p.Resolve()
	if err != nil {
		return usererr.WithUserMessage(err, "%v", err)
	}

	w := cmd.OutOrStdout()
	if flags.format == "table" {
		return printSpecTable(w, spec)
	}
	out := resolveOutput{
		Options:  p.Options().Values(),
		Requires: spec.Entries(),
	}
	b, err := cuecfg.Marshal(out, cuecfg.FormatExtension(flags.format))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return errors.WithStack(err)
}

func printSpecTable(w io.Writer, spec *deps.Spec) error {
	table := tablewriter.NewWriter(w)
	table.Header("Dependency", "Reference", "CMake target")
	for _, e := range spec.Entries() {
		if err := table.Append([]string{e.Name.String(), e.Ref.String(), e.Name.CMakeTarget()}); err != nil {
			return errors.WithStack(err)
		}
	}
	return errors.WithStack(table.Render())
}
