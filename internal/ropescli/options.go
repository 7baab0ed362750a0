// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package ropescli

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.jetify.com/ropescfg/internal/options"
)

func optionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the recognized options, their values and defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Option", "Values", "Default", "Description")
			for _, d := range options.Describe() {
				row := []string{d.Name, strings.Join(d.Allowed, "|"), d.Default, d.Help}
				if err := table.Append(row); err != nil {
					return errors.WithStack(err)
				}
			}
			return errors.WithStack(table.Render())
		},
	}
}
