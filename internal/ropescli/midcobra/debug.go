// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package midcobra

import (
	"log/slog"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jetify.com/ropescfg/internal/debug"
	"go.jetify.com/ropescfg/internal/ropescli/usererr"
	"go.jetify.com/ropescfg/internal/ux"
)

type DebugMiddleware struct {
	flag *pflag.Flag
}

var _ Middleware = (*DebugMiddleware)(nil)

func (d *DebugMiddleware) AttachToFlag(flags *pflag.FlagSet, flagName string) {
	flags.Bool(
		flagName,
		false,
		"Show full stack traces on errors",
	)
	d.flag = flags.Lookup(flagName)
	d.flag.Hidden = true
}

func (d *DebugMiddleware) preRun(cmd *cobra.Command, args []string) {
	if d == nil {
		return
	}

	if d.flag.Changed {
		strVal := d.flag.Value.String()
		if enabled, _ := strconv.ParseBool(strVal); enabled {
			debug.Enable()
		}
	}
}

func (d *DebugMiddleware) postRun(cmd *cobra.Command, args []string, runErr error) {
	if runErr == nil {
		return
	}
	if userErr, hasUserErr := usererr.Extract(runErr); hasUserErr {
		if usererr.IsWarning(userErr) {
			ux.Fwarning(cmd.ErrOrStderr(), "%s\n", usererr.Message(userErr))
			return
		}
		msg := usererr.Message(userErr)
		if debug.IsEnabled() {
			msg = userErr.Error()
		}
		color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "\nError: %s\n\n", msg)
	} else {
		color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "Error: %v\n\n", runErr)
	}

	if !debug.IsEnabled() {
		return
	}
	st := debug.EarliestStackTrace(runErr)
	slog.Error("command error", "execid", ExecutionID, "command", cmd.CommandPath(), "stack", st)
}
