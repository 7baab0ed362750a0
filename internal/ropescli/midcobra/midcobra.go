// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package midcobra

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"go.jetify.com/ropescfg/internal/ropescli/usererr"
)

// ExecutionID identifies one run of the CLI in debug logs.
var ExecutionID = uuid.NewString()

type Executable interface {
	AddMiddleware(mids ...Middleware)
	Execute(ctx context.Context, args []string) int
}

type Middleware interface {
	preRun(cmd *cobra.Command, args []string)
	postRun(cmd *cobra.Command, args []string, runErr error)
}

func New(cmd *cobra.Command) Executable {
	return &midcobraExecutable{
		cmd:         cmd,
		middlewares: []Middleware{},
	}
}

type midcobraExecutable struct {
	cmd *cobra.Command

	middlewares []Middleware
}

var _ Executable = (*midcobraExecutable)(nil)

func (ex *midcobraExecutable) AddMiddleware(mids ...Middleware) {
	ex.middlewares = append(ex.middlewares, mids...)
}

func (ex *midcobraExecutable) Execute(ctx context.Context, args []string) int {
	// Ensure cobra uses the same arguments
	ex.cmd.SetContext(ctx)
	_ = ex.cmd.ParseFlags(args)

	for _, m := range ex.middlewares {
		m.preRun(ex.cmd, args)
	}

	ex.cmd.SetArgs(args)
	err := ex.cmd.Execute()

	// Unlike cobra's PostRun these run even if the command failed, and they
	// get to see the error.
	for i := len(ex.middlewares) - 1; i >= 0; i-- {
		ex.middlewares[i].postRun(ex.cmd, args, err)
	}

	// Warnings are reported by the debug middleware but do not fail the run.
	if err != nil && !usererr.IsWarning(err) {
		return 1
	}
	return 0
}
