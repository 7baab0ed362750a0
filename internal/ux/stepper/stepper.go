// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package stepper

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Stepper shows the progress of a single step. On a terminal it animates a
// spinner; on any other writer it prints one line when the step finishes.
type Stepper struct {
	w       io.Writer
	spinner *spinner.Spinner
}

func Start(w io.Writer, format string, a ...any) *Stepper {
	if !IsTerminal(w) {
		return &Stepper{w: w}
	}
	spinner := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
	err := spinner.Color("magenta")
	if err != nil {
		panic(err)
	}
	spinner.Suffix = " " + fmt.Sprintf(format, a...)
	spinner.Start()
	return &Stepper{
		w:       w,
		spinner: spinner,
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (s *Stepper) Stop(format string, a ...any) {
	s.finish(color.BlueString("→"), format, a...)
}

func (s *Stepper) Fail(format string, a ...any) {
	s.finish(color.RedString("✘"), format, a...)
}

func (s *Stepper) Success(format string, a ...any) {
	s.finish(color.GreenString("✓"), format, a...)
}

func (s *Stepper) Display(format string, a ...any) {
	if s.spinner == nil {
		return
	}
	msg := fmt.Sprintf(format, a...)
	// we need to add a space prefix to give a small gap between the spinner animation and the msg
	s.spinner.Suffix = fmt.Sprintf(" %s", msg)
}

func (s *Stepper) finish(mark, format string, a ...any) {
	msg := fmt.Sprintf("%s %s\n", mark, fmt.Sprintf(format, a...))
	if s.spinner == nil {
		fmt.Fprint(s.w, msg)
		return
	}
	s.spinner.FinalMSG = msg
	s.spinner.Stop()
}
