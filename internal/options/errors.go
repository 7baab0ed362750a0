// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package options

import (
	"fmt"
	"strings"
)

// InvalidValueError reports an option value outside its domain.
type InvalidValueError struct {
	Option  string
	Value   string
	Allowed []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for option %q, possible values are: %s",
		e.Value, e.Option, strings.Join(e.Allowed, ", "))
}

// UnknownOptionError reports an option name that is not recognized.
type UnknownOptionError struct {
	Key string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Key)
}

// SyntaxError reports an override that is not of the form key=value.
type SyntaxError struct {
	Assignment string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("option %q is not of the form key=value", e.Assignment)
}
