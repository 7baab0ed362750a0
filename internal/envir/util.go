// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envir

import (
	"os"
	"strconv"
)

func IsDebugEnabled() bool {
	enabled, _ := strconv.ParseBool(os.Getenv(RopescfgDebug))
	return enabled
}

func IsExecTimeEnabled() bool {
	enabled, _ := strconv.ParseBool(os.Getenv(RopescfgPrintExecTime))
	return enabled
}
