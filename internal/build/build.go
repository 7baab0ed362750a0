// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package build

import (
	"runtime"
	"sync"

	"go.jetify.com/ropescfg/internal/fileutil"
)

// Variables in this file are set via ldflags.
var (
	Version    = "0.0.0-dev"
	Commit     = "none"
	CommitDate = "unknown"
)

// User-presentable names of operating systems.
const (
	OSLinux   = "Linux"
	OSDarwin  = "macOS"
	OSWSL     = "WSL"
	OSWindows = "Windows"
)

var (
	osName string
	osOnce sync.Once
)

func OS() string {
	osOnce.Do(func() {
		switch runtime.GOOS {
		case "linux":
			osName = OSLinux
			if fileutil.Exists("/proc/sys/fs/binfmt_misc/WSLInterop") || fileutil.Exists("/run/WSL") {
				osName = OSWSL
			}
		case "darwin":
			osName = OSDarwin
		case "windows":
			osName = OSWindows
		default:
			osName = runtime.GOOS
		}
	})
	return osName
}
