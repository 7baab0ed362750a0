// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envir

const (
	RopescfgDebug         = "ROPESCFG_DEBUG"
	RopescfgPrintExecTime = "ROPESCFG_PRINT_EXEC_TIME"
	// RopescfgHostRoot points the host probes at a sysroot instead of /.
	RopescfgHostRoot = "ROPESCFG_HOST_ROOT"

	XDGCacheHome = "XDG_CACHE_HOME"
)
