// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package fileutil

import (
	"os"
	"path/filepath"

	"go.jetify.com/ropescfg/internal/xdg"
)

// CacheDir returns the root of the ropescfg cache.
// default: ~/.cache/ropescfg
func CacheDir() string {
	return xdg.CacheSubpath("ropescfg")
}

// PackagesDir returns the directory holding per-package prefixes.
// default: ~/.cache/ropescfg/p
func PackagesDir() string {
	return filepath.Join(CacheDir(), "p")
}

func EnsureDir(dir string) (string, error) {
	return dir, os.MkdirAll(dir, 0o755)
}
