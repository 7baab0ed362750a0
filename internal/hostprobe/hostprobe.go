// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package hostprobe checks that the host provides what a phantom dependency
// stands for.
package hostprobe

import (
	"context"
	"os"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"go.jetify.com/ropescfg/internal/debug"
	"go.jetify.com/ropescfg/internal/deps"
	"go.jetify.com/ropescfg/internal/envir"
	"go.jetify.com/ropescfg/internal/ropescli/usererr"
)

// Host probes a filesystem for system libraries.
type Host struct {
	// Root is the filesystem root the probe patterns are relative to.
	Root string
	GOOS string
}

// Default returns a probe for the running host. ROPESCFG_HOST_ROOT
// overrides the filesystem root, e.g. to check a sysroot.
func Default() *Host {
	root := "/"
	if runtime.GOOS == "windows" {
		root = os.Getenv("SystemDrive") + `\`
	}
	if r := os.Getenv(envir.RopescfgHostRoot); r != "" {
		root = r
	}
	return &Host{Root: root, GOOS: runtime.GOOS}
}

var openGLPatterns = map[string][]string{
	"linux": {
		"usr/{lib,lib64}/{libGL,libOpenGL}.so*",
		"usr/local/lib/{libGL,libOpenGL}.so*",
		"usr/{lib,lib64}/*/{libGL,libOpenGL}.so*",
		"lib/*/{libGL,libOpenGL}.so*",
	},
	"darwin":  {"System/Library/Frameworks/OpenGL.framework"},
	"windows": {"Windows/System32/opengl32.dll"},
}

// Probe checks the host capability behind a phantom reference.
func (h *Host) Probe(ctx context.Context, ref deps.Ref) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch deps.Name(ref.Name) {
	case deps.OpenGL:
		return h.openGL()
	default:
		return errors.Errorf("no host probe for %s", ref)
	}
}

func (h *Host) openGL() error {
	patterns, ok := openGLPatterns[h.GOOS]
	if !ok {
		debug.Log("no OpenGL probe for %s, assuming OpenGL is available", h.GOOS)
		return nil
	}
	fsys := os.DirFS(h.Root)
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return errors.Wrapf(err, "glob %s", pattern)
		}
		if len(matches) > 0 {
			debug.Log("found OpenGL at %s", matches[0])
			return nil
		}
	}
	return usererr.New(
		"OpenGL was not found on this host. Install your system's OpenGL " +
			"development package, or skip this check with " +
			"-o check_opengl_compatibility=no",
	)
}
