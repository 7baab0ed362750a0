// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package hostprobe

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jetify.com/ropescfg/internal/deps"
	"go.jetify.com/ropescfg/internal/envir"
	"go.jetify.com/ropescfg/internal/ropescli/usererr"
)

func touch(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestOpenGLFound(t *testing.T) {
	testCases := []struct {
		goos string
		file string
	}{
		{"linux", "usr/lib/x86_64-linux-gnu/libGL.so.1"},
		{"linux", "usr/lib64/libOpenGL.so.0"},
		{"darwin", "System/Library/Frameworks/OpenGL.framework/OpenGL"},
		{"windows", "Windows/System32/opengl32.dll"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.file, func(t *testing.T) {
			root := t.TempDir()
			touch(t, root, testCase.file)
			h := &Host{Root: root, GOOS: testCase.goos}
			assert.NoError(t, h.Probe(context.Background(), deps.OpenGLSanityCheck))
		})
	}
}

func TestOpenGLMissing(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "usr/lib/libfoo.so")
	h := &Host{Root: root, GOOS: "linux"}

	err := h.Probe(context.Background(), deps.OpenGLSanityCheck)
	require.Error(t, err)
	_, isUserErr := usererr.Extract(err)
	assert.True(t, isUserErr)
	assert.Contains(t, err.Error(), "check_opengl_compatibility=no")
}

func TestUnknownPlatformPasses(t *testing.T) {
	h := &Host{Root: t.TempDir(), GOOS: "plan9"}
	assert.NoError(t, h.Probe(context.Background(), deps.OpenGLSanityCheck))
}

func TestUnknownPhantom(t *testing.T) {
	h := &Host{Root: t.TempDir(), GOOS: "linux"}
	assert.Error(t, h.Probe(context.Background(), deps.MustParseRef("vulkan/system")))
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := &Host{Root: t.TempDir(), GOOS: "linux"}
	assert.ErrorIs(t, h.Probe(ctx, deps.OpenGLSanityCheck), context.Canceled)
}

func TestDefaultHonorsHostRoot(t *testing.T) {
	root := t.TempDir()
	t.Setenv(envir.RopescfgHostRoot, root)
	assert.Equal(t, root, Default().Root)
}
