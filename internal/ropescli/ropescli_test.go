// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package ropescli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jetify.com/ropescfg/internal/build"
	"go.jetify.com/ropescfg/internal/ropescli/usererr"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := RootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "0.0.0-dev")

	out, _, err = run(t, "version", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "Go Version:")
	assert.Contains(t, out, "OS:          "+build.OS())
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	_, stderr, err := run(t, "init", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "ropes.json"))
	assert.Contains(t, stderr, "Created ropes.json")

	_, _, err = run(t, "init", dir)
	require.Error(t, err)
	assert.True(t, usererr.IsWarning(err))
	assert.Equal(t, "ropes.json already exists, leaving it unchanged", usererr.Message(err))
}

func TestResolveJSON(t *testing.T) {
	out, _, err := run(t, "resolve", "-c", t.TempDir(),
		"-o", "sdl_source=system", "-o", "opengl_source=system", "--format", "json")
	require.NoError(t, err)

	var got resolveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	refs := []string{}
	for _, e := range got.Requires {
		refs = append(refs, e.Ref.String())
	}
	assert.Equal(t, []string{
		"fmt/10.2.1",
		"mp-units/2.2.1",
		"scope-lite/0.2.0",
		"structopt/0.1.3",
		"imgui/1.90.5",
		"implot/0.16",
		"opengl/system",
	}, refs)
	assert.Equal(t, "system", got.Options["sdl_source"])
}

func TestResolveTable(t *testing.T) {
	out, _, err := run(t, "resolve", "-c", t.TempDir(), "-o", "check_opengl_compatibility=no")
	require.NoError(t, err)
	assert.Contains(t, out, "sdl_ttf/2.22.0")
	assert.Contains(t, out, "SDL2::SDL2")
	assert.NotContains(t, out, "opengl/system")
}

func TestResolveRejectsInvalidOption(t *testing.T) {
	dir := t.TempDir()
	_, _, err := run(t, "resolve", "-c", dir, "-o", "opengl_source=bundled")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid value "bundled" for option "opengl_source"`)
}

func TestResolveRejectsUnknownFormat(t *testing.T) {
	_, _, err := run(t, "resolve", "-c", t.TempDir(), "--format", "xml")
	assert.Error(t, err)
}

func TestResolveHasNoSideEffects(t *testing.T) {
	dir := t.TempDir()
	_, _, err := run(t, "resolve", "-c", dir)
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOptions(t *testing.T) {
	out, _, err := run(t, "options")
	require.NoError(t, err)
	assert.Contains(t, out, "check_opengl_compatibility")
	assert.Contains(t, out, "conan|system")
	assert.Contains(t, out, "mp-units:std_format")
}

func TestExecuteExitCode(t *testing.T) {
	assert.Equal(t, 0, Execute(context.Background(), []string{"version"}))
	assert.Equal(t, 1, Execute(context.Background(), []string{"resolve", "-o", "nope"}))

	dir := t.TempDir()
	assert.Equal(t, 0, Execute(context.Background(), []string{"init", dir}))
	assert.Equal(t, 0, Execute(context.Background(), []string{"init", dir}), "warnings do not fail the run")
}
