// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package lock

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jetify.com/ropescfg/internal/deps"
	"go.jetify.com/ropescfg/internal/envir"
	"go.jetify.com/ropescfg/internal/options"
	"go.jetify.com/ropescfg/internal/settings"
)

type fakeProber struct {
	err    error
	probed []deps.Ref
}

func (p *fakeProber) Probe(_ context.Context, ref deps.Ref) error {
	p.probed = append(p.probed, ref)
	return p.err
}

func TestRequireAndSave(t *testing.T) {
	dir := t.TempDir()
	prober := &fakeProber{}
	f, err := Open(dir, prober)
	require.NoError(t, err)

	spec, err := deps.Resolve(deps.Base(), options.Set{SDLSource: options.System})
	require.NoError(t, err)
	for _, ref := range spec.Refs() {
		require.NoError(t, f.Require(context.Background(), ref))
	}
	// Requiring twice records once.
	require.NoError(t, f.Require(context.Background(), deps.MustParseRef("fmt/10.2.1")))
	f.Tidy(spec)
	f.SetContext(options.Set{SDLSource: options.System}.WithDefaults(), settings.Settings{BuildType: "Debug"})
	require.NoError(t, f.Save())

	assert.Equal(t, []deps.Ref{deps.OpenGLSanityCheck}, prober.probed)

	reopened, err := Open(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, spec.Refs(), reopened.Requires)
	assert.Equal(t, "opengl/system", reopened.Requires[len(reopened.Requires)-1].String())
	assert.Equal(t, "system", reopened.Options[options.SDLSource])
	assert.Equal(t, "False", reopened.Options[options.MPUnitsStdFormat])
	assert.Equal(t, map[string]string{"build_type": "Debug"}, reopened.Settings)
}

func TestRequireProbeFailure(t *testing.T) {
	probeErr := errors.New("no OpenGL")
	f, err := Open(t.TempDir(), &fakeProber{err: probeErr})
	require.NoError(t, err)

	err = f.Require(context.Background(), deps.OpenGLSanityCheck)
	assert.Equal(t, probeErr, err)
	assert.Empty(t, f.Requires)
}

func TestRequirePhantomWithoutProber(t *testing.T) {
	f, err := Open(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Error(t, f.Require(context.Background(), deps.OpenGLSanityCheck))
}

func TestTidyDropsStaleRequirements(t *testing.T) {
	f, err := Open(t.TempDir(), nil)
	require.NoError(t, err)
	f.Requires = []deps.Ref{
		deps.MustParseRef("sdl/2.28.3"), deps.MustParseRef("fmt/10.2.1"), deps.MustParseRef("glfw/3.3.8"),
	}

	spec := deps.NewSpec(
		deps.Entry{Name: deps.Fmt, Ref: deps.MustParseRef("fmt/10.2.1")},
		deps.Entry{Name: deps.GLFW, Ref: deps.MustParseRef("glfw/3.3.8")},
	)
	f.Tidy(spec)
	assert.Equal(t, []deps.Ref{deps.MustParseRef("fmt/10.2.1"), deps.MustParseRef("glfw/3.3.8")}, f.Requires)
}

func TestSaveSkipsUnchangedFile(t *testing.T) {
	dir := t.TempDir()
	f, err := Open(dir, nil)
	require.NoError(t, err)
	require.NoError(t, f.Require(context.Background(), deps.MustParseRef("fmt/10.2.1")))
	require.NoError(t, f.Save())

	path := filepath.Join(dir, FileName)
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	require.NoError(t, f.Save())
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, old.Unix(), info.ModTime().Unix(), "unchanged lockfile was rewritten")
}

func TestPackageDir(t *testing.T) {
	cache := t.TempDir()
	t.Setenv(envir.XDGCacheHome, cache)

	f, err := Open(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Equal(t,
		filepath.Join(cache, "ropescfg", "p", "imgui", "1.90.5"),
		f.PackageDir(deps.MustParseRef("imgui/1.90.5")),
	)
	assert.Empty(t, f.PackageDir(deps.OpenGLSanityCheck))
}

func TestOpenCorruptLockfile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0o644))
	_, err := Open(dir, nil)
	assert.Error(t, err)
}

func TestOpenRejectsInvalidReference(t *testing.T) {
	dir := t.TempDir()
	lock := `{"lockfile_version": "1", "requires": ["fmt/latest"]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(lock), 0o644))
	_, err := Open(dir, nil)
	assert.ErrorContains(t, err, "fmt/latest")
}
