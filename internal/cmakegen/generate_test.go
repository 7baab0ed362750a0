// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package cmakegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jetify.com/ropescfg/internal/deps"
	"go.jetify.com/ropescfg/internal/layout"
	"go.jetify.com/ropescfg/internal/options"
	"go.jetify.com/ropescfg/internal/settings"
)

type locator struct{ root string }

func (l locator) PackageDir(ref deps.Ref) string {
	return filepath.Join(l.root, ref.Name, ref.Version)
}

func linuxRelease() settings.Settings {
	return settings.Settings{
		OS:        "Linux",
		Arch:      "x86_64",
		Compiler:  "gcc",
		CppStd:    "20",
		BuildType: "Release",
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestToolchainSingleConfig(t *testing.T) {
	l := layout.For(t.TempDir(), linuxRelease())
	tc := &Toolchain{Layout: l, Settings: linuxRelease()}
	require.NoError(t, tc.Generate())

	got := readFile(t, filepath.Join(l.GeneratorsDir, ToolchainFileName))
	assert.Contains(t, got, `set(CMAKE_BUILD_TYPE "Release"`)
	assert.Contains(t, got, "set(CMAKE_CXX_STANDARD 20)")
	assert.Contains(t, got, "set(CMAKE_FIND_PACKAGE_PREFER_CONFIG ON)")
	assert.Contains(t, got, filepath.ToSlash(l.GeneratorsDir))
}

func TestToolchainMultiConfig(t *testing.T) {
	s := linuxRelease()
	s.OS, s.Compiler = "Windows", "msvc"
	l := layout.For(t.TempDir(), s)
	tc := &Toolchain{Layout: l, Settings: s}
	require.NoError(t, tc.Generate())

	got := readFile(t, filepath.Join(l.GeneratorsDir, ToolchainFileName))
	assert.NotContains(t, got, "CMAKE_BUILD_TYPE")
}

func TestDepsGenerate(t *testing.T) {
	l := layout.For(t.TempDir(), linuxRelease())
	spec, err := deps.Resolve(deps.Base(), options.Set{})
	require.NoError(t, err)

	g := &Deps{
		Layout:   l,
		Spec:     spec,
		Packages: locator{root: "/cache/p"},
		Options:  options.Default(),
	}
	require.NoError(t, g.Generate())

	for _, name := range spec.Names() {
		file := strings.ToLower(name.CMakeFileName()) + configSuffix
		assert.FileExists(t, filepath.Join(l.GeneratorsDir, file))
	}

	all := readFile(t, filepath.Join(l.GeneratorsDir, DepsFileName))
	assert.Contains(t, all, "find_package(fmt REQUIRED CONFIG)")
	assert.Contains(t, all, "find_package(opengl_system REQUIRED CONFIG)")
	assert.Contains(t, all, "set(ROPES_DEPENDENCY_TARGETS fmt::fmt mp-units::mp-units")

	fmtConfig := readFile(t, filepath.Join(l.GeneratorsDir, "fmt-config.cmake"))
	assert.Contains(t, fmtConfig, `INTERFACE_INCLUDE_DIRECTORIES "/cache/p/fmt/10.2.1/include"`)
	assert.Contains(t, fmtConfig, `set(fmt_VERSION "10.2.1")`)
	assert.Contains(t, fmtConfig, "set(fmt_VERSION_MAJOR 10)\nset(fmt_VERSION_MINOR 2)\nset(fmt_VERSION_PATCH 1)\n")

	implot := readFile(t, filepath.Join(l.GeneratorsDir, "implot-config.cmake"))
	assert.Contains(t, implot, "set(implot_VERSION_MINOR 16)\nset(implot_VERSION_PATCH 0)")

	mpUnits := readFile(t, filepath.Join(l.GeneratorsDir, "mp-units-config.cmake"))
	assert.Contains(t, mpUnits, `set(MP_UNITS_STD_FORMAT "False")`)

	gl := readFile(t, filepath.Join(l.GeneratorsDir, "opengl_system-config.cmake"))
	assert.Contains(t, gl, "find_package(OpenGL REQUIRED)")
	assert.Contains(t, gl, "target_link_libraries(opengl::opengl INTERFACE OpenGL::GL)")
	assert.NotContains(t, gl, "_VERSION_MAJOR")
}

func TestDepsRemovesStaleConfigs(t *testing.T) {
	l := layout.For(t.TempDir(), linuxRelease())
	g := &Deps{
		Layout:   l,
		Spec:     deps.Base(),
		Packages: locator{root: "/cache/p"},
		Options:  options.Default(),
	}
	require.NoError(t, g.Generate())
	assert.FileExists(t, filepath.Join(l.GeneratorsDir, "sdl2-config.cmake"))

	g.Spec, _ = deps.Resolve(deps.Base(), options.Set{SDLSource: options.System})
	require.NoError(t, g.Generate())
	assert.NoFileExists(t, filepath.Join(l.GeneratorsDir, "sdl2-config.cmake"))
	assert.NoFileExists(t, filepath.Join(l.GeneratorsDir, "sdl2_ttf-config.cmake"))
	assert.FileExists(t, filepath.Join(l.GeneratorsDir, "glfw3-config.cmake"))

	all := readFile(t, filepath.Join(l.GeneratorsDir, DepsFileName))
	assert.NotContains(t, all, "SDL2")
}

func TestDepsUnknownPhantom(t *testing.T) {
	g := &Deps{
		Layout:  layout.For(t.TempDir(), linuxRelease()),
		Spec:    deps.NewSpec(deps.Entry{Name: deps.SDL, Ref: deps.MustParseRef("sdl/system")}),
		Options: options.Default(),
	}
	assert.Error(t, g.Generate())
}

func TestOverwriteFileIfChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "file.cmake")
	require.NoError(t, overwriteFileIfChanged(path, []byte("first version"), 0o644))
	assert.Equal(t, "first version", readFile(t, path))

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))
	require.NoError(t, overwriteFileIfChanged(path, []byte("first version"), 0o644))
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, old.Unix(), fi.ModTime().Unix(), "unchanged content must not touch the file")

	require.NoError(t, overwriteFileIfChanged(path, []byte("short"), 0o644))
	assert.Equal(t, "short", readFile(t, path))
	require.NoError(t, overwriteFileIfChanged(path, []byte("shirt"), 0o644))
	assert.Equal(t, "shirt", readFile(t, path))
}

func TestOptionVarName(t *testing.T) {
	assert.Equal(t, "MP_UNITS_STD_FORMAT", optionVarName(deps.MPUnits, "std_format"))
}
