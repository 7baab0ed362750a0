// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package settings

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	testCases := []struct {
		goos, goarch string
		want         Settings
	}{
		{"linux", "amd64", Settings{OS: "Linux", Arch: "x86_64", Compiler: "gcc", CppStd: "20", BuildType: "Release"}},
		{"darwin", "arm64", Settings{OS: "Macos", Arch: "armv8", Compiler: "apple-clang", CppStd: "20", BuildType: "Release"}},
		{"windows", "386", Settings{OS: "Windows", Arch: "x86", Compiler: "msvc", CppStd: "20", BuildType: "Release"}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.goos, func(t *testing.T) {
			got := detect(testCase.goos, testCase.goarch)
			assert.Equal(t, testCase.want, got)
			assert.NoError(t, got.Validate())
		})
	}
}

func TestParseAndMerge(t *testing.T) {
	over, err := Parse([]string{"build_type=Debug", "compiler.cppstd=23"})
	require.NoError(t, err)

	got := detect("linux", "amd64").Merge(over)
	assert.Equal(t, "Debug", got.BuildType)
	assert.Equal(t, "23", got.CppStd)
	assert.Equal(t, "gcc", got.Compiler)
	assert.Equal(t, "os=Linux arch=x86_64 compiler=gcc compiler.cppstd=23 build_type=Debug", got.String())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]string{"build_type=Fast"})
	assert.ErrorContains(t, err, `invalid value "Fast" for setting "build_type"`)

	_, err = Parse([]string{"generator=Ninja"})
	assert.ErrorContains(t, err, "unknown setting")

	_, err = Parse([]string{"build_type"})
	assert.Error(t, err)
}

func TestParseMapReportsFirstKeyInOrder(t *testing.T) {
	for range 20 {
		_, err := ParseMap(map[string]string{"toolset": "v143", "generator": "Ninja"})
		assert.ErrorContains(t, err, `unknown setting "generator"`)
	}
}

func TestIsMultiConfig(t *testing.T) {
	assert.True(t, Settings{Compiler: "msvc"}.IsMultiConfig())
	assert.False(t, Settings{Compiler: "gcc"}.IsMultiConfig())
}

func TestValues(t *testing.T) {
	s, err := ParseMap(map[string]string{"build_type": "MinSizeRel"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"build_type": "MinSizeRel"}, s.Values())
}

func TestTOMLKeysMatchSettingNames(t *testing.T) {
	b, err := toml.Marshal(Settings{CppStd: "23", BuildType: "Debug"})
	require.NoError(t, err)
	assert.Contains(t, string(b), CppStd)
	assert.Contains(t, string(b), BuildType)

	var got Settings
	require.NoError(t, toml.Unmarshal([]byte("\"compiler.cppstd\" = \"17\"\n"), &got))
	assert.Equal(t, "17", got.CppStd)
}
