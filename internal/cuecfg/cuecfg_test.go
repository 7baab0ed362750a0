// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package cuecfg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string   `json:"name" yaml:"name" toml:"name"`
	Requires []string `json:"requires" yaml:"requires" toml:"requires"`
}

func TestMarshalFormats(t *testing.T) {
	v := sample{Name: "ropes", Requires: []string{"fmt/10.2.1", "imgui/1.90.5"}}

	b, err := Marshal(v, ".json")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"ropes\",\n  \"requires\": [\n    \"fmt/10.2.1\",\n    \"imgui/1.90.5\"\n  ]\n}", string(b))

	b, err = Marshal(v, ".yaml")
	require.NoError(t, err)
	assert.Contains(t, string(b), "- fmt/10.2.1")

	b, err = Marshal(v, ".toml")
	require.NoError(t, err)
	assert.Contains(t, string(b), "name = 'ropes'")

	_, err = Marshal(v, ".xml")
	assert.Error(t, err)
}

func TestWriteThenParseLockExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ropes.lock")
	require.NoError(t, WriteFile(path, sample{Name: "first", Requires: []string{"glfw/3.3.8"}}))

	got := sample{}
	require.NoError(t, ParseFile(path, &got))
	assert.Equal(t, sample{Name: "first", Requires: []string{"glfw/3.3.8"}}, got)

	assert.Error(t, ParseFile(filepath.Join(t.TempDir(), "missing.lock"), &got))
}
