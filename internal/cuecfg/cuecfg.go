// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package cuecfg

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

func Marshal(valuePtr any, extension string) ([]byte, error) {
	switch extension {
	case ".json", ".lock":
		return MarshalJSON(valuePtr)
	case ".yml", ".yaml":
		return marshalYaml(valuePtr)
	case ".toml":
		return marshalToml(valuePtr)
	}
	return nil, errors.Errorf("Unsupported file format '%s' for config file", extension)
}

func Unmarshal(data []byte, extension string, valuePtr any) error {
	switch extension {
	case ".json", ".lock":
		return errors.WithStack(unmarshalJSON(data, valuePtr))
	case ".yml", ".yaml":
		return errors.WithStack(unmarshalYaml(data, valuePtr))
	case ".toml":
		return errors.WithStack(unmarshalToml(data, valuePtr))
	}
	return errors.Errorf("Unsupported file format '%s' for config file", extension)
}

// FormatExtension maps an output format name such as "yaml" to the file
// extension Marshal understands.
func FormatExtension(format string) string {
	return "." + format
}

func ParseFile(path string, valuePtr any) error {
	return ParseFileWithExtension(path, filepath.Ext(path), valuePtr)
}

// ParseFileWithExtension lets the caller override the extension of the `path` filename
func ParseFileWithExtension(path, ext string, valuePtr any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WithStack(err)
	}

	return Unmarshal(data, ext, valuePtr)
}

func WriteFile(path string, value any) error {
	data, err := Marshal(value, filepath.Ext(path))
	if err != nil {
		return errors.WithStack(err)
	}
	data = append(data, '\n')
	return errors.WithStack(os.WriteFile(path, data, 0o644))
}
