// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package buildconfig

import (
	"errors"
	"os"
	"path/filepath"
)

// defaultConfig spells out every option with its default so users can see
// what there is to change.
const defaultConfig = `{
  // Options accepted by "ropescfg configure -o key=value".
  "options": {
    // Fail early if the host cannot provide OpenGL.
    "check_opengl_compatibility": "yes",
    // "system" uses the host's OpenGL/windowing libraries instead of glfw.
    "opengl_source": "conan",
    // "system" uses the host's SDL and SDL_ttf.
    "sdl_source": "conan",
    "mp-units:std_format": false
  },
  // Settings accepted by "ropescfg configure -s key=value". Unset values
  // are detected from the host.
  "settings": {
    "build_type": "Release"
  }
}
`

// DefaultConfig returns the config written by Init.
func DefaultConfig() *Config {
	cfg, err := LoadBytes([]byte(defaultConfig))
	if err != nil {
		panic("default ropes.json is invalid: " + err.Error())
	}
	return cfg
}

// Init writes a default ropes.json to dir. It reports false without touching
// anything if the file already exists.
func Init(dir string) (created bool, err error) {
	file, err := os.OpenFile(
		filepath.Join(dir, DefaultName),
		os.O_RDWR|os.O_CREATE|os.O_EXCL,
		0o644,
	)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			os.Remove(file.Name())
		}
	}()

	_, err = file.Write(DefaultConfig().Bytes())
	if err != nil {
		file.Close()
		return false, err
	}
	return true, file.Close()
}
