// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package options

// Description documents one recognized option.
type Description struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	Allowed []string `json:"allowed" yaml:"allowed" toml:"allowed"`
	Default string   `json:"default" yaml:"default" toml:"default"`
	Help    string   `json:"help" yaml:"help" toml:"help"`
}

// Describe lists every recognized option, package options last.
func Describe() []Description {
	d := Default()
	out := []Description{
		{
			Name:    CheckOpenGLCompatibility,
			Allowed: toggles,
			Default: string(d.CheckOpenGLCompatibility),
			Help:    "fail early if the host cannot provide OpenGL",
		},
		{
			Name:    OpenGLSource,
			Allowed: sources,
			Default: string(d.OpenGLSource),
			Help:    "use the host's windowing/OpenGL libraries instead of glfw",
		},
		{
			Name:    SDLSource,
			Allowed: sources,
			Default: string(d.SDLSource),
			Help:    "use the host's SDL and SDL_ttf",
		},
	}
	for _, key := range PackageOptionKeys() {
		out = append(out, Description{
			Name:    key,
			Allowed: packageOptions[key].allowed,
			Default: packageOptions[key].def,
			Help:    "passed through to the package",
		})
	}
	return out
}
