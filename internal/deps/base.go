// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package deps

// OpenGLSanityCheck installs nothing. Requiring it fails the pass when the
// host cannot provide OpenGL.
var OpenGLSanityCheck = MustParseRef("opengl/system")

// Base returns a fresh copy of the dependencies the application always
// starts from, before options are applied.
func Base() *Spec {
	return NewSpec(
		Entry{Fmt, MustParseRef("fmt/10.2.1")},
		Entry{MPUnits, MustParseRef("mp-units/2.2.1")},
		Entry{ScopeLite, MustParseRef("scope-lite/0.2.0")},
		Entry{StructOpt, MustParseRef("structopt/0.1.3")},
		Entry{ImGui, MustParseRef("imgui/1.90.5")},
		Entry{ImPlot, MustParseRef("implot/0.16")},
		Entry{GLFW, MustParseRef("glfw/3.3.8")},
		Entry{SDL, MustParseRef("sdl/2.28.3")},
		Entry{SDLTTF, MustParseRef("sdl_ttf/2.22.0")},
	)
}
