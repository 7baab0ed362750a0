// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package deps

import (
	"github.com/pkg/errors"
)

// Name identifies one of the dependencies the application can require. The
// set is closed: every Name is one of the constants below.
type Name string

const (
	Fmt       Name = "fmt"
	MPUnits   Name = "mp-units"
	ScopeLite Name = "scope-lite"
	StructOpt Name = "structopt"
	ImGui     Name = "imgui"
	ImPlot    Name = "implot"
	GLFW      Name = "glfw"
	SDL       Name = "sdl"
	SDLTTF    Name = "sdl_ttf"
	OpenGL    Name = "opengl"
)

// cmake describes how a dependency shows up in the downstream CMake build.
type cmake struct {
	// fileName is the <fileName>-config.cmake that find_package looks for.
	fileName string
	target   string
}

var known = map[Name]cmake{
	Fmt:       {fileName: "fmt", target: "fmt::fmt"},
	MPUnits:   {fileName: "mp-units", target: "mp-units::mp-units"},
	ScopeLite: {fileName: "scope-lite", target: "nonstd::scope-lite"},
	StructOpt: {fileName: "structopt", target: "structopt::structopt"},
	ImGui:     {fileName: "imgui", target: "imgui::imgui"},
	ImPlot:    {fileName: "implot", target: "implot::implot"},
	GLFW:      {fileName: "glfw3", target: "glfw"},
	SDL:       {fileName: "SDL2", target: "SDL2::SDL2"},
	SDLTTF:    {fileName: "SDL2_ttf", target: "SDL2_ttf::SDL2_ttf"},
	OpenGL:    {fileName: "opengl_system", target: "opengl::opengl"},
}

// ParseName returns the Name for s, or an error if s is not a known
// dependency.
func ParseName(s string) (Name, error) {
	n := Name(s)
	if _, ok := known[n]; !ok {
		return "", errors.Errorf("unknown dependency %q", s)
	}
	return n, nil
}

func (n Name) String() string { return string(n) }

// CMakeFileName is the package name find_package uses for n.
func (n Name) CMakeFileName() string { return known[n].fileName }

// CMakeTarget is the imported target consumers link against.
func (n Name) CMakeTarget() string { return known[n].target }
