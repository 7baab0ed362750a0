// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package cmakegen

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"go.jetify.com/ropescfg/internal/debug"
	"go.jetify.com/ropescfg/internal/deps"
	"go.jetify.com/ropescfg/internal/layout"
	"go.jetify.com/ropescfg/internal/options"
)

// DepsFileName is included by the project's CMakeLists.txt to find every
// dependency of the configured spec.
const DepsFileName = "ropes_deps.cmake"

const configSuffix = "-config.cmake"

// PackageLocator says where an installed package lives.
type PackageLocator interface {
	PackageDir(ref deps.Ref) string
}

// Deps generates one CMake config file per dependency plus the file that
// finds them all.
type Deps struct {
	Layout   layout.Layout
	Spec     *deps.Spec
	Packages PackageLocator
	// Options must already hold defaults.
	Options options.Set
}

// systemPackage is how a phantom reference maps onto CMake's own find
// modules.
type systemPackage struct {
	Module string
	Target string
}

var systemPackages = map[deps.Name]systemPackage{
	deps.OpenGL: {Module: "OpenGL", Target: "OpenGL::GL"},
}

type packagePlan struct {
	Ref      deps.Ref
	FileName string
	Target   string
	Version  string
	SemVer   *semver.Version
	Found    string

	Prefix     string
	IncludeDir string
	LibDir     string

	System  *systemPackage
	Options []optionVar
}

type optionVar struct {
	Var   string
	Value string
}

type depsPlan struct {
	Packages []*packagePlan
	Targets  string
}

func (d *Deps) Generate() error {
	defer debug.FunctionTimer().End()

	plan := &depsPlan{}
	for _, entry := range d.Spec.Entries() {
		p, err := d.packagePlan(entry)
		if err != nil {
			return err
		}
		plan.Packages = append(plan.Packages, p)
	}
	plan.Targets = strings.Join(lo.Map(plan.Packages, func(p *packagePlan, _ int) string {
		return p.Target
	}), " ")

	if err := d.removeStale(plan); err != nil {
		return err
	}
	for _, p := range plan.Packages {
		err := writeFromTemplate(d.Layout.GeneratorsDir, p, "config.cmake", strings.ToLower(p.FileName)+configSuffix)
		if err != nil {
			return err
		}
	}
	return writeFromTemplate(d.Layout.GeneratorsDir, plan, "deps.cmake", DepsFileName)
}

func (d *Deps) packagePlan(entry deps.Entry) (*packagePlan, error) {
	p := &packagePlan{
		Ref:      entry.Ref,
		FileName: entry.Name.CMakeFileName(),
		Target:   entry.Name.CMakeTarget(),
		Version:  entry.Ref.Version,
		Found:    entry.Name.CMakeFileName() + "_FOUND",
	}
	if entry.Ref.IsPhantom() {
		sys, ok := systemPackages[entry.Name]
		if !ok {
			return nil, errors.Errorf("no system package known for %s", entry.Ref)
		}
		p.System = &sys
	} else {
		if d.Packages == nil {
			return nil, errors.Errorf("no package locator for %s", entry.Ref)
		}
		v, err := entry.Ref.SemVer()
		if err != nil {
			return nil, err
		}
		p.SemVer = v
		p.Prefix = cmakePath(d.Packages.PackageDir(entry.Ref))
		p.IncludeDir = p.Prefix + "/include"
		p.LibDir = p.Prefix + "/lib"
	}

	pkgOpts := d.Options.PackageOptionsFor(entry.Name.String())
	for _, opt := range slices.Sorted(maps.Keys(pkgOpts)) {
		p.Options = append(p.Options, optionVar{
			Var:   optionVarName(entry.Name, opt),
			Value: pkgOpts[opt],
		})
	}
	return p, nil
}

// optionVarName turns mp-units:std_format into MP_UNITS_STD_FORMAT.
func optionVarName(name deps.Name, opt string) string {
	v := strings.ToUpper(name.String() + "_" + opt)
	return strings.NewReplacer("-", "_", ".", "_").Replace(v)
}

// removeStale deletes config files of dependencies that an earlier pass
// generated but the current spec no longer has. find_package would
// otherwise keep picking them up ahead of the system copy.
func (d *Deps) removeStale(plan *depsPlan) error {
	wanted := lo.SliceToMap(plan.Packages, func(p *packagePlan) (string, bool) {
		return strings.ToLower(p.FileName) + configSuffix, true
	})
	existing, err := doublestar.Glob(os.DirFS(d.Layout.GeneratorsDir), "*"+configSuffix)
	if err != nil {
		return errors.WithStack(err)
	}
	for _, name := range existing {
		if wanted[name] {
			continue
		}
		debug.Log("cmakegen: removing stale %s", name)
		err := os.Remove(filepath.Join(d.Layout.GeneratorsDir, name))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.WithStack(err)
		}
	}
	return nil
}
