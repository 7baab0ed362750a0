// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package project runs build configuration passes: it resolves the
// dependencies of a project, installs them and generates the files its CMake
// build consumes.
package project

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"go.jetify.com/ropescfg/internal/buildconfig"
	"go.jetify.com/ropescfg/internal/debug"
	"go.jetify.com/ropescfg/internal/deps"
	"go.jetify.com/ropescfg/internal/hostprobe"
	"go.jetify.com/ropescfg/internal/layout"
	"go.jetify.com/ropescfg/internal/lock"
	"go.jetify.com/ropescfg/internal/options"
	"go.jetify.com/ropescfg/internal/project/projopt"
	"go.jetify.com/ropescfg/internal/ropescli/usererr"
	"go.jetify.com/ropescfg/internal/settings"
)

type Project struct {
	cfg        *buildconfig.Config
	projectDir string

	// options are the merged overrides. Unspecified options stay empty
	// until Resolve fills in defaults.
	options  options.Set
	settings settings.Settings

	installer  projopt.Installer
	generators []projopt.Generator
	layout     projopt.LayoutConfigurator

	stderr io.Writer
}

// Result describes a completed pass.
type Result struct {
	PassID   string
	Spec     *deps.Spec
	Options  options.Set
	Settings settings.Settings
	Layout   layout.Layout
}

func InitConfig(dir string) (bool, error) {
	return buildconfig.Init(dir)
}

// Open loads the project in opts.Dir and merges every source of options and
// settings, from lowest to highest precedence: defaults, the host,
// ropes.json and the command line.
func Open(opts *projopt.Opts) (*Project, error) {
	projectDir, err := findProjectDir(opts.Dir)
	if err != nil {
		return nil, err
	}

	cfg, err := buildconfig.Open(projectDir)
	if err != nil {
		return nil, err
	}

	cfgOptions, err := cfg.OptionSet()
	if err != nil {
		return nil, err
	}
	cliOptions, err := options.Parse(opts.Options)
	if err != nil {
		return nil, usererr.WithUserMessage(err, "%v", err)
	}

	cfgSettings, err := cfg.BuildSettings()
	if err != nil {
		return nil, err
	}
	cliSettings, err := settings.Parse(opts.Settings)
	if err != nil {
		return nil, usererr.WithUserMessage(err, "%v", err)
	}

	p := &Project{
		cfg:        cfg,
		projectDir: projectDir,
		options:    cfgOptions.Merge(cliOptions),
		settings:   settings.Detect().Merge(cfgSettings).Merge(cliSettings),
		installer:  opts.Installer,
		generators: opts.Generators,
		layout:     opts.Layout,
		stderr:     opts.Stderr,
	}
	if p.stderr == nil {
		p.stderr = os.Stderr
	}

	if p.installer == nil {
		var prober projopt.Prober = opts.Prober
		if prober == nil {
			prober = hostprobe.Default()
		}
		lockfile, err := lock.Open(projectDir, prober)
		if err != nil {
			return nil, err
		}
		p.installer = lockfile
	}
	if p.generators == nil {
		p.generators = DefaultGenerators()
	}
	if p.layout == nil {
		p.layout = layoutDirs{}
	}
	return p, nil
}

// ProjectDir is the folder holding the CMake project and ropes.json.
func (p *Project) ProjectDir() string {
	return p.projectDir
}

// ConfigPath is the absolute path of ropes.json, or empty if the project has
// none.
func (p *Project) ConfigPath() string {
	return p.cfg.AbsRootPath
}

// Options returns the options of the project with defaults filled in.
func (p *Project) Options() options.Set {
	return p.options.WithDefaults()
}

func (p *Project) Settings() settings.Settings {
	return p.settings
}

// Layout returns the directory layout the project's settings select.
func (p *Project) Layout() layout.Layout {
	return layout.For(p.projectDir, p.settings)
}

// Resolve returns the dependencies the project's options select. It has no
// side effects.
func (p *Project) Resolve() (*deps.Spec, error) {
	return deps.Resolve(deps.Base(), p.options)
}

// Configure runs a full build configuration pass. Nothing is installed or
// generated when the options fail to resolve. Errors from the installer,
// the generators and the layout are returned as they are.
func (p *Project) Configure(ctx context.Context) (*Result, error) {
	defer debug.FunctionTimer().End()

	passID := uuid.NewString()
	spec, err := p.Resolve()
	if err != nil {
		return nil, err
	}
	opts := p.Options()
	debug.Log("pass %s: resolved %d dependencies with %v", passID, spec.Len(), opts.Values())

	l := p.Layout()
	if err := p.layout.Configure(l); err != nil {
		return nil, err
	}

	for _, ref := range spec.Refs() {
		debug.Log("pass %s: require %s", passID, ref)
		if err := p.installer.Require(ctx, ref); err != nil {
			return nil, err
		}
	}
	p.installer.Tidy(spec)
	p.installer.SetContext(opts, p.settings)

	pass := &projopt.Pass{
		ID:       passID,
		Spec:     spec,
		Options:  opts,
		Settings: p.settings,
		Layout:   l,
		Packages: p.installer,
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, gen := range p.generators {
		g.Go(func() error {
			return gen.Generate(gctx, pass)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := p.installer.Save(); err != nil {
		return nil, err
	}
	debug.Log("pass %s: done", passID)
	return &Result{
		PassID:   passID,
		Spec:     spec,
		Options:  opts,
		Settings: p.settings,
		Layout:   l,
	}, nil
}

// Clean removes what Configure generated for the project's current layout.
func (p *Project) Clean() error {
	return p.Layout().Clean()
}

func findProjectDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.WithStack(err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.WithStack(err)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return "", usererr.WithUserMessage(err, "Cannot open project folder %s", dir)
	}
	if !fi.IsDir() {
		return "", usererr.New("%s is not a folder", dir)
	}
	return abs, nil
}

type layoutDirs struct{}

func (layoutDirs) Configure(l layout.Layout) error {
	return l.Configure()
}
