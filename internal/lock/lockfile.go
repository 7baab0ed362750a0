// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package lock

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"go.jetify.com/ropescfg/internal/cachehash"
	"go.jetify.com/ropescfg/internal/cuecfg"
	"go.jetify.com/ropescfg/internal/debug"
	"go.jetify.com/ropescfg/internal/deps"
	"go.jetify.com/ropescfg/internal/fileutil"
	"go.jetify.com/ropescfg/internal/options"
	"go.jetify.com/ropescfg/internal/settings"
)

const (
	lockFileVersion = "1"
	FileName        = "ropes.lock"
)

// Prober checks the host capability behind a phantom reference.
type Prober interface {
	Probe(ctx context.Context, ref deps.Ref) error
}

// File records the requirements of the last build configuration pass.
type File struct {
	projectDir string
	prober     Prober

	LockFileVersion string `json:"lockfile_version"`

	// Requires holds version references in the order they were resolved.
	Requires []deps.Ref `json:"requires"`

	Options  map[string]string `json:"options,omitempty"`
	Settings map[string]string `json:"settings,omitempty"`
}

// Open reads the lockfile of projectDir, or starts an empty one if there is
// none yet. prober may be nil when no phantom references are expected.
func Open(projectDir string, prober Prober) (*File, error) {
	lockFile := &File{
		projectDir: projectDir,
		prober:     prober,

		LockFileVersion: lockFileVersion,
		Requires:        []deps.Ref{},
	}
	err := cuecfg.ParseFile(lockFilePath(projectDir), lockFile)
	if errors.Is(err, fs.ErrNotExist) {
		return lockFile, nil
	}
	if err != nil {
		return nil, err
	}
	return lockFile, nil
}

// Require records ref as a requirement of the project. Phantom references
// install nothing; they are checked against the host instead, and a failed
// check is returned as is.
func (f *File) Require(ctx context.Context, ref deps.Ref) error {
	if ref.IsPhantom() {
		if f.prober == nil {
			return errors.Errorf("cannot check %s: no host probe configured", ref)
		}
		if err := f.prober.Probe(ctx, ref); err != nil {
			return err
		}
	}
	if !slices.Contains(f.Requires, ref) {
		debug.Log("lock: requiring %s", ref)
		f.Requires = append(f.Requires, ref)
	}
	return nil
}

// Tidy drops requirements that spec no longer has and puts the rest in spec
// order.
func (f *File) Tidy(spec *deps.Spec) {
	f.Requires = lo.Filter(spec.Refs(), func(r deps.Ref, _ int) bool {
		return slices.Contains(f.Requires, r)
	})
}

// SetContext records the options and settings the requirements were
// resolved with.
func (f *File) SetContext(opts options.Set, s settings.Settings) {
	f.Options = opts.Values()
	f.Settings = s.Values()
}

// PackageDir is the prefix a non-phantom package is installed into. It is
// empty for phantom references.
func (f *File) PackageDir(ref deps.Ref) string {
	if ref.IsPhantom() {
		return ""
	}
	return filepath.Join(fileutil.PackagesDir(), ref.Name, ref.Version)
}

// Path returns the location of the lockfile.
func (f *File) Path() string {
	return lockFilePath(f.projectDir)
}

// Save writes the lockfile if its content changed.
func (f *File) Save() error {
	isDirty, err := f.isDirty()
	if err != nil {
		return err
	}
	if !isDirty {
		return nil
	}
	return cuecfg.WriteFile(f.Path(), f)
}

func (f *File) isDirty() (bool, error) {
	currentHash, err := cachehash.JSON(f)
	if err != nil {
		return false, err
	}
	fileSystemLockFile, err := Open(f.projectDir, nil)
	if err != nil {
		return false, err
	}
	filesystemHash, err := cachehash.JSON(fileSystemLockFile)
	if err != nil {
		return false, err
	}
	return currentHash != filesystemHash || !fileutil.IsFile(f.Path()), nil
}

func lockFilePath(projectDir string) string {
	return filepath.Join(projectDir, FileName)
}
