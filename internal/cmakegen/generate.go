// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package cmakegen writes the CMake toolchain and dependency files the
// downstream build consumes.
package cmakegen

import (
	"bufio"
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"

	"github.com/pkg/errors"

	"go.jetify.com/ropescfg/internal/build"
)

//go:embed tmpl/*
var tmplFS embed.FS

var (
	tmplMu    sync.Mutex
	tmplCache = map[string]*template.Template{}
)

func loadTemplate(tmplName string) (*template.Template, error) {
	tmplMu.Lock()
	defer tmplMu.Unlock()

	tmplKey := tmplName + ".tmpl"
	if tmpl := tmplCache[tmplKey]; tmpl != nil {
		return tmpl, nil
	}
	tmpl := template.New(tmplKey).Funcs(templateFuncs)
	glob := "tmpl/" + tmplKey
	tmpl, err := tmpl.ParseFS(tmplFS, glob)
	if err != nil {
		return nil, errors.Wrapf(err, "parse embedded tmplFS glob %q", glob)
	}
	tmplCache[tmplKey] = tmpl
	return tmpl, nil
}

func writeFromTemplate(dir string, data any, tmplName, generatedName string) error {
	tmpl, err := loadTemplate(tmplName)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return errors.Wrapf(err, "execute template %s", tmplName)
	}

	// CMake re-runs configuration when a file it included changes, so only
	// touch files whose content is different.
	err = overwriteFileIfChanged(filepath.Join(dir, generatedName), buf.Bytes(), 0o644)
	if err != nil {
		return errors.Wrapf(err, "write %s to file", generatedName)
	}
	return nil
}

// overwriteFileIfChanged checks that the contents of f == data, and overwrites
// f if they differ. It also ensures that f's permissions are set to perm.
func overwriteFileIfChanged(path string, data []byte, perm os.FileMode) error {
	flag := os.O_RDWR | os.O_CREATE
	file, err := os.OpenFile(path, flag, perm)
	if errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}

		// Definitely a new file if we had to make the directory.
		return os.WriteFile(path, data, perm)
	}
	if err != nil {
		return err
	}
	defer file.Close()

	fi, err := file.Stat()
	if err != nil || fi.Mode().Perm() != perm {
		if err := file.Chmod(perm); err != nil {
			return err
		}
	}

	// Fast path - check if the lengths differ.
	if err == nil && fi.Size() != int64(len(data)) {
		return overwriteFile(file, data, 0)
	}

	r := bufio.NewReader(file)
	for offset := range data {
		b, err := r.ReadByte()
		if err != nil || b != data[offset] {
			return overwriteFile(file, data, offset)
		}
	}
	return nil
}

// overwriteFile truncates f to len(data) and writes data[offset:] beginning at
// the same offset in f.
func overwriteFile(f *os.File, data []byte, offset int) error {
	err := f.Truncate(int64(len(data)))
	if err != nil {
		return err
	}
	_, err = f.WriteAt(data[offset:], int64(offset))
	return err
}

// cmakePath turns a native path into the forward-slash form CMake expects.
func cmakePath(p string) string {
	return filepath.ToSlash(p)
}

var templateFuncs = template.FuncMap{
	"cmakePath": cmakePath,
	"upper":     strings.ToUpper,
	"version":   func() string { return build.Version },
}
