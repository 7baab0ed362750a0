// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package project

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"go.jetify.com/ropescfg/internal/buildconfig"
	"go.jetify.com/ropescfg/internal/debug"
	"go.jetify.com/ropescfg/internal/project/projopt"
)

// Watch runs a pass, then another one every time ropes.json changes, until
// ctx is done. onPass sees the outcome of every pass. A failed pass does not
// end the watch; only failing to open the project or to watch it does.
func Watch(ctx context.Context, opts *projopt.Opts, onPass func(*Result, error)) error {
	p, err := Open(opts)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WithStack(err)
	}
	defer watcher.Close()

	// Editors often save by renaming a temporary file over the original, so
	// watch the folder rather than the file.
	if err := watcher.Add(p.projectDir); err != nil {
		return errors.WithStack(err)
	}
	cfgPath := filepath.Join(p.projectDir, buildconfig.DefaultName)

	onPass(p.Configure(ctx))
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != cfgPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			debug.Log("watch: %s", event)
			p, err := Open(opts)
			if err != nil {
				onPass(nil, err)
				continue
			}
			onPass(p.Configure(ctx))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.WithStack(err)
		}
	}
}
