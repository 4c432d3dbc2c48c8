// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slbuild

import (
	"context"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// WatchDelay is how long Watch waits after the last change before
// it rebuilds, so that editors saving several files trigger one build.
var WatchDelay = 200 * time.Millisecond

// Tracked reports whether a change to fn can affect a build.
func (c *Config) Tracked(fn string) bool {
	return c.IsShader(fn) || c.IsDependency(fn)
}

// Watch runs a build, and then another one after every change to a
// tracked file in the shader or include folders, until ctx is done.
// Builds run one at a time on the calling goroutine.
func (b *Builder) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if _, err := b.Run(); err != nil {
		return err
	}
	if err := w.Add(b.Config.Dir); err != nil {
		return err
	}
	for _, d := range b.IncludeDirs() {
		if err := w.Add(d); err != nil {
			slog.Warn("cannot watch include folder", "dir", d, "err", err)
		}
	}
	slog.Info("watching for changes", "dir", b.Config.Dir)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 || !b.Config.Tracked(ev.Name) {
				continue
			}
			slog.Debug("changed", "file", ev.Name, "op", ev.Op)
			pending = time.After(WatchDelay)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		case <-pending:
			pending = nil
			errors.Log1(b.Run())
		}
	}
}
