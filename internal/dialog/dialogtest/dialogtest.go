// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dialogtest installs scripted dialog backends for tests.
package dialogtest

import (
	"slices"
	"testing"

	"github.com/shayne/dialogmgr/internal/dialog"
)

// Install registers a scripted backend answering with answers and restores
// the previous backend when the test ends.
func Install(tb testing.TB, reg *dialog.Registry, answers ...int) *dialog.Scripted {
	tb.Helper()
	script := dialog.NewScripted(answers...)
	restore := reg.Register(script)
	tb.Cleanup(restore)
	return script
}

// NewManager returns a manager over a fresh registry with a scripted
// backend installed.
func NewManager(tb testing.TB, answers ...int) (*dialog.Manager, *dialog.Scripted) {
	tb.Helper()
	reg := dialog.NewRegistry(nil)
	script := Install(tb, reg, answers...)
	return dialog.New(reg), script
}

// ExpectOptions fails the test unless req offered exactly want, in order.
func ExpectOptions(tb testing.TB, req dialog.Request, want ...string) {
	tb.Helper()
	if !slices.Equal(req.Options, want) {
		tb.Fatalf("expected options %q, got %q", want, req.Options)
	}
}

// ExpectExhausted fails the test if queued answers were never used.
func ExpectExhausted(tb testing.TB, script *dialog.Scripted) {
	tb.Helper()
	if n := script.Remaining(); n != 0 {
		tb.Fatalf("expected all scripted answers to be used, %d left", n)
	}
}
