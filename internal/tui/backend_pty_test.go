// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package tui

import (
	"os"
	"testing"
	"time"

	"github.com/creack/pty"

	"github.com/shayne/dialogmgr/internal/dialog"
)

func TestUseDialogPromptsPTY(t *testing.T) {
	master, slave, err := pty.Open()
	if err != nil {
		t.Skipf("open pty: %v", err)
	}
	defer master.Close()
	defer slave.Close()
	if !useDialogPrompts(slave, slave) {
		t.Fatalf("expected pty to use dialog prompts")
	}
	if useDialogPrompts(slave, nil) {
		t.Fatalf("expected nil output to use line prompts")
	}
}

func TestPlainRendererOnPTY(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	master, slave, err := pty.Open()
	if err != nil {
		t.Skipf("open pty: %v", err)
	}
	defer master.Close()
	defer slave.Close()
	go drainPTY(master)
	if _, err := master.Write([]byte("3\n")); err != nil {
		t.Fatalf("write pty: %v", err)
	}

	b := NewBackend(slave, slave, WithRenderer(RendererPlain))
	done := make(chan int, 1)
	go func() {
		idx, err := b.PresentChoice(yesNoCancel())
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		done <- idx
	}()
	select {
	case idx := <-done:
		if idx != 2 {
			t.Fatalf("expected index 2, got %d", idx)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("plain prompt did not return")
	}
}

const (
	keyEnterSeq = "\r"
	keyTabSeq   = "\t"
	keyCtrlCSeq = "\x03"
	keyDownSeq  = "\x1b[B"
)

type choiceOutcome struct {
	idx int
	err error
}

// presentOnPTY runs PresentChoice on a fresh pty and types keys into it
// once the program has taken over the terminal.
func presentOnPTY(t *testing.T, renderer Renderer, req dialog.Request, keys ...string) int {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	t.Setenv("TERM", "xterm-256color")

	master, slave, err := pty.Open()
	if err != nil {
		t.Skipf("open pty: %v", err)
	}
	defer master.Close()
	defer slave.Close()
	if err := pty.Setsize(slave, &pty.Winsize{Rows: 24, Cols: 80}); err != nil {
		t.Fatalf("set pty size: %v", err)
	}
	go drainPTY(master)

	b := NewBackend(slave, slave, WithRenderer(renderer))
	done := make(chan choiceOutcome, 1)
	go func() {
		idx, err := b.PresentChoice(req)
		done <- choiceOutcome{idx: idx, err: err}
	}()

	time.Sleep(300 * time.Millisecond)
	for _, k := range keys {
		if _, err := master.Write([]byte(k)); err != nil {
			t.Fatalf("write pty: %v", err)
		}
		time.Sleep(100 * time.Millisecond)
	}
	select {
	case res := <-done:
		if res.err != nil {
			t.Fatalf("%s renderer: unexpected error: %v", renderer, res.err)
		}
		return res.idx
	case <-time.After(5 * time.Second):
		t.Fatalf("%s renderer did not return", renderer)
		return dialog.NoSelection
	}
}

func drainPTY(master *os.File) {
	buf := make([]byte, 4096)
	for {
		if _, err := master.Read(buf); err != nil {
			return
		}
	}
}

func TestTerminalRenderersEnterPicksDefault(t *testing.T) {
	for _, renderer := range []Renderer{RendererDialog, RendererForm} {
		if idx := presentOnPTY(t, renderer, yesNoCancel(), keyEnterSeq); idx != 0 {
			t.Fatalf("%s renderer: expected default 0 on enter, got %d", renderer, idx)
		}
	}
}

func TestDialogRendererArrowPicksCursor(t *testing.T) {
	if idx := presentOnPTY(t, RendererDialog, yesNoCancel(), keyDownSeq, keyEnterSeq); idx != 2 {
		t.Fatalf("expected cursor moved from focus 1 to 2, got %d", idx)
	}
}

func TestTerminalRenderersCtrlCPicksLastOption(t *testing.T) {
	for _, renderer := range []Renderer{RendererDialog, RendererForm} {
		opt := &fakeDoNotAsk{hideable: true}
		req := yesNoCancel()
		req.DoNotAsk = opt
		if idx := presentOnPTY(t, renderer, req, keyCtrlCSeq); idx != 2 {
			t.Fatalf("%s renderer: expected cancel to map to 2, got %d", renderer, idx)
		}
		if opt.calls != 0 {
			t.Fatalf("%s renderer: expected cancel not to be recorded, got %d calls", renderer, opt.calls)
		}
	}
}

func TestDialogRendererRecordsDoNotAsk(t *testing.T) {
	opt := &fakeDoNotAsk{hideable: true}
	req := yesNoCancel()
	req.DoNotAsk = opt
	if idx := presentOnPTY(t, RendererDialog, req, keyTabSeq, keyEnterSeq); idx != 0 {
		t.Fatalf("expected default 0, got %d", idx)
	}
	if opt.calls != 1 || opt.shown || opt.exitCode != 0 {
		t.Fatalf("expected SetToBeShown(false, 0), got %#v", opt)
	}
}

func TestFormRendererRecordsDoNotAsk(t *testing.T) {
	opt := &fakeDoNotAsk{hideable: true}
	req := yesNoCancel()
	req.DoNotAsk = opt
	if idx := presentOnPTY(t, RendererForm, req, keyEnterSeq, "y"); idx != 0 {
		t.Fatalf("expected default 0, got %d", idx)
	}
	if opt.calls != 1 || opt.shown || opt.exitCode != 0 {
		t.Fatalf("expected SetToBeShown(false, 0), got %#v", opt)
	}
}
