// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui is the production dialog backend: bubbletea dialogs or huh
// forms on a terminal, line prompts everywhere else.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/shayne/dialogmgr/internal/dialog"
	"github.com/shayne/dialogmgr/internal/tui/dialogs"
)

// ErrUnsupportedDescriptor is returned by Present for descriptors that are
// not terminal dialogs.
var ErrUnsupportedDescriptor = errors.New("tui: unsupported dialog descriptor")

type Renderer string

const (
	RendererDialog Renderer = "dialog"
	RendererForm   Renderer = "form"
	RendererPlain  Renderer = "plain"
)

func ParseRenderer(value string) (Renderer, error) {
	switch r := Renderer(strings.ToLower(strings.TrimSpace(value))); r {
	case "":
		return RendererDialog, nil
	case RendererDialog, RendererForm, RendererPlain:
		return r, nil
	default:
		return "", fmt.Errorf("unknown renderer %q (expected dialog, form, or plain)", value)
	}
}

// Backend presents dialogs on in/out. Calls are serialized; the terminal
// shows one dialog at a time.
type Backend struct {
	mu            sync.Mutex
	in            io.Reader
	out           io.Writer
	renderer      Renderer
	doNotAskLabel string
}

type Option func(*Backend)

func WithRenderer(r Renderer) Option {
	return func(b *Backend) {
		if r != "" {
			b.renderer = r
		}
	}
}

// WithDoNotAskLabel sets the checkbox label used when a DoNotAskOption has
// no message of its own.
func WithDoNotAskLabel(label string) Option {
	return func(b *Backend) {
		if strings.TrimSpace(label) != "" {
			b.doNotAskLabel = label
		}
	}
}

func NewBackend(in io.Reader, out io.Writer, opts ...Option) *Backend {
	b := &Backend{in: in, out: out, renderer: RendererDialog, doNotAskLabel: "Do not ask again"}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) Present(d dialog.Descriptor) error {
	td, ok := d.(dialogs.Dialog)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedDescriptor, d)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := b.run(td)
	return err
}

func (b *Backend) PresentChoice(req dialog.Request) (int, error) {
	if err := req.Validate(); err != nil {
		return dialog.NoSelection, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	var (
		idx      int
		doNotAsk bool
		err      error
	)
	if b.renderer == RendererForm && b.interactive() {
		idx, doNotAsk, err = b.chooseWithForm(req)
	} else {
		idx, doNotAsk, err = b.chooseWithDialog(req)
	}
	if err != nil {
		return dialog.NoSelection, err
	}
	recordDoNotAsk(req, idx, doNotAsk)
	return idx, nil
}

func (b *Backend) interactive() bool {
	return b.renderer != RendererPlain && useDialogPrompts(b.in, b.out)
}

func (b *Backend) run(d dialogs.Dialog) (*dialogs.Result, error) {
	if b.interactive() {
		return dialogs.Run(b.in, b.out, d)
	}
	return dialogs.RunLines(b.in, b.out, d)
}

func (b *Backend) chooseWithDialog(req dialog.Request) (int, bool, error) {
	md := dialogs.NewMessageDialog("message", dialogs.MessageSpec{
		Title:    req.Title,
		Message:  req.Message,
		Icon:     string(req.Icon),
		Options:  req.Options,
		Default:  req.DefaultIndex,
		Focused:  req.FocusedIndex,
		DoNotAsk: b.checkboxLabel(req),
	})
	res, err := b.run(md)
	if err != nil {
		return dialog.NoSelection, false, err
	}
	if res == nil {
		return len(req.Options) - 1, false, nil
	}
	return res.Index, res.DoNotAsk, nil
}

func (b *Backend) checkboxLabel(req dialog.Request) string {
	if req.DoNotAsk == nil || !req.DoNotAsk.CanBeHidden() {
		return ""
	}
	if label := strings.TrimSpace(req.DoNotAsk.DoNotAskMessage()); label != "" {
		return label
	}
	return b.doNotAskLabel
}

// recordDoNotAsk reports the checkbox state back to the option. A cancel,
// the last option, is only recorded when the option asks for it.
func recordDoNotAsk(req dialog.Request, idx int, checked bool) {
	opt := req.DoNotAsk
	if opt == nil || !opt.CanBeHidden() {
		return
	}
	cancel := len(req.Options) > 1 && idx == len(req.Options)-1
	if cancel && !opt.ShouldSaveOptionsOnCancel() {
		return
	}
	opt.SetToBeShown(!checked, idx)
}

func useDialogPrompts(in io.Reader, out io.Writer) bool {
	inFile, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(inFile.Fd())) {
		return false
	}
	outFile, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(outFile.Fd())) {
		return false
	}
	return true
}
