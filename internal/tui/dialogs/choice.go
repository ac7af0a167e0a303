// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialogs

import (
	"io"

	"github.com/shayne/dialogmgr/internal/tui/theme"
)

// optionCursor tracks the highlighted row of a choice list. Until the user
// moves it, an implicit confirm picks the default rather than the focused
// row.
type optionCursor struct {
	pos   int
	def   int
	count int
	moved bool
}

func newOptionCursor(count, def, focus int) optionCursor {
	if def < 0 || def >= count {
		def = -1
	}
	if focus < 0 || focus >= count {
		focus = max(def, 0)
	}
	return optionCursor{pos: focus, def: def, count: count}
}

func (c *optionCursor) move(delta int) {
	if c.count == 0 {
		return
	}
	c.pos = (c.pos + delta + c.count) % c.count
	c.moved = true
}

func (c *optionCursor) jump(idx int) {
	if idx < 0 || idx >= c.count {
		return
	}
	c.pos = idx
	c.moved = true
}

// target is the row enter picks.
func (c optionCursor) target() int {
	if !c.moved && c.def >= 0 {
		return c.def
	}
	return c.pos
}

// styled is embedded by dialogs whose View uses theme styles. The zero
// value renders plain text.
type styled struct {
	st theme.DialogStyles
}

func (s *styled) SetStyles(st theme.DialogStyles) { s.st = st }

type styleSetter interface {
	SetStyles(theme.DialogStyles)
}

// applyStyles styles d for the stream it is drawn on.
func applyStyles(d Dialog, out io.Writer) {
	s, ok := d.(styleSetter)
	if !ok {
		return
	}
	s.SetStyles(stylesFor(out))
}

func stylesFor(out io.Writer) theme.DialogStyles {
	if t := theme.ForOutput(out); t.Enabled {
		return t.Dialog
	}
	return theme.DialogStyles{}
}

// digitIndex maps a single typed digit to a 0-based option index.
func digitIndex(text string, count int) (int, bool) {
	if len(text) != 1 || text[0] < '1' || text[0] > '9' {
		return 0, false
	}
	idx := int(text[0] - '1')
	if idx >= count {
		return 0, false
	}
	return idx, true
}
