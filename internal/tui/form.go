// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/shayne/dialogmgr/internal/dialog"
	"github.com/shayne/dialogmgr/internal/tui/dialogs"
)

// chooseWithForm asks req with a huh select. huh puts the cursor on the
// bound value, so the cursor starts on the default and FocusedIndex is not
// used; enter then picks the default as the other renderers do.
func (b *Backend) chooseWithForm(req dialog.Request) (int, bool, error) {
	choice := req.DefaultIndex
	options := make([]huh.Option[int], 0, len(req.Options))
	for i, label := range req.Options {
		if i == req.DefaultIndex {
			label += " (default)"
		}
		options = append(options, huh.NewOption(label, i))
	}
	title := req.Title
	if glyph := dialogs.IconGlyph(string(req.Icon)); glyph != "" {
		title = strings.TrimSpace(glyph + " " + title)
	}
	fields := []huh.Field{
		huh.NewSelect[int]().
			Title(title).
			Description(req.Message).
			Options(options...).
			Value(&choice),
	}
	doNotAsk := false
	if label := b.checkboxLabel(req); label != "" {
		fields = append(fields, huh.NewConfirm().Title(label).Value(&doNotAsk))
	}
	form := huh.NewForm(huh.NewGroup(fields...))
	form.WithInput(b.in).WithOutput(b.out).WithTheme(promptTheme(b.out))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return len(req.Options) - 1, false, nil
		}
		return dialog.NoSelection, false, err
	}
	return choice, doNotAsk, nil
}
