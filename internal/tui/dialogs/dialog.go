// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dialogs holds the terminal widgets the tui backend presents. Every
// widget is a bubbletea fragment that records its own Result, so a caller
// can read the outcome from the widget once it has been shown.
package dialogs

import tea "charm.land/bubbletea/v2"

type Dialog interface {
	ID() string
	Init() tea.Cmd
	Update(tea.Msg) (Dialog, tea.Cmd)
	View() string
	Cursor() *tea.Cursor
}

type Result struct {
	Cancelled bool
	Values    map[string]string
	Choice    string
	Choices   []string
	Confirmed bool
	// Index is the picked option for message and select dialogs; confirm
	// dialogs report 0 for yes and 1 for no. It is -1 when no single option
	// applies: forms, multi-selects, and a cancelled select.
	Index int
	// DoNotAsk is set when the user ticked "do not ask again".
	DoNotAsk bool
}
