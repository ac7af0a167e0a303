// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialogs

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// ConfirmDialog asks a yes/no question. Its Result reports Index 0 for yes
// and 1 for no. Esc cancels, which counts as no.
type ConfirmDialog struct {
	styled
	id          string
	title       string
	description string
	defaultYes  bool
	result      *Result
	input       textinput.Model
	err         string
}

func NewConfirmDialog(id, title, description string, defaultYes bool) *ConfirmDialog {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 3
	ti.SetVirtualCursor(true)
	ti.Focus()
	return &ConfirmDialog{id: id, title: title, description: description, defaultYes: defaultYes, input: ti}
}

func (d *ConfirmDialog) ID() string { return d.id }
func (d *ConfirmDialog) Init() tea.Cmd {
	return d.input.Focus()
}

func (d *ConfirmDialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			value := strings.ToLower(strings.TrimSpace(d.input.Value()))
			if value == "" {
				d.answer(d.defaultYes)
				return d, nil
			}
			if confirmed, ok := parseConfirmInput(value); ok {
				d.answer(confirmed)
				return d, nil
			}
			d.err = "enter y or n"
			d.input.SetValue("")
			return d, nil
		case "esc", "ctrl+c":
			d.result = &Result{Cancelled: true, Index: 1}
			return d, nil
		}
	}
	d.err = ""
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *ConfirmDialog) answer(confirmed bool) {
	index := 1
	if confirmed {
		index = 0
	}
	d.result = &Result{Confirmed: confirmed, Index: index}
	d.err = ""
}

func (d *ConfirmDialog) View() string {
	lines := []string{}
	if d.title != "" {
		lines = append(lines, d.st.Title.Render(d.title))
	}
	if d.description != "" {
		lines = append(lines, d.st.Message.Render(d.description))
	}
	prompt := "Confirm [y/N]"
	if d.defaultYes {
		prompt = "Confirm [Y/n]"
	}
	lines = append(lines, d.st.Label.Render(prompt)+" "+d.input.View())
	if d.err != "" {
		lines = append(lines, d.st.Error.Render(d.err))
	}
	return strings.Join(lines, "\n")
}

func (d *ConfirmDialog) Cursor() *tea.Cursor { return nil }

func (d *ConfirmDialog) Result() (*Result, bool) {
	if d.result == nil {
		return nil, false
	}
	return d.result, true
}

// Confirmed reports whether the dialog finished with a yes.
func (d *ConfirmDialog) Confirmed() bool {
	return d.result != nil && d.result.Confirmed
}

func (d *ConfirmDialog) SubmitDefault() {
	d.answer(d.defaultYes)
}
