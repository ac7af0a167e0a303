// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialogs

import (
	"cmp"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// Field is one text entry of a FormDialog.
type Field struct {
	ID          string
	Title       string
	Description string
	Placeholder string
	Required    bool
	Secret      bool
	Default     string
	Validate    func(string) error
}

func (f Field) label() string {
	return cmp.Or(f.Title, f.ID)
}

type formEntry struct {
	field Field
	input textinput.Model
}

// FormDialog collects text values. Enter moves to the next field and
// submits from the last one; every field is checked on submit and the
// first invalid one takes focus.
type FormDialog struct {
	styled
	id          string
	title       string
	description string
	entries     []formEntry
	focused     int
	result      *Result
	err         string
}

func NewFormDialog(id, title, description string, fields []Field) *FormDialog {
	d := &FormDialog{id: id, title: title, description: description}
	for _, f := range fields {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = cmp.Or(f.Placeholder, f.Description)
		if f.Secret {
			ti.EchoMode = textinput.EchoPassword
		}
		ti.SetValue(f.Default)
		ti.CursorEnd()
		ti.SetVirtualCursor(true)
		d.entries = append(d.entries, formEntry{field: f, input: ti})
	}
	if len(d.entries) > 0 {
		d.entries[0].input.Focus()
	}
	return d
}

func (d *FormDialog) ID() string { return d.id }

func (d *FormDialog) Init() tea.Cmd {
	if len(d.entries) == 0 {
		return nil
	}
	return d.entries[d.focused].input.Focus()
}

func (d *FormDialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if len(d.entries) == 0 {
		return d, nil
	}
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			if d.focused < len(d.entries)-1 {
				return d, d.focus(d.focused + 1)
			}
			return d, d.submit()
		case "tab", "down":
			return d, d.focus(d.focused + 1)
		case "shift+tab", "up":
			return d, d.focus(d.focused - 1)
		case "esc", "ctrl+c":
			d.result = &Result{Cancelled: true, Index: -1}
			return d, nil
		}
	}
	switch msg.(type) {
	case tea.KeyPressMsg, tea.PasteMsg:
		d.err = ""
		var cmd tea.Cmd
		d.entries[d.focused].input, cmd = d.entries[d.focused].input.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *FormDialog) View() string {
	lines := []string{}
	if d.title != "" {
		lines = append(lines, d.st.Title.Render(d.title))
	}
	if d.description != "" {
		lines = append(lines, d.st.Muted.Render(d.description))
	}
	for _, e := range d.entries {
		if label := d.entryLabel(e.field); label != "" {
			lines = append(lines, d.st.Label.Render(label))
		}
		lines = append(lines, e.input.View())
	}
	if d.err != "" {
		lines = append(lines, d.st.Error.Render(d.err))
	}
	return strings.Join(lines, "\n")
}

// entryLabel is empty for a lone field that repeats the dialog title.
func (d *FormDialog) entryLabel(f Field) string {
	label := f.label()
	if len(d.entries) == 1 && strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(d.title)) {
		return ""
	}
	if f.Required {
		label += "*"
	}
	return label
}

func (d *FormDialog) Cursor() *tea.Cursor {
	if len(d.entries) == 0 {
		return nil
	}
	return d.entries[d.focused].input.Cursor()
}

func (d *FormDialog) Result() (*Result, bool) {
	if d.result == nil {
		return nil, false
	}
	return d.result, true
}

// SubmitDefault submits the fields as they stand, defaults included. An
// invalid field leaves the dialog open with its error shown.
func (d *FormDialog) SubmitDefault() {
	d.submit()
}

func (d *FormDialog) submit() tea.Cmd {
	values := make(map[string]string, len(d.entries))
	for i, e := range d.entries {
		value := strings.TrimSpace(e.input.Value())
		if e.field.Required && value == "" {
			d.err = "please enter a value for " + e.field.label()
			return d.focus(i)
		}
		if e.field.Validate != nil {
			if err := e.field.Validate(value); err != nil {
				d.err = err.Error()
				return d.focus(i)
			}
		}
		values[e.field.ID] = value
	}
	d.err = ""
	d.result = &Result{Values: values, Index: -1}
	return nil
}

func (d *FormDialog) focus(next int) tea.Cmd {
	n := len(d.entries)
	next = (next + n) % n
	if next == d.focused {
		return nil
	}
	d.entries[d.focused].input.Blur()
	d.focused = next
	return d.entries[d.focused].input.Focus()
}
