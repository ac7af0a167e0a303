// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialogs

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
)

type Option struct {
	Label string
	Value string
}

func (o Option) text() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}

func indexOfValue(options []Option, value string) int {
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

// SelectDialog picks one value. The cursor starts on the default and enter
// picks it; arrows or a digit move the cursor first.
type SelectDialog struct {
	styled
	id          string
	title       string
	description string
	options     []Option
	cursor      optionCursor
	result      *Result
}

func NewSelectDialog(id, title, description string, options []Option, defaultValue string) *SelectDialog {
	def := indexOfValue(options, defaultValue)
	return &SelectDialog{
		id:          id,
		title:       title,
		description: description,
		options:     options,
		cursor:      newOptionCursor(len(options), def, def),
	}
}

func (d *SelectDialog) ID() string    { return d.id }
func (d *SelectDialog) Init() tea.Cmd { return nil }

func (d *SelectDialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || len(d.options) == 0 {
		return d, nil
	}
	switch key.String() {
	case "up", "k", "shift+tab":
		d.cursor.move(-1)
	case "down", "j", "tab":
		d.cursor.move(1)
	case "enter":
		d.pick(d.cursor.target())
	case "esc", "ctrl+c":
		d.result = &Result{Cancelled: true, Index: -1}
	default:
		if idx, ok := digitIndex(key.Text, len(d.options)); ok {
			d.cursor.jump(idx)
		}
	}
	return d, nil
}

func (d *SelectDialog) pick(idx int) {
	d.result = &Result{Choice: d.options[idx].Value, Index: idx}
}

func (d *SelectDialog) View() string {
	lines := headerLines(d.st.Title.Render, d.st.Message.Render, d.title, d.description)
	for i, opt := range d.options {
		marker, style := " ", d.st.Option
		if i == d.cursor.pos {
			marker, style = ">", d.st.Cursor
		}
		line := fmt.Sprintf("%s %d) %s", marker, i+1, opt.text())
		if i == d.cursor.def {
			line += d.st.Default.Render(" (default)")
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

func (d *SelectDialog) Cursor() *tea.Cursor { return nil }

func (d *SelectDialog) Result() (*Result, bool) {
	if d.result == nil {
		return nil, false
	}
	return d.result, true
}

// SubmitDefault picks the default value, or the first option when there is
// none.
func (d *SelectDialog) SubmitDefault() {
	if len(d.options) == 0 {
		return
	}
	d.pick(max(d.cursor.def, 0))
}

// MultiSelectDialog picks any number of values. Space or a digit toggles
// an option; enter submits the checked values in option order.
type MultiSelectDialog struct {
	styled
	id          string
	title       string
	description string
	options     []Option
	cursor      optionCursor
	checked     []bool
	result      *Result
}

func NewMultiSelectDialog(id, title, description string, options []Option, selected []string) *MultiSelectDialog {
	checked := make([]bool, len(options))
	for _, value := range selected {
		if i := indexOfValue(options, value); i >= 0 {
			checked[i] = true
		}
	}
	return &MultiSelectDialog{
		id:          id,
		title:       title,
		description: description,
		options:     options,
		cursor:      newOptionCursor(len(options), -1, 0),
		checked:     checked,
	}
}

func (d *MultiSelectDialog) ID() string    { return d.id }
func (d *MultiSelectDialog) Init() tea.Cmd { return nil }

func (d *MultiSelectDialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}
	switch key.String() {
	case "up", "k", "shift+tab":
		d.cursor.move(-1)
	case "down", "j", "tab":
		d.cursor.move(1)
	case "space", " ", "x":
		d.toggle(d.cursor.pos)
	case "enter":
		d.SubmitDefault()
	case "esc", "ctrl+c":
		d.result = &Result{Cancelled: true, Index: -1}
	default:
		if idx, ok := digitIndex(key.Text, len(d.options)); ok {
			d.cursor.jump(idx)
			d.toggle(idx)
		}
	}
	return d, nil
}

func (d *MultiSelectDialog) toggle(idx int) {
	if idx >= 0 && idx < len(d.checked) {
		d.checked[idx] = !d.checked[idx]
	}
}

func (d *MultiSelectDialog) View() string {
	lines := headerLines(d.st.Title.Render, d.st.Message.Render, d.title, d.description)
	for i, opt := range d.options {
		box := "[ ]"
		if d.checked[i] {
			box = "[x]"
		}
		marker, style := " ", d.st.Option
		if i == d.cursor.pos {
			marker, style = ">", d.st.Cursor
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s %s %d) %s", marker, box, i+1, opt.text())))
	}
	return strings.Join(lines, "\n")
}

func (d *MultiSelectDialog) Cursor() *tea.Cursor { return nil }

func (d *MultiSelectDialog) Result() (*Result, bool) {
	if d.result == nil {
		return nil, false
	}
	return d.result, true
}

// SubmitDefault submits the values checked so far.
func (d *MultiSelectDialog) SubmitDefault() {
	values := []string{}
	for i, opt := range d.options {
		if d.checked[i] {
			values = append(values, opt.Value)
		}
	}
	d.result = &Result{Choices: values, Index: -1}
}

func headerLines(title, message func(...string) string, titleText, description string) []string {
	lines := []string{}
	if titleText != "" {
		lines = append(lines, title(titleText))
	}
	if description != "" {
		lines = append(lines, message(description))
	}
	return lines
}
