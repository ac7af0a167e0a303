// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialogs

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/shayne/dialogmgr/internal/tui/theme"
)

const maxTyped = 64

// MessageSpec configures a MessageDialog. Default and Focused index Options.
type MessageSpec struct {
	Title   string
	Message string
	Icon    string
	Options []string
	Default int
	Focused int
	// DoNotAsk is the label of the "do not ask again" checkbox; empty hides it.
	DoNotAsk string
}

// MessageDialog presents a message with a row of labelled options. The
// cursor starts on the focused option. Enter picks the default until the
// cursor is moved, then the cursor; whatever was typed, a number or an
// option label, wins over both.
type MessageDialog struct {
	styled
	id       string
	spec     MessageSpec
	cursor   optionCursor
	typed    string
	doNotAsk bool
	result   *Result
	err      string
}

func NewMessageDialog(id string, spec MessageSpec) *MessageDialog {
	return &MessageDialog{id: id, spec: spec, cursor: newOptionCursor(len(spec.Options), spec.Default, spec.Focused)}
}

func (d *MessageDialog) ID() string    { return d.id }
func (d *MessageDialog) Init() tea.Cmd { return nil }

func (d *MessageDialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || len(d.spec.Options) == 0 {
		return d, nil
	}
	switch key.String() {
	case "up", "left", "shift+tab":
		d.move(-1)
		return d, nil
	case "down", "right":
		d.move(1)
		return d, nil
	case "tab":
		if d.spec.DoNotAsk != "" {
			d.doNotAsk = !d.doNotAsk
			return d, nil
		}
		d.move(1)
		return d, nil
	case "backspace":
		if d.typed != "" {
			runes := []rune(d.typed)
			d.typed = string(runes[:len(runes)-1])
		}
		return d, nil
	case "enter":
		d.resolve()
		return d, nil
	case "esc", "ctrl+c":
		last := len(d.spec.Options) - 1
		d.result = &Result{Cancelled: true, Index: last, Choice: d.spec.Options[last], DoNotAsk: d.doNotAsk}
		return d, nil
	}
	if key.Text != "" && len(d.typed) < maxTyped {
		d.typed += key.Text
		d.err = ""
	}
	return d, nil
}

func (d *MessageDialog) move(delta int) {
	d.cursor.move(delta)
	d.typed = ""
	d.err = ""
}

func (d *MessageDialog) resolve() {
	text := strings.TrimSpace(d.typed)
	d.typed = ""
	if d.spec.DoNotAsk != "" && strings.HasSuffix(text, "!") {
		d.doNotAsk = true
		text = strings.TrimSpace(strings.TrimSuffix(text, "!"))
	}
	idx := d.cursor.target()
	if text != "" {
		matched, err := matchOption(text, d.spec.Options)
		if err != nil {
			d.err = err.Error()
			return
		}
		idx = matched
	}
	d.choose(idx)
}

func (d *MessageDialog) choose(idx int) {
	d.err = ""
	d.result = &Result{Index: idx, Choice: d.spec.Options[idx], DoNotAsk: d.doNotAsk}
}

func (d *MessageDialog) View() string {
	st := d.st
	lines := []string{}
	title := d.spec.Title
	if glyph := IconGlyph(d.spec.Icon); glyph != "" {
		title = strings.TrimSpace(iconStyle(st, d.spec.Icon).Render(glyph) + " " + title)
	}
	if title != "" {
		lines = append(lines, st.Title.Render(title))
	}
	if d.spec.Message != "" {
		lines = append(lines, st.Message.Render(d.spec.Message))
	}
	for i, opt := range d.spec.Options {
		marker := " "
		style := st.Option
		if i == d.cursor.pos {
			marker = ">"
			style = st.Cursor
		}
		line := fmt.Sprintf("%s %d) %s", marker, i+1, opt)
		if i == d.spec.Default {
			line += st.Default.Render(" (default)")
		}
		lines = append(lines, style.Render(line))
	}
	if d.spec.DoNotAsk != "" {
		box := "[ ]"
		if d.doNotAsk {
			box = "[x]"
		}
		lines = append(lines, st.Muted.Render(box+" "+d.spec.DoNotAsk+" (tab, or end with !)"))
	}
	if d.typed != "" {
		lines = append(lines, st.Label.Render("> "+d.typed))
	}
	if d.err != "" {
		lines = append(lines, st.Error.Render(d.err))
	}
	return strings.Join(lines, "\n")
}

func (d *MessageDialog) Cursor() *tea.Cursor { return nil }

func (d *MessageDialog) Result() (*Result, bool) {
	if d.result == nil {
		return nil, false
	}
	return d.result, true
}

// Selected returns the picked index, or -1 while the dialog is open.
func (d *MessageDialog) Selected() int {
	if d.result == nil {
		return -1
	}
	return d.result.Index
}

// DoNotAskChecked reports the state of the "do not ask again" checkbox.
func (d *MessageDialog) DoNotAskChecked() bool {
	return d.doNotAsk
}

func (d *MessageDialog) SubmitDefault() {
	if d.spec.Default < 0 || d.spec.Default >= len(d.spec.Options) {
		return
	}
	d.choose(d.spec.Default)
}

// IconGlyph returns the single-character marker drawn for an icon name.
func IconGlyph(icon string) string {
	switch icon {
	case "info":
		return "i"
	case "warning":
		return "!"
	case "error":
		return "x"
	case "question":
		return "?"
	default:
		return ""
	}
}

func iconStyle(st theme.DialogStyles, icon string) lipgloss.Style {
	switch icon {
	case "info":
		return st.IconInfo
	case "warning":
		return st.IconWarning
	case "error":
		return st.IconError
	default:
		return st.IconQuestion
	}
}
