// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialogs

import (
	"io"

	tea "charm.land/bubbletea/v2"
)

type resultProvider interface {
	Result() (*Result, bool)
}

// runnerModel hosts one dialog and quits as soon as it records a result.
type runnerModel struct {
	dialog Dialog
	result *Result
}

func (m runnerModel) Init() tea.Cmd { return m.dialog.Init() }

func (m runnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	d, cmd := m.dialog.Update(msg)
	m.dialog = d
	if res, ok := resultFromDialog(d); ok {
		m.result = res
		return m, tea.Quit
	}
	return m, cmd
}

func (m runnerModel) View() tea.View {
	v := tea.NewView(m.dialog.View())
	v.Cursor = m.dialog.Cursor()
	return v
}

// Run shows d inline on out, styled for out, and returns the result it
// recorded. A program that stops before the dialog finishes returns a
// nil result.
func Run(in io.Reader, out io.Writer, d Dialog, opts ...tea.ProgramOption) (*Result, error) {
	applyStyles(d, out)
	opts = append([]tea.ProgramOption{tea.WithInput(in), tea.WithOutput(out)}, opts...)
	m, err := tea.NewProgram(runnerModel{dialog: d}, opts...).Run()
	if err != nil {
		return nil, err
	}
	rm, ok := m.(runnerModel)
	if !ok {
		return nil, nil
	}
	return rm.result, nil
}

func resultFromDialog(d Dialog) (*Result, bool) {
	provider, ok := d.(resultProvider)
	if !ok {
		return nil, false
	}
	return provider.Result()
}
