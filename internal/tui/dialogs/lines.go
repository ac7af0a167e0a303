// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialogs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// ErrIncomplete is returned by RunLines when input ends and the dialog
// still has no result.
var ErrIncomplete = errors.New("dialog did not complete")

type defaultSubmitter interface {
	SubmitDefault()
}

// RunLines drives d from line-oriented input, for pipes and dumb terminals.
// Each line is fed to the dialog as key presses followed by enter. A blank
// line submits the dialog's default when it has one, and end of input
// cancels.
func RunLines(in io.Reader, out io.Writer, d Dialog) (*Result, error) {
	reader := bufio.NewReader(in)
	applyStyles(d, out)
	d.Init()
	for {
		fmt.Fprintln(out, ansi.Strip(d.View()))
		fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		switch {
		case eof && line == "":
			fmt.Fprintln(out)
			d, _ = d.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
		case strings.TrimSpace(line) == "":
			if s, ok := d.(defaultSubmitter); ok {
				s.SubmitDefault()
			} else {
				d, _ = d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
			}
		default:
			d = feedLine(d, line)
		}
		if res, ok := resultFromDialog(d); ok {
			return res, nil
		}
		if eof {
			return nil, ErrIncomplete
		}
	}
}

func feedLine(d Dialog, line string) Dialog {
	for _, r := range line {
		var msg tea.KeyPressMsg
		if r == '\t' {
			msg = tea.KeyPressMsg{Code: tea.KeyTab}
		} else {
			msg = tea.KeyPressMsg{Code: r, Text: string(r)}
		}
		d, _ = d.Update(msg)
		if _, ok := resultFromDialog(d); ok {
			return d
		}
	}
	d, _ = d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return d
}
