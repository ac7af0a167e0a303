// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialogs

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func branchFields() []Field {
	return []Field{
		{ID: "branch", Title: "Branch", Required: true},
		{ID: "remote", Title: "Remote", Default: "origin"},
	}
}

func TestFormDialog_SubmitDefaultUsesDefaults(t *testing.T) {
	d := NewFormDialog("push", "Push", "", []Field{{ID: "remote", Title: "Remote", Default: " origin "}})
	d.SubmitDefault()
	result, ok := d.Result()
	if !ok || result.Values["remote"] != "origin" || result.Index != -1 {
		t.Fatalf("expected trimmed default value, got %#v", result)
	}
}

func TestFormDialog_SubmitDefaultRejectsMissingRequired(t *testing.T) {
	d := NewFormDialog("push", "Push", "", branchFields())
	d.SubmitDefault()
	if _, ok := d.Result(); ok {
		t.Fatalf("expected required field to keep the dialog open")
	}
	if !strings.Contains(d.View(), "please enter a value for Branch") {
		t.Fatalf("expected required hint, got %q", d.View())
	}
}

func TestFormDialog_EnterAdvancesThenSubmits(t *testing.T) {
	var d Dialog = NewFormDialog("push", "Push", "", branchFields())
	d = typeText(d, "main")
	d, _ = d.Update(keyEnter())
	if _, ok := d.(*FormDialog).Result(); ok {
		t.Fatalf("expected enter on the first field to move focus")
	}
	d, _ = d.Update(keyEnter())
	result, ok := d.(*FormDialog).Result()
	if !ok || result.Values["branch"] != "main" || result.Values["remote"] != "origin" {
		t.Fatalf("unexpected values: %#v", result)
	}
}

func TestFormDialog_ValidateFocusesInvalidField(t *testing.T) {
	fields := branchFields()
	fields[1].Validate = func(v string) error {
		if v == "origin" {
			return errors.New("pick a fork")
		}
		return nil
	}
	var d Dialog = NewFormDialog("push", "Push", "", fields)
	d = typeText(d, "main")
	d, _ = d.Update(keyEnter())
	d, _ = d.Update(keyEnter())
	form := d.(*FormDialog)
	if _, ok := form.Result(); ok {
		t.Fatalf("expected validation to block submit")
	}
	if form.focused != 1 || !strings.Contains(form.View(), "pick a fork") {
		t.Fatalf("expected remote focused with error, focused=%d view=%q", form.focused, form.View())
	}
}

func TestFormDialog_EscapeCancels(t *testing.T) {
	d, _ := NewFormDialog("push", "Push", "", branchFields()).Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	result, ok := d.(*FormDialog).Result()
	if !ok || !result.Cancelled || result.Index != -1 {
		t.Fatalf("expected cancelled result, got %#v", result)
	}
}

func TestFormDialog_ViewLabels(t *testing.T) {
	lone := NewFormDialog("input", "Branch", "", []Field{{ID: "value", Title: "Branch"}})
	if strings.Count(lone.View(), "Branch") != 1 {
		t.Fatalf("expected a lone field to reuse the title, got %q", lone.View())
	}
	view := NewFormDialog("push", "Push", "", branchFields()).View()
	if !strings.Contains(view, "Branch*") || !strings.Contains(view, "Remote") {
		t.Fatalf("expected labelled fields with required marker, got %q", view)
	}
}
