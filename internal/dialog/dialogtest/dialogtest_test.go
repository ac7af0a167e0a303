// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialogtest

import (
	"testing"

	"github.com/shayne/dialogmgr/internal/dialog"
)

func TestInstallRestoresDefaultOnCleanup(t *testing.T) {
	reg := dialog.NewRegistry(dialog.Headless{})
	t.Run("scripted", func(t *testing.T) {
		script := Install(t, reg, 2)
		m := dialog.New(reg)
		got, err := m.ShowYesNoCancel("msg", "title", "Yes", "No", "Cancel", dialog.IconNone)
		if err != nil || got != dialog.CancelChoice {
			t.Fatalf("expected scripted cancel, got %d err=%v", got, err)
		}
		ExpectOptions(t, script.Requests()[0], "Yes", "No", "Cancel")
		ExpectExhausted(t, script)
	})
	got, err := dialog.New(reg).ShowYesNoCancel("msg", "title", "Yes", "No", "Cancel", dialog.IconNone)
	if err != nil || got != dialog.Yes {
		t.Fatalf("expected headless default after cleanup, got %d err=%v", got, err)
	}
}

func TestNewManager(t *testing.T) {
	m, script := NewManager(t, 1)
	got, err := m.ShowOKCancel("Push?", "Push", "OK", "Cancel", dialog.IconNone)
	if err != nil || got != dialog.Cancel {
		t.Fatalf("expected cancel, got %d err=%v", got, err)
	}
	ExpectOptions(t, script.Requests()[0], "OK", "Cancel")
}
