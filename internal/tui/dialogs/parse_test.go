// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialogs

import "testing"

func TestParseConfirmInput(t *testing.T) {
	cases := []struct {
		input string
		want  bool
		ok    bool
	}{
		{input: "y", want: true, ok: true},
		{input: "YES", want: true, ok: true},
		{input: "n", want: false, ok: true},
		{input: " no ", want: false, ok: true},
		{input: "", want: false, ok: false},
		{input: "maybe", want: false, ok: false},
	}
	for _, tc := range cases {
		got, ok := parseConfirmInput(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("parseConfirmInput(%q) = (%v, %v), want (%v, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMatchOption(t *testing.T) {
	options := []string{"Merge", "Rebase", "Cancel"}
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{input: "1", want: 0, ok: true},
		{input: "3", want: 2, ok: true},
		{input: "4", ok: false},
		{input: "0", ok: false},
		{input: "rebase", want: 1, ok: true},
		{input: "cncl", want: 2, ok: true},
		{input: "xyz", ok: false},
		{input: "", ok: false},
	}
	for _, tc := range cases {
		got, err := matchOption(tc.input, options)
		if (err == nil) != tc.ok {
			t.Fatalf("matchOption(%q) error = %v, want ok=%v", tc.input, err, tc.ok)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("matchOption(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestMatchOptionAmbiguous(t *testing.T) {
	if _, err := matchOption("sta", []string{"Stash", "Stage"}); err == nil {
		t.Fatalf("expected ambiguous match error")
	}
	if _, err := matchOption("a", nil); err == nil {
		t.Fatalf("expected error without options")
	}
}
