// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/shayne/dialogmgr/internal/dialog"
	"github.com/shayne/dialogmgr/internal/dialog/dialogtest"
)

type testSession struct {
	*session
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newTestSession(t *testing.T, input string, environ ...string) testSession {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LC_ALL", "en_US.UTF-8")
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return testSession{
		session: &session{in: strings.NewReader(input), out: out, errOut: errOut, environ: environ},
		out:     out,
		errOut:  errOut,
	}
}

func scriptedContext(t *testing.T, answers ...int) (context.Context, *dialog.Scripted) {
	t.Helper()
	m, script := dialogtest.NewManager(t, answers...)
	return dialog.NewContext(context.Background(), m), script
}

func TestNormalizeArgs(t *testing.T) {
	cases := []struct {
		args []string
		want []string
	}{
		{nil, []string{"--help"}},
		{[]string{"help", "message"}, []string{"--help", "message"}},
		{[]string{"--version"}, []string{"version"}},
		{[]string{"confirm", "ok?"}, []string{"confirm", "ok?"}},
	}
	for _, tc := range cases {
		if got := normalizeArgs(tc.args); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("normalizeArgs(%v) = %v, want %v", tc.args, got, tc.want)
		}
	}
}

func TestMessagePrintsIndex(t *testing.T) {
	s := newTestSession(t, "")
	ctx, script := scriptedContext(t, 1)
	err := runCLI(ctx, []string{"message", "--title", "Push", "--option", "origin", "--option", "upstream", "--focus", "1", "Push to which remote?"}, s.session)
	if err != nil {
		t.Fatalf("runCLI: %v", err)
	}
	if got := s.out.String(); got != "1\n" {
		t.Fatalf("expected index output, got %q", got)
	}
	reqs := script.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected one request, got %d", len(reqs))
	}
	dialogtest.ExpectOptions(t, reqs[0], "origin", "upstream")
	if reqs[0].Title != "Push" || reqs[0].Message != "Push to which remote?" || reqs[0].FocusedIndex != 1 || reqs[0].DefaultIndex != 0 {
		t.Fatalf("unexpected request: %#v", reqs[0])
	}
	dialogtest.ExpectExhausted(t, script)
}

func TestMessagePrintLabel(t *testing.T) {
	s := newTestSession(t, "")
	ctx, _ := scriptedContext(t, 2)
	err := runCLI(ctx, []string{"message", "--print-label", "-o", "a", "-o", "b", "-o", "c", "pick"}, s.session)
	if err != nil {
		t.Fatalf("runCLI: %v", err)
	}
	if got := s.out.String(); got != "c\n" {
		t.Fatalf("expected label output, got %q", got)
	}
}

func TestMessageRequiresOptions(t *testing.T) {
	s := newTestSession(t, "")
	ctx, _ := scriptedContext(t)
	err := runCLI(ctx, []string{"message", "pick"}, s.session)
	var usageErr usageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestMessageRejectsBadDefault(t *testing.T) {
	s := newTestSession(t, "")
	ctx, _ := scriptedContext(t)
	err := runCLI(ctx, []string{"message", "--option", "a", "--default", "3", "pick"}, s.session)
	var usageErr usageError
	if !errors.As(err, &usageErr) || !strings.Contains(err.Error(), "default index out of range") {
		t.Fatalf("expected default index usage error, got %v", err)
	}
}

func TestOKCancelUsesLocalizedDefaults(t *testing.T) {
	s := newTestSession(t, "")
	ctx, script := scriptedContext(t, dialog.Cancel)
	if err := runCLI(ctx, []string{"ok-cancel", "--icon", "warning", "Overwrite?"}, s.session); err != nil {
		t.Fatalf("runCLI: %v", err)
	}
	if got := s.out.String(); got != "1\n" {
		t.Fatalf("expected cancel index, got %q", got)
	}
	req := script.Requests()[0]
	dialogtest.ExpectOptions(t, req, "OK", "Cancel")
	if req.DefaultIndex != 0 || req.FocusedIndex != 0 || req.Icon != dialog.IconWarning {
		t.Fatalf("unexpected request: %#v", req)
	}
}

func TestOKCancelGermanLabels(t *testing.T) {
	s := newTestSession(t, "", "DIALOGMGR_LANGUAGE=de")
	ctx, script := scriptedContext(t, 0)
	if err := runCLI(ctx, []string{"ok-cancel", "Weiter?"}, s.session); err != nil {
		t.Fatalf("runCLI: %v", err)
	}
	dialogtest.ExpectOptions(t, script.Requests()[0], "OK", "Abbrechen")
}

func TestYesNoCancelFocusesNo(t *testing.T) {
	s := newTestSession(t, "")
	ctx, script := scriptedContext(t, dialog.Yes)
	if err := runCLI(ctx, []string{"yes-no-cancel", "--no-label", "Discard", "Save changes?"}, s.session); err != nil {
		t.Fatalf("runCLI: %v", err)
	}
	req := script.Requests()[0]
	dialogtest.ExpectOptions(t, req, "Yes", "Discard", "Cancel")
	if req.DefaultIndex != 0 || req.FocusedIndex != 1 {
		t.Fatalf("unexpected indices: %#v", req)
	}
}

func TestRememberSkipsSecondPrompt(t *testing.T) {
	s := newTestSession(t, "")
	m, script := dialogtest.NewManager(t)
	script.AnswerFunc(func(req dialog.Request) (int, error) {
		if req.DoNotAsk == nil {
			t.Fatalf("expected a do-not-ask option")
		}
		req.DoNotAsk.SetToBeShown(false, 1)
		return 1, nil
	})
	ctx := dialog.NewContext(context.Background(), m)
	args := []string{"yes-no-cancel", "--remember", "editor.save", "Save changes?"}
	if err := runCLI(ctx, args, s.session); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := runCLI(ctx, args, s.session); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if got := s.out.String(); got != "1\n1\n" {
		t.Fatalf("expected remembered answer twice, got %q", got)
	}
	if n := len(script.Requests()); n != 1 {
		t.Fatalf("expected one prompt, got %d", n)
	}
	if !strings.Contains(s.errOut.String(), "Using remembered answer No") {
		t.Fatalf("expected remembered notice, got %q", s.errOut.String())
	}

	s.out.Reset()
	if err := runCLI(ctx, []string{"forget", "editor.save"}, s.session); err != nil {
		t.Fatalf("forget: %v", err)
	}
	if err := runCLI(ctx, []string{"forget", "editor.save"}, s.session); err == nil {
		t.Fatalf("expected error forgetting an unknown key")
	}
}

func TestHeadlessFlagAnswersDefault(t *testing.T) {
	s := newTestSession(t, "")
	err := runCLI(context.Background(), []string{"message", "--yes", "--option", "a", "--option", "b", "--default", "1", "pick"}, s.session)
	if err != nil {
		t.Fatalf("runCLI: %v", err)
	}
	if got := s.out.String(); got != "1\n" {
		t.Fatalf("expected default index, got %q", got)
	}
}

func TestAnswersFlagUsesScriptBackend(t *testing.T) {
	s := newTestSession(t, "")
	err := runCLI(context.Background(), []string{"ok-cancel", "--answers", "1", "Continue?"}, s.session)
	if err != nil {
		t.Fatalf("runCLI: %v", err)
	}
	if got := s.out.String(); got != "1\n" {
		t.Fatalf("expected scripted index, got %q", got)
	}
}

func TestEnvironmentSelectsScriptBackend(t *testing.T) {
	s := newTestSession(t, "", "DIALOGMGR_BACKEND=script", "DIALOGMGR_ANSWERS=2")
	err := runCLI(context.Background(), []string{"yes-no-cancel", "Save?"}, s.session)
	if err != nil {
		t.Fatalf("runCLI: %v", err)
	}
	if got := s.out.String(); got != "2\n" {
		t.Fatalf("expected scripted index, got %q", got)
	}
}

func TestScriptBackendRejectsOutOfRangeAnswer(t *testing.T) {
	s := newTestSession(t, "")
	err := runCLI(context.Background(), []string{"ok-cancel", "--answers", "5", "Continue?"}, s.session)
	if !errors.Is(err, dialog.ErrAnswerOutOfRange) {
		t.Fatalf("expected ErrAnswerOutOfRange, got %v", err)
	}
}

func TestTerminalBackendReadsLines(t *testing.T) {
	s := newTestSession(t, "upstream\n")
	err := runCLI(context.Background(), []string{"message", "--option", "origin", "--option", "upstream", "Push where?"}, s.session)
	if err != nil {
		t.Fatalf("runCLI: %v", err)
	}
	if got := s.out.String(); got != "1\n" {
		t.Fatalf("expected index 1, got %q", got)
	}
	if !strings.Contains(s.errOut.String(), "Push where?") {
		t.Fatalf("expected dialog on stderr, got %q", s.errOut.String())
	}
}

func TestConfirm(t *testing.T) {
	s := newTestSession(t, "")
	if err := runCLI(context.Background(), []string{"confirm", "--yes", "--default-yes", "Delete?"}, s.session); err != nil {
		t.Fatalf("expected confirmation, got %v", err)
	}
	err := runCLI(context.Background(), []string{"confirm", "--yes", "Delete?"}, s.session)
	var quiet silentError
	if !errors.As(err, &quiet) || !errors.Is(err, errDeclined) {
		t.Fatalf("expected silent decline, got %v", err)
	}
	if code := reportCLIError(&bytes.Buffer{}, err); code != 1 {
		t.Fatalf("expected exit status 1, got %d", code)
	}
}

func TestConfirmFromTerminalLines(t *testing.T) {
	s := newTestSession(t, "y\n")
	if err := runCLI(context.Background(), []string{"confirm", "Delete?"}, s.session); err != nil {
		t.Fatalf("expected confirmation, got %v", err)
	}
}

func TestConfirmThroughScriptedShow(t *testing.T) {
	s := newTestSession(t, "")
	ctx, script := scriptedContext(t)
	if err := runCLI(ctx, []string{"confirm", "Delete?"}, s.session); err == nil {
		t.Fatalf("expected an unanswered confirm to count as declined")
	}
	shown := script.Shown()
	if len(shown) != 1 || shown[0].ID() != "confirm" {
		t.Fatalf("expected confirm descriptor to be shown, got %v", shown)
	}
}

func TestInputHeadlessUsesDefault(t *testing.T) {
	s := newTestSession(t, "")
	if err := runCLI(context.Background(), []string{"input", "--yes", "--default", "example.com"}, s.session); err != nil {
		t.Fatalf("runCLI: %v", err)
	}
	if got := s.out.String(); got != "example.com\n" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestInputRequiredHeadlessFails(t *testing.T) {
	s := newTestSession(t, "")
	err := runCLI(context.Background(), []string{"input", "--yes", "--required"}, s.session)
	if !errors.Is(err, errIncomplete) {
		t.Fatalf("expected errIncomplete, got %v", err)
	}
}

func TestInputFromTerminalLines(t *testing.T) {
	s := newTestSession(t, "hello\n")
	if err := runCLI(context.Background(), []string{"input", "--title", "Greeting"}, s.session); err != nil {
		t.Fatalf("runCLI: %v", err)
	}
	if got := s.out.String(); got != "hello\n" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestSelect(t *testing.T) {
	s := newTestSession(t, "")
	if err := runCLI(context.Background(), []string{"select", "--yes", "--option", "dev", "--option", "prod", "--default", "prod"}, s.session); err != nil {
		t.Fatalf("runCLI: %v", err)
	}
	if got := s.out.String(); got != "prod\n" {
		t.Fatalf("unexpected choice %q", got)
	}

	s.out.Reset()
	args := []string{"select", "--yes", "--multi", "-o", "a", "-o", "b", "-o", "c", "--default", "c", "--default", "a"}
	if err := runCLI(context.Background(), args, s.session); err != nil {
		t.Fatalf("runCLI multi: %v", err)
	}
	if got := s.out.String(); got != "a\nc\n" {
		t.Fatalf("unexpected choices %q", got)
	}
}

func TestConfigCommand(t *testing.T) {
	s := newTestSession(t, "")
	if err := runCLI(context.Background(), []string{"config", "--renderer", "form", "--language", "fr"}, s.session); err != nil {
		t.Fatalf("config update: %v", err)
	}
	path := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "dialogmgr", "config.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "renderer = 'form'") || !strings.Contains(string(data), "language = 'fr'") {
		t.Fatalf("unexpected config file: %s", data)
	}

	s.out.Reset()
	if err := runCLI(context.Background(), []string{"config"}, s.session); err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(s.out.String(), "Config path: "+path) {
		t.Fatalf("unexpected config output: %q", s.out.String())
	}

	err = runCLI(context.Background(), []string{"config", "--backend", "gui"}, s.session)
	var usageErr usageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("expected usage error, got %v", err)
	}

	if err := runCLI(context.Background(), []string{"config", "--reset"}, s.session); err != nil {
		t.Fatalf("config reset: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected config removed, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	s := newTestSession(t, "")
	if err := runCLI(context.Background(), []string{"version"}, s.session); err != nil {
		t.Fatalf("version: %v", err)
	}
	if got := strings.TrimSpace(s.out.String()); got != versionString() {
		t.Fatalf("unexpected version %q", got)
	}
}

func TestReportCLIError(t *testing.T) {
	var buf bytes.Buffer
	if code := reportCLIError(&buf, newUsageError("bad flag")); code != 2 || buf.String() != "bad flag\n" {
		t.Fatalf("unexpected usage report: %d %q", code, buf.String())
	}
	buf.Reset()
	if code := reportCLIError(&buf, errors.New("boom")); code != 1 || buf.String() != "boom\n" {
		t.Fatalf("unexpected error report: %d %q", code, buf.String())
	}
}
