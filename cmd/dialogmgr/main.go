// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shayne/yargs"
)

func main() {
	if err := runCLI(context.Background(), os.Args[1:], newSession()); err != nil {
		os.Exit(reportCLIError(os.Stderr, err))
	}
}

type usageError struct {
	message string
}

func (e usageError) Error() string {
	return e.message
}

type silentError struct {
	err error
}

func (e silentError) Error() string {
	return e.err.Error()
}

func (e silentError) Unwrap() error {
	return e.err
}

// reportCLIError prints err and returns the process exit status.
func reportCLIError(w io.Writer, err error) int {
	var usageErr usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(w, usageErr.message)
		return 2
	}
	var quietErr silentError
	if errors.As(err, &quietErr) {
		return 1
	}
	fmt.Fprintln(w, err.Error())
	return 1
}

func newUsageError(message string) error {
	return usageError{message: message}
}

func newSilentError(err error) error {
	if err == nil {
		return nil
	}
	return silentError{err: err}
}

var (
	version = "dev"
	commit  = ""
)

// session carries the process streams. Results go to out; dialogs render
// on errOut so that out can be captured by a calling script.
type session struct {
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	environ []string
}

func newSession() *session {
	return &session{in: os.Stdin, out: os.Stdout, errOut: os.Stderr, environ: os.Environ()}
}

type sessionKey struct{}

func sessionFrom(ctx context.Context) *session {
	if s, ok := ctx.Value(sessionKey{}).(*session); ok {
		return s
	}
	return newSession()
}

func runCLI(ctx context.Context, args []string, s *session) error {
	args = normalizeArgs(args)
	ctx = context.WithValue(ctx, sessionKey{}, s)
	handlers := map[string]yargs.SubcommandHandler{
		"message":       handleMessageCommand,
		"ok-cancel":     handleOKCancelCommand,
		"yes-no-cancel": handleYesNoCancelCommand,
		"confirm":       handleConfirmCommand,
		"input":         handleInputCommand,
		"select":        handleSelectCommand,
		"forget":        handleForgetCommand,
		"config":        handleConfigCommand,
		"version":       handleVersionCommand,
	}
	if err := yargs.RunSubcommands(ctx, args, helpConfig, struct{}{}, handlers); err != nil {
		if errors.Is(err, yargs.ErrShown) {
			return nil
		}
		return err
	}
	return nil
}

func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"--help"}
	}
	switch strings.TrimSpace(args[0]) {
	case "help":
		return append([]string{"--help"}, args[1:]...)
	case "--version", "-v":
		return []string{"version"}
	}
	return args
}

var helpConfig = yargs.HelpConfig{
	Command: yargs.CommandInfo{
		Name:        "dialogmgr",
		Description: "Ask blocking questions from scripts",
		Examples: []string{
			"dialogmgr message --title Push --option origin --option upstream \"Push to which remote?\"",
			"dialogmgr ok-cancel --icon warning \"Overwrite local changes?\"",
			"dialogmgr yes-no-cancel --remember editor.save \"Save changes before closing?\"",
			"dialogmgr confirm \"Delete branch feature/x?\"",
			"dialogmgr input --title Host --required",
			"dialogmgr select --option dev --option prod --default prod",
			"dialogmgr message --answers 1 --option a --option b \"scripted\"",
			"dialogmgr forget editor.save",
			"dialogmgr config --renderer form",
		},
	},
	SubCommands: map[string]yargs.SubCommandInfo{
		"message": {
			Name:        "message",
			Description: "Choose one of several labelled options; prints the index",
			Usage:       "--option <label>... [--default <n>] [--focus <n>] <message>",
		},
		"ok-cancel": {
			Name:        "ok-cancel",
			Description: "Ask OK or Cancel; prints 0 for OK, 1 for Cancel",
			Usage:       "[--ok <label>] [--cancel <label>] <message>",
		},
		"yes-no-cancel": {
			Name:        "yes-no-cancel",
			Description: "Ask Yes, No, or Cancel; prints 0, 1, or 2",
			Usage:       "[--yes-label <label>] [--no-label <label>] [--cancel <label>] <message>",
		},
		"confirm": {
			Name:        "confirm",
			Description: "Ask a yes/no question; exits 1 when declined",
			Usage:       "[--default-yes] <question>",
		},
		"input": {
			Name:        "input",
			Description: "Read a line of text; prints the value",
			Usage:       "[--title <t>] [--placeholder <p>] [--default <v>] [--secret] [--required]",
		},
		"select": {
			Name:        "select",
			Description: "Pick one option, or several with --multi; prints the values",
			Usage:       "--option <value>... [--default <value>] [--multi]",
		},
		"forget": {
			Name:        "forget",
			Description: "Forget remembered answers",
			Usage:       "[<key>]",
		},
		"config": {
			Name:        "config",
			Description: "Show or update the local configuration",
		},
		"version": {
			Name:        "version",
			Description: "Show CLI version",
		},
	},
}

func versionString() string {
	trimmed := strings.TrimSpace(version)
	if trimmed == "" {
		trimmed = "dev"
	}
	if strings.TrimSpace(commit) == "" {
		return trimmed
	}
	return fmt.Sprintf("%s (%s)", trimmed, strings.TrimSpace(commit))
}
