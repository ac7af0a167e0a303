// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/shayne/dialogmgr/internal/dialog"
	"github.com/shayne/dialogmgr/internal/nls"
	"github.com/shayne/yargs"
)

type messageFlags struct {
	Title      string   `flag:"title" short:"t" help:"dialog title"`
	Options    []string `flag:"option" short:"o" help:"option label (repeatable, in order)"`
	Default    string   `flag:"default" help:"index of the default option (default 0)"`
	Focus      string   `flag:"focus" help:"index of the option focused first (default: --default)"`
	Icon       string   `flag:"icon" help:"info, warning, error, or question"`
	Remember   string   `flag:"remember" help:"offer \"do not ask again\" and remember the answer under this key"`
	PrintLabel bool     `flag:"print-label" help:"print the option label instead of its index"`
	Backend    string   `flag:"backend" help:"terminal, headless, or script"`
	Answers    string   `flag:"answers" help:"comma-separated answers for the script backend"`
	Yes        bool     `flag:"yes" short:"y" help:"answer every dialog with its default"`
	Renderer   string   `flag:"renderer" help:"dialog, form, or plain"`
}

type okCancelFlags struct {
	Title      string `flag:"title" short:"t" help:"dialog title"`
	OK         string `flag:"ok" help:"label of the OK button"`
	Cancel     string `flag:"cancel" help:"label of the Cancel button"`
	Icon       string `flag:"icon" help:"info, warning, error, or question"`
	Remember   string `flag:"remember" help:"offer \"do not ask again\" and remember the answer under this key"`
	PrintLabel bool   `flag:"print-label" help:"print the option label instead of its index"`
	Backend    string `flag:"backend" help:"terminal, headless, or script"`
	Answers    string `flag:"answers" help:"comma-separated answers for the script backend"`
	Yes        bool   `flag:"yes" short:"y" help:"answer every dialog with its default"`
	Renderer   string `flag:"renderer" help:"dialog, form, or plain"`
}

type yesNoCancelFlags struct {
	Title      string `flag:"title" short:"t" help:"dialog title"`
	YesLabel   string `flag:"yes-label" help:"label of the Yes button"`
	NoLabel    string `flag:"no-label" help:"label of the No button"`
	Cancel     string `flag:"cancel" help:"label of the Cancel button"`
	Icon       string `flag:"icon" help:"info, warning, error, or question"`
	Remember   string `flag:"remember" help:"offer \"do not ask again\" and remember the answer under this key"`
	PrintLabel bool   `flag:"print-label" help:"print the option label instead of its index"`
	Backend    string `flag:"backend" help:"terminal, headless, or script"`
	Answers    string `flag:"answers" help:"comma-separated answers for the script backend"`
	Yes        bool   `flag:"yes" short:"y" help:"answer every dialog with its default"`
	Renderer   string `flag:"renderer" help:"dialog, form, or plain"`
}

type messageArgs struct {
	Message string `pos:"0" help:"message text"`
}

func handleMessageCommand(ctx context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, messageFlags, messageArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags
	if len(flags.Options) == 0 {
		return newUsageError("at least one --option is required")
	}
	icon, err := parseIcon(flags.Icon)
	if err != nil {
		return err
	}
	def, err := parseIndex("--default", flags.Default, 0)
	if err != nil {
		return err
	}
	focus, err := parseIndex("--focus", flags.Focus, def)
	if err != nil {
		return err
	}
	req := dialog.Request{
		Message:      result.Args.Message,
		Title:        flags.Title,
		Options:      flags.Options,
		DefaultIndex: def,
		FocusedIndex: focus,
		Icon:         icon,
	}
	if err := req.Validate(); err != nil {
		return newUsageError(err.Error())
	}
	s := sessionFrom(ctx)
	env, err := s.start(ctx, backendFlags{Backend: flags.Backend, Answers: flags.Answers, Yes: flags.Yes, Renderer: flags.Renderer})
	if err != nil {
		return err
	}
	defer env.close()
	return s.choose(env, req, flags.Remember, flags.PrintLabel, nil)
}

func handleOKCancelCommand(ctx context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, okCancelFlags, messageArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags
	icon, err := parseIcon(flags.Icon)
	if err != nil {
		return err
	}
	s := sessionFrom(ctx)
	env, err := s.start(ctx, backendFlags{Backend: flags.Backend, Answers: flags.Answers, Yes: flags.Yes, Renderer: flags.Renderer})
	if err != nil {
		return err
	}
	defer env.close()
	buttons := nls.Buttons(env.localizer)
	req := dialog.OKCancelRequest(
		result.Args.Message,
		flags.Title,
		labelOr(flags.OK, buttons.OK),
		labelOr(flags.Cancel, buttons.Cancel),
		icon,
	)
	return s.choose(env, req, flags.Remember, flags.PrintLabel, func(m *dialog.Manager) (int, error) {
		return m.ShowOKCancel(req.Message, req.Title, req.Options[0], req.Options[1], req.Icon)
	})
}

func handleYesNoCancelCommand(ctx context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, yesNoCancelFlags, messageArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags
	icon, err := parseIcon(flags.Icon)
	if err != nil {
		return err
	}
	s := sessionFrom(ctx)
	env, err := s.start(ctx, backendFlags{Backend: flags.Backend, Answers: flags.Answers, Yes: flags.Yes, Renderer: flags.Renderer})
	if err != nil {
		return err
	}
	defer env.close()
	buttons := nls.Buttons(env.localizer)
	req := dialog.YesNoCancelRequest(
		result.Args.Message,
		flags.Title,
		labelOr(flags.YesLabel, buttons.Yes),
		labelOr(flags.NoLabel, buttons.No),
		labelOr(flags.Cancel, buttons.Cancel),
		icon,
	)
	return s.choose(env, req, flags.Remember, flags.PrintLabel, func(m *dialog.Manager) (int, error) {
		return m.ShowYesNoCancel(req.Message, req.Title, req.Options[0], req.Options[1], req.Options[2], req.Icon)
	})
}

// choose asks req and prints the answer. A remembered answer for key is
// printed without asking. show, when set, is used instead of ShowMessage
// for requests that carry no do-not-ask option.
func (s *session) choose(env *dialogEnv, req dialog.Request, key string, printLabel bool, show func(*dialog.Manager) (int, error)) error {
	if key != "" {
		store, err := openStore()
		if err != nil {
			return fmt.Errorf("failed to open answer store: %w", err)
		}
		opt := store.Option(key, "")
		if idx, ok := opt.Remembered(); ok && idx >= 0 && idx < len(req.Options) {
			env.logger.Info("using remembered answer", "key", key, "index", idx)
			fmt.Fprintln(s.errOut, env.localizer.Text(nls.DialogMessage, "remembered", map[string]any{"Label": req.Options[idx]}))
			return s.printChoice(req, idx, printLabel)
		}
		req.DoNotAsk = opt
		defer func() {
			if opt.Err != nil {
				env.logger.Warn("failed to save remembered answer", "key", key, tint.Err(opt.Err))
			}
		}()
	}
	m := env.manager()
	var (
		idx int
		err error
	)
	if show != nil && req.DoNotAsk == nil {
		idx, err = show(m)
	} else {
		idx, err = m.ShowMessage(req)
	}
	if err != nil {
		return err
	}
	return s.printChoice(req, idx, printLabel)
}

func (s *session) printChoice(req dialog.Request, idx int, printLabel bool) error {
	if idx < 0 || idx >= len(req.Options) {
		return fmt.Errorf("backend returned index %d for %d options", idx, len(req.Options))
	}
	if printLabel {
		_, err := fmt.Fprintln(s.out, req.Options[idx])
		return err
	}
	_, err := fmt.Fprintln(s.out, idx)
	return err
}

func parseIcon(value string) (dialog.Icon, error) {
	switch icon := dialog.Icon(strings.ToLower(strings.TrimSpace(value))); icon {
	case dialog.IconNone, dialog.IconInfo, dialog.IconWarning, dialog.IconError, dialog.IconQuestion:
		return icon, nil
	default:
		return "", newUsageError(fmt.Sprintf("unknown icon %q (expected info, warning, error, or question)", value))
	}
}

func parseIndex(name, value string, fallback int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, newUsageError(fmt.Sprintf("%s must be a non-negative index (got %q)", name, value))
	}
	return n, nil
}

func labelOr(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}
