// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/shayne/dialogmgr/internal/nls"
	"github.com/shayne/dialogmgr/internal/tui/dialogs"
	"github.com/shayne/yargs"
)

var (
	errDeclined   = errors.New("declined")
	errCancelled  = errors.New("cancelled")
	errIncomplete = errors.New("dialog was not completed")
)

type confirmFlags struct {
	Title      string `flag:"title" short:"t" help:"dialog title"`
	DefaultYes bool   `flag:"default-yes" help:"treat an empty answer as yes"`
	Backend    string `flag:"backend" help:"terminal, headless, or script"`
	Answers    string `flag:"answers" help:"comma-separated answers for the script backend"`
	Yes        bool   `flag:"yes" short:"y" help:"answer every dialog with its default"`
	Renderer   string `flag:"renderer" help:"dialog, form, or plain"`
}

type confirmArgs struct {
	Question string `pos:"0" help:"question to ask"`
}

type inputFlags struct {
	Title       string `flag:"title" short:"t" help:"field title"`
	Description string `flag:"description" help:"text shown above the field"`
	Placeholder string `flag:"placeholder" help:"placeholder shown while the field is empty"`
	Default     string `flag:"default" help:"initial value"`
	Secret      bool   `flag:"secret" help:"hide typed characters"`
	Required    bool   `flag:"required" help:"reject an empty value"`
	Backend     string `flag:"backend" help:"terminal, headless, or script"`
	Answers     string `flag:"answers" help:"comma-separated answers for the script backend"`
	Yes         bool   `flag:"yes" short:"y" help:"answer every dialog with its default"`
	Renderer    string `flag:"renderer" help:"dialog, form, or plain"`
}

type selectFlags struct {
	Title       string   `flag:"title" short:"t" help:"dialog title"`
	Description string   `flag:"description" help:"text shown above the options"`
	Options     []string `flag:"option" short:"o" help:"option value (repeatable, in order)"`
	Default     []string `flag:"default" help:"preselected value (repeatable with --multi)"`
	Multi       bool     `flag:"multi" help:"allow several options"`
	Backend     string   `flag:"backend" help:"terminal, headless, or script"`
	Answers     string   `flag:"answers" help:"comma-separated answers for the script backend"`
	Yes         bool     `flag:"yes" short:"y" help:"answer every dialog with its default"`
	Renderer    string   `flag:"renderer" help:"dialog, form, or plain"`
}

func handleConfirmCommand(ctx context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, confirmFlags, confirmArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags
	s := sessionFrom(ctx)
	env, err := s.start(ctx, backendFlags{Backend: flags.Backend, Answers: flags.Answers, Yes: flags.Yes, Renderer: flags.Renderer})
	if err != nil {
		return err
	}
	defer env.close()
	title := labelOr(flags.Title, env.localizer.Text(nls.DialogTitle, "confirm", nil))
	d := dialogs.NewConfirmDialog("confirm", title, result.Args.Question, flags.DefaultYes)
	if err := env.manager().Show(d); err != nil {
		return err
	}
	if !d.Confirmed() {
		return newSilentError(errDeclined)
	}
	return nil
}

func handleInputCommand(ctx context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, inputFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags
	s := sessionFrom(ctx)
	env, err := s.start(ctx, backendFlags{Backend: flags.Backend, Answers: flags.Answers, Yes: flags.Yes, Renderer: flags.Renderer})
	if err != nil {
		return err
	}
	defer env.close()
	title := labelOr(flags.Title, env.localizer.Text(nls.DialogTitle, "input", nil))
	field := dialogs.Field{
		ID:          "value",
		Title:       title,
		Placeholder: flags.Placeholder,
		Required:    flags.Required,
		Secret:      flags.Secret,
		Default:     flags.Default,
	}
	d := dialogs.NewFormDialog("input", title, flags.Description, []dialogs.Field{field})
	if err := env.manager().Show(d); err != nil {
		return err
	}
	res, ok := d.Result()
	if !ok {
		return errIncomplete
	}
	if res.Cancelled {
		return newSilentError(errCancelled)
	}
	_, err = fmt.Fprintln(s.out, res.Values["value"])
	return err
}

func handleSelectCommand(ctx context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, selectFlags, struct{}](args, helpConfig)
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
	if !flags.Multi && len(flags.Default) > 1 {
		return newUsageError("only one --default is allowed without --multi")
	}
	options := make([]dialogs.Option, 0, len(flags.Options))
	for _, value := range flags.Options {
		options = append(options, dialogs.Option{Label: value, Value: value})
	}
	s := sessionFrom(ctx)
	env, err := s.start(ctx, backendFlags{Backend: flags.Backend, Answers: flags.Answers, Yes: flags.Yes, Renderer: flags.Renderer})
	if err != nil {
		return err
	}
	defer env.close()

	var d interface {
		dialogs.Dialog
		Result() (*dialogs.Result, bool)
	}
	if flags.Multi {
		d = dialogs.NewMultiSelectDialog("select", flags.Title, flags.Description, options, flags.Default)
	} else {
		def := ""
		if len(flags.Default) == 1 {
			def = flags.Default[0]
		}
		d = dialogs.NewSelectDialog("select", flags.Title, flags.Description, options, def)
	}
	if err := env.manager().Show(d); err != nil {
		return err
	}
	res, ok := d.Result()
	if !ok {
		return errIncomplete
	}
	if res.Cancelled {
		return newSilentError(errCancelled)
	}
	if !flags.Multi {
		_, err = fmt.Fprintln(s.out, res.Choice)
		return err
	}
	for _, value := range res.Choices {
		if _, err := fmt.Fprintln(s.out, value); err != nil {
			return err
		}
	}
	return nil
}
