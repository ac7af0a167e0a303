// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nls

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFiles embed.FS

// Localizer resolves context-scoped message ids to text in the preferred
// languages.
type Localizer struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	languages []string
}

// New loads the embedded message files and prefers langs in order. English
// is always the final fallback.
func New(langs ...string) (*Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	paths, err := fs.Glob(messageFiles, "messages/*.toml")
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		if _, err := bundle.LoadMessageFileFS(messageFiles, path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	langs = normalizeLanguages(langs)
	return &Localizer{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, langs...),
		languages: langs,
	}, nil
}

// Languages returns the preference list the localizer was built with.
func (l *Localizer) Languages() []string {
	return append([]string(nil), l.languages...)
}

// Text returns the translation of id in ctx. A missing translation yields
// id itself, with ctx's capitalization applied.
func (l *Localizer) Text(ctx Context, id string, data map[string]any) string {
	key := ctx.Key(id)
	fallback := Apply(strings.ReplaceAll(id, "_", " "), ctx.Capitalization)
	if l == nil || l.localizer == nil {
		return fallback
	}
	// Localize reports a missing translation as an error but still returns
	// the English or default text alongside it.
	text, _ := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      key,
		DefaultMessage: &i18n.Message{ID: key, Other: fallback},
		TemplateData:   data,
	})
	if text == "" {
		return fallback
	}
	return text
}

// ButtonLabels are the localized labels of the standard dialog buttons.
type ButtonLabels struct {
	OK       string
	Cancel   string
	Yes      string
	No       string
	DoNotAsk string
}

func Buttons(l *Localizer) ButtonLabels {
	return ButtonLabels{
		OK:       l.Text(Button, "ok", nil),
		Cancel:   l.Text(Button, "cancel", nil),
		Yes:      l.Text(Button, "yes", nil),
		No:       l.Text(Button, "no", nil),
		DoNotAsk: l.Text(Button, "do_not_ask", nil),
	}
}

// LanguagesFromEnv returns the languages named by LC_ALL, LC_MESSAGES and
// LANG, in that order of precedence.
func LanguagesFromEnv() []string {
	var langs []string
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := os.Getenv(key); value != "" {
			langs = append(langs, value)
		}
	}
	return langs
}

// normalizeLanguages turns POSIX locale names such as "de_DE.UTF-8" into
// BCP 47 tags and drops the ones that do not parse.
func normalizeLanguages(langs []string) []string {
	out := make([]string, 0, len(langs))
	for _, lang := range langs {
		lang = strings.TrimSpace(lang)
		if i := strings.IndexAny(lang, ".@"); i >= 0 {
			lang = lang[:i]
		}
		lang = strings.ReplaceAll(lang, "_", "-")
		if lang == "" || lang == "C" || lang == "POSIX" {
			continue
		}
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		out = append(out, tag.String())
	}
	return out
}
