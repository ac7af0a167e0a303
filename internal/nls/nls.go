// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nls marks user-visible strings with the presentation context they
// appear in, and resolves them to localized text.
//
// A Context carries two hints: the capitalization style the text should
// follow, and the message-key prefix its translations live under. Values of
// the context types carry no behavior of their own; they only document where
// a string is shown.
package nls

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Capitalization int

const (
	// Title capitalizes every significant word: "Delete Remote Branch".
	Title Capitalization = iota
	// Sentence capitalizes only the first word: "Delete remote branch".
	Sentence
)

func (c Capitalization) String() string {
	switch c {
	case Title:
		return "title"
	case Sentence:
		return "sentence"
	default:
		return "unknown"
	}
}

// Context describes where a localizable string is presented.
type Context struct {
	Prefix         string
	Capitalization Capitalization
}

// Key returns the message id for id within this context.
func (c Context) Key(id string) string {
	if c.Prefix == "" {
		return id
	}
	return c.Prefix + "." + id
}

var (
	DialogMessage     = Context{Prefix: "dialog.message", Capitalization: Sentence}
	DialogTitle       = Context{Prefix: "dialog.title", Capitalization: Title}
	Button            = Context{Prefix: "button", Capitalization: Title}
	ProblemDescriptor = Context{Prefix: "problem.descriptor", Capitalization: Sentence}
)

// ProblemTemplateDescription is the description template of a reported
// problem. It is presented in the ProblemDescriptor context.
type ProblemTemplateDescription string

func (d ProblemTemplateDescription) Context() Context { return ProblemDescriptor }

// minorWords stay lower case inside title-capitalized text.
var minorWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true, "but": true,
	"by": true, "for": true, "from": true, "in": true, "into": true, "nor": true,
	"of": true, "on": true, "or": true, "the": true, "to": true, "with": true,
}

// Apply rewrites s to follow c. Letters after the first in a word are never
// lowered, so acronyms such as "OK" survive.
func Apply(s string, c Capitalization) string {
	switch c {
	case Title:
		words := strings.Fields(s)
		if len(words) == 0 {
			return s
		}
		caser := cases.Title(language.English, cases.NoLower)
		for i, w := range words {
			if i > 0 && i < len(words)-1 && minorWords[strings.ToLower(w)] {
				continue
			}
			words[i] = caser.String(w)
		}
		return joinLike(s, words)
	case Sentence:
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError || unicode.IsUpper(r) {
			return s
		}
		return string(unicode.ToUpper(r)) + s[size:]
	default:
		return s
	}
}

// Check reports whether s already follows c.
func Check(s string, c Capitalization) bool {
	return Apply(s, c) == s
}

// joinLike rebuilds s from its rewritten fields, keeping the original
// whitespace between them.
func joinLike(s string, words []string) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	inWord := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			b.WriteRune(r)
			inWord = false
			continue
		}
		if !inWord {
			b.WriteString(words[i])
			i++
			inWord = true
		}
	}
	return b.String()
}
