// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// buildHuhTheme mirrors the dialog tokens for the form renderer, which is
// built on huh and therefore on lipgloss v1.
func buildHuhTheme(pal tokens) *huh.Theme {
	theme := huh.ThemeBase()
	accent := lipgloss.Color(pal.promptBrand)
	muted := lipgloss.Color(pal.muted)
	label := lipgloss.Color(pal.label)
	value := lipgloss.Color(pal.value)
	header := lipgloss.Color(pal.helpHeader)
	err := lipgloss.Color(pal.error)

	theme.Group.Title = theme.Group.Title.Foreground(header).Bold(true)
	theme.Group.Description = theme.Group.Description.Foreground(muted)

	theme.Focused.Title = theme.Focused.Title.Foreground(header).Bold(true)
	theme.Focused.Description = theme.Focused.Description.Foreground(value)
	theme.Focused.ErrorIndicator = theme.Focused.ErrorIndicator.Foreground(err)
	theme.Focused.ErrorMessage = theme.Focused.ErrorMessage.Foreground(err)
	theme.Focused.SelectSelector = theme.Focused.SelectSelector.Foreground(accent)
	theme.Focused.Option = theme.Focused.Option.Foreground(label)
	theme.Focused.SelectedOption = theme.Focused.SelectedOption.Foreground(accent)
	theme.Focused.TextInput.Prompt = theme.Focused.TextInput.Prompt.Foreground(label)
	theme.Focused.TextInput.Text = theme.Focused.TextInput.Text.Foreground(value)
	theme.Focused.TextInput.Placeholder = theme.Focused.TextInput.Placeholder.Foreground(muted)

	theme.Blurred = theme.Focused
	theme.Blurred.Base = theme.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	theme.Blurred.Card = theme.Blurred.Base
	return theme
}
