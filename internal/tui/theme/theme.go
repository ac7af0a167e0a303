// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"io"
	"os"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

type Mode int

const (
	ModeUnknown Mode = iota
	ModeLight
	ModeDark
)

type RGB struct {
	R uint8
	G uint8
	B uint8
}

type Palette struct {
	FG      RGB
	BG      RGB
	HasFG   bool
	HasBG   bool
	Version uint64
}

type Theme struct {
	Enabled bool
	Mode    Mode
	Palette Palette
	Dialog  DialogStyles
	Huh     *huh.Theme
}

type DialogStyles struct {
	Title        lipgloss.Style
	Message      lipgloss.Style
	Option       lipgloss.Style
	Cursor       lipgloss.Style
	Default      lipgloss.Style
	Label        lipgloss.Style
	Muted        lipgloss.Style
	Error        lipgloss.Style
	IconInfo     lipgloss.Style
	IconWarning  lipgloss.Style
	IconError    lipgloss.Style
	IconQuestion lipgloss.Style
}

type manager struct {
	mu           sync.Mutex
	palette      Palette
	attempted    bool
	cachedTheme  Theme
	themeVersion uint64
}

var global = &manager{}

func ForOutput(out io.Writer) Theme {
	enabled := EnabledForOutput(out)
	return global.themeFor(enabled)
}

func EnabledForOutput(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	termValue := os.Getenv("TERM")
	if termValue == "" || termValue == "dumb" {
		return false
	}
	if ttyAware, ok := out.(interface{ IsTTY() bool }); ok {
		return ttyAware.IsTTY()
	}
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func (m *manager) themeFor(enabled bool) Theme {
	if !enabled {
		return Theme{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensurePaletteLocked()
	if m.themeVersion != m.palette.Version || !m.cachedTheme.Enabled {
		m.cachedTheme = buildTheme(m.palette)
		m.themeVersion = m.palette.Version
	}
	return m.cachedTheme
}

func (m *manager) ensurePaletteLocked() {
	if m.attempted {
		return
	}
	m.attempted = true
	m.refreshLocked()
}

func (m *manager) refreshLocked() {
	palette := queryPalette()
	if !(palette.HasBG || palette.HasFG) {
		return
	}
	if paletteEqual(palette, m.palette) {
		return
	}
	palette.Version = m.palette.Version + 1
	m.palette = palette
}

func paletteEqual(a, b Palette) bool {
	if a.HasFG != b.HasFG || a.HasBG != b.HasBG {
		return false
	}
	if a.HasFG && a.FG != b.FG {
		return false
	}
	if a.HasBG && a.BG != b.BG {
		return false
	}
	return true
}

type tokens struct {
	promptBrand string
	muted       string
	label       string
	value       string
	helpHeader  string
	error       string
	warning     string
	info        string
}

var darkTokens = tokens{
	promptBrand: "213",
	muted:       "243",
	label:       "244",
	value:       "252",
	helpHeader:  "81",
	error:       "203",
	warning:     "214",
	info:        "#7AB8FF",
}

var lightTokens = tokens{
	promptBrand: "213",
	muted:       "240",
	label:       "238",
	value:       "234",
	helpHeader:  "23",
	error:       "160",
	warning:     "94",
	info:        "#0A3E84",
}

func buildTheme(palette Palette) Theme {
	mode := modeFromPalette(palette)
	if mode == ModeUnknown {
		mode = ModeDark
	}

	pal := darkTokens
	if mode == ModeLight {
		pal = lightTokens
	}

	dialog := DialogStyles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.helpHeader)),
		Message:      lipgloss.NewStyle().Foreground(lipgloss.Color(pal.value)),
		Option:       lipgloss.NewStyle().Foreground(lipgloss.Color(pal.label)),
		Cursor:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.promptBrand)),
		Default:      lipgloss.NewStyle().Foreground(lipgloss.Color(pal.muted)).Italic(true),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color(pal.label)),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color(pal.muted)),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color(pal.error)),
		IconInfo:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.info)),
		IconWarning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.warning)),
		IconError:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.error)),
		IconQuestion: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.promptBrand)),
	}

	return Theme{
		Enabled: true,
		Mode:    mode,
		Palette: palette,
		Dialog:  dialog,
		Huh:     buildHuhTheme(pal),
	}
}
