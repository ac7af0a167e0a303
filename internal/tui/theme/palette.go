// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"os"
	"strconv"
	"strings"
)

// EnvMode forces light or dark styles regardless of COLORFGBG.
const EnvMode = "DIALOGMGR_THEME"

var (
	lightBackground = RGB{R: 255, G: 255, B: 255}
	darkBackground  = RGB{R: 0, G: 0, B: 0}
)

func queryPalette() Palette {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvMode))) {
	case "light":
		return Palette{BG: lightBackground, HasBG: true}
	case "dark":
		return Palette{BG: darkBackground, HasBG: true}
	}
	return paletteFromEnv(os.Getenv("COLORFGBG"))
}

func modeFromPalette(palette Palette) Mode {
	if palette.HasBG {
		if isLight(palette.BG) {
			return ModeLight
		}
		return ModeDark
	}
	return ModeUnknown
}

func isLight(color RGB) bool {
	luma := 0.2126*float64(color.R) + 0.7152*float64(color.G) + 0.0722*float64(color.B)
	return luma >= 128.0
}

// paletteFromEnv reads a COLORFGBG value such as "15;0" or "0;default;15".
func paletteFromEnv(value string) Palette {
	value = strings.TrimSpace(value)
	if value == "" {
		return Palette{}
	}
	parts := strings.Split(value, ";")
	if len(parts) < 2 {
		return Palette{}
	}
	fg := parseEnvIndex(parts[0])
	bg := parseEnvIndex(parts[len(parts)-1])
	var palette Palette
	if fg >= 0 && fg < len(xterm16) {
		palette.FG = xterm16[fg]
		palette.HasFG = true
	}
	if bg >= 0 && bg < len(xterm16) {
		palette.BG = xterm16[bg]
		palette.HasBG = true
	}
	return palette
}

func parseEnvIndex(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return -1
	}
	idx, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}
	return idx
}

var xterm16 = []RGB{
	{R: 0, G: 0, B: 0},       // 0 black
	{R: 128, G: 0, B: 0},     // 1 maroon
	{R: 0, G: 128, B: 0},     // 2 green
	{R: 128, G: 128, B: 0},   // 3 olive
	{R: 0, G: 0, B: 128},     // 4 navy
	{R: 128, G: 0, B: 128},   // 5 purple
	{R: 0, G: 128, B: 128},   // 6 teal
	{R: 192, G: 192, B: 192}, // 7 silver
	{R: 128, G: 128, B: 128}, // 8 grey
	{R: 255, G: 0, B: 0},     // 9 red
	{R: 0, G: 255, B: 0},     // 10 lime
	{R: 255, G: 255, B: 0},   // 11 yellow
	{R: 0, G: 0, B: 255},     // 12 blue
	{R: 255, G: 0, B: 255},   // 13 fuchsia
	{R: 0, G: 255, B: 255},   // 14 aqua
	{R: 255, G: 255, B: 255}, // 15 white
}
