// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialogs

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

func parseConfirmInput(value string) (bool, bool) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}

// matchOption resolves typed input to an option index. A number is a
// 1-based position; anything else must name exactly one option, either
// exactly (ignoring case) or by fuzzy match.
func matchOption(input string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, errors.New("no options available")
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return -1, errors.New("empty selection")
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(options) {
			return -1, fmt.Errorf("selection out of range (1-%d)", len(options))
		}
		return n - 1, nil
	}
	for i, opt := range options {
		if strings.EqualFold(strings.TrimSpace(opt), input) {
			return i, nil
		}
	}
	ranks := fuzzy.RankFindFold(input, options)
	if len(ranks) == 0 {
		return -1, fmt.Errorf("no option matches %q", input)
	}
	sort.Sort(ranks)
	if len(ranks) > 1 && ranks[0].Distance == ranks[1].Distance {
		return -1, fmt.Errorf("%q matches more than one option", input)
	}
	return ranks[0].OriginalIndex, nil
}
