// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package modcache

import (
	"fmt"
	"strings"

	"github.com/woozymasta/lspk"
	"github.com/woozymasta/pathrules"
)

// ignoreMatcher wraps compiled Ignore rules. A nil matcher ignores nothing.
type ignoreMatcher struct {
	matcher *pathrules.Matcher
}

// newIgnoreMatcher compiles rules, returning nil when there are none.
func newIgnoreMatcher(rules []pathrules.Rule, opts pathrules.MatcherOptions) (*ignoreMatcher, error) {
	normalized := make([]pathrules.Rule, 0, len(rules))
	for _, rule := range rules {
		pattern := strings.TrimSpace(strings.ReplaceAll(rule.Pattern, `\`, `/`))
		if pattern == "" {
			continue
		}

		normalized = append(normalized, pathrules.Rule{Action: rule.Action, Pattern: pattern})
	}

	if len(normalized) == 0 {
		return nil, nil
	}

	matcher, err := pathrules.NewMatcher(normalized, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: compile rules: %w", ErrInvalidIgnoreRule, err)
	}

	return &ignoreMatcher{matcher: matcher}, nil
}

// Ignored reports whether path is excluded from conflict queries.
func (m *ignoreMatcher) Ignored(path string) bool {
	if m == nil || m.matcher == nil {
		return false
	}

	candidate := lspk.NormalizePath(path)
	if candidate == "" {
		return false
	}

	return m.matcher.Included(candidate, false)
}
