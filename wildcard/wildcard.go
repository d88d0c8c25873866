// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

// Package wildcard matches strings against glob expressions whose only
// metacharacter is '*'.
package wildcard

import "strings"

// Match reports whether target matches expression.
//
// The expression is split on '*' into literal segments. Unless the expression
// starts (ends) with '*', target must start (end) with the first (last)
// segment. All segments must then occur in target in order without
// overlapping. An empty expression never matches; an expression made only of
// '*' matches everything.
func Match(target, expression string) bool {
	if expression == "" {
		return false
	}

	segments := splitSegments(expression)
	if len(segments) == 0 {
		return true
	}

	if !strings.HasPrefix(expression, "*") && !strings.HasPrefix(target, segments[0]) {
		return false
	}

	if !strings.HasSuffix(expression, "*") && !strings.HasSuffix(target, segments[len(segments)-1]) {
		return false
	}

	pos := 0
	for _, segment := range segments {
		idx := strings.Index(target[pos:], segment)
		if idx < 0 {
			return false
		}

		pos += idx + len(segment)
	}

	return true
}

// MatchFold is Match with both sides lower-cased.
func MatchFold(target, expression string) bool {
	return Match(strings.ToLower(target), strings.ToLower(expression))
}

// splitSegments returns non-empty literal segments of expression.
func splitSegments(expression string) []string {
	parts := strings.Split(expression, "*")
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}

	return segments
}
