// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package lspk

import "strings"

// filterEntriesByPrefix keeps entries under prefix (or exact match if it points to a file).
func filterEntriesByPrefix(entries []EntryInfo, prefix string) []EntryInfo {
	prefix = NormalizePath(prefix)
	if prefix == "" {
		return entries
	}

	normalizedPrefix := prefix + "/"
	out := make([]EntryInfo, 0, len(entries))
	for _, entry := range entries {
		entryPath := NormalizePath(entry.Path)
		if entryPath == prefix || strings.HasPrefix(entryPath, normalizedPrefix) {
			out = append(out, entry)
		}
	}

	return out
}

// FilterEntriesByName keeps entries whose last path segment equals name.
func FilterEntriesByName(entries []EntryInfo, name string) []EntryInfo {
	out := make([]EntryInfo, 0, 1)
	for _, entry := range entries {
		if BaseName(entry.Path) == name {
			out = append(out, entry)
		}
	}

	return out
}
