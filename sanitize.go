// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package lspk

import (
	"fmt"
	"hash/fnv"
	"path"
	"strconv"
	"strings"
	"unicode"
)

// maxSanitizedSegmentLen limits one output path segment.
const maxSanitizedSegmentLen = 240

// reservedDeviceNames are Windows device names that cannot be file names.
var reservedDeviceNames = map[string]struct{}{
	"con": {}, "prn": {}, "aux": {}, "nul": {}, "clock$": {},
	"com1": {}, "com2": {}, "com3": {}, "com4": {}, "com5": {},
	"com6": {}, "com7": {}, "com8": {}, "com9": {},
	"lpt1": {}, "lpt2": {}, "lpt3": {}, "lpt4": {}, "lpt5": {},
	"lpt6": {}, "lpt7": {}, "lpt8": {}, "lpt9": {},
}

// SanitizePath rewrites an entry path into a portable relative file path.
// Characters invalid on Windows and control runes become '_', device names
// get a '_' prefix and overlong segments are shortened with a hash suffix.
func SanitizePath(raw string) (string, error) {
	normalized := NormalizePath(raw)
	if normalized == "" {
		return "", nil
	}

	sanitized := sanitizeSegments(normalized)
	if _, err := normalizeExtractEntryPath(sanitized); err != nil {
		return "", err
	}

	return sanitized, nil
}

// sanitizeEntryPaths sanitizes entry paths and resolves case-insensitive
// collisions with "~N" suffixes, keeping directory order.
func sanitizeEntryPaths(entries []EntryInfo) ([]EntryInfo, error) {
	out := make([]EntryInfo, len(entries))
	used := make(map[string]struct{}, len(entries))

	for i, entry := range entries {
		sanitized := sanitizeSegments(strings.ReplaceAll(entry.Path, `\`, `/`))
		sanitized = uniquePath(sanitized, used)
		if _, err := normalizeExtractEntryPath(sanitized); err != nil {
			return nil, fmt.Errorf("sanitize path %s: %w", entry.Path, err)
		}

		out[i] = entry
		out[i].Path = sanitized
	}

	return out, nil
}

// sanitizeSegments sanitizes every segment of a slash-separated path,
// dropping empty, "." and ".." segments.
func sanitizeSegments(p string) string {
	parts := strings.Split(p, "/")
	out := parts[:0]
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || part == "." || part == ".." {
			continue
		}

		out = append(out, sanitizeSegment(part))
	}

	if len(out) == 0 {
		return "_"
	}

	return strings.Join(out, "/")
}

func sanitizeSegment(segment string) string {
	segment = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || unicode.In(r, unicode.Cf) || r == '\uFFFD' || strings.ContainsRune(`<>:"|?*`, r) {
			return '_'
		}

		return r
	}, segment)

	segment = strings.TrimRight(segment, ". ")
	if segment == "" {
		return "_"
	}

	stem, _, _ := strings.Cut(segment, ".")
	if _, reserved := reservedDeviceNames[strings.ToLower(stem)]; reserved {
		segment = "_" + segment
	}

	return shortenSegment(segment, maxSanitizedSegmentLen)
}

// uniquePath returns p, or p with a "~N" suffix before its extension when
// p was already used (case-insensitively).
func uniquePath(p string, used map[string]struct{}) string {
	if _, taken := used[strings.ToLower(p)]; !taken {
		used[strings.ToLower(p)] = struct{}{}
		return p
	}

	dir, name := path.Split(p)
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 2; ; n++ {
		suffix := "~" + strconv.Itoa(n)
		candidate := dir + shortenSegment(stem, max(maxSanitizedSegmentLen-len(ext)-len(suffix), 1)) + suffix + ext
		if _, taken := used[strings.ToLower(candidate)]; !taken {
			used[strings.ToLower(candidate)] = struct{}{}
			return candidate
		}
	}
}

// shortenSegment cuts value to maxLen keeping an FNV-1a hash of the original.
func shortenSegment(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	if maxLen <= 10 {
		return value[:maxLen]
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(value))
	suffix := fmt.Sprintf("~%08x", h.Sum32())

	return value[:maxLen-len(suffix)] + suffix
}
