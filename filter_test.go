// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package lspk

import (
	"testing"

	"github.com/woozymasta/lspk/internal/testutil"
)

func TestFilterEntriesByPrefix(t *testing.T) {
	t.Parallel()

	entries := []EntryInfo{
		{Path: "Mods/A/meta.lsx"},
		{Path: "Mods/AB/meta.lsx"},
		{Path: "Public/A/Stats/Generated/Data/Armor.txt"},
		{Path: "Mods/A"},
	}

	filtered := filterEntriesByPrefix(entries, `Mods\A\`)
	if len(filtered) != 2 {
		t.Fatalf("len(filtered)=%d, want 2", len(filtered))
	}

	if filtered[0].Path != "Mods/A/meta.lsx" || filtered[1].Path != "Mods/A" {
		t.Fatalf("filtered=%v", filtered)
	}

	if got := filterEntriesByPrefix(entries, ""); len(got) != len(entries) {
		t.Fatalf("empty prefix kept %d entries, want %d", len(got), len(entries))
	}
}

func TestFilterEntriesByName(t *testing.T) {
	t.Parallel()

	entries := []EntryInfo{
		{Path: "Mods/A/meta.lsx"},
		{Path: "Mods/A/meta.lsf"},
		{Path: "Mods/B/Sub/meta.lsx"},
		{Path: "Mods/C/notmeta.lsx"},
	}

	got := FilterEntriesByName(entries, "meta.lsx")
	if len(got) != 2 {
		t.Fatalf("len(got)=%d, want 2", len(got))
	}

	if got[0].Path != "Mods/A/meta.lsx" || got[1].Path != "Mods/B/Sub/meta.lsx" {
		t.Fatalf("got=%v", got)
	}
}

func TestOpenWithOptions_PrefixFilter(t *testing.T) {
	t.Parallel()

	path := testutil.WritePak(t, t.TempDir(), "prefix.pak", testutil.Pak{Files: []testutil.File{
		{Path: "Mods/A/meta.lsx", Data: []byte("<save/>")},
		{Path: "Public/A/a.txt", Data: []byte("a")},
	}})

	r, err := OpenWithOptions(path, ReaderOptions{EntryPathPrefix: "Public"})
	if err != nil {
		t.Fatalf("OpenWithOptions: %v", err)
	}

	paths := r.Paths()
	if len(paths) != 1 || paths[0] != "Public/A/a.txt" {
		t.Fatalf("paths=%v, want [Public/A/a.txt]", paths)
	}
}
