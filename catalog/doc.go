// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

/*
Package catalog analyzes every archive of a mods directory and answers
cross-archive questions: which archives overwrite each other's files, which
plugin dependencies are not installed, and which archive provides a plugin.

Analyses are persisted in an index file keyed by archive modification time,
so a Refresh after the first one only re-reads archives that changed.

	cat, err := catalog.Open(modsDir, catalog.Options{})
	if err != nil {
		return err
	}

	if err := cat.Refresh(ctx); err != nil {
		return err
	}

	for _, p := range cat.Problems() {
		log.Println(p)
	}

	_ = cat.Save()
*/
package catalog
