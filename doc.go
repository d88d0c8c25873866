// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

/*
Package lspk reads LSPK version 18 archives (".pak" files used by Baldur's
Gate 3 and its mods). Only the header and the compressed directory table
are read on open; entry payloads are read and decoded on demand.

Entry codecs (low nibble of entry flags):
  - 0 store;
  - 1 zlib;
  - 2 LZ4 block;
  - 3 zstd.

Any other codec id fails that entry with ErrUnsupportedCodec. Declared sizes
above MaxEntrySize are rejected with ErrSizeLimit before allocation.

# Errors

Archive-level problems (magic, version, directory table) wrap ErrFormat and
leave no usable reader. Entry-level problems wrap ErrCodec and do not affect
other entries. Use errors.Is with the specific sentinels for details.

# Reading

Open an archive and read entries:

	r, err := lspk.Open("Mod.pak")
	if err != nil {
	    return err
	}
	for i, e := range r.Entries() {
	    data, err := r.ReadEntryAt(i)
	    if err != nil {
	        return fmt.Errorf("%s: %w", e.Path, err)
	    }
	    _ = data
	}

File-backed readers hold no open handle between calls: every read opens the
part file that holds the entry ("Mod.pak", "Mod_1.pak", ...).

For metadata-only scans:

	header, err := lspk.ReadHeader("Mod.pak")
	if err != nil {
	    return err
	}
	entries, err := lspk.ListEntries("Mod.pak")
	if err != nil {
	    return err
	}
	_, _ = header, entries

Limit visible entries to one subtree:

	r, err := lspk.OpenWithOptions("Mod.pak", lspk.ReaderOptions{
	    EntryPathPrefix: "Mods/MyMod",
	})

# Extracting

	err := r.Extract(ctx, "out", lspk.ExtractOptions{
	    MaxWorkers:    4,
	    FileMode:      lspk.ExtractFileModeCreateOnly,
	    SanitizeNames: true,
	})

Entry paths that escape the output directory fail with ErrInvalidExtractPath
unless SanitizeNames rewrites them.
*/
package lspk
