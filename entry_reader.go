// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package lspk

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// PartPath returns file path of archive part for part 0 path.
// Part n of "Mod.pak" is "Mod_n.pak" in the same directory.
func PartPath(path string, part uint8) string {
	if part == 0 {
		return path
	}

	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + strconv.Itoa(int(part)) + ext
}

// FindEntry resolves entry index by normalized path.
func (r *Reader) FindEntry(name string) (int, bool) {
	if r == nil {
		return 0, false
	}

	lookupName := NormalizePath(name)
	for i := range r.entries {
		if NormalizePath(r.entries[i].Path) == lookupName {
			return i, true
		}
	}

	return 0, false
}

// ReadEntryAt reads full decoded content of entry i in directory order.
func (r *Reader) ReadEntryAt(i int) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	if i < 0 || i >= len(r.entries) {
		return nil, fmt.Errorf("%w: index %d", ErrEntryNotFound, i)
	}

	return r.readEntry(&r.entries[i])
}

// ReadEntryText reads entry i and returns it as text.
func (r *Reader) ReadEntryText(i int) (string, error) {
	data, err := r.ReadEntryAt(i)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// ReadEntry reads full decoded content of the named entry.
func (r *Reader) ReadEntry(name string) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	i, ok := r.FindEntry(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}

	return r.readEntry(&r.entries[i])
}

// ReadEntryInfo reads entry by already resolved metadata.
func (r *Reader) ReadEntryInfo(info EntryInfo) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	return r.readEntry(&info)
}

// readEntry loads stored payload from the entry part and decodes it.
// Size limits are checked before any allocation.
func (r *Reader) readEntry(e *EntryInfo) ([]byte, error) {
	if err := checkEntrySize(e); err != nil {
		return nil, fmt.Errorf("read %s: %w", e.Path, err)
	}

	ra, release, err := r.openPart(e.Part)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", e.Path, err)
	}
	defer release()

	src := make([]byte, e.CompressedSize)
	if err := readFullAt(ra, src, int64(e.Offset)); err != nil { //nolint:gosec // offset is 48-bit
		return nil, fmt.Errorf("read %s payload: %w", e.Path, err)
	}

	data, err := decompress(e.Codec(), src, e.UncompressedSize)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", e.Path, err)
	}

	return data, nil
}

// openPart returns storage for archive part and its release func.
// File-backed readers open the part file per call.
func (r *Reader) openPart(part uint8) (io.ReaderAt, func(), error) {
	if r.path == "" {
		if r.ra == nil {
			return nil, nil, ErrNilReader
		}
		if part != 0 {
			return nil, nil, fmt.Errorf("%w: part %d", ErrPartUnavailable, part)
		}

		return r.ra, func() {}, nil
	}

	partPath := PartPath(r.path, part)
	f, err := os.Open(partPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrPartUnavailable, partPath)
		}

		return nil, nil, fmt.Errorf("open archive part: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
