// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package lspk

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Reader provides read-only access to a parsed LSPK archive.
//
// A Reader is either fully loaded (header and directory table decoded) or not
// constructed at all. Read methods do not mutate the Reader.
type Reader struct {
	// ra is caller storage for readers built from io.ReaderAt; nil for file-backed readers.
	ra io.ReaderAt
	// logger receives debug records.
	logger *slog.Logger
	// path is archive part 0 path for file-backed readers.
	path string
	// entries stores parsed immutable entry metadata in directory order.
	entries []EntryInfo
	// header stores decoded fixed header.
	header Header
}

// Open opens archive file by path and parses header and directory table.
// The file is closed before Open returns; entry reads reopen it.
func Open(path string) (*Reader, error) {
	return OpenWithOptions(path, ReaderOptions{})
}

// OpenWithOptions opens archive file by path using explicit reader options.
func OpenWithOptions(path string, opts ReaderOptions) (*Reader, error) {
	opts.applyDefaults()

	f, size, err := openFileWithSize(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := &Reader{path: path, logger: opts.Logger}
	if err := r.parse(f, size, opts); err != nil {
		return nil, err
	}

	return r, nil
}

// NewReaderFromReaderAt parses archive from existing ReaderAt and known size.
// Entries stored in parts other than 0 cannot be read from such a reader.
func NewReaderFromReaderAt(ra io.ReaderAt, size int64) (*Reader, error) {
	return NewReaderFromReaderAtWithOptions(ra, size, ReaderOptions{})
}

// NewReaderFromReaderAtWithOptions parses archive from existing ReaderAt using explicit reader options.
func NewReaderFromReaderAtWithOptions(ra io.ReaderAt, size int64, opts ReaderOptions) (*Reader, error) {
	if ra == nil {
		return nil, ErrNilReader
	}

	opts.applyDefaults()

	r := &Reader{ra: ra, logger: opts.Logger}
	if err := r.parse(ra, size, opts); err != nil {
		return nil, err
	}

	return r, nil
}

// Header returns decoded archive header.
func (r *Reader) Header() Header {
	if r == nil {
		return Header{}
	}

	return r.header
}

// Len returns number of visible entries.
func (r *Reader) Len() int {
	if r == nil {
		return 0
	}

	return len(r.entries)
}

// Entries returns a copy of parsed entries.
func (r *Reader) Entries() []EntryInfo {
	if r == nil {
		return nil
	}

	entries := make([]EntryInfo, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Paths returns entry paths in directory order.
func (r *Reader) Paths() []string {
	if r == nil {
		return nil
	}

	paths := make([]string, len(r.entries))
	for i := range r.entries {
		paths[i] = r.entries[i].Path
	}

	return paths
}

// parse reads and validates header and directory table from ReaderAt.
func (r *Reader) parse(ra io.ReaderAt, size int64, opts ReaderOptions) error {
	header, err := parseHeader(ra, size)
	if err != nil {
		return err
	}
	r.header = header

	entries, err := parseDirectory(ra, size, header)
	if err != nil {
		return err
	}

	r.entries = filterEntriesByPrefix(entries, opts.EntryPathPrefix)
	r.logger.Debug("parsed archive directory",
		slog.String("path", r.path),
		slog.Int("entries", len(entries)),
		slog.Int("visible", len(r.entries)),
		slog.Int("parts", int(header.NumParts)),
	)

	return nil
}

// parseHeader reads and validates the fixed header block.
func parseHeader(ra io.ReaderAt, size int64) (Header, error) {
	if size < headerSize {
		return Header{}, fmt.Errorf("%w: short header (%d bytes)", ErrFormat, size)
	}

	var buf [headerSize]byte
	if err := readFullAt(ra, buf[:], 0); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, fmt.Errorf("%w: short header", ErrFormat)
		}

		return Header{}, fmt.Errorf("read header: %w", err)
	}

	return decodeHeader(buf[:])
}

// decodeHeader decodes header fields from a headerSize byte block.
// Magic and version are checked before any other field is trusted.
func decodeHeader(buf []byte) (Header, error) {
	h := Header{
		Magic:   binary.LittleEndian.Uint32(buf[0:4]),
		Version: binary.LittleEndian.Uint32(buf[4:8]),
	}
	if h.Magic != Magic {
		return Header{}, fmt.Errorf("%w: %w: %#08x", ErrFormat, ErrInvalidMagic, h.Magic)
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: %w: %d (want %d)", ErrFormat, ErrUnsupportedVersion, h.Version, Version)
	}

	h.DirectoryOffset = binary.LittleEndian.Uint64(buf[8:16])
	h.DirectorySize = binary.LittleEndian.Uint32(buf[16:20])
	h.Flags = buf[20]
	h.Priority = buf[21]
	copy(h.MD5[:], buf[22:38])
	h.NumParts = binary.LittleEndian.Uint16(buf[38:40])

	return h, nil
}

// parseDirectory reads the LZ4 directory table and decodes entry records.
func parseDirectory(ra io.ReaderAt, size int64, h Header) ([]EntryInfo, error) {
	if h.DirectoryOffset > uint64(size) || uint64(size)-h.DirectoryOffset < dirPrefixSize {
		return nil, fmt.Errorf("%w: directory offset %d outside archive of %d bytes", ErrFormat, h.DirectoryOffset, size)
	}

	off := int64(h.DirectoryOffset) //nolint:gosec // bounded by size check above
	var prefix [dirPrefixSize]byte
	if err := readFullAt(ra, prefix[:], off); err != nil {
		return nil, fmt.Errorf("read directory prefix: %w", err)
	}

	count := binary.LittleEndian.Uint32(prefix[0:4])
	compressed := binary.LittleEndian.Uint32(prefix[4:8])
	if uint64(compressed)+dirPrefixSize != uint64(h.DirectorySize) {
		return nil, fmt.Errorf("%w: %w: table %d + %d bytes, header declares %d",
			ErrFormat, ErrDirectorySize, compressed, dirPrefixSize, h.DirectorySize)
	}

	remaining := size - off - dirPrefixSize
	if int64(compressed) > remaining {
		return nil, fmt.Errorf("%w: directory table truncated", ErrFormat)
	}

	tableSize := uint64(count) * entrySize
	if tableSize > MaxEntrySize {
		return nil, fmt.Errorf("%w: %w: %d directory entries", ErrFormat, ErrSizeLimit, count)
	}

	src := make([]byte, compressed)
	if err := readFullAt(ra, src, off+dirPrefixSize); err != nil {
		return nil, fmt.Errorf("read directory table: %w", err)
	}

	table, err := decodeLZ4Block(src, int(tableSize))
	if err != nil {
		return nil, fmt.Errorf("%w: decode directory table: %w", ErrFormat, err)
	}

	entries := make([]EntryInfo, count)
	for i := range entries {
		entries[i] = decodeEntry(table[i*entrySize : (i+1)*entrySize])
	}

	return entries, nil
}

// decodeEntry decodes one packed directory record.
func decodeEntry(rec []byte) EntryInfo {
	name := rec[:maxPathLen]
	if idx := bytes.IndexByte(name, 0); idx >= 0 {
		name = name[:idx]
	}

	low := binary.LittleEndian.Uint32(rec[256:260])
	high := binary.LittleEndian.Uint16(rec[260:262])

	return EntryInfo{
		Path:             string(name),
		Offset:           uint64(low) | uint64(high)<<offsetHighShift,
		Part:             rec[262],
		Flags:            rec[263],
		CompressedSize:   binary.LittleEndian.Uint32(rec[264:268]),
		UncompressedSize: binary.LittleEndian.Uint32(rec[268:272]),
	}
}

// readFullAt fills buf from ra at offset, mapping short reads to io.ErrUnexpectedEOF.
func readFullAt(ra io.ReaderAt, buf []byte, offset int64) error {
	n, err := ra.ReadAt(buf, offset)
	if n == len(buf) {
		return nil
	}

	if err == nil || errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}

	return err
}

// openFileWithSize opens a file and returns a handle plus current size.
func openFileWithSize(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open archive: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, fmt.Errorf("stat: %w", err)
	}

	return f, fi.Size(), nil
}
