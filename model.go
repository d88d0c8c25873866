// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package lspk

import (
	"log/slog"
	"strconv"
)

// Internal binary layout and format limits.
const (
	headerSize      = 40  // fixed v18 header size in bytes, magic included
	entrySize       = 272 // packed v18 directory record size in bytes
	maxPathLen      = 256 // NUL-padded path field length
	dirPrefixSize   = 8   // entry count + compressed size fields
	codecMask       = 0x0F
	offsetHighShift = 32
)

const (
	// Magic is the archive signature ("LSPK" read as little-endian uint32).
	Magic uint32 = 0x4B50534C
	// Version is the only supported archive format version.
	Version uint32 = 18
	// MaxEntrySize bounds any single decoded buffer (entry payload or directory table).
	MaxEntrySize = 1 << 30
)

// Header is the fixed record at the start of an archive.
type Header struct {
	// MD5 is the content hash stored by the packer (not verified on read).
	MD5 [16]byte `json:"md5" yaml:"md5"`
	// DirectoryOffset is absolute offset of the compressed directory table.
	DirectoryOffset uint64 `json:"directory_offset" yaml:"directory_offset"`
	// Magic must equal Magic.
	Magic uint32 `json:"magic" yaml:"magic"`
	// Version must equal Version.
	Version uint32 `json:"version" yaml:"version"`
	// DirectorySize is byte size of the directory table including its two length fields.
	DirectorySize uint32 `json:"directory_size" yaml:"directory_size"`
	// NumParts is count of archive parts (1 for single-file archives).
	NumParts uint16 `json:"num_parts" yaml:"num_parts"`
	// Flags is the archive flag byte.
	Flags uint8 `json:"flags,omitempty" yaml:"flags,omitempty"`
	// Priority is the load priority byte.
	Priority uint8 `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// Codec selects entry payload compression (low nibble of entry flags).
type Codec uint8

// Entry compression methods.
const (
	// CodecNone stores payload as is.
	CodecNone Codec = 0
	// CodecZlib is zlib deflate stream.
	CodecZlib Codec = 1
	// CodecLZ4 is one raw LZ4 block.
	CodecLZ4 Codec = 2
	// CodecZstd is one Zstandard frame.
	CodecZstd Codec = 3
)

// String returns codec name.
func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecZlib:
		return "zlib"
	case CodecLZ4:
		return "lz4"
	case CodecZstd:
		return "zstd"
	default:
		return "codec(" + strconv.Itoa(int(c)) + ")"
	}
}

// EntryInfo describes a single parsed directory record.
type EntryInfo struct {
	// Path is the entry path as stored in directory table.
	Path string `json:"path" yaml:"path"`
	// Offset is byte offset of entry payload inside its part (48-bit on disk).
	Offset uint64 `json:"offset" yaml:"offset"`
	// CompressedSize is stored payload size in bytes.
	CompressedSize uint32 `json:"compressed_size" yaml:"compressed_size"`
	// UncompressedSize is decoded size; zero for stored entries.
	UncompressedSize uint32 `json:"uncompressed_size,omitempty" yaml:"uncompressed_size,omitempty"`
	// Part is archive part index holding the payload.
	Part uint8 `json:"part,omitempty" yaml:"part,omitempty"`
	// Flags is raw entry flag byte; low nibble is Codec.
	Flags uint8 `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// Codec returns compression method selected by entry flags.
func (e *EntryInfo) Codec() Codec {
	return Codec(e.Flags & codecMask)
}

// Size returns logical (decoded) entry size.
func (e *EntryInfo) Size() uint32 {
	if e.Codec() == CodecNone {
		return e.CompressedSize
	}

	return e.UncompressedSize
}

// ReaderOptions configures reader behavior.
type ReaderOptions struct {
	// Logger receives debug records about parsing; nil discards.
	Logger *slog.Logger `json:"-" yaml:"-"`
	// EntryPathPrefix limits visible entries to paths under this prefix.
	EntryPathPrefix string `json:"entry_path_prefix,omitempty" yaml:"entry_path_prefix,omitempty"`
}

// ExtractOptions configures Extract behavior.
type ExtractOptions struct {
	// OnEntryDone is called after one entry is fully written to disk.
	OnEntryDone func(entry EntryInfo, written int64, outputPath string) `json:"-" yaml:"-"`
	// FileMode controls output file creation policy.
	FileMode ExtractFileMode `json:"file_mode,omitempty" yaml:"file_mode,omitempty"`
	// Entries limits extraction to selected entries; nil means all parsed entries.
	Entries []EntryInfo `json:"-" yaml:"-"`
	// MaxWorkers is number of extraction workers (zero means GOMAXPROCS).
	MaxWorkers int `json:"max_workers,omitempty" yaml:"max_workers,omitempty"`
	// SanitizeNames rewrites entry paths to portable file names before writing.
	SanitizeNames bool `json:"sanitize_names,omitempty" yaml:"sanitize_names,omitempty"`
}

// ExtractFileMode controls output file open behavior during extraction.
type ExtractFileMode string

// Output file creation policies for extraction.
const (
	// ExtractFileModeTruncate opens existing files with truncate and creates missing files.
	ExtractFileModeTruncate ExtractFileMode = "truncate"
	// ExtractFileModeCreateOnly creates files only when absent and fails on existing files.
	ExtractFileModeCreateOnly ExtractFileMode = "create_only"
)

// applyDefaults fills zero-valued reader options with defaults.
func (opts *ReaderOptions) applyDefaults() {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
}

// applyDefaults fills zero-valued extract options with defaults.
func (opts *ExtractOptions) applyDefaults() {
	if opts.FileMode == "" {
		opts.FileMode = ExtractFileModeTruncate
	}
}
