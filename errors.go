// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package lspk

import "errors"

// Error classes. Specific errors below wrap one of them, so callers may match
// either the class or the exact cause with errors.Is.
var (
	// ErrFormat means the archive header or directory table is malformed.
	// No part of an archive failing with ErrFormat is usable.
	ErrFormat = errors.New("invalid LSPK archive")
	// ErrCodec means one entry payload could not be decoded.
	// Other entries and the directory table stay valid.
	ErrCodec = errors.New("entry decode failed")
)

// Sentinel errors for LSPK operations. Use errors.Is in callers.
var (
	// ErrInvalidMagic means the first four bytes are not "LSPK".
	ErrInvalidMagic = errors.New("bad magic number")
	// ErrUnsupportedVersion means the header version is not the supported one.
	ErrUnsupportedVersion = errors.New("unsupported archive version")
	// ErrDirectorySize means the directory table size disagrees with the header.
	ErrDirectorySize = errors.New("directory table size mismatch")
	// ErrUnsupportedCodec means the entry flags select an unknown compression method.
	ErrUnsupportedCodec = errors.New("unsupported compression method")
	// ErrSizeLimit means a declared entry size exceeds MaxEntrySize.
	ErrSizeLimit = errors.New("entry size exceeds limit")
	// ErrNilReader means the reader is nil.
	ErrNilReader = errors.New("reader is nil")
	// ErrEntryNotFound means the entry is not found.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrPartUnavailable means an entry lives in an archive part the reader cannot open.
	ErrPartUnavailable = errors.New("archive part unavailable")
	// ErrInvalidExtractPath means archive entry path is invalid for extraction destination.
	ErrInvalidExtractPath = errors.New("invalid extract path")
)
