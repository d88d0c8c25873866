// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

// Package testutil builds LSPK archives and mod metadata for tests.
// Archive writing is not part of the public API.
package testutil

import (
	"bytes"
	"crypto/md5" //nolint:gosec // header checksum slot, not security
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec ids as stored in the low nibble of entry flags.
const (
	CodecNone uint8 = 0
	CodecZlib uint8 = 1
	CodecLZ4  uint8 = 2
	CodecZstd uint8 = 3
)

const (
	magic      = 0x4B50534C
	version    = 18
	headerSize = 40
	entrySize  = 272
	maxPathLen = 256
)

// File is one entry to be written.
type File struct {
	// Path is stored entry path.
	Path string
	// Data is decoded entry content.
	Data []byte
	// DeclaredSize overrides the stored uncompressed size when non-zero.
	DeclaredSize uint32
	// Codec selects payload encoding; unknown ids store Data raw with that id in flags.
	Codec uint8
	// Part is archive part receiving the payload.
	Part uint8
}

// Pak describes an archive to build.
type Pak struct {
	// Files are written in order; directory order matches.
	Files []File
	// Magic overrides header magic when non-zero.
	Magic uint32
	// Version overrides header version when non-zero.
	Version uint32
	// DirectorySizeDelta is added to the header directory size field.
	DirectorySizeDelta int32
	// Priority is header priority byte.
	Priority uint8
}

// Build encodes all archive parts; part 0 holds header and directory table.
func (p Pak) Build() ([][]byte, error) {
	numParts := 1
	for _, f := range p.Files {
		if int(f.Part)+1 > numParts {
			numParts = int(f.Part) + 1
		}
	}

	parts := make([]*bytes.Buffer, numParts)
	for i := range parts {
		parts[i] = &bytes.Buffer{}
	}
	parts[0].Write(make([]byte, headerSize))

	table := make([]byte, len(p.Files)*entrySize)
	sum := md5.New() //nolint:gosec // header checksum slot
	for i, f := range p.Files {
		if len(f.Path) >= maxPathLen {
			return nil, fmt.Errorf("path too long: %s", f.Path)
		}

		payload, err := encode(f.Codec, f.Data)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", f.Path, err)
		}

		offset := uint64(parts[f.Part].Len())
		parts[f.Part].Write(payload)
		sum.Write(payload)

		uncompressed := uint32(len(f.Data)) //nolint:gosec // test data
		if f.Codec == CodecNone {
			uncompressed = 0
		}
		if f.DeclaredSize != 0 {
			uncompressed = f.DeclaredSize
		}

		rec := table[i*entrySize : (i+1)*entrySize]
		copy(rec[:maxPathLen], f.Path)
		binary.LittleEndian.PutUint32(rec[256:260], uint32(offset))
		binary.LittleEndian.PutUint16(rec[260:262], uint16(offset>>32))
		rec[262] = f.Part
		rec[263] = f.Codec
		binary.LittleEndian.PutUint32(rec[264:268], uint32(len(payload)))
		binary.LittleEndian.PutUint32(rec[268:272], uncompressed)
	}

	compressed := make([]byte, lz4.CompressBlockBound(len(table)))
	n := 0
	if len(table) > 0 {
		var (
			c   lz4.Compressor
			err error
		)
		n, err = c.CompressBlock(table, compressed)
		if err != nil {
			return nil, fmt.Errorf("compress directory: %w", err)
		}
	}

	dirOffset := uint64(parts[0].Len())
	var prefix [8]byte
	binary.LittleEndian.PutUint32(prefix[0:4], uint32(len(p.Files)))
	binary.LittleEndian.PutUint32(prefix[4:8], uint32(n))
	parts[0].Write(prefix[:])
	parts[0].Write(compressed[:n])

	hdr := parts[0].Bytes()[:headerSize]
	binary.LittleEndian.PutUint32(hdr[0:4], orDefault(p.Magic, magic))
	binary.LittleEndian.PutUint32(hdr[4:8], orDefault(p.Version, version))
	binary.LittleEndian.PutUint64(hdr[8:16], dirOffset)
	binary.LittleEndian.PutUint32(hdr[16:20], uint32(int32(n+8)+p.DirectorySizeDelta))
	hdr[20] = 0
	hdr[21] = p.Priority
	copy(hdr[22:38], sum.Sum(nil))
	binary.LittleEndian.PutUint16(hdr[38:40], uint16(numParts))

	out := make([][]byte, numParts)
	for i := range parts {
		out[i] = parts[i].Bytes()
	}

	return out, nil
}

// Bytes builds a single-part archive.
func (p Pak) Bytes() ([]byte, error) {
	parts, err := p.Build()
	if err != nil {
		return nil, err
	}

	if len(parts) != 1 {
		return nil, fmt.Errorf("archive has %d parts", len(parts))
	}

	return parts[0], nil
}

// WriteFile writes all parts next to path ("Mod.pak", "Mod_1.pak", ...).
func (p Pak) WriteFile(path string) error {
	parts, err := p.Build()
	if err != nil {
		return err
	}

	ext := filepath.Ext(path)
	for i, data := range parts {
		partPath := path
		if i > 0 {
			partPath = strings.TrimSuffix(path, ext) + "_" + strconv.Itoa(i) + ext
		}

		if err := os.WriteFile(partPath, data, 0o600); err != nil {
			return err
		}
	}

	return nil
}

// WritePak writes p as dir/name and returns the path.
func WritePak(t testing.TB, dir, name string, p Pak) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := p.WriteFile(path); err != nil {
		t.Fatalf("write archive %s: %v", name, err)
	}

	return path
}

// encode compresses data with codec; unknown codecs store data raw.
func encode(codec uint8, data []byte) ([]byte, error) {
	switch codec {
	case CodecZlib:
		var buf bytes.Buffer
		zw := zlib.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	case CodecLZ4:
		if len(data) == 0 {
			return nil, nil
		}

		var c lz4.Compressor
		dst := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := c.CompressBlock(data, dst)
		if err != nil {
			return nil, err
		}

		return dst[:n], nil
	case CodecZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		defer func() { _ = enc.Close() }()

		return enc.EncodeAll(data, nil), nil
	default:
		return append([]byte(nil), data...), nil
	}
}

func orDefault(v, def uint32) uint32 {
	if v == 0 {
		return def
	}

	return v
}
