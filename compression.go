// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package lspk

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// zstdDecoder is shared by all readers; DecodeAll is safe for concurrent use.
var zstdDecoder = sync.OnceValues(func() (*zstd.Decoder, error) {
	return zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(0),
		zstd.WithDecoderMaxMemory(MaxEntrySize),
	)
})

// checkEntrySize rejects entries whose declared sizes exceed MaxEntrySize.
func checkEntrySize(e *EntryInfo) error {
	if e.CompressedSize > MaxEntrySize {
		return fmt.Errorf("%w: %w: stored size %d", ErrCodec, ErrSizeLimit, e.CompressedSize)
	}

	if e.Codec() != CodecNone && e.UncompressedSize > MaxEntrySize {
		return fmt.Errorf("%w: %w: uncompressed size %d", ErrCodec, ErrSizeLimit, e.UncompressedSize)
	}

	return nil
}

// decompress decodes stored payload with selected codec into exactly size bytes.
// Stored payload is returned as is.
func decompress(codec Codec, src []byte, size uint32) ([]byte, error) {
	var (
		out []byte
		err error
	)

	switch codec {
	case CodecNone:
		return src, nil
	case CodecZlib:
		out, err = inflateZlib(src, int(size))
	case CodecLZ4:
		out, err = decodeLZ4Block(src, int(size))
	case CodecZstd:
		out, err = decodeZstd(src, int(size))
	default:
		return nil, fmt.Errorf("%w: %w: %s", ErrCodec, ErrUnsupportedCodec, codec)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCodec, codec, err)
	}

	return out, nil
}

// inflateZlib inflates a zlib stream; the inflater is closed on every path.
func inflateZlib(src []byte, size int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	defer func() { _ = zr.Close() }()

	dst := make([]byte, size)
	if _, err := io.ReadFull(zr, dst); err != nil {
		return nil, err
	}

	return dst, nil
}

// decodeLZ4Block decodes one raw LZ4 block of known decoded size.
func decodeLZ4Block(src []byte, size int) ([]byte, error) {
	dst := make([]byte, size)
	if size == 0 {
		return dst, nil
	}

	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return nil, err
	}

	if n != size {
		return nil, fmt.Errorf("decoded %d bytes, want %d", n, size)
	}

	return dst, nil
}

// decodeZstd decodes one zstd frame of known decoded size.
func decodeZstd(src []byte, size int) ([]byte, error) {
	dec, err := zstdDecoder()
	if err != nil {
		return nil, err
	}

	out, err := dec.DecodeAll(src, make([]byte, 0, size))
	if err != nil {
		return nil, err
	}

	if len(out) != size {
		return nil, fmt.Errorf("decoded %d bytes, want %d", len(out), size)
	}

	return out, nil
}
