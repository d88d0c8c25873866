// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package modcache

import "errors"

var (
	// ErrInvalidIgnoreRule indicates ignore rules that failed to compile.
	ErrInvalidIgnoreRule = errors.New("invalid ignore rule")
	// ErrInvalidRecord indicates a persisted record that cannot be decoded.
	ErrInvalidRecord = errors.New("invalid cache record")
)
