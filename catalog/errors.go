// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package catalog

import "errors"

var (
	// ErrInvalidIndex indicates a persisted index that cannot be decoded.
	ErrInvalidIndex = errors.New("invalid catalog index")
	// ErrNotDirectory indicates a catalog root that is not a directory.
	ErrNotDirectory = errors.New("catalog root is not a directory")
)
