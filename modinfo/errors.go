// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package modinfo

import "errors"

// ErrInvalidVersion indicates a packed version string that is not an unsigned 64-bit integer.
var ErrInvalidVersion = errors.New("invalid packed version")
