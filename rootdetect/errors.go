// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package rootdetect

import "errors"

var (
	// ErrInvalidSpec indicates a match spec with missing or unknown values.
	ErrInvalidSpec = errors.New("invalid root match spec")
	// ErrInvalidExpression indicates a regex expression that does not compile.
	ErrInvalidExpression = errors.New("invalid match expression")
)
