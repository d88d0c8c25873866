// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

// Package modcache analyzes LSPK archives into entry path lists and plugin
// descriptors, persists the result as a record keyed by modification time,
// and answers lookup and conflict queries between archives.
package modcache
