// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

/*
Package modinfo reads mod descriptors from meta.lsx fragments and renders
the mod list and load order nodes used by modsettings documents.

A fragment is addressed as a key-value node store: the descriptor lives at
region Config, node root, children, node ModuleInfo, and every field is an
attribute element with id and value. Structure that does not follow this
path yields no descriptor instead of an error.

	d, ok := modinfo.Parse(data)
	if !ok {
		return // not a plugin fragment
	}

	missing := modinfo.MissingDependencies(d, installed)
*/
package modinfo
