// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

/*
Package rootdetect finds the level of a file tree at which a mod's content
starts.

A Spec names the node that marks the root (for example a "Data" directory
or a file matching "*.pak") and Detect returns the depth of the shallowest
such node below the searched root:

	spec, err := rootdetect.LoadSpec("root.yaml")
	if err != nil {
		return err
	}

	tree, err := rootdetect.FromFS(os.DirFS(dir), ".")
	if err != nil {
		return err
	}

	level, ok, err := rootdetect.Detect(tree, spec)
*/
package rootdetect
