// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package modinfo

import "slices"

// MissingDependencies returns the dependencies of d whose UUID is not in
// present, in document order.
func MissingDependencies(d *Descriptor, present []string) []Dependency {
	missing := make([]Dependency, 0)
	if d == nil {
		return missing
	}

	for _, dep := range d.Dependencies {
		if !slices.Contains(present, dep.UUID) {
			missing = append(missing, dep)
		}
	}

	return missing
}

// DependsOn reports whether d lists other as a direct dependency.
func DependsOn(d, other *Descriptor) bool {
	if d == nil || other == nil {
		return false
	}

	return slices.ContainsFunc(d.Dependencies, func(dep Dependency) bool {
		return dep.UUID == other.UUID
	})
}
