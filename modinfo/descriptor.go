// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package modinfo

// Dependency is one module a descriptor requires.
type Dependency struct {
	UUID string `json:"uuid" yaml:"uuid"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Descriptor is the identity of one mod read from its meta.lsx fragment.
type Descriptor struct {
	// UUID is the module identifier.
	UUID string `json:"uuid" yaml:"uuid"`
	// Name is the display name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Version is the packed version as written in the fragment.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	// Folder is the mod directory under the Mods namespace.
	Folder string `json:"folder,omitempty" yaml:"folder,omitempty"`
	// Description is free text.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Dependencies keeps document order; vanilla modules are omitted.
	Dependencies []Dependency `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`

	raw string
}

// Raw returns the XML text the descriptor was parsed from.
func (d *Descriptor) Raw() string {
	return d.raw
}

// DependencyUUIDs returns dependency UUIDs in document order.
func (d *Descriptor) DependencyUUIDs() []string {
	out := make([]string, 0, len(d.Dependencies))
	for _, dep := range d.Dependencies {
		out = append(out, dep.UUID)
	}

	return out
}
