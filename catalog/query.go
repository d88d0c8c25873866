// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package catalog

import (
	"github.com/woozymasta/lspk/modcache"
	"github.com/woozymasta/lspk/modinfo"
)

// FileConflicts returns every pair of archives sharing entry paths, in
// archive name order.
func (c *Catalog) FileConflicts() []Conflict {
	names, caches := c.loaded()

	out := make([]Conflict, 0)
	for i := range caches {
		for j := i + 1; j < len(caches); j++ {
			files := caches[i].ConflictingFiles(caches[j])
			if len(files) == 0 {
				continue
			}

			out = append(out, Conflict{A: names[i], B: names[j], Files: files})
		}
	}

	return out
}

// MissingDependencies returns plugin dependencies not provided by any
// plugin in the catalog.
func (c *Catalog) MissingDependencies() []Missing {
	names, caches := c.loaded()

	var present []string
	for _, cached := range caches {
		for _, d := range cached.Plugins() {
			present = append(present, d.UUID)
		}
	}

	out := make([]Missing, 0)
	for i, cached := range caches {
		for _, d := range cached.Plugins() {
			for _, dep := range modinfo.MissingDependencies(d, present) {
				out = append(out, Missing{
					Archive:    names[i],
					PluginUUID: d.UUID,
					PluginName: d.Name,
					Dependency: dep,
				})
			}
		}
	}

	return out
}

// FindPlugin returns the archive and descriptor of the plugin with uuid.
func (c *Catalog) FindPlugin(uuid string) (string, *modinfo.Descriptor, bool) {
	names, caches := c.loaded()
	for i, cached := range caches {
		if d, ok := cached.Plugin(uuid); ok {
			return names[i], d, true
		}
	}

	return "", nil, false
}

// loaded returns archive names with their analyses, skipping archives
// whose analysis can no longer be restored.
func (c *Catalog) loaded() ([]string, []*modcache.Cache) {
	all := c.Archives()
	names := make([]string, 0, len(all))
	caches := make([]*modcache.Cache, 0, len(all))
	for _, name := range all {
		cached, ok := c.Get(name)
		if !ok {
			continue
		}

		names = append(names, name)
		caches = append(caches, cached)
	}

	return names, caches
}
