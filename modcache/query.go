// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package modcache

import (
	"slices"
	"strings"

	"github.com/woozymasta/lspk/modinfo"
)

// Path returns the archive path, relative to Options.BaseDir when set.
func (c *Cache) Path() string {
	return c.path
}

// ModTime returns the recorded modification time in Unix seconds.
func (c *Cache) ModTime() int64 {
	return c.modTime
}

// Files returns entry paths in directory order.
func (c *Cache) Files() []string {
	return slices.Clone(c.files)
}

// Plugins returns plugin descriptors in directory order.
func (c *Cache) Plugins() []*modinfo.Descriptor {
	return slices.Clone(c.plugins)
}

// Plugin returns the descriptor with uuid.
func (c *Cache) Plugin(uuid string) (*modinfo.Descriptor, bool) {
	for _, d := range c.plugins {
		if d.UUID == uuid {
			return d, true
		}
	}

	return nil, false
}

// PluginName returns the name of the plugin with uuid.
func (c *Cache) PluginName(uuid string) (string, bool) {
	d, ok := c.Plugin(uuid)
	if !ok {
		return "", false
	}

	return d.Name, true
}

// HasPlugin reports whether c contains a plugin with uuid.
func (c *Cache) HasPlugin(uuid string) bool {
	_, ok := c.Plugin(uuid)
	return ok
}

// FileConflict reports whether c and other share any entry path.
// Paths compare by exact string; ignored paths never conflict.
func (c *Cache) FileConflict(other *Cache) bool {
	if other == nil {
		return false
	}

	theirs := other.fileSet()
	for _, p := range c.files {
		if _, ok := theirs[p]; ok && !c.ignore.Ignored(p) {
			return true
		}
	}

	return false
}

// ConflictingFiles returns the entry paths present in both c and other,
// in c's directory order.
func (c *Cache) ConflictingFiles(other *Cache) []string {
	out := make([]string, 0)
	if other == nil {
		return out
	}

	theirs := other.fileSet()
	seen := make(map[string]struct{})
	for _, p := range c.files {
		if _, ok := theirs[p]; !ok || c.ignore.Ignored(p) {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}

		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}

// PluginConflict reports whether the folder of plugin uuid in c and the
// folder of plugin otherUUID in other share a relative path. meta.lsx and
// meta.lsf are exempt. An unknown uuid on either side is not a conflict.
func (c *Cache) PluginConflict(uuid string, other *Cache, otherUUID string) bool {
	if other == nil {
		return false
	}

	mine, ok := c.Plugin(uuid)
	if !ok {
		return false
	}

	theirs, ok := other.Plugin(otherUUID)
	if !ok {
		return false
	}

	ours := c.pluginFiles(mine.Folder)
	for rel := range other.pluginFiles(theirs.Folder) {
		if _, ok := ours[rel]; ok {
			return true
		}
	}

	return false
}

// pluginFiles returns paths under Mods/<folder>/ relative to it.
func (c *Cache) pluginFiles(folder string) map[string]struct{} {
	prefix := NamespacePrefix + "/" + folder + "/"
	out := make(map[string]struct{})
	for _, p := range c.files {
		rel, ok := strings.CutPrefix(p, prefix)
		if !ok || rel == MetaFileName || rel == MetaBinaryFileName || c.ignore.Ignored(p) {
			continue
		}

		out[rel] = struct{}{}
	}

	return out
}

func (c *Cache) fileSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.files))
	for _, p := range c.files {
		set[p] = struct{}{}
	}

	return set
}
