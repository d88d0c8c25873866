// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package modcache

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/woozymasta/lspk"
	"github.com/woozymasta/lspk/modinfo"
)

// Cache is the analyzed content of one archive: its entry paths and the
// plugin descriptors found in its meta.lsx files. A Cache is immutable and
// safe for concurrent queries.
type Cache struct {
	ignore  *ignoreMatcher
	path    string
	files   []string
	plugins []*modinfo.Descriptor
	modTime int64
}

// Build analyzes the archive at path using its current modification time.
func Build(path string, opts Options) (*Cache, error) {
	modTime, err := fileModTime(path)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", path, err)
	}

	return BuildAt(path, modTime, opts)
}

// BuildAt analyzes the archive at path, recording modTime as its timestamp.
// Any archive or entry decode failure aborts the whole build.
func BuildAt(path string, modTime int64, opts Options) (*Cache, error) {
	opts.applyDefaults()

	c, err := newCache(path, modTime, opts)
	if err != nil {
		return nil, err
	}

	r, err := lspk.OpenWithOptions(path, lspk.ReaderOptions{Logger: opts.Logger})
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", path, err)
	}

	c.files = r.Paths()
	for _, entry := range lspk.FilterEntriesByName(r.Entries(), MetaFileName) {
		data, err := r.ReadEntryInfo(entry)
		if err != nil {
			return nil, fmt.Errorf("analyze %s: %w", path, err)
		}

		if !modinfo.IsValid(data) {
			opts.Logger.Debug("skip non-plugin metadata", "archive", path, "entry", entry.Path)
			continue
		}

		d, ok := modinfo.Parse(data)
		if !ok {
			opts.Logger.Debug("skip built-in module metadata", "archive", path, "entry", entry.Path)
			continue
		}

		c.plugins = append(c.plugins, d)
	}

	opts.Logger.Debug("archive analyzed",
		"archive", path,
		"files", len(c.files),
		"plugins", len(c.plugins),
	)

	return c, nil
}

// Restore rebuilds a Cache from rec when rec.ModTime equals modTime, and
// otherwise analyzes the archive again. The bool result reports a cold build.
// A record whose plugin XML no longer parses is also rebuilt.
func Restore(rec Record, modTime int64, opts Options) (*Cache, bool, error) {
	opts.applyDefaults()
	path := resolvePath(opts.BaseDir, rec.Path)

	if rec.ModTime != modTime {
		opts.Logger.Debug("cache record stale", "archive", path, "stored", rec.ModTime, "current", modTime)
		c, err := BuildAt(path, modTime, opts)
		return c, true, err
	}

	c, err := newCache(path, modTime, opts)
	if err != nil {
		return nil, false, err
	}

	c.files = slices.Clone(rec.Files)
	c.plugins = make([]*modinfo.Descriptor, 0, len(rec.Plugins))
	for _, p := range rec.Plugins {
		d, ok := modinfo.ParseString(p.XML)
		if !ok {
			opts.Logger.Debug("cache record has unreadable plugin", "archive", path)
			c, err := BuildAt(path, modTime, opts)
			return c, true, err
		}

		c.plugins = append(c.plugins, d)
	}

	return c, false, nil
}

// Load is Restore using the archive's current modification time.
func Load(rec Record, opts Options) (*Cache, bool, error) {
	path := resolvePath(opts.BaseDir, rec.Path)
	modTime, err := fileModTime(path)
	if err != nil {
		return nil, false, fmt.Errorf("analyze %s: %w", path, err)
	}

	return Restore(rec, modTime, opts)
}

// Record returns the persisted form of c.
func (c *Cache) Record() Record {
	rec := Record{
		Path:    c.path,
		ModTime: c.modTime,
		Files:   slices.Clone(c.files),
		Plugins: make([]PluginRecord, 0, len(c.plugins)),
	}

	for _, d := range c.plugins {
		rec.Plugins = append(rec.Plugins, PluginRecord{XML: d.Raw()})
	}

	if rec.Files == nil {
		rec.Files = []string{}
	}

	return rec
}

func newCache(path string, modTime int64, opts Options) (*Cache, error) {
	ignore, err := newIgnoreMatcher(opts.Ignore, opts.IgnoreMatcherOptions)
	if err != nil {
		return nil, err
	}

	return &Cache{
		ignore:  ignore,
		path:    relativePath(opts.BaseDir, path, opts.Logger),
		modTime: modTime,
	}, nil
}

func fileModTime(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	return info.ModTime().Unix(), nil
}

// resolvePath joins a relative record path with baseDir.
func resolvePath(baseDir, path string) string {
	if baseDir == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(baseDir, filepath.FromSlash(path))
}

// relativePath returns path relative to baseDir in slash form, or path itself.
func relativePath(baseDir, path string, logger *slog.Logger) string {
	if baseDir == "" {
		return path
	}

	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		logger.Debug("keep absolute archive path", "archive", path, "base_dir", baseDir, "error", err)
		return path
	}

	return filepath.ToSlash(rel)
}
