// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	arc "github.com/hashicorp/golang-lru/arc/v2"
	"github.com/woozymasta/lspk/modcache"
	"golang.org/x/sync/errgroup"
)

// Catalog is the set of archives in one mods directory.
type Catalog struct {
	cache    *arc.ARCCache[string, *modcache.Cache]
	records  map[string]modcache.Record
	dir      string
	names    []string
	problems []Problem
	opts     Options
	mu       sync.RWMutex
}

// Open prepares a catalog for dir and loads the persisted index when present.
// A missing or unreadable index is not an error; archives are then analyzed
// cold by Refresh.
func Open(dir string, opts Options) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	opts.applyDefaults(dir)

	cache, err := arc.NewARC[string, *modcache.Cache](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create analysis cache: %w", err)
	}

	c := &Catalog{
		cache:   cache,
		records: make(map[string]modcache.Record),
		dir:     dir,
		opts:    opts,
	}

	records, err := readIndex(opts.IndexPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		opts.Logger.Debug("ignore catalog index", "path", opts.IndexPath, "error", err)
	default:
		for _, rec := range records {
			c.records[rec.Path] = rec
		}
	}

	return c, nil
}

// Refresh scans the catalog root for archives and analyzes each of them,
// reusing index records whose modification time still matches. Archives
// that fail analysis are reported by Problems and do not stop the others.
func (c *Catalog) Refresh(ctx context.Context) error {
	names, err := scanArchives(c.dir)
	if err != nil {
		return err
	}

	c.mu.RLock()
	records := make(map[string]modcache.Record, len(c.records))
	for name, rec := range c.records {
		records[name] = rec
	}
	c.mu.RUnlock()

	results := make([]*modcache.Cache, len(names))
	errs := make([]error, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Workers)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i], errs[i] = c.analyze(name, records)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Purge()
	c.records = make(map[string]modcache.Record, len(names))
	c.names = c.names[:0]
	c.problems = c.problems[:0]
	for i, name := range names {
		if errs[i] != nil {
			c.problems = append(c.problems, Problem{Archive: name, Err: errs[i]})
			continue
		}

		c.names = append(c.names, name)
		c.records[name] = results[i].Record()
		c.cache.Add(name, results[i])
	}

	c.opts.Logger.Debug("catalog refreshed",
		"dir", c.dir,
		"archives", len(c.names),
		"problems", len(c.problems),
	)

	return nil
}

// Save writes the index to Options.IndexPath through a temporary file.
func (c *Catalog) Save() error {
	c.mu.RLock()
	doc := index{Version: indexVersion, Archives: make([]modcache.Record, 0, len(c.names))}
	for _, name := range c.names {
		doc.Archives = append(doc.Archives, c.records[name])
	}
	c.mu.RUnlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog index: %w", err)
	}

	path := c.opts.IndexPath
	tmp, err := os.CreateTemp(filepath.Dir(path), "index-*.json.tmp")
	if err != nil {
		return fmt.Errorf("create temp index: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp index: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp index to %s: %w", path, err)
	}

	return nil
}

// Dir returns the catalog root.
func (c *Catalog) Dir() string {
	return c.dir
}

// Archives returns analyzed archive names, relative to the catalog root, sorted.
func (c *Catalog) Archives() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.names)
}

// Problems returns archives that failed the last Refresh.
func (c *Catalog) Problems() []Problem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.problems)
}

// Get returns the analysis of archive name. Analyses evicted from memory
// are restored from their index record.
func (c *Catalog) Get(name string) (*modcache.Cache, bool) {
	if cached, ok := c.cache.Get(name); ok {
		return cached, true
	}

	c.mu.RLock()
	rec, ok := c.records[name]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	cached, _, err := modcache.Load(rec, c.opts.Cache)
	if err != nil {
		c.opts.Logger.Debug("restore evicted analysis", "archive", name, "error", err)
		return nil, false
	}

	c.cache.Add(name, cached)
	return cached, true
}

// analyze restores name from its record or builds it cold.
func (c *Catalog) analyze(name string, records map[string]modcache.Record) (*modcache.Cache, error) {
	if rec, ok := records[name]; ok {
		cached, rebuilt, err := modcache.Load(rec, c.opts.Cache)
		if err == nil {
			c.opts.Logger.Debug("archive loaded", "archive", name, "rebuilt", rebuilt)
		}

		return cached, err
	}

	return modcache.Build(filepath.Join(c.dir, name), c.opts.Cache)
}

// readIndex decodes the index file at path.
func readIndex(path string) ([]modcache.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc index
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidIndex, err)
	}
	if doc.Version != indexVersion {
		return nil, fmt.Errorf("%w: version %d", ErrInvalidIndex, doc.Version)
	}

	return doc.Archives, nil
}

// scanArchives lists *.pak files of dir, skipping numbered parts of
// multi-part archives whose first part is present.
func scanArchives(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	present := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".pak") {
			present[e.Name()] = struct{}{}
		}
	}

	names := make([]string, 0, len(present))
	for name := range present {
		if base, ok := partBase(name); ok {
			if _, first := present[base]; first {
				continue
			}
		}

		names = append(names, name)
	}

	slices.Sort(names)
	return names, nil
}

// partBase maps "Mod_3.pak" to "Mod.pak".
func partBase(name string) (string, bool) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	idx := strings.LastIndexByte(stem, '_')
	if idx <= 0 {
		return "", false
	}

	if n, err := strconv.Atoi(stem[idx+1:]); err != nil || n <= 0 {
		return "", false
	}

	return stem[:idx] + ext, true
}
