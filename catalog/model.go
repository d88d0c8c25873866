// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package catalog

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/woozymasta/lspk/modcache"
	"github.com/woozymasta/lspk/modinfo"
)

const (
	// DefaultIndexName is the index file name placed in the catalog root.
	DefaultIndexName = "index.json"
	// DefaultCacheSize is the number of analyses held in memory.
	DefaultCacheSize = 256
	// indexVersion is the current index document version.
	indexVersion = 1
)

// Options controls catalog scanning and persistence.
type Options struct {
	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger `json:"-" yaml:"-"`
	// IndexPath is the persisted index file (default <dir>/index.json).
	IndexPath string `json:"index_path,omitempty" yaml:"index_path,omitempty"`
	// Cache is passed to every archive analysis. BaseDir is always the catalog root.
	Cache modcache.Options `json:"cache,omitzero" yaml:"cache,omitempty"`
	// CacheSize bounds analyses held in memory (zero means DefaultCacheSize).
	CacheSize int `json:"cache_size,omitempty" yaml:"cache_size,omitempty"`
	// Workers bounds parallel analyses (zero means GOMAXPROCS).
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// Problem is one archive that could not be analyzed.
type Problem struct {
	Err     error  `json:"-" yaml:"-"`
	Archive string `json:"archive" yaml:"archive"`
}

// Error formats the problem as "<archive>: <error>".
func (p Problem) Error() string {
	return fmt.Sprintf("%s: %v", p.Archive, p.Err)
}

// Unwrap returns the underlying error.
func (p Problem) Unwrap() error {
	return p.Err
}

// Conflict is a pair of archives that ship the same entry paths.
type Conflict struct {
	A     string   `json:"a" yaml:"a"`
	B     string   `json:"b" yaml:"b"`
	Files []string `json:"files" yaml:"files"`
}

// Missing is a plugin dependency not provided by any archive in the catalog.
type Missing struct {
	Archive    string             `json:"archive" yaml:"archive"`
	PluginUUID string             `json:"plugin_uuid" yaml:"plugin_uuid"`
	PluginName string             `json:"plugin_name,omitempty" yaml:"plugin_name,omitempty"`
	Dependency modinfo.Dependency `json:"dependency" yaml:"dependency"`
}

// index is the persisted catalog document.
type index struct {
	Archives []modcache.Record `json:"archives"`
	Version  int               `json:"version"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *Options) applyDefaults(dir string) {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	if opts.IndexPath == "" {
		opts.IndexPath = filepath.Join(dir, DefaultIndexName)
	}

	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}

	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	opts.Cache.BaseDir = dir
	if opts.Cache.Logger == nil {
		opts.Cache.Logger = opts.Logger
	}
}
