// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package modcache

import (
	"log/slog"

	"github.com/woozymasta/pathrules"
)

const (
	// MetaFileName is the text plugin descriptor file name.
	MetaFileName = "meta.lsx"
	// MetaBinaryFileName is the binary plugin descriptor file name.
	MetaBinaryFileName = "meta.lsf"
	// NamespacePrefix is the archive directory holding per-mod folders.
	NamespacePrefix = "Mods"
)

// Options controls cache builds and conflict queries.
type Options struct {
	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger `json:"-" yaml:"-"`
	// BaseDir makes Record.Path relative to it when set.
	BaseDir string `json:"base_dir,omitempty" yaml:"base_dir,omitempty"`
	// Ignore lists gitignore-like rules; paths included by them are left out
	// of file and plugin conflict queries.
	Ignore []pathrules.Rule `json:"ignore,omitempty" yaml:"ignore,omitempty"`
	// IgnoreMatcherOptions controls Ignore rule matching.
	IgnoreMatcherOptions pathrules.MatcherOptions `json:"ignore_matcher_options,omitzero" yaml:"ignore_matcher_options,omitzero"`
}

// Record is the persisted form of a Cache.
type Record struct {
	// Path is the archive path, relative to Options.BaseDir when set.
	Path string `json:"path" yaml:"path"`
	// ModTime is archive modification time in Unix seconds.
	ModTime int64 `json:"mod_time" yaml:"mod_time"`
	// Files lists entry paths in directory order.
	Files []string `json:"files" yaml:"files"`
	// Plugins holds raw descriptor XML only; other fields are re-parsed.
	Plugins []PluginRecord `json:"plugins" yaml:"plugins"`
}

// PluginRecord is one persisted plugin descriptor.
type PluginRecord struct {
	XML string `json:"xml" yaml:"xml"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *Options) applyDefaults() {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	if opts.IgnoreMatcherOptions == (pathrules.MatcherOptions{}) {
		opts.IgnoreMatcherOptions = pathrules.MatcherOptions{
			CaseInsensitive: true,
			DefaultAction:   pathrules.ActionExclude,
		}
	}

	if opts.IgnoreMatcherOptions.DefaultAction == pathrules.ActionUnknown {
		opts.IgnoreMatcherOptions.DefaultAction = pathrules.ActionExclude
	}
}
