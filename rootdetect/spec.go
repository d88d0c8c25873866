// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package rootdetect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// MatcherKind selects how Spec.Expression is compared with node labels.
type MatcherKind string

const (
	// MatcherSimple uses '*' wildcard matching.
	MatcherSimple MatcherKind = "simple"
	// MatcherRegex uses a regular expression that must match the whole label.
	MatcherRegex MatcherKind = "regex"
)

// TargetKind filters nodes by kind before matching.
type TargetKind string

const (
	// TargetAny accepts files and directories.
	TargetAny TargetKind = "any"
	// TargetFile accepts files only.
	TargetFile TargetKind = "file"
	// TargetDirectory accepts directories only.
	TargetDirectory TargetKind = "directory"
)

// Spec describes the node that marks a mod root.
type Spec struct {
	// Matcher selects wildcard or regex matching.
	Matcher MatcherKind `json:"matcher" yaml:"matcher"`
	// Target restricts matching to files or directories.
	Target TargetKind `json:"target" yaml:"target"`
	// Expression is compared against node labels.
	Expression string `json:"expression" yaml:"expression"`
	// Offset is subtracted from the depth of the matching node.
	Offset int `json:"offset" yaml:"offset"`
	// CaseInvariant compares labels case-insensitively.
	CaseInvariant bool `json:"case_invariant" yaml:"case_invariant"`
	// StopOnBranch is kept for configuration compatibility; Detect does not consult it.
	StopOnBranch bool `json:"stop_on_branch" yaml:"stop_on_branch"`
}

// specDocument is the loose form of Spec used to detect missing keys.
type specDocument struct {
	Matcher       *string `json:"matcher" yaml:"matcher"`
	Target        *string `json:"target" yaml:"target"`
	Expression    *string `json:"expression" yaml:"expression"`
	Offset        *int    `json:"offset" yaml:"offset"`
	CaseInvariant *bool   `json:"case_invariant" yaml:"case_invariant"`
	StopOnBranch  *bool   `json:"stop_on_branch" yaml:"stop_on_branch"`
}

// ParseSpecJSON decodes a spec from JSON.
func ParseSpecJSON(data []byte) (Spec, error) {
	var doc specDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return Spec{}, fmt.Errorf("%w: decode json: %w", ErrInvalidSpec, err)
	}

	return doc.spec()
}

// ParseSpecYAML decodes a spec from YAML.
func ParseSpecYAML(data []byte) (Spec, error) {
	var doc specDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Spec{}, fmt.Errorf("%w: decode yaml: %w", ErrInvalidSpec, err)
	}

	return doc.spec()
}

// LoadSpec reads a spec file, choosing YAML for .yaml/.yml and JSON otherwise.
func LoadSpec(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseSpecYAML(data)
	default:
		return ParseSpecJSON(data)
	}
}

// Validate checks matcher and target kinds and the expression.
func (s Spec) Validate() error {
	switch s.Matcher {
	case MatcherSimple, MatcherRegex:
	default:
		return fmt.Errorf("%w: unknown matcher %q", ErrInvalidSpec, s.Matcher)
	}

	switch s.Target {
	case TargetAny, TargetFile, TargetDirectory:
	default:
		return fmt.Errorf("%w: unknown target %q", ErrInvalidSpec, s.Target)
	}

	if s.Expression == "" {
		return fmt.Errorf("%w: empty expression", ErrInvalidSpec)
	}

	return nil
}

func (d specDocument) spec() (Spec, error) {
	switch {
	case d.Matcher == nil:
		return Spec{}, fmt.Errorf("%w: missing matcher", ErrInvalidSpec)
	case d.Target == nil:
		return Spec{}, fmt.Errorf("%w: missing target", ErrInvalidSpec)
	case d.Expression == nil:
		return Spec{}, fmt.Errorf("%w: missing expression", ErrInvalidSpec)
	}

	s := Spec{
		Matcher:      MatcherKind(strings.ToLower(*d.Matcher)),
		Target:       TargetKind(strings.ToLower(*d.Target)),
		Expression:   *d.Expression,
		StopOnBranch: true,
	}

	if d.Offset != nil {
		s.Offset = *d.Offset
	}
	if d.CaseInvariant != nil {
		s.CaseInvariant = *d.CaseInvariant
	}
	if d.StopOnBranch != nil {
		s.StopOnBranch = *d.StopOnBranch
	}

	if err := s.Validate(); err != nil {
		return Spec{}, err
	}

	return s, nil
}
