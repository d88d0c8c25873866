// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package modinfo

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a decoded Version64 value.
type Version struct {
	Major    uint32 `json:"major" yaml:"major"`
	Minor    uint32 `json:"minor" yaml:"minor"`
	Revision uint32 `json:"revision" yaml:"revision"`
	Build    uint32 `json:"build" yaml:"build"`
}

// Version64 bit layout: major(9) minor(8) revision(16) build(31).
const (
	majorShift    = 55
	minorShift    = 47
	revisionShift = 31
	minorMask     = 0xFF
	revisionMask  = 0xFFFF
	buildMask     = 0x7FFFFFFF
)

// ParseVersion64 decodes a packed Version64 string.
func ParseVersion64(s string) (Version, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	return Version{
		Major:    uint32(v >> majorShift),
		Minor:    uint32(v>>minorShift) & minorMask,
		Revision: uint32(v>>revisionShift) & revisionMask,
		Build:    uint32(v) & buildMask,
	}, nil
}

// Pack encodes v into its Version64 form.
func (v Version) Pack() uint64 {
	return uint64(v.Major)<<majorShift |
		uint64(v.Minor&minorMask)<<minorShift |
		uint64(v.Revision&revisionMask)<<revisionShift |
		uint64(v.Build&buildMask)
}

// String formats v as major.minor.revision.build.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Revision, v.Build)
}
