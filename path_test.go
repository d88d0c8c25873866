// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lspk

package lspk

import "testing"

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "slash", in: "/", want: ""},
		{name: "clean", in: "Mods/MyMod/meta.lsx", want: "Mods/MyMod/meta.lsx"},
		{name: "windows", in: `.\Mods\MyMod\`, want: "Mods/MyMod"},
		{name: "dot segments", in: "./a/../b//c.txt", want: "b/c.txt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := NormalizePath(tc.in)
			if got != tc.want {
				t.Fatalf("NormalizePath(%q)=%q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want string
	}{
		{in: "Mods/MyMod/meta.lsx", want: "meta.lsx"},
		{in: `Mods\MyMod\meta.lsx`, want: "meta.lsx"},
		{in: "meta.lsx", want: "meta.lsx"},
		{in: "Mods/MyMod/", want: "MyMod"},
		{in: "", want: ""},
	}

	for _, tc := range testCases {
		if got := BaseName(tc.in); got != tc.want {
			t.Errorf("BaseName(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPartPath(t *testing.T) {
	t.Parallel()

	if got := PartPath("mods/Big.pak", 0); got != "mods/Big.pak" {
		t.Fatalf("PartPath part 0=%q", got)
	}

	if got := PartPath("mods/Big.pak", 2); got != "mods/Big_2.pak" {
		t.Fatalf("PartPath part 2=%q, want mods/Big_2.pak", got)
	}

	if got := PartPath("Big", 1); got != "Big_1" {
		t.Fatalf("PartPath without extension=%q, want Big_1", got)
	}
}
