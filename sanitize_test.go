package lspk

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/woozymasta/lspk/internal/testutil"
)

func TestSanitizePath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want string
	}{
		{in: "Public/Mod/Stats.txt", want: "Public/Mod/Stats.txt"},
		{in: `Public\Mod\a:b?.txt`, want: "Public/Mod/a_b_.txt"},
		{in: "Mods/con.lsx", want: "Mods/_con.lsx"},
		{in: "Mods/LPT1", want: "Mods/_LPT1"},
		{in: "Mods/console.lsx", want: "Mods/console.lsx"},
		{in: "Mods/trailing. ", want: "Mods/trailing"},
		{in: "Mods/tab\tname", want: "Mods/tab_name"},
		{in: "", want: ""},
	}

	for _, tc := range testCases {
		got, err := SanitizePath(tc.in)
		if err != nil {
			t.Fatalf("SanitizePath(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("SanitizePath(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeEntryPaths(t *testing.T) {
	t.Parallel()

	entries := []EntryInfo{
		{Path: "../escape.txt"},
		{Path: `C:\abs.txt`},
		{Path: "Dir/File.txt"},
		{Path: "dir/file.txt"},
		{Path: "dir/file.txt"},
		{Path: "/"},
	}

	got, err := sanitizeEntryPaths(entries)
	if err != nil {
		t.Fatalf("sanitizeEntryPaths: %v", err)
	}

	want := []string{"escape.txt", "C_/abs.txt", "Dir/File.txt", "dir/file~2.txt", "dir/file~3.txt", "_"}
	for i := range want {
		if got[i].Path != want[i] {
			t.Errorf("entry %d: path=%q, want %q", i, got[i].Path, want[i])
		}
	}
	if entries[0].Path != "../escape.txt" {
		t.Fatal("input entries must not be modified")
	}
}

func TestShortenSegment(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 300)
	got := shortenSegment(long, maxSanitizedSegmentLen)
	if len(got) != maxSanitizedSegmentLen {
		t.Fatalf("len=%d, want %d", len(got), maxSanitizedSegmentLen)
	}
	if got != shortenSegment(long, maxSanitizedSegmentLen) {
		t.Fatal("shortening must be deterministic")
	}
	if shortenSegment(long+"b", maxSanitizedSegmentLen) == got {
		t.Fatal("different inputs must keep different names")
	}
}

func TestExtract_SanitizeNames(t *testing.T) {
	t.Parallel()

	path := testutil.WritePak(t, t.TempDir(), "Names.pak", testutil.Pak{Files: []testutil.File{
		{Path: "../up.txt", Data: []byte("up")},
		{Path: "Mods/aux.txt", Data: []byte("aux"), Codec: testutil.CodecZlib},
	}})
	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	out := t.TempDir()
	if err := r.Extract(context.Background(), out, ExtractOptions{SanitizeNames: true}); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	for name, want := range map[string]string{"up.txt": "up", "Mods/_aux.txt": "aux"} {
		got, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(name)))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(got) != want {
			t.Fatalf("%s=%q, want %q", name, got, want)
		}
	}
}
