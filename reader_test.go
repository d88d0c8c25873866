package lspk

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/woozymasta/lspk/internal/testutil"
)

// countingReaderAt records every ReadAt call.
type countingReaderAt struct {
	ra      *bytes.Reader
	offsets []int64
	mu      sync.Mutex
}

func (c *countingReaderAt) ReadAt(p []byte, off int64) (int, error) {
	c.mu.Lock()
	c.offsets = append(c.offsets, off)
	c.mu.Unlock()

	return c.ra.ReadAt(p, off)
}

func samplePak() testutil.Pak {
	return testutil.Pak{Files: []testutil.File{
		{Path: "Mods/Sample/meta.lsx", Data: []byte(strings.Repeat("<save>meta</save>\n", 20)), Codec: testutil.CodecZlib},
		{Path: "Public/Sample/Stats/Generated/Data/Armor.txt", Data: []byte(strings.Repeat("new entry \"ARM\"\n", 50)), Codec: testutil.CodecLZ4},
		{Path: "Public/Sample/Localization/English.loca", Data: []byte(strings.Repeat("loca", 300)), Codec: testutil.CodecZstd},
		{Path: "Public/Sample/raw.bin", Data: []byte("stored as is"), Codec: testutil.CodecNone},
	}}
}

func buildSample(t *testing.T, p testutil.Pak) []byte {
	t.Helper()

	data, err := p.Bytes()
	if err != nil {
		t.Fatalf("build archive: %v", err)
	}

	return data
}

func TestOpen_RoundTripAllCodecs(t *testing.T) {
	t.Parallel()

	p := samplePak()
	path := testutil.WritePak(t, t.TempDir(), "Sample.pak", p)

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if r.Len() != len(p.Files) {
		t.Fatalf("Len()=%d, want %d", r.Len(), len(p.Files))
	}

	h := r.Header()
	if h.Magic != Magic || h.Version != Version || h.NumParts != 1 {
		t.Fatalf("unexpected header %+v", h)
	}

	for i, f := range p.Files {
		e := r.Entries()[i]
		if e.Path != f.Path {
			t.Fatalf("entry %d path=%q, want %q", i, e.Path, f.Path)
		}
		if e.Codec() != Codec(f.Codec) {
			t.Fatalf("entry %d codec=%s, want %d", i, e.Codec(), f.Codec)
		}
		if e.Size() != uint32(len(f.Data)) {
			t.Fatalf("entry %d Size()=%d, want %d", i, e.Size(), len(f.Data))
		}

		got, err := r.ReadEntryAt(i)
		if err != nil {
			t.Fatalf("ReadEntryAt(%d): %v", i, err)
		}
		if !bytes.Equal(got, f.Data) {
			t.Fatalf("entry %s content mismatch", f.Path)
		}
	}

	text, err := r.ReadEntryText(0)
	if err != nil {
		t.Fatalf("ReadEntryText: %v", err)
	}
	if text != string(p.Files[0].Data) {
		t.Fatalf("ReadEntryText mismatch")
	}
}

func TestOpen_EmptyArchive(t *testing.T) {
	t.Parallel()

	data := buildSample(t, testutil.Pak{})
	r, err := NewReaderFromReaderAt(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("NewReaderFromReaderAt: %v", err)
	}

	if r.Len() != 0 || len(r.Paths()) != 0 {
		t.Fatalf("expected no entries, got %v", r.Paths())
	}
}

func TestOpen_InvalidMagicSkipsDirectory(t *testing.T) {
	t.Parallel()

	data := buildSample(t, samplePak())
	data[0] ^= 0x01

	cra := &countingReaderAt{ra: bytes.NewReader(data)}
	_, err := NewReaderFromReaderAt(cra, int64(len(data)))
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
	if !errors.Is(err, ErrInvalidMagic) {
		t.Fatalf("expected ErrInvalidMagic, got %v", err)
	}

	if len(cra.offsets) != 1 || cra.offsets[0] != 0 {
		t.Fatalf("reads after bad magic: %v", cra.offsets)
	}
}

func TestOpen_UnsupportedVersion(t *testing.T) {
	t.Parallel()

	p := samplePak()
	p.Version = 15
	data := buildSample(t, p)

	_, err := NewReaderFromReaderAt(bytes.NewReader(data), int64(len(data)))
	if !errors.Is(err, ErrUnsupportedVersion) || !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrUnsupportedVersion wrapped in ErrFormat, got %v", err)
	}
}

func TestOpen_DirectorySizeMismatch(t *testing.T) {
	t.Parallel()

	p := samplePak()
	p.DirectorySizeDelta = 1
	data := buildSample(t, p)

	_, err := NewReaderFromReaderAt(bytes.NewReader(data), int64(len(data)))
	if !errors.Is(err, ErrDirectorySize) || !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrDirectorySize wrapped in ErrFormat, got %v", err)
	}
}

func TestOpen_DirectoryOffsetOutOfRange(t *testing.T) {
	t.Parallel()

	data := buildSample(t, samplePak())
	binary.LittleEndian.PutUint64(data[8:16], uint64(len(data)+100))

	_, err := NewReaderFromReaderAt(bytes.NewReader(data), int64(len(data)))
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestOpen_CorruptDirectoryTable(t *testing.T) {
	t.Parallel()

	data := buildSample(t, samplePak())
	dirOffset := binary.LittleEndian.Uint64(data[8:16])
	// Claim twice as many entries as the table holds.
	count := binary.LittleEndian.Uint32(data[dirOffset : dirOffset+4])
	binary.LittleEndian.PutUint32(data[dirOffset:dirOffset+4], count*2)

	_, err := NewReaderFromReaderAt(bytes.NewReader(data), int64(len(data)))
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestOpen_ShortHeader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "short.pak")
	if err := os.WriteFile(path, []byte("LSPK\x12\x00\x00\x00"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestOpen_EmptyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pak")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestOpen_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing.pak"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.Is(err, ErrFormat) {
		t.Fatalf("missing file must not be a format error: %v", err)
	}
}

func TestNewReaderFromReaderAt_Nil(t *testing.T) {
	t.Parallel()

	if _, err := NewReaderFromReaderAt(nil, 0); !errors.Is(err, ErrNilReader) {
		t.Fatalf("expected ErrNilReader, got %v", err)
	}
}

func TestReadEntry_ByNormalizedName(t *testing.T) {
	t.Parallel()

	data := buildSample(t, samplePak())
	r, err := NewReaderFromReaderAt(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("NewReaderFromReaderAt: %v", err)
	}

	got, err := r.ReadEntry(`.\Public\Sample\raw.bin`)
	if err != nil {
		t.Fatalf("ReadEntry: %v", err)
	}
	if string(got) != "stored as is" {
		t.Fatalf("ReadEntry=%q", got)
	}

	if _, err := r.ReadEntry("Public/Sample/missing.bin"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}

	if _, err := r.ReadEntryAt(99); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound for index, got %v", err)
	}

	if _, err := r.ReadEntryAt(-1); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound for negative index, got %v", err)
	}
}

func TestReadEntry_MultiPart(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := testutil.Pak{Files: []testutil.File{
		{Path: "Mods/Big/meta.lsx", Data: []byte("<save/>"), Codec: testutil.CodecNone},
		{Path: "Public/Big/Assets/huge.bin", Data: bytes.Repeat([]byte{0xAB}, 4096), Codec: testutil.CodecLZ4, Part: 1},
	}}
	path := testutil.WritePak(t, dir, "Big.pak", p)

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if r.Header().NumParts != 2 {
		t.Fatalf("NumParts=%d, want 2", r.Header().NumParts)
	}

	got, err := r.ReadEntry("Public/Big/Assets/huge.bin")
	if err != nil {
		t.Fatalf("ReadEntry part 1: %v", err)
	}
	if !bytes.Equal(got, p.Files[1].Data) {
		t.Fatal("part 1 content mismatch")
	}

	parts, err := p.Build()
	if err != nil {
		t.Fatal(err)
	}

	single, err := NewReaderFromReaderAt(bytes.NewReader(parts[0]), int64(len(parts[0])))
	if err != nil {
		t.Fatalf("NewReaderFromReaderAt: %v", err)
	}
	if _, err := single.ReadEntryAt(1); !errors.Is(err, ErrPartUnavailable) {
		t.Fatalf("expected ErrPartUnavailable from ReaderAt reader, got %v", err)
	}

	if err := os.Remove(PartPath(path, 1)); err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReadEntryAt(1); !errors.Is(err, ErrPartUnavailable) {
		t.Fatalf("expected ErrPartUnavailable after removing part, got %v", err)
	}

	if _, err := r.ReadEntryAt(0); err != nil {
		t.Fatalf("part 0 entry must stay readable: %v", err)
	}
}

func TestReadEntry_ReopensFilePerRead(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := testutil.WritePak(t, dir, "Swap.pak", testutil.Pak{Files: []testutil.File{
		{Path: "a.txt", Data: []byte("first")},
	}})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	testutil.WritePak(t, dir, "Swap.pak", testutil.Pak{Files: []testutil.File{
		{Path: "a.txt", Data: []byte("other")},
	}})

	got, err := r.ReadEntryAt(0)
	if err != nil {
		t.Fatalf("ReadEntryAt: %v", err)
	}
	if string(got) != "other" {
		t.Fatalf("ReadEntryAt=%q, want content of replaced file", got)
	}
}

func TestDecodeEntry_48BitOffset(t *testing.T) {
	t.Parallel()

	rec := make([]byte, entrySize)
	copy(rec, "Mods/X/meta.lsx")
	binary.LittleEndian.PutUint32(rec[256:260], 0x89ABCDEF)
	binary.LittleEndian.PutUint16(rec[260:262], 0x0123)
	rec[262] = 3
	rec[263] = 0x22
	binary.LittleEndian.PutUint32(rec[264:268], 10)
	binary.LittleEndian.PutUint32(rec[268:272], 20)

	e := decodeEntry(rec)
	if e.Path != "Mods/X/meta.lsx" {
		t.Fatalf("Path=%q", e.Path)
	}
	if e.Offset != 0x012389ABCDEF {
		t.Fatalf("Offset=%#x, want 0x012389abcdef", e.Offset)
	}
	if e.Part != 3 || e.Flags != 0x22 || e.Codec() != CodecLZ4 {
		t.Fatalf("Part=%d Flags=%#x Codec=%s", e.Part, e.Flags, e.Codec())
	}
	if e.CompressedSize != 10 || e.UncompressedSize != 20 {
		t.Fatalf("sizes=%d/%d", e.CompressedSize, e.UncompressedSize)
	}
}

func TestReadHeader(t *testing.T) {
	t.Parallel()

	p := samplePak()
	p.Priority = 7
	path := testutil.WritePak(t, t.TempDir(), "Header.pak", p)

	h, err := ReadHeader(path)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}

	if h.Priority != 7 || h.NumParts != 1 || h.DirectoryOffset == 0 || h.DirectorySize == 0 {
		t.Fatalf("unexpected header %+v", h)
	}
}

func TestListEntries_MatchesOpenEntries(t *testing.T) {
	t.Parallel()

	path := testutil.WritePak(t, t.TempDir(), "List.pak", samplePak())

	listed, err := ListEntries(path)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	opened := r.Entries()
	if len(listed) != len(opened) {
		t.Fatalf("len(listed)=%d, len(opened)=%d", len(listed), len(opened))
	}

	for i := range listed {
		if listed[i] != opened[i] {
			t.Fatalf("entry %d differs: %+v vs %+v", i, listed[i], opened[i])
		}
	}
}
