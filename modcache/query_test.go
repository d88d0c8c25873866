package modcache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/lspk/internal/testutil"
	"github.com/woozymasta/pathrules"
)

func file(path string) testutil.File {
	return testutil.File{Path: path, Data: []byte(path), Codec: testutil.CodecZlib}
}

func buildCache(t *testing.T, opts Options, files ...testutil.File) *Cache {
	t.Helper()

	path := writeArchive(t, t.TempDir(), "Mod.pak", files...)
	c, err := BuildAt(path, 1, opts)
	require.NoError(t, err)
	return c
}

func TestFileConflict(t *testing.T) {
	t.Parallel()

	a := buildCache(t, Options{}, file("Public/A/a.txt"), file("Public/Shared/readme.txt"))
	b := buildCache(t, Options{}, file("Public/B/b.txt"))
	c := buildCache(t, Options{}, file("Public/C/c.txt"), file("Public/Shared/readme.txt"))
	d := buildCache(t, Options{}, file("public/shared/README.txt"))

	assert.False(t, a.FileConflict(b))
	assert.Empty(t, a.ConflictingFiles(b))

	assert.True(t, a.FileConflict(c))
	assert.True(t, c.FileConflict(a))
	assert.Equal(t, []string{"Public/Shared/readme.txt"}, a.ConflictingFiles(c))

	assert.False(t, a.FileConflict(d), "paths compare by exact string")
	assert.False(t, a.FileConflict(nil))
}

func TestFileConflict_IgnoreRules(t *testing.T) {
	t.Parallel()

	opts := Options{Ignore: []pathrules.Rule{
		{Action: pathrules.ActionInclude, Pattern: "*.txt"},
		{Action: pathrules.ActionExclude, Pattern: "Public/Keep/**"},
	}}

	a := buildCache(t, opts, file("Public/Shared/readme.txt"), file("Public/Keep/list.txt"))
	b := buildCache(t, Options{}, file("Public/Shared/readme.txt"))
	c := buildCache(t, Options{}, file("Public/Keep/list.txt"))

	assert.False(t, a.FileConflict(b))
	assert.True(t, a.FileConflict(c))
	assert.Equal(t, []string{"Public/Keep/list.txt"}, a.ConflictingFiles(c))
}

func TestBuild_InvalidIgnoreRule(t *testing.T) {
	t.Parallel()

	path := writeArchive(t, t.TempDir(), "Rules.pak", file("a.txt"))
	_, err := BuildAt(path, 1, Options{Ignore: []pathrules.Rule{
		{Action: pathrules.ActionUnknown, Pattern: "*.txt"},
	}})
	assert.ErrorIs(t, err, ErrInvalidIgnoreRule)
}

func TestPluginConflict(t *testing.T) {
	t.Parallel()

	alpha, beta := newTestMod("Alpha"), newTestMod("Beta")
	gamma := newTestMod("Gamma")

	a := buildCache(t, Options{},
		alpha.meta(),
		file("Mods/Alpha/meta.lsf"),
		file("Mods/Alpha/Story/RawFiles/Goals/Start.txt"),
	)
	b := buildCache(t, Options{},
		beta.meta(),
		file("Mods/Beta/meta.lsf"),
		file("Mods/Beta/Scripts/thoth/helpers/Util.khn"),
	)
	c := buildCache(t, Options{},
		gamma.meta(),
		file("Mods/Gamma/Story/RawFiles/Goals/Start.txt"),
	)

	assert.False(t, a.PluginConflict(alpha.uuid, b, beta.uuid), "meta files are exempt")
	assert.True(t, a.PluginConflict(alpha.uuid, c, gamma.uuid))
	assert.True(t, c.PluginConflict(gamma.uuid, a, alpha.uuid))

	assert.False(t, a.PluginConflict(uuid.NewString(), c, gamma.uuid))
	assert.False(t, a.PluginConflict(alpha.uuid, c, uuid.NewString()))
	assert.False(t, a.PluginConflict(gamma.uuid, c, gamma.uuid), "uuid must resolve in its own cache")
	assert.False(t, a.PluginConflict(alpha.uuid, nil, gamma.uuid))

	assert.False(t, a.FileConflict(c), "different folders share no full path")
}

func TestPluginConflict_Ignored(t *testing.T) {
	t.Parallel()

	alpha, gamma := newTestMod("Alpha"), newTestMod("Gamma")
	opts := Options{Ignore: []pathrules.Rule{{Action: pathrules.ActionInclude, Pattern: "Story/"}}}

	a := buildCache(t, opts, alpha.meta(), file("Mods/Alpha/Story/Start.txt"))
	c := buildCache(t, Options{}, gamma.meta(), file("Mods/Gamma/Story/Start.txt"))

	assert.False(t, a.PluginConflict(alpha.uuid, c, gamma.uuid))
}
