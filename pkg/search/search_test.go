// Test Type: Unit Test
// Description: Tests for the search package - traversal, dedup, cycle handling and filters

package search_test

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/jrobhoward/findfile/pkg/errors"
	"github.com/jrobhoward/findfile/pkg/search"
	"github.com/jrobhoward/findfile/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByName_BasicFileMatch(t *testing.T) {
	root := t.TempDir()
	a := testutil.CreateDir(t, root, "a")
	testutil.CreateFile(t, root, "b.txt", "b")
	needle := testutil.CreateFile(t, a, "needle.txt", "n")

	paths, err := search.FindByName([]string{root}, "needle", search.TypeFile)
	require.NoError(t, err)

	assert.Equal(t, []string{needle}, paths)
}

func TestFindByName_DirMatch(t *testing.T) {
	root := t.TempDir()
	repo := testutil.CreateDir(t, root, "repo.git")
	testutil.CreateFile(t, root, "notes.git.txt", "decoy")

	paths, err := search.FindByName([]string{root}, `\.git$`, search.TypeDir)
	require.NoError(t, err)

	assert.Equal(t, []string{repo}, paths)
}

func TestFindByName_RootItselfIsACandidate(t *testing.T) {
	// The pattern runs against the full joined path, so a root whose own
	// name matches is reported for dir and any searches.
	parent := t.TempDir()
	root := testutil.CreateDir(t, parent, "workdir")

	paths, err := search.FindByName([]string{root}, "workdir$", search.TypeDir)
	require.NoError(t, err)

	assert.Equal(t, []string{root}, paths)
}

func TestFindByName_FileTypeFilters(t *testing.T) {
	root := t.TempDir()
	dir := testutil.CreateDir(t, root, "target")
	file := testutil.CreateFile(t, root, "target.txt", "t")

	t.Run("dir_excludes_files", func(t *testing.T) {
		paths, err := search.FindByName([]string{root}, "target", search.TypeDir)
		require.NoError(t, err)
		assert.Equal(t, []string{dir}, paths)
	})

	t.Run("file_excludes_dirs", func(t *testing.T) {
		paths, err := search.FindByName([]string{root}, "target", search.TypeFile)
		require.NoError(t, err)
		assert.Equal(t, []string{file}, paths)
	})

	t.Run("any_includes_both", func(t *testing.T) {
		paths, err := search.FindByName([]string{root}, "target", search.TypeAny)
		require.NoError(t, err)
		assert.Equal(t, []string{dir, file}, paths)
	})
}

func TestFindByName_SymlinkCycleTerminates(t *testing.T) {
	root := t.TempDir()
	a := testutil.CreateDir(t, root, "a")
	testutil.CreateSymlink(t, root, filepath.Join(a, "loop"))

	paths, err := search.FindByName([]string{root}, "loop$", search.TypeDir)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(a, "loop")}, paths)
}

func TestFindByName_SelfSymlinkTerminates(t *testing.T) {
	root := t.TempDir()
	testutil.CreateSymlink(t, root, filepath.Join(root, "self"))

	paths, err := search.FindByName([]string{root}, "self$", search.TypeDir)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "self")}, paths)
}

func TestFindByName_SymlinkAliasesReportedOnce(t *testing.T) {
	root := t.TempDir()
	shared := testutil.CreateDir(t, root, "shared")
	testutil.CreateSymlink(t, shared, filepath.Join(root, "alias1"))
	testutil.CreateSymlink(t, shared, filepath.Join(root, "alias2"))
	testutil.CreateFile(t, shared, "inner.txt", "i")

	// Three paths reach one directory; the file inside it must be found
	// exactly once, through whichever alias was scanned.
	paths, err := search.FindByName([]string{root}, "inner", search.TypeFile)
	require.NoError(t, err)

	require.Len(t, paths, 1)
	assert.Equal(t, "inner.txt", filepath.Base(paths[0]))
}

func TestFindByName_BrokenSymlinkIgnored(t *testing.T) {
	root := t.TempDir()
	testutil.CreateSymlink(t, filepath.Join(root, "missing-target"), filepath.Join(root, "dangling"))

	paths, err := search.FindByName([]string{root}, "dangling", search.TypeAny)
	require.NoError(t, err)

	assert.Empty(t, paths)
}

func TestFindByName_SymlinkedRootIsValid(t *testing.T) {
	root := t.TempDir()
	real := testutil.CreateDir(t, root, "real")
	testutil.CreateFile(t, real, "needle.txt", "n")
	link := filepath.Join(root, "link")
	testutil.CreateSymlink(t, real, link)

	paths, err := search.FindByName([]string{link}, "needle", search.TypeFile)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(link, "needle.txt")}, paths)
}

func TestFindByName_MultipleRoots(t *testing.T) {
	root1 := t.TempDir()
	root2 := t.TempDir()
	n1 := testutil.CreateFile(t, root1, "needle.txt", "1")
	n2 := testutil.CreateFile(t, root2, "needle.txt", "2")

	paths, err := search.FindByName([]string{root1, root2}, "needle", search.TypeFile)
	require.NoError(t, err)

	want := []string{n1, n2}
	sort.Strings(want)
	assert.Equal(t, want, paths)
}

func TestFindByName_DuplicateRootsDeduped(t *testing.T) {
	root := t.TempDir()
	needle := testutil.CreateFile(t, root, "needle.txt", "n")

	paths, err := search.FindByName([]string{root, root}, "needle", search.TypeFile)
	require.NoError(t, err)

	assert.Equal(t, []string{needle}, paths)
}

func TestFindByName_SortedOutput(t *testing.T) {
	root := t.TempDir()
	testutil.CreateFile(t, root, "c/match.txt", "c")
	testutil.CreateFile(t, root, "a/match.txt", "a")
	testutil.CreateFile(t, root, "b/match.txt", "b")
	testutil.CreateDir(t, root, "match.d")

	paths, err := search.FindByName([]string{root}, "match", search.TypeAny)
	require.NoError(t, err)

	require.Len(t, paths, 4)
	assert.True(t, sort.StringsAreSorted(paths), "result must be in ascending lexicographic order: %v", paths)
}

func TestFindByName_Deterministic(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"one", "two", "three", "four", "five"} {
		testutil.CreateFile(t, root, name+"/match.txt", name)
	}

	first, err := search.FindByName([]string{root}, "match", search.TypeFile)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := search.FindByName([]string{root}, "match", search.TypeFile)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestFindByName_NoMatchesIsEmptyNotError(t *testing.T) {
	root := t.TempDir()
	testutil.CreateFile(t, root, "unrelated.txt", "u")

	paths, err := search.FindByName([]string{root}, "zzz-no-such-name", search.TypeAny)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestFindByName_NoRoots(t *testing.T) {
	paths, err := search.FindByName(nil, "anything", search.TypeAny)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestFindByName_InvalidRoot(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := search.FindByName([]string{"/does/not/exist"}, "x", search.TypeAny)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidRoot))
	})

	t.Run("regular_file", func(t *testing.T) {
		root := t.TempDir()
		file := testutil.CreateFile(t, root, "plain.txt", "p")

		_, err := search.FindByName([]string{file}, "x", search.TypeAny)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidRoot))
	})

	t.Run("one_bad_root_fails_the_whole_call", func(t *testing.T) {
		good := t.TempDir()
		testutil.CreateFile(t, good, "needle.txt", "n")

		paths, err := search.FindByName([]string{good, "/does/not/exist"}, "needle", search.TypeFile)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidRoot))
		assert.Nil(t, paths, "no partial result on invalid root")
	})
}

func TestFindByName_InvalidPattern(t *testing.T) {
	root := t.TempDir()

	_, err := search.FindByName([]string{root}, "(", search.TypeAny)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern))
}

func TestFindByName_InvalidFileType(t *testing.T) {
	root := t.TempDir()

	_, err := search.FindByName([]string{root}, "x", search.FileType("bogus"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestFindByName_UnicodePattern(t *testing.T) {
	root := t.TempDir()
	match := testutil.CreateFile(t, root, "café.txt", "c")

	paths, err := search.FindByName([]string{root}, `caf\p{L}`, search.TypeFile)
	require.NoError(t, err)

	assert.Equal(t, []string{match}, paths)
}

func TestParseFileType(t *testing.T) {
	for _, valid := range []string{"dir", "file", "any"} {
		ft, err := search.ParseFileType(valid)
		require.NoError(t, err)
		assert.Equal(t, search.FileType(valid), ft)
	}

	_, err := search.ParseFileType("symlink")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
