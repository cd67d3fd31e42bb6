package search

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/jrobhoward/findfile/pkg/errors"
	"github.com/jrobhoward/findfile/pkg/fileid"
	"github.com/jrobhoward/findfile/pkg/logging"
)

// FindByName recursively searches the given root directories for files
// and/or directories whose joined path matches pattern, following
// symlinks. Each underlying filesystem object is reported at most once;
// when several paths alias one object, which path is reported is
// undefined. The result is sorted in ascending lexicographic order.
//
// Invalid roots and patterns that do not compile are fatal and abort the
// whole call. Errors encountered during traversal (permission denied,
// entries vanishing mid-listing, broken symlinks) are absorbed: the
// affected directory or entry is treated as empty or absent and the
// search continues.
func FindByName(roots []string, pattern string, fileType FileType) ([]string, error) {
	logger := logging.GetLogger("search")

	if _, err := ParseFileType(string(fileType)); err != nil {
		return nil, err
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidPattern, "pattern does not compile").
			WithDetail("pattern", pattern)
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidRoot, "root is not accessible").
				WithDetail("root", root)
		}
		if !info.IsDir() {
			return nil, errors.New(errors.ErrInvalidRoot, "root is not a directory").
				WithDetail("root", root)
		}
	}

	worklist := make([]string, len(roots))
	copy(worklist, roots)
	visited := make(map[fileid.Identity]string)
	matches := make(map[fileid.Identity]string)

	for len(worklist) > 0 {
		dir := worklist[0]
		worklist = worklist[1:]

		kind, dirInfo := classify(dir)
		if kind != kindDirectory {
			// The entry was a directory when enqueued but is not one
			// anymore. Skipping it keeps the best-effort contract; the
			// rest of the tree is still searched.
			logger.Warn().Str("dir", dir).Msg("Worklist entry is no longer a directory, skipping")
			continue
		}

		dirID, ok := identityOf(dir, dirInfo)
		if !ok {
			logger.Warn().Str("dir", dir).Msg("Cannot derive directory identity, skipping")
			continue
		}
		if _, seen := visited[dirID]; seen {
			// Two symlinks to the same directory may both be enqueued
			// before either is visited.
			logger.Trace().Str("dir", dir).Msg("Directory identity already visited")
			continue
		}
		visited[dirID] = dir

		entries, err := os.ReadDir(dir)
		if err != nil {
			logger.Debug().Err(err).Str("dir", dir).Msg("Cannot list directory, treating as empty")
			entries = nil
		}

		var subdirCount int
		var candidates []candidate
		if fileType == TypeDir || fileType == TypeAny {
			candidates = append(candidates, candidate{path: dir, info: dirInfo})
		}
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			kind, info := classify(path)
			switch kind {
			case kindDirectory:
				subdirCount++
				if fileType == TypeDir || fileType == TypeAny {
					candidates = append(candidates, candidate{path: path, info: info})
				}
				if id, ok := identityOf(path, info); ok {
					if _, seen := visited[id]; !seen {
						worklist = append(worklist, path)
					}
				}
			case kindRegular:
				if fileType == TypeFile || fileType == TypeAny {
					candidates = append(candidates, candidate{path: path, info: info})
				}
			}
		}

		logger.Trace().
			Str("dir", dir).
			Int("entries", len(entries)).
			Int("subdirs", subdirCount).
			Msg("Scanned directory")

		for _, c := range candidates {
			if !re.MatchString(c.path) {
				continue
			}
			id, ok := identityOf(c.path, c.info)
			if !ok {
				// Raced away between listing and match.
				logger.Debug().Str("path", c.path).Msg("Matched entry vanished, skipping")
				continue
			}
			matches[id] = c.path
		}
	}

	result := make([]string, 0, len(matches))
	for _, path := range matches {
		result = append(result, path)
	}
	sort.Strings(result)

	logger.Debug().
		Int("matches", len(result)).
		Int("visited", len(visited)).
		Str("pattern", pattern).
		Msg("Search complete")
	return result, nil
}

// candidate is a path eligible for pattern matching, paired with the
// stat result obtained during classification.
type candidate struct {
	path string
	info fs.FileInfo
}

// classify stats path following symlinks and reports its kind. Stat
// failures (broken symlink, vanished entry) classify as kindOther.
func classify(path string) (entryKind, fs.FileInfo) {
	info, err := os.Stat(path)
	if err != nil {
		return kindOther, nil
	}
	switch {
	case info.IsDir():
		return kindDirectory, info
	case info.Mode().IsRegular():
		return kindRegular, info
	default:
		return kindOther, info
	}
}

// identityOf derives a file identity, preferring the stat result already
// in hand and falling back to a fresh stat of the path.
func identityOf(path string, info fs.FileInfo) (fileid.Identity, bool) {
	if info != nil {
		if id, ok := fileid.FromInfo(info); ok {
			return id, true
		}
	}
	id, err := fileid.OfPath(path)
	if err != nil {
		return fileid.Identity{}, false
	}
	return id, true
}
