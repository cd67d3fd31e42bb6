package search

import (
	"github.com/jrobhoward/findfile/pkg/errors"
)

// FileType selects which filesystem object kinds are eligible for matching.
type FileType string

const (
	// TypeDir matches directories only.
	TypeDir FileType = "dir"
	// TypeFile matches regular files only.
	TypeFile FileType = "file"
	// TypeAny matches both files and directories, but not other
	// special objects (sockets, devices, broken symlinks).
	TypeAny FileType = "any"
)

// ParseFileType converts a string into a FileType.
func ParseFileType(s string) (FileType, error) {
	switch FileType(s) {
	case TypeDir, TypeFile, TypeAny:
		return FileType(s), nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown file type %q (want dir, file or any)", s)
}

// entryKind is the closed classification of a directory entry, computed
// once per entry (following symlinks) and reused for both frontier
// building and candidate selection.
type entryKind int

const (
	kindDirectory entryKind = iota
	kindRegular
	kindOther
)
