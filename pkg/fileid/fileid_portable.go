//go:build !unix

package fileid

import (
	"io/fs"
	"path/filepath"
)

// Identity names a filesystem object by its symlink-resolved absolute
// path. This detects directory cycles but cannot unify hard links.
type Identity struct {
	Canonical string
}

// FromInfo cannot derive a path-based identity from a FileInfo alone;
// callers fall back to OfPath.
func FromInfo(info fs.FileInfo) (Identity, bool) {
	return Identity{}, false
}

// OfPath resolves path to its canonical absolute form.
func OfPath(path string) (Identity, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Identity{}, err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return Identity{}, err
	}
	return Identity{Canonical: resolved}, nil
}
