//go:build unix

package fileid

import (
	"io/fs"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// Identity names a filesystem object by device and inode numbers.
// Two paths with equal Identity refer to the same underlying object.
type Identity struct {
	DevMajor uint32
	DevMinor uint32
	Ino      uint64
}

// FromInfo derives an Identity from an already obtained stat result.
// The second return value is false when the platform stat payload is
// not available on the FileInfo.
func FromInfo(info fs.FileInfo) (Identity, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return Identity{}, false
	}
	dev := uint64(st.Dev)
	return Identity{
		DevMajor: unix.Major(dev),
		DevMinor: unix.Minor(dev),
		Ino:      st.Ino,
	}, true
}

// OfPath stats path (following symlinks) and derives its Identity.
func OfPath(path string) (Identity, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Identity{}, err
	}
	id, ok := FromInfo(info)
	if !ok {
		return Identity{}, &os.PathError{Op: "fileid", Path: path, Err: syscall.ENOTSUP}
	}
	return id, nil
}
