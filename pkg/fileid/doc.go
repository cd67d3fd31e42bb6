// Package fileid derives stable identities for filesystem objects.
//
// On unix platforms an identity is the (device-major, device-minor, inode)
// triple, which is stable across hard links and across differently-named
// paths reaching the same object through symlinks. On other platforms the
// identity falls back to the symlink-resolved absolute path, which still
// detects directory cycles but cannot unify hard-linked files.
package fileid
