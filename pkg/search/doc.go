// Package search implements recursive, symlink-aware, deduplicated
// filename search across one or more root directories.
//
// Traversal maintains a FIFO worklist of directories, breaks symlink
// cycles by tracking visited directory identities (device + inode), and
// reports each matched object once regardless of how many hard links or
// symlinked paths alias it. Results are returned as a lexicographically
// sorted list of paths.
//
// The pattern is matched against the full joined path of each candidate,
// not just its base name. A root directory whose own name matches the
// pattern will itself be reported, and ancestor path components can
// affect which entries match. Callers who want basename semantics should
// anchor their pattern accordingly.
package search
