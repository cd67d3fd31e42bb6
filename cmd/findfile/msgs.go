package main

// User-facing command help text.
const (
	MsgRootShort = "Find files and directories by name"

	MsgRootLong = `findfile recursively searches one or more root directories for files and
directories whose path matches a regular expression. Symlinks are
followed, cycles are broken by device and inode identity, and
multiply-linked files are reported once. Results are printed one per
line in ascending lexicographic order.

The pattern is matched against the full joined path of each candidate,
not just its base name: a root directory whose own name matches is
itself reported, and ancestor path components can affect matching.
Anchor the pattern (for example '/name$') for basename-like behavior.`

	MsgRootExample = `  # Find all .git directories under the current directory
  findfile '\.git$' --type dir

  # Find files named needle.txt under two roots
  findfile 'needle\.txt$' /srv/data /home/shared --type file`

	MsgGenConfigShort = "Print a starter configuration file"

	MsgGenConfigLong = `Prints the default configuration with every value commented out, ready
to be edited. With --write the file is placed at the user config path
($XDG_CONFIG_HOME/findfile/config.toml) instead.`
)
