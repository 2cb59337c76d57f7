package pathglob

import "pathglob.dev/pkg/glob"

// Flags controls path iteration. Flags combine with '|'; the zero value
// matches glob components case-insensitively, compares literal components
// through the filesystem, yields files and directories both, and skips
// directories it is not permitted to read.
type Flags uint32

const (
	// CaseSensitiveGlobs compiles glob components case-sensitively.
	CaseSensitiveGlobs Flags = 1 << iota
	// CaseInsensitivePaths makes literal path components compare
	// case-insensitively too. Every non-rooted literal component is then
	// compiled as a trivial glob, so matching happens per directory entry
	// instead of relying on the filesystem's own case rules.
	CaseInsensitivePaths
	// NoBraces treats '{' and '}' literally in every component.
	NoBraces
	// NoSets treats '[' and ']' literally in every component.
	NoSets
	// NoFiles omits regular files from the yielded paths.
	NoFiles
	// NoDirectories omits directories from the yielded paths.
	NoDirectories
	// FailOnAccessDenied surfaces permission errors through Err instead of
	// silently skipping the unreadable directory.
	FailOnAccessDenied
)

// globFlags derives the compilation flags for glob components.
func (f Flags) globFlags() glob.Flags {
	var gf glob.Flags
	if f&CaseSensitiveGlobs == 0 {
		gf |= glob.CaseInsensitive
	}
	if f&NoBraces != 0 {
		gf |= glob.NoBraces
	}
	if f&NoSets != 0 {
		gf |= glob.NoSets
	}
	return gf
}
