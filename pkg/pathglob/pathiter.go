package pathglob

import (
	"fmt"
	"os"
)

// TraversalError reports a directory that could not be read during
// iteration. A permission error produces it only under FailOnAccessDenied;
// by default such a directory is skipped. Other read errors, except for a
// directory that no longer exists, always produce it.
type TraversalError struct {
	Path string
	Err  error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("traverse %s: %v", e.Path, e.Err)
}

func (e *TraversalError) Unwrap() error { return e.Err }

// Iterator lazily yields the filesystem paths matching a glob-bearing
// path expression. Iteration follows the scanner protocol:
//
//	it, err := pathglob.NewIterator("src/**/*.go", 0)
//	...
//	for it.Next() {
//		use(it.Path())
//	}
//	if err := it.Err(); err != nil { ... }
//
// An Iterator is single-use and not safe for concurrent use.
type Iterator struct {
	parts   []partIterator
	flags   Flags
	current string
	failure error
}

// NewIterator splits globPath into the part pipeline and returns an
// iterator over the matching paths. Relative patterns are resolved in the
// working directory and yield relative paths.
func NewIterator(globPath string, flags Flags) (*Iterator, error) {
	parts, err := splitGlobPath(globPath, flags)
	if err != nil {
		return nil, err
	}
	return &Iterator{parts: parts, flags: flags}, nil
}

// Path returns the most recent path yielded by Next.
func (it *Iterator) Path() string { return it.current }

// Err returns the traversal error that stopped iteration, if any. It must
// be checked once Next returns false.
func (it *Iterator) Err() error { return it.failure }

// Next advances to the next matching path. It returns false when the
// sequence is exhausted or a traversal error occurred.
//
// The parts form a cartesian pipeline: while the last part still has
// emissions they are yielded (subject to the file-kind filter); when it
// runs dry, the nearest upstream part that still has an unvisited
// directory provides a new base, the chain downstream of it is rebased and
// advanced, and the last part starts over.
func (it *Iterator) Next() bool {
	if it.failure != nil || len(it.parts) == 0 {
		return false
	}
	last := len(it.parts) - 1
	if it.advanceLast() {
		return true
	}
	i := last
	for it.failure == nil {
		// Find the rightmost upstream part with another directory.
		for i--; i >= 0; i-- {
			if nextDirectory(it.parts[i]) {
				break
			}
			if it.fail(it.parts[i]) {
				return false
			}
		}
		if i < 0 {
			return false
		}

		// Rebase and advance the chain to the right of i. If a middle
		// part has no directory under the new base, resume the search at
		// that part.
		base := it.parts[i].path()
		j := i + 1
		for ; j < last; j++ {
			it.parts[j].setBasePath(base)
			if !nextDirectory(it.parts[j]) {
				if it.fail(it.parts[j]) {
					return false
				}
				break
			}
			base = it.parts[j].path()
		}
		if j == last {
			it.parts[last].setBasePath(base)
			if it.advanceLast() {
				return true
			}
		}
		i = j
	}
	return false
}

// advanceLast pulls the last part until an emission passes the file-kind
// filter.
func (it *Iterator) advanceLast() bool {
	lastPart := it.parts[len(it.parts)-1]
	for lastPart.next() {
		if it.acceptKind(lastPart.path()) {
			it.current = lastPart.path()
			return true
		}
	}
	it.fail(lastPart)
	return false
}

// fail records the part's error, if it has one.
func (it *Iterator) fail(p partIterator) bool {
	if err := p.err(); err != nil && it.failure == nil {
		it.failure = err
	}
	return it.failure != nil
}

// acceptKind applies the NoFiles/NoDirectories filter. Paths that cannot
// be classified pass.
func (it *Iterator) acceptKind(p string) bool {
	if it.flags&(NoFiles|NoDirectories) == 0 {
		return true
	}
	info, err := os.Stat(readDirArg(p))
	if err != nil {
		return true
	}
	if it.flags&NoFiles != 0 && info.Mode().IsRegular() {
		return false
	}
	if it.flags&NoDirectories != 0 && info.IsDir() {
		return false
	}
	return true
}
