package pathglob

import (
	"errors"
	"io/fs"
	"os"
)

// dirWalker lazily enumerates the descendants of a root directory in
// depth-first order, each directory before its contents. It is pull-based
// so the path iterator can interleave it with the rest of the pipeline:
// one entry per next call, one open listing per directory level.
type dirWalker struct {
	stack      []walkFrame
	skipDenied bool
	path       string
	err        error
}

type walkFrame struct {
	dir     string
	entries []fs.DirEntry
	next    int
}

func newDirWalker(root string, skipDenied bool) *dirWalker {
	w := &dirWalker{skipDenied: skipDenied}
	w.push(root)
	return w
}

// next advances to the next descendant path. It returns false at the end
// of the walk, or when an error was recorded.
func (w *dirWalker) next() bool {
	for w.err == nil && len(w.stack) > 0 {
		f := &w.stack[len(w.stack)-1]
		if f.next >= len(f.entries) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		e := f.entries[f.next]
		f.next++
		w.path = joinPath(f.dir, e.Name())
		if e.IsDir() {
			w.push(w.path)
			if w.err != nil {
				return false
			}
		}
		return true
	}
	return false
}

func (w *dirWalker) push(dir string) {
	entries, err := os.ReadDir(readDirArg(dir))
	if err != nil {
		// A directory that vanished mid-walk is treated as empty; access
		// errors are skipped or surfaced depending on the flags.
		if errors.Is(err, fs.ErrNotExist) ||
			(w.skipDenied && errors.Is(err, fs.ErrPermission)) {
			return
		}
		w.err = &TraversalError{Path: dir, Err: err}
		return
	}
	w.stack = append(w.stack, walkFrame{dir: dir, entries: entries})
}

// readDirArg maps the empty base path to the working directory.
func readDirArg(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

func joinPath(dir, name string) string {
	switch dir {
	case "":
		return name
	case "/":
		return "/" + name
	}
	return dir + "/" + name
}
