package pathglob

import (
	"errors"
	"io/fs"
	"os"

	"pathglob.dev/pkg/glob"
)

// partIterator is one stage of the path pipeline. The driver repeatedly
// rebases a stage on the previous stage's current path and pulls emissions
// from it. The variants are closed: literalPart, globPart and treePart.
type partIterator interface {
	// setBasePath rebases the stage and resets its cursor.
	setBasePath(base string)
	next() bool
	path() string
	err() error
}

// nextDirectory advances p until it emits a directory.
func nextDirectory(p partIterator) bool {
	for p.next() {
		if isDirectory(p.path()) {
			return true
		}
	}
	return false
}

func isDirectory(p string) bool {
	info, err := os.Stat(readDirArg(p))
	return err == nil && info.IsDir()
}

func exists(p string) bool {
	_, err := os.Stat(readDirArg(p))
	return err == nil
}

// literalPart emits base/rel once per rebase, if that path exists. Only
// the pipeline's first stage starts with hasNext set; later literal stages
// wait for their first rebase.
type literalPart struct {
	base    string
	rel     string
	hasNext bool
	current string
}

func (l *literalPart) setBasePath(base string) {
	l.base = base
	l.hasNext = true
}

func (l *literalPart) next() bool {
	if !l.hasNext {
		return false
	}
	l.hasNext = false
	l.current = joinRel(l.base, l.rel)
	return exists(l.current)
}

func (l *literalPart) path() string { return l.current }
func (l *literalPart) err() error   { return nil }

// joinRel joins a base directory and a possibly rooted relative segment.
func joinRel(base, rel string) string {
	if base == "" {
		return rel
	}
	return joinPath(base, rel)
}

// globPart enumerates the direct children of its base directory and emits
// those whose name the glob matcher accepts.
type globPart struct {
	matcher    *glob.Matcher
	skipDenied bool

	base    string
	entries []fs.DirEntry
	idx     int
	current string
	e       error
}

func (g *globPart) setBasePath(base string) {
	g.base = base
	g.idx = 0
	g.entries = nil
	entries, err := os.ReadDir(readDirArg(base))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) ||
			(g.skipDenied && errors.Is(err, fs.ErrPermission)) {
			return
		}
		g.e = &TraversalError{Path: base, Err: err}
		return
	}
	g.entries = entries
}

func (g *globPart) next() bool {
	for g.idx < len(g.entries) {
		name := g.entries[g.idx].Name()
		g.idx++
		if g.matcher.Match(name) {
			g.current = joinPath(g.base, name)
			return true
		}
	}
	return false
}

func (g *globPart) path() string { return g.current }
func (g *globPart) err() error   { return g.e }

// treePart enumerates all descendants of its base directory and emits
// those whose path the path matcher accepts. It is always the pipeline's
// last stage.
type treePart struct {
	matcher    *Matcher
	skipDenied bool

	walker  *dirWalker
	current string
	e       error
}

func (t *treePart) setBasePath(base string) {
	t.walker = newDirWalker(base, t.skipDenied)
	t.e = nil
}

func (t *treePart) next() bool {
	if t.walker == nil {
		return false
	}
	for t.walker.next() {
		if t.matcher.Match(t.walker.path) {
			t.current = t.walker.path
			return true
		}
	}
	t.e = t.walker.err
	return false
}

func (t *treePart) path() string { return t.current }
func (t *treePart) err() error   { return t.e }
