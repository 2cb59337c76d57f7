package pathglob

import (
	"path"
	"strings"

	"pathglob.dev/pkg/glob"
)

// Matcher matches whole paths against a slash-separated path pattern. A
// component equal to "**" matches any run of complete components; a
// component with glob metacharacters matches one component by glob; any
// other component must be equal to the candidate's component.
type Matcher struct {
	// elements is ordered leaf to root, so matching walks the candidate
	// from its last component upward.
	elements []pathElement
	fold     bool
}

// pathElement is one component of the pattern. Closed sum: literalElem,
// anyPathElem, globElem.
type pathElement interface{ isPathElement() }

type literalElem struct{ name string }

type anyPathElem struct{}

type globElem struct{ m *glob.Matcher }

func (literalElem) isPathElement() {}
func (anyPathElem) isPathElement() {}
func (globElem) isPathElement()    {}

// NewMatcher compiles a path pattern. The pattern is lexically cleaned
// first; a leading "./" is insignificant. With glob.CaseInsensitive both
// the glob components and the literal components compare under simple case
// folding.
func NewMatcher(pattern string, flags glob.Flags) (*Matcher, error) {
	return newMatcher(pattern, flags, flags&glob.CaseInsensitive != 0)
}

// newMatcher lets the path iterator split the case policy: globFlags
// governs glob components, literalFold the literal ones.
func newMatcher(pattern string, globFlags glob.Flags, literalFold bool) (*Matcher, error) {
	m := &Matcher{fold: literalFold}
	p := path.Clean(pattern)
	for p != "" && p != "." {
		if p == "/" {
			m.elements = append(m.elements, literalElem{"/"})
			break
		}
		name := baseName(p)
		switch {
		case name == "**":
			m.elements = append(m.elements, anyPathElem{})
		case glob.IsPattern(name, globFlags):
			gm, err := glob.Compile(name, globFlags)
			if err != nil {
				return nil, err
			}
			m.elements = append(m.elements, globElem{gm})
		default:
			m.elements = append(m.elements, literalElem{name})
		}
		p = parentPath(p)
	}
	return m, nil
}

// Match reports whether the candidate path matches the pattern. The
// candidate is not cleaned; a leading "./" or "." remainder is accepted
// once the pattern is exhausted.
func (m *Matcher) Match(candidate string) bool {
	for len(candidate) > 1 && strings.HasSuffix(candidate, "/") {
		candidate = candidate[:len(candidate)-1]
	}
	return m.match(m.elements, candidate)
}

func (m *Matcher) match(elements []pathElement, p string) bool {
	for i, e := range elements {
		name := baseName(p)
		switch e := e.(type) {
		case literalElem:
			if !m.equal(e.name, name) {
				return false
			}
		case globElem:
			if !e.m.Match(name) {
				return false
			}
		case anyPathElem:
			return m.search(elements[i+1:], p)
		}
		parent := parentPath(p)
		if parent == p {
			// The candidate's root is exhausted; this must have been the
			// last pattern element.
			return i == len(elements)-1
		}
		p = parent
	}
	return p == "" || p == "."
}

// search consumes zero or more trailing components of p so that the
// remaining root-ward elements match.
func (m *Matcher) search(elements []pathElement, p string) bool {
	if len(elements) == 0 {
		return true
	}
	for {
		if m.match(elements, p) {
			return true
		}
		parent := parentPath(p)
		if parent == p {
			return false
		}
		p = parent
	}
}

func (m *Matcher) equal(a, b string) bool {
	if m.fold {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// baseName is the last component of a slash path; for a path that is all
// root (or empty) it is the path itself.
func baseName(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 && i < len(p)-1 {
		return p[i+1:]
	}
	if p == "/" {
		return "/"
	}
	return p
}

// parentPath is the path with its last component removed: "" for a
// relative single component, "/" for a rooted one. parentPath("") == ""
// and parentPath("/") == "/", so walking upward always terminates.
func parentPath(p string) string {
	switch i := strings.LastIndexByte(p, '/'); {
	case i < 0:
		return ""
	case i == 0:
		return "/"
	default:
		return p[:i]
	}
}
