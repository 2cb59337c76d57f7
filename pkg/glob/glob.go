// Package glob compiles and matches glob patterns for single path
// components.
//
// The syntax supports '?' (one codepoint), '*' (any codepoint sequence),
// character sets "[a-z]" with optional '^' negation, nestable brace
// alternations "{a,b}", and backslash escaping. Matching is
// codepoint-based on UTF-8 input and can compare case-insensitively using
// simple case folding.
//
// A compiled pattern records the length of its star-free tail; Match
// anchors that tail to the end of the input before running the greedy
// search over the rest, which keeps patterns like "*.txt" cheap on long
// names.
package glob

// Flags controls pattern compilation. The zero value compiles
// case-sensitively with braces and sets enabled.
type Flags uint32

const (
	// CaseInsensitive makes the matcher compare under simple case folding.
	CaseInsensitive Flags = 1 << iota
	// NoBraces treats '{' and '}' as ordinary characters.
	NoBraces
	// NoSets treats '[' and ']' as ordinary characters.
	NoSets
)

// Matcher is a compiled glob pattern. The zero value is not useful; use
// Compile.
type Matcher struct {
	pattern *Pattern
	fold    bool
}

// Compile parses pattern and returns a Matcher for it. An empty pattern
// yields a matcher that matches only the empty string.
func Compile(pattern string, flags Flags) (*Matcher, error) {
	pat, err := Parse(pattern, flags)
	if err != nil {
		return nil, err
	}
	return &Matcher{pattern: pat, fold: flags&CaseInsensitive != 0}, nil
}

// Match reports whether s matches the pattern. It never splits a
// multi-byte codepoint of s.
func (m *Matcher) Match(s string) bool {
	n := len(m.pattern.Elements) - m.pattern.TailLength
	head, tail := m.pattern.Elements[:n], m.pattern.Elements[n:]
	rest, ok := matchEnd(tail, s, m.fold)
	if !ok {
		return false
	}
	_, ok = matchFwd(head, rest, m.fold, false)
	return ok
}

// String renders the compiled pattern back to pattern text.
func (m *Matcher) String() string {
	return m.pattern.String()
}
