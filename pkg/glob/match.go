package glob

import (
	"strings"

	"pathglob.dev/pkg/strutil"
)

// The matching functions thread the unconsumed part of the input through
// (rest, ok) returns. On failure the caller keeps its own view, which gives
// the same restore-on-failure behavior as mutating and restoring a shared
// view. fold selects case-insensitive comparison (simple case folding).

// matchEnd anchors the star-free tail: it consumes elements right-to-left
// from the end of s. Star elements cannot occur here.
func matchEnd(parts []Element, s string, fold bool) (string, bool) {
	orig := s
	for i := len(parts) - 1; i >= 0; i-- {
		rest, ok := endsWith(parts[i], s, fold)
		if !ok {
			return orig, false
		}
		s = rest
	}
	return s, true
}

// matchFwd matches elements left-to-right against a prefix of s. Unless
// subpattern is true the whole of s must be consumed. A Star hands the
// remaining elements to searchFwd; if that fails the star itself consumes
// the rest of s and matching continues, which covers stars that match the
// empty tail of the input.
func matchFwd(parts []Element, s string, fold, subpattern bool) (string, bool) {
	orig := s
	for i, e := range parts {
		if _, isStar := e.(Star); isStar {
			if rest, ok := searchFwd(parts[i+1:], s, fold, subpattern); ok {
				return rest, true
			}
		}
		rest, ok := startsWith(e, s, fold)
		if !ok {
			return orig, false
		}
		s = rest
	}
	if s == "" || subpattern {
		return s, true
	}
	return orig, false
}

// searchFwd is the greedy star: it finds the shortest prefix of s that can
// be skipped so that parts match the remainder. With no parts left the
// star consumes everything.
func searchFwd(parts []Element, s string, fold, subpattern bool) (string, bool) {
	if len(parts) == 0 {
		return "", true
	}
	for s != "" {
		if rest, ok := matchFwd(parts, s, fold, subpattern); ok {
			return rest, true
		}
		_, s, _ = strutil.ChopFirstRune(s)
	}
	return "", false
}

// startsWith consumes one element from the front of s.
func startsWith(e Element, s string, fold bool) (string, bool) {
	switch e := e.(type) {
	case Literal:
		if fold {
			return strutil.TrimPrefixFold(s, e.Data)
		}
		if strings.HasPrefix(s, e.Data) {
			return s[len(e.Data):], true
		}
		return s, false
	case CharSet:
		r, rest, ok := strutil.ChopFirstRune(s)
		if !ok {
			return s, false
		}
		if fold {
			return rest, e.ContainsFold(r)
		}
		return rest, e.Contains(r)
	case Qmark:
		rest := s
		for i := 0; i < e.Length; i++ {
			var ok bool
			if _, rest, ok = strutil.ChopFirstRune(rest); !ok {
				return s, false
			}
		}
		return rest, true
	case Star:
		return "", true
	case Alternation:
		// The first alternative that matches a prefix wins; the caller
		// continues after that prefix.
		for _, sub := range e.Patterns {
			if rest, ok := matchFwd(sub.Elements, s, fold, true); ok {
				return rest, true
			}
		}
		return s, false
	case Empty:
		return s, true
	}
	return s, false
}

// endsWith consumes one element from the back of s. Star is never reached:
// the tail is star-free by construction.
func endsWith(e Element, s string, fold bool) (string, bool) {
	switch e := e.(type) {
	case Literal:
		if fold {
			return strutil.TrimSuffixFold(s, e.Data)
		}
		if strings.HasSuffix(s, e.Data) {
			return s[:len(s)-len(e.Data)], true
		}
		return s, false
	case CharSet:
		r, rest, ok := strutil.ChopLastRune(s)
		if !ok {
			return s, false
		}
		if fold {
			return rest, e.ContainsFold(r)
		}
		return rest, e.Contains(r)
	case Qmark:
		rest := s
		for i := 0; i < e.Length; i++ {
			var ok bool
			if _, rest, ok = strutil.ChopLastRune(rest); !ok {
				return s, false
			}
		}
		return rest, true
	case Alternation:
		for _, sub := range e.Patterns {
			if rest, ok := matchEnd(sub.Elements, s, fold); ok {
				return rest, true
			}
		}
		return s, false
	case Empty:
		return s, true
	}
	return s, false
}
