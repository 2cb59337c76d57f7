package strutil

import "unicode/utf8"

// ChopFirstRune removes the first codepoint of s. It returns the codepoint,
// the remainder of s, and whether s was non-empty.
func ChopFirstRune(s string) (rune, string, bool) {
	if s == "" {
		return 0, "", false
	}
	r, n := utf8.DecodeRuneInString(s)
	return r, s[n:], true
}

// ChopLastRune removes the last codepoint of s. It returns the codepoint,
// the remainder of s, and whether s was non-empty.
func ChopLastRune(s string) (rune, string, bool) {
	if s == "" {
		return 0, "", false
	}
	r, n := utf8.DecodeLastRuneInString(s)
	return r, s[:len(s)-n], true
}
