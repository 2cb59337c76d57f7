package glob

import (
	"testing"

	"pathglob.dev/pkg/tt"
)

func matchWith(pattern string, flags Flags, s string) bool {
	m, err := Compile(pattern, flags)
	if err != nil {
		panic(err)
	}
	return m.Match(s)
}

func TestMatch(t *testing.T) {
	match := func(pattern, s string) bool { return matchWith(pattern, 0, s) }
	tt.Test(t, tt.Fn("Match", match), tt.Table{
		// The empty pattern matches only the empty string.
		tt.Args("", "").Rets(true),
		tt.Args("", "a").Rets(false),
		tt.Args("", "ab").Rets(false),

		tt.Args("abc", "abc").Rets(true),
		tt.Args("abc", "").Rets(false),
		tt.Args("abc", "ab").Rets(false),
		tt.Args("abc", "abcd").Rets(false),
		tt.Args("abc", "acb").Rets(false),

		tt.Args("*", "").Rets(true),
		tt.Args("*", "a").Rets(true),
		tt.Args("*", "ac").Rets(true),
		tt.Args("*", "axc").Rets(true),

		tt.Args("a*c", "abc").Rets(true),
		tt.Args("a*c", "ab_bb_bc").Rets(true),
		tt.Args("a*c", "ac").Rets(true),
		tt.Args("a*c", "axc").Rets(true),
		tt.Args("a*c", "a").Rets(false),
		tt.Args("a*c", "ab").Rets(false),
		tt.Args("a*c", "abcd").Rets(false),
		tt.Args("a*c", "acb").Rets(false),

		tt.Args("a?c", "abc").Rets(true),
		tt.Args("a?c", "axc").Rets(true),
		tt.Args("a?c", "ac").Rets(false),
		tt.Args("a?c", "abcd").Rets(false),

		tt.Args("a[b-d]e", "abe").Rets(true),
		tt.Args("a[b-d]e", "ace").Rets(true),
		tt.Args("a[b-d]e", "ade").Rets(true),
		tt.Args("a[b-d]e", "ae").Rets(false),
		tt.Args("a[b-d]e", "aae").Rets(false),
		tt.Args("a[b-d]e", "aee").Rets(false),

		tt.Args("a[^b-d]e", "abe").Rets(false),
		tt.Args("a[^b-d]e", "ace").Rets(false),
		tt.Args("a[^b-d]e", "ade").Rets(false),
		tt.Args("a[^b-d]e", "aee").Rets(true),
		tt.Args("a[^b-d]e", "aae").Rets(true),
		tt.Args("a[^b-d]e", "ae").Rets(false),

		tt.Args("a[b-d]e*", "abe").Rets(true),
		tt.Args("a[b-d]e*", "aceggg").Rets(true),
		tt.Args("a[b-d]e*", "ade123").Rets(true),
		tt.Args("a[b-d]e*", "ae").Rets(false),
		tt.Args("a[b-d]e*", "aae").Rets(false),

		tt.Args("ab{cd,ef,}gh", "abcdgh").Rets(true),
		tt.Args("ab{cd,ef,}gh", "abefgh").Rets(true),
		tt.Args("ab{cd,ef,}gh", "abgh").Rets(true),
		tt.Args("ab{cd,ef,}gh", "abcgh").Rets(false),
		tt.Args("ab{cd,ef,}gh", "abdegh").Rets(false),

		tt.Args(`a\[b\]c`, "a[b]c").Rets(true),
		tt.Args(`a\[b\]c`, "abc").Rets(false),
		tt.Args(`a\[b\]c`, `a\[b\]c`).Rets(false),

		tt.Args(`ab{c\,d,e\,f,}gh`, "abc,dgh").Rets(true),
		tt.Args(`ab{c\,d,e\,f,}gh`, "abe,fgh").Rets(true),
		tt.Args(`ab{c\,d,e\,f,}gh`, "abgh").Rets(true),
		tt.Args(`ab{c\,d,e\,f,}gh`, "abcgh").Rets(false),
		tt.Args(`ab{c\,d,e\,f,}gh`, "abefgh").Rets(false),

		tt.Args(`a[b\-d]e`, "abe").Rets(true),
		tt.Args(`a[b\-d]e`, "a-e").Rets(true),
		tt.Args(`a[b\-d]e`, "ade").Rets(true),
		tt.Args(`a[b\-d]e`, "a-ee").Rets(false),
		tt.Args(`a[b\-d]e`, "ace").Rets(false),

		tt.Args("aaa*?b?*c?dd", "aaabbbccdd").Rets(true),
		tt.Args("aaa*?b?*c?dd", "aaabbbccdccdd").Rets(true),
		tt.Args("aaa*?b?*c?dd", "aaabbbccddccdd").Rets(true),

		tt.Args("ab.{{pn,jp{e,}}g,gif}", "ab.png").Rets(true),
		tt.Args("ab.{{pn,jp{e,}}g,gif}", "ab.jpg").Rets(true),
		tt.Args("ab.{{pn,jp{e,}}g,gif}", "ab.jpeg").Rets(true),
		tt.Args("ab.{{pn,jp{e,}}g,gif}", "ab.gif").Rets(true),
		tt.Args("ab.{{pn,jp{e,}}g,gif}", "ab.pnf").Rets(false),
		tt.Args("ab.{{pn,jp{e,}}g,gif}", "ab.jpe").Rets(false),

		// A star may match the empty middle of the input.
		tt.Args("x*{a,}", "x").Rets(true),
		tt.Args("x*{a,}", "xa").Rets(true),
		tt.Args("x*{a,}", "xba").Rets(true),

		// Codepoints, not bytes.
		tt.Args("?", "β").Rets(true),
		tt.Args("??", "β").Rets(false),
		tt.Args("α?γ", "αβγ").Rets(true),
		tt.Args("α*γ", "αγ").Rets(true),
		tt.Args("[α-ω]", "φ").Rets(true),
		tt.Args("[α-ω]", "a").Rets(false),
	})
}

func TestMatch_CaseInsensitive(t *testing.T) {
	match := func(pattern, s string) bool {
		return matchWith(pattern, CaseInsensitive, s)
	}
	tt.Test(t, tt.Fn("Match", match), tt.Table{
		tt.Args("abc", "AbC").Rets(true),
		tt.Args("ABC", "abc").Rets(true),
		tt.Args("abc", "abd").Rets(false),
		tt.Args("a*C", "AxxxYc").Rets(true),
		tt.Args("a?c", "ABC").Rets(true),
		tt.Args("[a-z]", "Q").Rets(true),
		tt.Args("[^a-z]", "Q").Rets(false),
		tt.Args("[^a-z]", "9").Rets(true),
		tt.Args("x{AB,cd}y", "Xaby").Rets(true),
		tt.Args("x{AB,cd}y", "XCDY").Rets(true),
		tt.Args("x{AB,cd}y", "Xady").Rets(false),
		// Simple folding: the Kelvin sign folds to 'k'.
		tt.Args("k", "K").Rets(true),
		tt.Args("[j-l]", "K").Rets(true),
		tt.Args("στιγμα", "ΣΤΙΓΜΑ").Rets(true),
	})
}

func TestMatch_CaseSensitiveDefault(t *testing.T) {
	match := func(pattern, s string) bool { return matchWith(pattern, 0, s) }
	tt.Test(t, tt.Fn("Match", match), tt.Table{
		tt.Args("abc", "AbC").Rets(false),
		tt.Args("[a-z]", "Q").Rets(false),
		tt.Args("k", "K").Rets(false),
	})
}

func TestMatch_DisabledMetacharacters(t *testing.T) {
	tt.Test(t, tt.Fn("Match", matchWith), tt.Table{
		tt.Args("a[b-d]e", NoSets, "a[b-d]e").Rets(true),
		tt.Args("a[b-d]e", NoSets, "abe").Rets(false),
		tt.Args("ab{c,d,e}f", NoBraces, "ab{c,d,e}f").Rets(true),
		tt.Args("ab{c,d,e}f", NoBraces, "abcf").Rets(false),
	})
}

func TestCompile_Error(t *testing.T) {
	m, err := Compile("ab{cd", 0)
	if m != nil || err == nil {
		t.Fatalf("Compile(ab{cd) -> (%v, %v), want (nil, error)", m, err)
	}
	globErr, ok := err.(*Error)
	if !ok || globErr.Kind != UnterminatedAlternation {
		t.Errorf("Compile(ab{cd) -> error %v, want UnterminatedAlternation", err)
	}
}

func TestMatcherString(t *testing.T) {
	m, err := Compile("a*{b,c}[x-z]?", 0)
	if err != nil {
		t.Fatal(err)
	}
	if s := m.String(); s != "a*{b,c}[x-z]?" {
		t.Errorf("String() -> %q, want %q", s, "a*{b,c}[x-z]?")
	}
}
