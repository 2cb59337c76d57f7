package strutil

import (
	"testing"

	"pathglob.dev/pkg/tt"
)

func TestChopFirstRune(t *testing.T) {
	tt.Test(t, tt.Fn("ChopFirstRune", ChopFirstRune), tt.Table{
		tt.Args("").Rets(rune(0), "", false),
		tt.Args("a").Rets('a', "", true),
		tt.Args("abc").Rets('a', "bc", true),
		tt.Args("αβγ").Rets('α', "βγ", true),
	})
}

func TestChopLastRune(t *testing.T) {
	tt.Test(t, tt.Fn("ChopLastRune", ChopLastRune), tt.Table{
		tt.Args("").Rets(rune(0), "", false),
		tt.Args("a").Rets('a', "", true),
		tt.Args("abc").Rets('c', "ab", true),
		tt.Args("αβγ").Rets('γ', "αβ", true),
	})
}
