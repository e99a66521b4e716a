package strutil

import (
	"testing"

	. "src.pendraw.sh/pkg/tt"
)

func TestTitle(t *testing.T) {
	Test(t, Fn("Title", Title), Table{
		Args("").Rets(""),
		Args("foo").Rets("Foo"),
		Args("\xf0").Rets("\xf0"),
		Args("FOO").Rets("FOO"),
	})
}

func TestOneRune(t *testing.T) {
	Test(t, Fn("OneRune", OneRune), Table{
		Args("").Rets(rune(0), false),
		Args("*").Rets('*', true),
		Args("█").Rets('█', true),
		Args("ab").Rets(rune(0), false),
		Args("\xf0").Rets(rune(0), false),
	})
}
