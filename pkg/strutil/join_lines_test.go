package strutil

import (
	"testing"

	. "src.pendraw.sh/pkg/tt"
)

func TestJoinLines(t *testing.T) {
	Test(t, Fn("JoinLines", JoinLines), Table{
		Args([]string(nil)).Rets(""),
		Args([]string{""}).Rets("\n"),
		Args([]string{"..X", "..."}).Rets("..X\n...\n"),
	})
}
