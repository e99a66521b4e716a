//go:build unix

package shell

import (
	"strings"
	"testing"

	. "src.pendraw.sh/pkg/prog/progtest"
)

func TestProgram_Terminal(t *testing.T) {
	f, err := SetupInteractive(t)
	if err != nil {
		t.Skip("pty not available:", err)
	}
	f.FeedIn("e\n\\q\n")

	exit := f.Run(&Program{}, "-width", "3", "-bg", ".")

	if exit != 0 {
		t.Errorf("exit %d, want 0", exit)
	}
	out := f.Out(1)
	if want := ".X.\n? \n..X\n? \n"; !strings.HasPrefix(out, want) {
		t.Errorf("got out %q, want prefix %q", out, want)
	}
}
