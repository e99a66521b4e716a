package buildinfo

import (
	"fmt"
	"testing"

	. "src.pendraw.sh/pkg/prog/progtest"
)

func TestProgram(t *testing.T) {
	for _, test := range []struct {
		args []string
		want string
	}{
		{[]string{"-version"}, Value.Version + "\n"},
		{[]string{"-version", "-json"}, mustToJSON(Value.Version) + "\n"},
		{[]string{"-buildinfo"}, fmt.Sprintf(
			"Version: %v\nGo version: %v\nReproducible build: %v\n",
			Value.Version, Value.GoVersion, Value.Reproducible)},
		{[]string{"-buildinfo", "-json"}, mustToJSON(Value) + "\n"},
	} {
		f := Setup(t)
		if exit := f.Run(&Program{}, test.args...); exit != 0 {
			t.Errorf("%v: exit %d, want 0", test.args, exit)
		}
		if out := f.Out(1); out != test.want {
			t.Errorf("%v: stdout %q, want %q", test.args, out, test.want)
		}
	}
}

func TestProgram_NoFlags(t *testing.T) {
	f := Setup(t)

	exit := f.Run(&Program{})

	if exit != 2 {
		t.Errorf("exit %d, want 2", exit)
	}
	f.TestOut(t, 2, "internal error: no suitable subprogram\n")
}
