// Package progtest contains utilities for testing [prog.Program]
// implementations.
package progtest

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"src.pendraw.sh/pkg/env"
	"src.pendraw.sh/pkg/must"
	"src.pendraw.sh/pkg/prog"
	"src.pendraw.sh/pkg/testutil"
)

// Fixture is a test fixture suitable for testing programs. It provides stdin
// to the program, and captures its stdout and stderr.
type Fixture struct {
	in *os.File
	// Where FeedIn writes to.
	feed io.Writer
	// Called by FeedIn after writing.
	endInput func()
	outs     [2]*output
	closers  []io.Closer
}

// Captures what is written to the writing end of a pipe. The reading end is
// drained concurrently so that a noisy program cannot fill the pipe buffer
// and block.
type output struct {
	w    *os.File
	buf  bytes.Buffer
	done chan struct{}
}

func newOutput() *output {
	r, w := must.Pipe()
	o := &output{w: w, done: make(chan struct{})}
	go func() {
		io.Copy(&o.buf, r)
		r.Close()
		close(o.done)
	}()
	return o
}

func (o *output) String() string {
	o.w.Close()
	<-o.done
	return o.buf.String()
}

// Setup sets up a test fixture. The program runs in a fresh temporary
// directory, with $XDG_CONFIG_HOME pointing to it so that a configuration
// file of the user running the test is not picked up. All files are closed
// when the test finishes.
func Setup(c testutil.Cleanuper) *Fixture {
	r, w := must.Pipe()
	return setup(c, r, w, func() { w.Close() }, r, w)
}

func setup(c testutil.Cleanuper, in *os.File, feed io.Writer, endInput func(), closers ...io.Closer) *Fixture {
	dir := testutil.InTempDir(c)
	testutil.Setenv(c, env.XDG_CONFIG_HOME, dir)
	f := &Fixture{in, feed, endInput, [2]*output{newOutput(), newOutput()}, closers}
	c.Cleanup(f.cleanup)
	return f
}

func (f *Fixture) cleanup() {
	for _, o := range f.outs {
		_ = o.String()
	}
	for _, c := range f.closers {
		c.Close()
	}
}

// Fds returns the file descriptors in the fixture.
func (f *Fixture) Fds() [3]*os.File {
	return [3]*os.File{f.in, f.outs[0].w, f.outs[1].w}
}

// FeedIn writes the given string to stdin. For fixtures created with Setup,
// stdin is then closed, so that the program sees end of input after reading
// the string.
func (f *Fixture) FeedIn(s string) {
	must.OK1(io.WriteString(f.feed, s))
	f.endInput()
}

// Run runs p with the given arguments, using the fds of the fixture. It
// returns the exit status.
func (f *Fixture) Run(p prog.Program, args ...string) int {
	return prog.Run(f.Fds(), append([]string{"pendraw"}, args...), p)
}

// Out returns what has been written to stdout (fd = 1) or stderr (fd = 2).
// It closes the writing end of the pipe, so it should only be called after
// the program has finished.
func (f *Fixture) Out(fd int) string {
	return f.outs[fd-1].String()
}

// TestOut tests that the output on stdout or stderr matches the given string.
func (f *Fixture) TestOut(t *testing.T, fd int, wantOut string) {
	t.Helper()
	if out := f.Out(fd); out != wantOut {
		t.Errorf("got out %q, want %q", out, wantOut)
	}
}

// TestOutSnippet tests that the output on stdout or stderr contains the given
// string.
func (f *Fixture) TestOutSnippet(t *testing.T, fd int, wantOutSnippet string) {
	t.Helper()
	if out := f.Out(fd); !strings.Contains(out, wantOutSnippet) {
		t.Errorf("got out %q, want string containing %q", out, wantOutSnippet)
	}
}
