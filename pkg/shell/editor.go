package shell

import (
	"bufio"
	"io"
	"os"

	"src.pendraw.sh/pkg/strutil"
)

// This type is the interface that the line reader has to satisfy.
type editor interface {
	// ReadCode returns the next line without its line ending. At the end of
	// input it returns io.EOF, possibly together with a final line that had
	// no line ending.
	ReadCode() (string, error)
}

type minEditor struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

func newMinEditor(in *os.File, out io.Writer, prompt string) *minEditor {
	return &minEditor{bufio.NewReader(in), out, prompt}
}

func (ed *minEditor) ReadCode() (string, error) {
	if ed.prompt != "" {
		io.WriteString(ed.out, ed.prompt)
	}
	line, err := ed.in.ReadString('\n')
	return strutil.ChopLineEnding(line), err
}
