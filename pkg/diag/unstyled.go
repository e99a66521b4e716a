package diag

import (
	"io"
	"regexp"
)

var sgrPattern = regexp.MustCompile("\033\\[[0-9;]*m")

// Unstyled returns a writer that writes to w with SGR escape sequences
// removed. Each sequence must be contained in a single call to Write, which
// holds for everything this package writes.
func Unstyled(w io.Writer) io.Writer { return unstyled{w} }

type unstyled struct{ w io.Writer }

func (u unstyled) Write(p []byte) (int, error) {
	if _, err := u.w.Write(sgrPattern.ReplaceAll(p, nil)); err != nil {
		return 0, err
	}
	return len(p), nil
}
