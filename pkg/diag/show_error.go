package diag

import (
	"fmt"
	"io"
)

// Shower is implemented by errors that know how to present themselves to the
// user. The indent is prepended to every line of the result.
type Shower interface {
	Show(indent string) string
}

// ShowError writes err to w on its own line, using its Show method if it has
// one, or Complain otherwise.
func ShowError(w io.Writer, err error) {
	if shower, ok := err.(Shower); ok {
		fmt.Fprintln(w, shower.Show(""))
		return
	}
	Complain(w, err.Error())
}

// Complain writes msg to w in bold red, followed by a newline.
func Complain(w io.Writer, msg string) {
	fmt.Fprintf(w, "\033[31;1m%s\033[m\n", msg)
}

// Complainf is like Complain, but formats its arguments first.
func Complainf(w io.Writer, format string, args ...any) {
	Complain(w, fmt.Sprintf(format, args...))
}
