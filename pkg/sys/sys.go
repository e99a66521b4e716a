// Package sys wraps the terminal queries pendraw needs, with the same API on
// every OS.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsATTY reports whether file is a terminal, including Cygwin and MSYS
// terminals on Windows.
func IsATTY(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Columns returns the width of the terminal file refers to, or -1 if it can't
// be determined.
func Columns(file *os.File) int {
	if !IsATTY(file) {
		return -1
	}
	return columns(file)
}
