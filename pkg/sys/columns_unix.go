//go:build unix

package sys

import (
	"os"

	"golang.org/x/sys/unix"
)

func columns(file *os.File) int {
	ws, err := unix.IoctlGetWinsize(int(file.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		// Serial consoles report a size of 0.
		return -1
	}
	return int(ws.Col)
}
