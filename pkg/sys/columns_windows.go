package sys

import (
	"os"

	"golang.org/x/sys/windows"
)

func columns(file *os.File) int {
	var info windows.ConsoleScreenBufferInfo
	if windows.GetConsoleScreenBufferInfo(windows.Handle(file.Fd()), &info) != nil {
		return -1
	}
	return int(info.Window.Right-info.Window.Left) + 1
}
