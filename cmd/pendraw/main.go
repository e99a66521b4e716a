// Pendraw is an interactive interpreter that moves a pen over a text canvas.
// Every line of input is a script of one-character instructions, optionally
// prefixed by a repetition count; the canvas is printed after each script.
package main

import (
	"os"

	"src.pendraw.sh/pkg/buildinfo"
	"src.pendraw.sh/pkg/pprof"
	"src.pendraw.sh/pkg/prog"
	"src.pendraw.sh/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(
			&pprof.Program{}, &buildinfo.Program{}, &shell.Program{})))
}
