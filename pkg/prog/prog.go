// Package prog supports building testable, composable programs.
//
// The main abstraction of this package is the [Program] interface, which can
// be combined using [Composite]. The entry point of the whole binary is
// [Run], which parses flags common to all programs and runs the first one
// that accepts the invocation.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"src.pendraw.sh/pkg/logutil"
)

// Program represents a subprogram.
type Program interface {
	// RegisterFlags registers flags understood by the program.
	RegisterFlags(fs *FlagSet)
	// Run runs the subprogram. It may return an error from NextProgram to let
	// the next program in a Composite run instead.
	Run(fds [3]*os.File, args []string) error
}

// Flags common to all programs.
type commonFlags struct {
	Log  string
	Help bool
}

func newFlagSet(f *commonFlags) *FlagSet {
	fs := flag.NewFlagSet("pendraw", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "Write debug log to the given file")
	fs.BoolVar(&f.Help, "help", false, "Show usage help and quit")

	return &FlagSet{FlagSet: fs}
}

func usage(out io.Writer, fs *FlagSet) {
	fmt.Fprintln(out, "Usage: pendraw [flags]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	var f commonFlags
	fs := newFlagSet(&f)
	p.RegisterFlags(fs)

	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. -help is defined, but not -h; so
			// this means that -h has been requested. Handle this by printing
			// the same message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if f.Log != "" {
		err = logutil.SetOutputFile(f.Log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, fs.Args())
	if np, ok := err.(nextProgramError); ok {
		np.cleanup(fds)
	}
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var exitErr exitError
	var usageErr badUsageError
	switch {
	case errors.As(err, &usageErr):
		usage(fds[2], fs)
	case errors.As(err, &exitErr):
		return exitErr.exit
	}
	return 2
}

// Composite returns a Program made up from a number of subprograms. It runs
// each of them in turn, until one of them returns an error that doesn't come
// from NextProgram. Cleanup functions carried by such errors are called, in
// reverse order, after that program returns.
func Composite(programs ...Program) Program {
	return composite(programs)
}

type composite []Program

func (cp composite) RegisterFlags(f *FlagSet) {
	for _, p := range cp {
		p.RegisterFlags(f)
	}
}

func (cp composite) Run(fds [3]*os.File, args []string) error {
	var cleanups []func([3]*os.File)
	for _, p := range cp {
		err := p.Run(fds, args)
		if np, ok := err.(nextProgramError); ok {
			cleanups = append(cleanups, np.cleanups...)
			continue
		}
		nextProgramError{cleanups}.cleanup(fds)
		return err
	}
	// If we have reached here, all subprograms have returned NextProgram
	return NextProgram(cleanups...)
}

// NextProgram returns a special error that may be returned by Program.Run
// that is part of a Composite program, indicating that the next program
// should be tried. The cleanup functions are called when the program that
// eventually handles the invocation returns.
func NextProgram(cleanups ...func([3]*os.File)) error {
	return nextProgramError{cleanups}
}

type nextProgramError struct{ cleanups []func([3]*os.File) }

func (e nextProgramError) Error() string {
	return "internal error: no suitable subprogram"
}

func (e nextProgramError) cleanup(fds [3]*os.File) {
	for i := len(e.cleanups) - 1; i >= 0; i-- {
		e.cleanups[i](fds)
	}
}

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }
