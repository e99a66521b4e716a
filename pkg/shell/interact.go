package shell

import (
	"fmt"
	"io"
	"os"

	"src.pendraw.sh/pkg/asm"
	"src.pendraw.sh/pkg/canvas"
	"src.pendraw.sh/pkg/diag"
	"src.pendraw.sh/pkg/sys"
)

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	Canvas *canvas.Canvas
	Table  asm.Table
	// If true, the canvas is rendered once before the first line is read, a
	// prompt is shown before every line, and frames are separated by an empty
	// line.
	Interactive bool
}

const prompt = "? "

// Interact runs an interactive session, reading lines from fds[0] until the
// end of input or a quit directive. Frames and help go to fds[1], and
// diagnostics to fds[2], styled only if fds[2] is a terminal.
//
// Errors in a line are shown and do not end the session. Interact only
// returns an error when the canvas runs out of room, or when reading input
// fails; the error has already been shown when it returns.
func Interact(fds [3]*os.File, cfg *InteractConfig) error {
	errOut := diagWriter(fds[2])
	var ed editor
	if cfg.Interactive {
		ed = newMinEditor(fds[0], fds[1], prompt)
		cfg.Canvas.Render(fds[1])
	} else {
		ed = newMinEditor(fds[0], fds[1], "")
	}

	for {
		line, err := ed.ReadCode()
		if err != nil && err != io.EOF {
			diag.Complainf(errOut, "cannot read input: %v", err)
			return err
		}
		atEOF := err == io.EOF
		if atEOF && line == "" {
			break
		}

		quit, err := evalLine(fds[1], errOut, cfg, line)
		if err != nil {
			return err
		}
		if quit || atEOF {
			break
		}
	}
	if cfg.Interactive {
		fmt.Fprintln(fds[1])
	}
	return nil
}

// Returns the writer for diagnostics on f.
func diagWriter(f *os.File) io.Writer {
	if sys.IsATTY(f) {
		return f
	}
	return diag.Unstyled(f)
}

// Evaluates one line of input, writing frames and help to out and showing
// errors on errOut. It returns whether the session should end, and an error
// if the session cannot continue.
func evalLine(out, errOut io.Writer, cfg *InteractConfig, line string) (bool, error) {
	quit, err := runLine(out, cfg, line)
	if err != nil {
		logger.Println(err)
		diag.ShowError(errOut, err)
		if diag.Is(err, diag.ExhaustionError) {
			return true, err
		}
	}
	return quit, nil
}

func runLine(out io.Writer, cfg *InteractConfig, line string) (bool, error) {
	cmd, err := Classify(line)
	if err != nil {
		return false, err
	}
	logger.Printf("%v %d %q", cmd.Action, cmd.Count, cmd.Script)

	switch cmd.Action {
	case ShowHelp:
		writeHelp(out, cfg.Table)
	case Quit:
		return true, nil
	case RunScript:
		ops, err := asm.Assemble(cmd.Script, cfg.Table)
		if err != nil {
			return false, err
		}
		asm.Run(ops, cmd.Count, cfg.Canvas)
		if err := cfg.Canvas.Err(); err != nil {
			return false, err
		}
		if cfg.Interactive {
			fmt.Fprintln(out)
		}
		cfg.Canvas.Render(out)
	}
	return false, nil
}
