package shell

import (
	"testing"

	"src.pendraw.sh/pkg/diag"
	. "src.pendraw.sh/pkg/tt"
)

func TestClassify(t *testing.T) {
	Test(t, Fn("Classify", Classify), Table{
		// No prefix
		Args("").Rets(Command{RunScript, 1, ""}, nil),
		Args("n n n").Rets(Command{RunScript, 1, "n n n"}, nil),
		Args("  e").Rets(Command{RunScript, 1, "  e"}, nil),
		// A bare leading number is part of the script
		Args("2e").Rets(Command{RunScript, 1, "2e"}, nil),
		// Help
		Args("?").Rets(Command{Action: ShowHelp}, nil),
		Args("? ignored").Rets(Command{Action: ShowHelp}, nil),
		Args(`\h`).Rets(Command{Action: ShowHelp}, nil),
		Args(`\H`).Rets(Command{Action: ShowHelp}, nil),
		Args(`\?`).Rets(Command{Action: ShowHelp}, nil),
		Args(`  \h`).Rets(Command{Action: ShowHelp}, nil),
		// Quit
		Args(`\q`).Rets(Command{Action: Quit}, nil),
		Args(`\Q`).Rets(Command{Action: Quit}, nil),
		Args(`\quit`).Rets(Command{Action: Quit}, nil),
		// Repetition
		Args(`\2 e`).Rets(Command{RunScript, 2, " e"}, nil),
		Args(`\10nn`).Rets(Command{RunScript, 10, "nn"}, nil),
		Args(`\0 n`).Rets(Command{RunScript, 0, " n"}, nil),
		Args(`\007`).Rets(Command{RunScript, 7, ""}, nil),
		Args(` \3 d`).Rets(Command{RunScript, 3, " d"}, nil),
		// Parse errors
		Args(`\`).Rets(Command{}, diag.NewParseError(`missing directive after \`)),
		Args(`\-1 n`).Rets(Command{}, diag.NewParseError(`bad directive after \`)),
		Args(`\ 2 n`).Rets(Command{}, diag.NewParseError(`bad directive after \`)),
		Args(`\x`).Rets(Command{}, diag.NewParseError(`bad directive after \`)),
		Args(`\99999999999999999999999 n`).Rets(
			Command{}, ErrorWithMessage("parse error: repetition count out of range")),
	})
}

func TestClassify_ErrorKind(t *testing.T) {
	for _, line := range []string{`\`, `\x`, `\-3`} {
		_, err := Classify(line)
		if !diag.Is(err, diag.ParseError) {
			t.Errorf("Classify(%q) -> error %v, want parse error", line, err)
		}
	}
}

func TestActionString(t *testing.T) {
	Test(t, Fn("Action.String", Action.String), Table{
		Args(RunScript).Rets("run"),
		Args(ShowHelp).Rets("help"),
		Args(Quit).Rets("quit"),
		Args(Action(9)).Rets("!(bad action 9)"),
	})
}
