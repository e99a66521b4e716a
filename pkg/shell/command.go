package shell

import (
	"strconv"
	"strings"
	"unicode"

	"src.pendraw.sh/pkg/diag"
)

// Action is what a line of input asks for.
type Action int

// Possible values of Action.
const (
	// RunScript assembles the script and runs it Count times.
	RunScript Action = iota
	// ShowHelp shows the instruction table.
	ShowHelp
	// Quit ends the session.
	Quit
)

func (a Action) String() string {
	switch a {
	case RunScript:
		return "run"
	case ShowHelp:
		return "help"
	case Quit:
		return "quit"
	}
	return "!(bad action " + strconv.Itoa(int(a)) + ")"
}

// Command is a classified line of input.
type Command struct {
	Action Action
	// Count and Script are only meaningful when Action is RunScript.
	Count  int
	Script string
}

// Classify parses the optional prefix of a line:
//
//   - "?", "\h", "\H" and "\?" request help; the rest of the line is ignored.
//   - "\q" and "\Q" request quitting; the rest of the line is ignored.
//   - "\" followed by a decimal number runs the rest of the line that many
//     times.
//   - A line without a prefix is run once.
//
// Leading whitespace is skipped. Any other use of "\" is a parse error.
func Classify(line string) (Command, error) {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	switch {
	case strings.HasPrefix(rest, "?"):
		return Command{Action: ShowHelp}, nil
	case strings.HasPrefix(rest, `\`):
		rest = rest[1:]
	default:
		return Command{Action: RunScript, Count: 1, Script: line}, nil
	}

	if rest == "" {
		return Command{}, diag.NewParseError(`missing directive after \`)
	}
	switch rest[0] {
	case 'h', 'H', '?':
		return Command{Action: ShowHelp}, nil
	case 'q', 'Q':
		return Command{Action: Quit}, nil
	}

	i := strings.IndexFunc(rest, func(r rune) bool { return r < '0' || r > '9' })
	if i == -1 {
		i = len(rest)
	}
	if i == 0 {
		return Command{}, diag.NewParseError(`bad directive after \`)
	}
	count, err := strconv.Atoi(rest[:i])
	if err != nil {
		return Command{}, diag.NewParseError("repetition count out of range")
	}
	return Command{Action: RunScript, Count: count, Script: rest[i:]}, nil
}
