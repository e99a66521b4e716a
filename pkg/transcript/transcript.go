// Package transcript parses transcripts of pendraw sessions.
//
// # Basic syntax
//
// A transcript is a series of input lines entered after a prompt, each
// followed by the resulting output:
//
//	? e
//	.X.
//	? \2 s
//	.*.
//	.*.
//	.X.
//
// A line matching [PromptPattern] holds one line of input. Every other line
// up to the next prompt is output. Unlike the input of pendraw, which is
// always a single line, output may span many lines, including empty ones.
//
// # Headings and sessions
//
// Headings of the form "# title #", "## title ##" and "### title ###" split a
// transcript into sessions and name them. A file a.pdts with content
//
//	? n
//
//	# scrolling #
//
//	## north ##
//	? n
//
//	## west ##
//	? w
//
// has the sessions a.pdts, a.pdts/scrolling/north and a.pdts/scrolling/west.
// The a.pdts/scrolling node has no interactions of its own.
//
// Leading and trailing empty lines of a session are dropped, internal ones
// are kept.
//
// # Comments and directives
//
// A line starting with "// ", or made up of two or more "/"s only, is a
// comment and is ignored.
//
// Any other line starting with "//" is a directive. Directives may only appear
// before the first interaction of a session, and apply to that session and
// all sessions under it.
package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"regexp"
	"strings"

	"src.pendraw.sh/pkg/strutil"
)

// Ext is the file extension of transcript files.
const Ext = ".pdts"

// Node is a transcript file or a section of one started by a heading.
type Node struct {
	Name         string
	Directives   []string
	Interactions []Interaction
	Children     []*Node
}

// Interaction is one line of input and the output it produced. Prompt is
// never empty.
type Interaction struct {
	Prompt string
	Code   string
	Output string
}

// PromptPattern matches the prompt that starts an input line.
var PromptPattern = regexp.MustCompile(`^\? `)

var (
	errNoPrompt            = errors.New("first non-comment line of a session doesn't have prompt")
	errMisplacedDirective  = errors.New("directive only allowed at start of a session")
	errSkippedHeadingLevel = errors.New("heading skips a level")
)

// ParseFromFS finds all transcript files in fsys, recursively, and parses
// them. Nodes are named after the path of their file.
func ParseFromFS(fsys fs.FS) ([]*Node, error) {
	var nodes []*Node
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(name) != Ext {
			return nil
		}
		file, err := fsys.Open(name)
		if err != nil {
			return err
		}
		defer file.Close()
		node, err := Parse(name, file)
		if err != nil {
			return err
		}
		nodes = append(nodes, node)
		return nil
	})
	return nodes, err
}

// Parse parses a transcript read from r. The returned node is named name, and
// errors refer to lines as name:lineno.
func Parse(name string, r io.Reader) (*Node, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	// stack[i] is the innermost node at heading level i; stack[0] is the
	// root.
	stack := []*Node{{Name: name}}
	start := 0
	flush := func(end int) error {
		return parseSession(stack[len(stack)-1], name, lines[start:end], start+1)
	}
	for i, line := range lines {
		title, level, ok := parseHeading(line)
		if !ok {
			continue
		}
		if err := flush(i); err != nil {
			return nil, err
		}
		if level > len(stack) {
			return nil, fmt.Errorf("%s:%d: %w", name, i+1, errSkippedHeadingLevel)
		}
		node := &Node{Name: title}
		parent := stack[level-1]
		parent.Children = append(parent.Children, node)
		stack = append(stack[:level], node)
		start = i + 1
	}
	if err := flush(len(lines)); err != nil {
		return nil, err
	}
	return stack[0], nil
}

func parseHeading(line string) (title string, level int, ok bool) {
	for level = 1; level <= 3; level++ {
		marker := strings.Repeat("#", level)
		if strings.HasPrefix(line, marker+" ") && strings.HasSuffix(line, " "+marker) &&
			len(line) > 2*len(marker)+2 {
			return line[level+1 : len(line)-level-1], level, true
		}
	}
	return "", 0, false
}

// Parses lines, the first of which is line number lineno of the file, into
// n.Directives and n.Interactions.
func parseSession(n *Node, name string, lines []string, lineno int) error {
	describe := func(i int) string { return fmt.Sprintf("%s:%d", name, lineno+i) }

	i := 0
	for ; i < len(lines); i++ {
		if lines[i] == "" || isComment(lines[i]) {
			continue
		}
		directive, ok := parseDirective(lines[i])
		if !ok {
			break
		}
		n.Directives = append(n.Directives, directive)
	}
	if i < len(lines) && !PromptPattern.MatchString(lines[i]) {
		return fmt.Errorf("%s: %w", describe(i), errNoPrompt)
	}
	for len(lines) > i && (lines[len(lines)-1] == "" || isComment(lines[len(lines)-1])) {
		lines = lines[:len(lines)-1]
	}

	for i < len(lines) {
		prompt := PromptPattern.FindString(lines[i])
		code := lines[i][len(prompt):]
		i++
		var output []string
		for ; i < len(lines) && !PromptPattern.MatchString(lines[i]); i++ {
			if isComment(lines[i]) {
				continue
			}
			if _, ok := parseDirective(lines[i]); ok {
				return fmt.Errorf("%s: %w", describe(i), errMisplacedDirective)
			}
			output = append(output, lines[i])
		}
		n.Interactions = append(n.Interactions,
			Interaction{prompt, code, strutil.JoinLines(output)})
	}
	return nil
}

var slashOnlyComment = regexp.MustCompile(`^///*$`)

func isComment(line string) bool {
	return strings.HasPrefix(line, "// ") || slashOnlyComment.MatchString(line)
}

func parseDirective(line string) (string, bool) {
	if strings.HasPrefix(line, "//") && !isComment(line) {
		return line[2:], true
	}
	return "", false
}

// Session is a node with interactions, flattened out of a tree of nodes.
type Session struct {
	// Names of the nodes from the root, joined with "/".
	Name string
	// Directives of the node and all its ancestors, outermost first.
	Directives   []string
	Interactions []Interaction
}

// Sessions flattens the given trees of nodes in depth-first order, skipping
// nodes without interactions.
func Sessions(nodes []*Node) []Session {
	var sessions []Session
	var walk func(n *Node, prefix string, directives []string)
	walk = func(n *Node, prefix string, directives []string) {
		name := n.Name
		if prefix != "" {
			name = prefix + "/" + n.Name
		}
		directives = append(directives[:len(directives):len(directives)], n.Directives...)
		if len(n.Interactions) > 0 {
			sessions = append(sessions, Session{name, directives, n.Interactions})
		}
		for _, child := range n.Children {
			walk(child, name, directives)
		}
	}
	for _, n := range nodes {
		walk(n, "", nil)
	}
	return sessions
}
