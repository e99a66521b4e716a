package strutil

import "strings"

// JoinLines terminates each line with "\n" and concatenates them. It returns
// "" for no lines.
func JoinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
