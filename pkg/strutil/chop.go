package strutil

import "strings"

// ChopLineEnding removes one trailing "\n" or "\r\n" from s, if present.
func ChopLineEnding(s string) string {
	if t, ok := strings.CutSuffix(s, "\n"); ok {
		return strings.TrimSuffix(t, "\r")
	}
	return s
}
