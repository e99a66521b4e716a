//go:build unix

package progtest

import (
	"github.com/creack/pty"
	"src.pendraw.sh/pkg/testutil"
)

// SetupInteractive is like Setup, but stdin of the program is the terminal
// side of a pseudo-terminal, so that the program behaves as in interactive
// use. Input given to FeedIn is typed into the terminal and is not followed by
// an end of input, so the program must quit by itself.
//
// It returns an error if no pseudo-terminal is available.
func SetupInteractive(c testutil.Cleanuper) (*Fixture, error) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		return nil, err
	}
	return setup(c, tty, ptmx, func() {}, tty, ptmx), nil
}
