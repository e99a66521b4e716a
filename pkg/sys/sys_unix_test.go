//go:build unix

package sys

import (
	"testing"

	"github.com/creack/pty"
)

func TestIsATTY_Columns_Pty(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 30, Cols: 100}); err != nil {
		t.Skip("cannot set pty size:", err)
	}
	if !IsATTY(tty) {
		t.Errorf("IsATTY(tty) = false, want true")
	}
	if col := Columns(tty); col != 100 {
		t.Errorf("Columns(tty) = %d, want 100", col)
	}
}
