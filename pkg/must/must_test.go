package must

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestOK_PanicsOnError(t *testing.T) {
	err := errors.New("boom")
	defer func() {
		if r := recover(); r != err {
			t.Errorf("recovered %v, want %v", r, err)
		}
	}()
	OK(err)
}

func TestOK1_ReturnsValue(t *testing.T) {
	if v := OK1(42, nil); v != 42 {
		t.Errorf("OK1 -> %v, want 42", v)
	}
}

func TestWriteFile_ReadFileString(t *testing.T) {
	name := filepath.Join(t.TempDir(), "a", "b")
	WriteFile(name, "content")
	if got := ReadFileString(name); got != "content" {
		t.Errorf("ReadFileString -> %q, want %q", got, "content")
	}
}
