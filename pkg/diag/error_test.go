package diag

import (
	"errors"
	"fmt"
	"testing"

	. "src.pendraw.sh/pkg/tt"
)

func TestError(t *testing.T) {
	err := NewAssemblyError('z')

	wantErrorString := "assembly error: unrecognized instruction 'z'"
	if gotErrorString := err.Error(); gotErrorString != wantErrorString {
		t.Errorf("Error() -> %q, want %q", gotErrorString, wantErrorString)
	}
	if err.Char != 'z' {
		t.Errorf("Char = %q, want 'z'", err.Char)
	}

	// Kind is capitalized in return value of Show
	wantShow := "  Assembly error: \033[31;1munrecognized instruction 'z'\033[m"
	if gotShow := err.Show("  "); gotShow != wantShow {
		t.Errorf("Show() -> %q, want %q", gotShow, wantShow)
	}
}

func TestKindString(t *testing.T) {
	Test(t, Fn("Kind.String", Kind.String), Table{
		Args(ParseError).Rets("parse error"),
		Args(AssemblyError).Rets("assembly error"),
		Args(ConstructionError).Rets("construction error"),
		Args(ExhaustionError).Rets("exhaustion error"),
		Args(Kind(42)).Rets("!(bad kind 42)"),
	})
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("line 3: %w", NewParseError("bad prefix"))
	Test(t, Fn("KindOf", KindOf), Table{
		Args(wrapped).Rets(ParseError, true),
		Args(NewConstructionError("x")).Rets(ConstructionError, true),
		Args(errors.New("plain")).Rets(Kind(0), false),
	})
	if !Is(wrapped, ParseError) {
		t.Errorf("Is(wrapped, ParseError) = false, want true")
	}
	if Is(wrapped, AssemblyError) {
		t.Errorf("Is(wrapped, AssemblyError) = true, want false")
	}
}
