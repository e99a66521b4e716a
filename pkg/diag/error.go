// Package diag contains the error kinds reported by the interpreter and
// utilities for showing them.
package diag

import (
	"errors"
	"fmt"

	"src.pendraw.sh/pkg/strutil"
)

// Kind identifies the kind of an Error.
type Kind int

// Possible values of Kind.
const (
	// ParseError is a malformed repetition or special-action prefix.
	ParseError Kind = iota
	// AssemblyError is a script symbol that matches no instruction.
	AssemblyError
	// ConstructionError is an attempt to build a canvas that cannot exist.
	ConstructionError
	// ExhaustionError is a canvas that cannot grow any further.
	ExhaustionError
)

var kindNames = [...]string{
	ParseError:        "parse error",
	AssemblyError:     "assembly error",
	ConstructionError: "construction error",
	ExhaustionError:   "exhaustion error",
}

func (k Kind) String() string {
	if 0 <= k && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("!(bad kind %d)", int(k))
}

// Error represents an error of a known kind.
type Error struct {
	Kind    Kind
	Message string
	// Char is the offending character of an AssemblyError; zero otherwise.
	Char rune
}

// Error returns a plain text representation of the error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Show shows the error.
func (e *Error) Show(indent string) string {
	return fmt.Sprintf("%s%s: \033[31;1m%s\033[m", indent, strutil.Title(e.Kind.String()), e.Message)
}

// NewParseError returns a ParseError with the given message.
func NewParseError(msg string) *Error {
	return &Error{Kind: ParseError, Message: msg}
}

// NewAssemblyError returns an AssemblyError about the given character.
func NewAssemblyError(r rune) *Error {
	return &Error{Kind: AssemblyError,
		Message: fmt.Sprintf("unrecognized instruction %q", r), Char: r}
}

// NewConstructionError returns a ConstructionError with the given message.
func NewConstructionError(msg string) *Error {
	return &Error{Kind: ConstructionError, Message: msg}
}

// NewExhaustionError returns an ExhaustionError with the given message.
func NewExhaustionError(msg string) *Error {
	return &Error{Kind: ExhaustionError, Message: msg}
}

// KindOf returns the Kind of err if it wraps an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Is reports whether err wraps an *Error of kind k.
func Is(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}
