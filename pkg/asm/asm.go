// Package asm translates scripts of one-character symbols into opcodes.
//
// Translation is driven by a Table of instructions, each of which maps a set
// of symbols to one opcode. The first instruction that lists a symbol wins.
package asm

import (
	"fmt"
	"unicode"

	"src.pendraw.sh/pkg/diag"
)

// Instruction is an entry of a Table.
type Instruction struct {
	// Name identifies the instruction in configuration files.
	Name string
	// Description is shown in help.
	Description string
	Symbols     []rune
	Op          Op
}

// Table is a list of instructions. It should be treated as read-only once
// built; use WithSymbols to derive a modified copy.
type Table []Instruction

// DefaultTable returns the built-in instruction table.
func DefaultTable() Table {
	return Table{
		{"mark", "mark the current cell", []rune("m"), Mark},
		{"clean", "clean the current cell", []rune("c"), Clean},
		{"up", "lift the pen", []rune("u"), PenUp},
		{"down", "put the pen down and mark", []rune("d"), PenDown},
		{"north", "move north", []rune("n8"), North},
		{"south", "move south", []rune("s2"), South},
		{"east", "move east", []rune("e6"), East},
		{"west", "move west", []rune("w4"), West},
		{"northeast", "move northeast", []rune("o9"), NorthEast},
		{"northwest", "move northwest", []rune("i7"), NorthWest},
		{"southeast", "move southeast", []rune("l3"), SouthEast},
		{"southwest", "move southwest", []rune("k1"), SouthWest},
	}
}

// Lookup finds the opcode of the first instruction whose symbols contain r.
func (t Table) Lookup(r rune) (Op, bool) {
	for _, inst := range t {
		for _, sym := range inst.Symbols {
			if sym == r {
				return inst.Op, true
			}
		}
	}
	return 0, false
}

// WithSymbols returns a copy of t where the instruction with the given name
// is triggered by symbols instead of its original ones. The symbols must be
// non-empty, and may not contain whitespace or the prefix characters '?' and
// '\'.
func (t Table) WithSymbols(name string, symbols []rune) (Table, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("no symbols given for instruction %s", name)
	}
	for _, r := range symbols {
		if unicode.IsSpace(r) || r == '?' || r == '\\' {
			return nil, fmt.Errorf("%q cannot be used as a symbol", r)
		}
	}
	for i, inst := range t {
		if inst.Name == name {
			newTable := make(Table, len(t))
			copy(newTable, t)
			newTable[i].Symbols = append([]rune(nil), symbols...)
			return newTable, nil
		}
	}
	return nil, fmt.Errorf("unknown instruction %s", name)
}

// Assemble translates script into opcodes, skipping whitespace. If any symbol
// is not in the table, it returns an assembly error about the first such
// symbol and no opcodes.
func Assemble(script string, t Table) ([]Op, error) {
	var ops []Op
	for _, r := range script {
		if unicode.IsSpace(r) {
			continue
		}
		op, ok := t.Lookup(r)
		if !ok {
			return nil, diag.NewAssemblyError(r)
		}
		ops = append(ops, op)
	}
	return ops, nil
}
