package asm

import "fmt"

// Op is an opcode: one state transition of a Target.
type Op uint8

// Possible values of Op.
const (
	Mark Op = iota
	Clean
	PenUp
	PenDown
	North
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

var opNames = [...]string{
	Mark:      "mark",
	Clean:     "clean",
	PenUp:     "up",
	PenDown:   "down",
	North:     "north",
	South:     "south",
	East:      "east",
	West:      "west",
	NorthEast: "northeast",
	NorthWest: "northwest",
	SouthEast: "southeast",
	SouthWest: "southwest",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("!(bad op %d)", int(op))
}

// Target is what opcodes operate on. It is implemented by *canvas.Canvas.
type Target interface {
	Mark()
	Clean()
	PenUp()
	PenDown()
	North()
	South()
	East()
	West()
	NorthEast()
	NorthWest()
	SouthEast()
	SouthWest()
}

// Apply performs op on t. It panics if op is not one of the defined values.
func (op Op) Apply(t Target) {
	switch op {
	case Mark:
		t.Mark()
	case Clean:
		t.Clean()
	case PenUp:
		t.PenUp()
	case PenDown:
		t.PenDown()
	case North:
		t.North()
	case South:
		t.South()
	case East:
		t.East()
	case West:
		t.West()
	case NorthEast:
		t.NorthEast()
	case NorthWest:
		t.NorthWest()
	case SouthEast:
		t.SouthEast()
	case SouthWest:
		t.SouthWest()
	default:
		panic("bad op " + op.String())
	}
}

// Run applies the sequence of ops to t, n times over. It returns at once if
// ops is empty, and stops early once t reports an error through an
// Err() error method.
func Run(ops []Op, n int, t Target) {
	if len(ops) == 0 {
		return
	}
	f, canFail := t.(interface{ Err() error })
	for i := 0; i < n; i++ {
		if canFail && f.Err() != nil {
			return
		}
		for _, op := range ops {
			op.Apply(t)
		}
	}
}
