// Package canvas implements a text canvas with a pen-carrying cursor.
//
// The canvas has a fixed width and grows vertically without bound: moving
// north from the top row or south from the bottom row adds a row. Moving east
// or west past an edge instead scrolls every row by one cell, keeping the
// cursor pinned to the edge and discarding the cells that fall off the other
// side.
package canvas

import (
	"fmt"
	"io"
	"strings"

	"src.pendraw.sh/pkg/diag"
)

// DefaultWidth is the width of a canvas when none is configured.
const DefaultWidth = 70

// DefaultMaxRows is the number of rows a canvas may grow to when no limit is
// configured.
const DefaultMaxRows = 10000

// Pen is the state of the pen.
type Pen uint8

// Possible values of Pen.
const (
	Up Pen = iota
	Down
)

func (p Pen) String() string {
	if p == Down {
		return "down"
	}
	return "up"
}

// Palette keeps the characters used to render a canvas.
type Palette struct {
	Background rune
	Foreground rune
	Cursor     rune
}

// DefaultPalette is the palette of a canvas when none is configured.
var DefaultPalette = Palette{Background: ' ', Foreground: '*', Cursor: 'X'}

// Canvas is a grid of marked or unmarked cells together with a cursor and a
// pen. The zero value is not usable; create one with New.
type Canvas struct {
	rows    [][]bool
	width   int
	x, y    int
	pen     Pen
	palette Palette
	maxRows int
	err     error
}

// Option configures a Canvas created by New.
type Option func(*Canvas)

// WithPalette sets the palette used by Render.
func WithPalette(p Palette) Option {
	return func(c *Canvas) { c.palette = p }
}

// WithMaxRows changes the number of rows the canvas may grow to from
// DefaultMaxRows. A limit of 0 or less means no limit.
func WithMaxRows(n int) Option {
	return func(c *Canvas) { c.maxRows = n }
}

// New creates a canvas with a single unmarked row of the given width. The
// cursor starts in the middle of the row and the pen starts up.
func New(width int, opts ...Option) (*Canvas, error) {
	if width <= 0 {
		return nil, diag.NewConstructionError(
			fmt.Sprintf("canvas width must be positive, got %d", width))
	}
	c := &Canvas{
		rows:    [][]bool{make([]bool, width)},
		width:   width,
		x:       width / 2,
		palette: DefaultPalette,
		maxRows: DefaultMaxRows,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Width returns the number of cells in every row.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return len(c.rows) }

// Cursor returns the column and row of the cursor.
func (c *Canvas) Cursor() (x, y int) { return c.x, c.y }

// Pen returns the state of the pen.
func (c *Canvas) Pen() Pen { return c.pen }

// Palette returns the palette used by Render.
func (c *Canvas) Palette() Palette { return c.palette }

// Marked reports whether the cell at column x of row y is marked. It panics if
// the position is out of range.
func (c *Canvas) Marked(x, y int) bool { return c.rows[y][x] }

// Err returns the first error the canvas ran into while growing, if any. Once
// set, it is never cleared.
func (c *Canvas) Err() error { return c.err }

// Mark marks the cell under the cursor.
func (c *Canvas) Mark() { c.rows[c.y][c.x] = true }

// Clean unmarks the cell under the cursor.
func (c *Canvas) Clean() { c.rows[c.y][c.x] = false }

// PenUp lifts the pen.
func (c *Canvas) PenUp() { c.pen = Up }

// PenDown puts the pen down, which also marks the cell under the cursor.
func (c *Canvas) PenDown() {
	c.pen = Down
	c.Mark()
}

// North moves the cursor up one row.
func (c *Canvas) North() { c.north(); c.update() }

// South moves the cursor down one row.
func (c *Canvas) South() { c.south(); c.update() }

// East moves the cursor right one column.
func (c *Canvas) East() { c.east(); c.update() }

// West moves the cursor left one column.
func (c *Canvas) West() { c.west(); c.update() }

// NorthEast moves the cursor up one row and right one column.
func (c *Canvas) NorthEast() { c.north(); c.east(); c.update() }

// NorthWest moves the cursor up one row and left one column.
func (c *Canvas) NorthWest() { c.north(); c.west(); c.update() }

// SouthEast moves the cursor down one row and right one column.
func (c *Canvas) SouthEast() { c.south(); c.east(); c.update() }

// SouthWest moves the cursor down one row and left one column.
func (c *Canvas) SouthWest() { c.south(); c.west(); c.update() }

// Render writes the canvas to w, one line per row.
func (c *Canvas) Render(w io.Writer) error {
	_, err := io.WriteString(w, c.String())
	return err
}

// String returns what Render would write.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow((c.width + 1) * len(c.rows))
	for y, row := range c.rows {
		for x, marked := range row {
			switch {
			case x == c.x && y == c.y:
				sb.WriteRune(c.palette.Cursor)
			case marked:
				sb.WriteRune(c.palette.Foreground)
			default:
				sb.WriteRune(c.palette.Background)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Marks the cell under the cursor if the pen is down.
func (c *Canvas) update() {
	if c.pen == Down {
		c.Mark()
	}
}

func (c *Canvas) north() {
	if c.y > 0 {
		c.y--
		return
	}
	if !c.canGrow() {
		return
	}
	c.rows = append(c.rows, nil)
	copy(c.rows[1:], c.rows)
	c.rows[0] = make([]bool, c.width)
}

func (c *Canvas) south() {
	if c.y < len(c.rows)-1 {
		c.y++
		return
	}
	if !c.canGrow() {
		return
	}
	c.rows = append(c.rows, make([]bool, c.width))
	c.y++
}

func (c *Canvas) east() {
	if c.x < c.width-1 {
		c.x++
		return
	}
	for _, row := range c.rows {
		copy(row, row[1:])
		row[c.width-1] = false
	}
}

func (c *Canvas) west() {
	if c.x > 0 {
		c.x--
		return
	}
	for _, row := range c.rows {
		copy(row[1:], row)
		row[0] = false
	}
}

func (c *Canvas) canGrow() bool {
	if c.maxRows > 0 && len(c.rows) >= c.maxRows {
		if c.err == nil {
			c.err = diag.NewExhaustionError(
				fmt.Sprintf("canvas cannot grow beyond %d rows", c.maxRows))
		}
		return false
	}
	return true
}
