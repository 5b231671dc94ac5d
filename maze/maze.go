/*
Package maze carves, encodes and solves grid mazes.

A Generator carves Free corridors into a Frame of cell states by walking straight
lines from a seed and occasionally forking to the side; the chance of stopping
grows with the square of the fraction of carved cells. Encode turns the carved
Frame into an immutable Maze of per-cell wall flags. Every side shared with a
Blocked cell is walled on both tiles, so walls are always symmetric. Solve runs a
depth-first search over the Maze from a start cell until it reaches the exit.

Row 0 and column 0 never pass the bounds check used for carving and solving.
*/
package maze

import (
	"fmt"
	"strings"
)

// Bit positions of the encoded tile layout. Walls use Direction.Flag.
const (
	blockedBit uint8 = 1 << 5
	startBit   uint8 = 1 << 6
	exitBit    uint8 = 1 << 7
)

// Tile is the encoded form of a single cell.
type Tile struct {
	TopWall    bool // TopWall is set when this cell or the one above is Blocked.
	LeftWall   bool // LeftWall is set when this cell or the one to the left is Blocked.
	BottomWall bool // BottomWall is set when this cell or the one below is Blocked.
	RightWall  bool // RightWall is set when this cell or the one to the right is Blocked.
	Blocked    bool // Blocked marks a cell that was never carved.
	Start      bool // Start marks the cell the search begins from.
	Exit       bool // Exit marks the cell the search looks for.
}

// Wall reports whether the side of t facing d is walled.
func (t Tile) Wall(d Direction) bool {
	switch d {
	case Top:
		return t.TopWall
	case Left:
		return t.LeftWall
	case Bottom:
		return t.BottomWall
	case Right:
		return t.RightWall
	default:
		return true
	}
}

func (t *Tile) setWall(d Direction) {
	switch d {
	case Top:
		t.TopWall = true
	case Left:
		t.LeftWall = true
	case Bottom:
		t.BottomWall = true
	case Right:
		t.RightWall = true
	}
}

// Bits packs t into the 8-bit layout: bits 0-3 are the Top, Left, Bottom and
// Right walls, bit 5 Blocked, bit 6 Start and bit 7 Exit.
func (t Tile) Bits() uint8 {
	var b uint8
	for _, d := range directions {
		if t.Wall(d) {
			b |= d.Flag()
		}
	}
	if t.Blocked {
		b |= blockedBit
	}
	if t.Start {
		b |= startBit
	}
	if t.Exit {
		b |= exitBit
	}
	return b
}

// Maze is the immutable encoded grid consumed by Solve.
type Maze struct {
	width  int
	height int
	grid   [][]Tile // grid[y][x]
}

// Encode derives a Maze from frame, marking start and exit. A Blocked cell is
// walled toward each in-grid neighbor and each neighbor is walled back toward
// it. Sides on the grid edge stay open.
func Encode(frame *Frame, start, exit Coordinate) (*Maze, error) {
	w, h := frame.Width(), frame.Height()
	if !inGrid(start, w, h) {
		return nil, fmt.Errorf("%w: start %s", ErrCoordinateOutOfRange, start)
	}
	if !inGrid(exit, w, h) {
		return nil, fmt.Errorf("%w: exit %s", ErrCoordinateOutOfRange, exit)
	}

	grid := make([][]Tile, h)
	for y := range grid {
		grid[y] = make([]Tile, w)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if frame.grid[y][x] != Blocked {
				continue
			}
			grid[y][x].Blocked = true

			pos := Coordinate{X: x, Y: y}
			for _, d := range directions {
				n := pos.Step(d)
				if !inGrid(n, w, h) {
					continue
				}
				grid[y][x].setWall(d)
				grid[n.Y][n.X].setWall(d.Opposite())
			}
		}
	}

	grid[start.Y][start.X].Start = true
	grid[exit.Y][exit.X].Exit = true

	return &Maze{
		width:  w,
		height: h,
		grid:   grid,
	}, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// InBounds reports whether c passes the bounds check used by Solve.
func (m *Maze) InBounds(c Coordinate) bool {
	return carvable(c, m.width, m.height)
}

// Tile returns the tile at c. The second value is false when c is outside
// the grid.
func (m *Maze) Tile(c Coordinate) (Tile, bool) {
	if !inGrid(c, m.width, m.height) {
		return Tile{}, false
	}
	return m.grid[c.Y][c.X], true
}

// String draws the maze with ASCII box characters. Blocked cells are filled
// with '#', and S and E mark the start and exit.
func (m *Maze) String() string {
	var sb strings.Builder

	// Top boundary
	sb.WriteString("+" + strings.Repeat("---+", m.width) + "\n")

	for y := 0; y < m.height; y++ {
		sb.WriteString("|")
		for x := 0; x < m.width; x++ {
			t := m.grid[y][x]
			switch {
			case t.Start:
				sb.WriteString(" S ")
			case t.Exit:
				sb.WriteString(" E ")
			case t.Blocked:
				sb.WriteString("###")
			default:
				sb.WriteString("   ")
			}

			if t.RightWall || x == m.width-1 {
				sb.WriteString("|")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")

		sb.WriteString("+")
		for x := 0; x < m.width; x++ {
			if m.grid[y][x].BottomWall || y == m.height-1 {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
