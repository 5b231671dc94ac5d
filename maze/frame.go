package maze

import "fmt"

// Frame is the mutable grid of cell states carved by a Generator.
type Frame struct {
	width  int
	height int
	grid   [][]Cell // grid[y][x]
	free   int
}

// NewFrame returns a width x height frame with every cell Blocked.
func NewFrame(width, height int) (*Frame, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	grid := make([][]Cell, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
	}

	return &Frame{
		width:  width,
		height: height,
		grid:   grid,
	}, nil
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the number of rows.
func (f *Frame) Height() int {
	return f.height
}

// InBounds reports whether c passes the carving bounds check.
func (f *Frame) InBounds(c Coordinate) bool {
	return carvable(c, f.width, f.height)
}

// At returns the state of the cell at c. The second value is false when c is
// outside the grid.
func (f *Frame) At(c Coordinate) (Cell, bool) {
	if !inGrid(c, f.width, f.height) {
		return Blocked, false
	}
	return f.grid[c.Y][c.X], true
}

// Set changes the state of the cell at c and reports whether c was inside
// the grid.
func (f *Frame) Set(c Coordinate, cell Cell) bool {
	if !inGrid(c, f.width, f.height) {
		return false
	}

	prev := f.grid[c.Y][c.X]
	if prev == Free {
		f.free--
	}
	if cell == Free {
		f.free++
	}
	f.grid[c.Y][c.X] = cell
	return true
}

// FreeCount returns the number of cells currently marked Free.
func (f *Frame) FreeCount() int {
	return f.free
}

// FillPercentage returns the fraction of cells marked Free, in [0, 1].
func (f *Frame) FillPercentage() float64 {
	return float64(f.free) / float64(f.width*f.height)
}

// freeNeighbors counts the neighbors of c that pass the bounds check and are
// already Free.
func (f *Frame) freeNeighbors(c Coordinate) int {
	count := 0
	for _, d := range directions {
		n := c.Step(d)
		if f.InBounds(n) && f.grid[n.Y][n.X] == Free {
			count++
		}
	}
	return count
}
