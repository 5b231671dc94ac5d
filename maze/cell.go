package maze

import "fmt"

// Cell is the pre-encoding state of a single grid cell.
type Cell uint8

const (
	// Blocked cells have not been carved. It is the zero value so a fresh
	// frame starts fully blocked.
	Blocked Cell = iota
	Free
	Exit
	Start
)

// Coordinate is a position on the grid. X is the column and Y the row.
type Coordinate struct {
	X int
	Y int
}

// Add returns the component-wise sum of c and o.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// Step returns the neighbor of c in direction d.
func (c Coordinate) Step(d Direction) Coordinate {
	return c.Add(d.Delta())
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// inGrid reports whether c can be used as an index into a width x height grid.
func inGrid(c Coordinate, width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// carvable is the bounds check shared by generation and solving. Row 0 and
// column 0 are never eligible.
func carvable(c Coordinate, width, height int) bool {
	return c.X > 0 && c.Y > 0 && c.X < width && c.Y < height
}
