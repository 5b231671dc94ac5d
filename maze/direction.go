package maze

//go:generate go tool stringer -type=Direction,Cell -output=direction_string.go

// Direction is one of the four grid-relative moves. Its numeric value is the
// index used for rotation, so the declaration order matters.
type Direction uint8

const (
	Top Direction = iota
	Left
	Bottom
	Right

	directionCount = 4
)

var (
	directions = [directionCount]Direction{Top, Left, Bottom, Right}

	directionDeltas = [directionCount]Coordinate{
		Top:    {X: 0, Y: -1},
		Left:   {X: -1, Y: 0},
		Bottom: {X: 0, Y: 1},
		Right:  {X: 1, Y: 0},
	}
)

// Directions returns the four directions in the fixed search order
// Top, Left, Bottom, Right.
func Directions() []Direction {
	return directions[:]
}

// Delta returns the unit coordinate offset of a single step in d.
func (d Direction) Delta() Coordinate {
	return directionDeltas[d%directionCount]
}

// Flag returns the single wall bit of d in the encoded layout.
func (d Direction) Flag() uint8 {
	return 1 << (d % directionCount)
}

// RotateLeft turns d by +90 degrees.
func (d Direction) RotateLeft() Direction {
	return (d + 1) % directionCount
}

// RotateRight turns d by -90 degrees.
func (d Direction) RotateRight() Direction {
	return (d + 3) % directionCount
}

// Opposite returns the side a neighbor in direction d sees facing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % directionCount
}
