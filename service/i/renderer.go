package i

import "github.com/beka-birhanu/forkmaze/maze"

// Renderer draws a maze together with the solver's progress over it.
type Renderer interface {
	// Draw renders m with the active path and every visited cell marked.
	Draw(m *maze.Maze, path, visited []maze.Coordinate) error
}
