package maze

import "slices"

// Solution is the outcome of a search.
type Solution struct {
	Reached bool         // Reached is true when the exit was found.
	Visited []Coordinate // Visited lists every entered cell in the order it was entered.
	Path    []Coordinate // Path is the branch from start to exit, empty when unreached.
}

// SolveOption configures a single Solve call.
type SolveOption func(*solver)

// WithStepObserver registers fn to be called after each cell is entered, with
// the active branch and everything visited so far. fn must not retain or
// modify the slices.
func WithStepObserver(fn func(path, visited []Coordinate)) SolveOption {
	return func(s *solver) {
		s.onStep = fn
	}
}

type solver struct {
	maze   *Maze
	seen   map[Coordinate]struct{}
	stack  []branch
	result Solution
	onStep func(path, visited []Coordinate)
}

// branch is one level of the depth-first search: the cell, its own copy of
// the path leading to it, and the next direction to try.
type branch struct {
	at   Coordinate
	path []Coordinate
	next int
}

// Solve searches m depth-first from start, trying Top, Left, Bottom and Right
// in that order at every cell, and stops at the first cell marked Exit. A cell
// is entered at most once per run, so the search proves reachability rather
// than finding the shortest path.
func Solve(m *Maze, start Coordinate, opts ...SolveOption) Solution {
	s := &solver{
		maze: m,
		seen: make(map[Coordinate]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.enter(start, nil) {
		return s.result
	}

	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]
		if top.next == directionCount {
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}

		d := directions[top.next]
		top.next++

		tile := s.maze.grid[top.at.Y][top.at.X]
		if tile.Wall(d) {
			continue
		}
		if s.enter(top.at.Step(d), top.path) {
			return s.result
		}
	}

	return s.result
}

// enter visits c coming from a branch with the given path and reports whether
// c is the exit. Cells that were already seen or fail the bounds check are
// rejected without touching any state.
func (s *solver) enter(c Coordinate, parent []Coordinate) bool {
	if _, ok := s.seen[c]; ok || !s.maze.InBounds(c) {
		return false
	}

	s.seen[c] = struct{}{}
	s.result.Visited = append(s.result.Visited, c)
	path := append(slices.Clone(parent), c)

	if s.onStep != nil {
		s.onStep(path, s.result.Visited)
	}

	if s.maze.grid[c.Y][c.X].Exit {
		s.result.Reached = true
		s.result.Path = path
		return true
	}

	s.stack = append(s.stack, branch{at: c, path: path})
	return false
}
