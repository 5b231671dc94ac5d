// Package render draws encoded mazes and solver progress on a terminal.
package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/forkmaze/config"
	"github.com/beka-birhanu/forkmaze/maze"
	"golang.org/x/term"
)

// ANSI foreground and background color codes.
const (
	fgBlack  = 30
	fgRed    = 31
	fgYellow = 33
	fgWhite  = 37
	bgBlack  = 40
	bgGreen  = 42
	bgYellow = 43
	bgWhite  = 47
)

// cellWidth is the number of columns a single maze cell occupies.
const cellWidth = 3

type glyph struct {
	symbol byte
	fg, bg int
}

var (
	startGlyph   = glyph{symbol: 'S', fg: fgYellow, bg: bgWhite}
	exitGlyph    = glyph{symbol: 'E', fg: fgWhite, bg: bgGreen}
	pathGlyph    = glyph{symbol: 'X', fg: fgRed, bg: bgYellow}
	visitedGlyph = glyph{symbol: 'o', fg: fgYellow, bg: bgYellow}
	blockedGlyph = glyph{symbol: '#', fg: fgBlack, bg: bgBlack}
	freeGlyph    = glyph{symbol: ' ', fg: fgWhite, bg: bgWhite}
)

// Terminal writes one picture of the maze per Draw call.
type Terminal struct {
	out   io.Writer
	color bool
}

// NewTerminal returns a Terminal writing to out. With color unset only plain
// symbols are written.
func NewTerminal(out io.Writer, color bool) *Terminal {
	return &Terminal{
		out:   out,
		color: color,
	}
}

// ColorSupported reports whether f is attached to a terminal.
func ColorSupported(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Fits reports whether a maze of the given width fits on the terminal behind
// f. It returns true when the size cannot be determined.
func Fits(f *os.File, width int) bool {
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return true
	}
	return width*cellWidth <= cols
}

// Draw writes m with the cells of path and visited highlighted. Start and
// exit markers take precedence over path and visited cells.
func (t *Terminal) Draw(m *maze.Maze, path, visited []maze.Coordinate) error {
	onPath := make(map[maze.Coordinate]struct{}, len(path))
	for _, c := range path {
		onPath[c] = struct{}{}
	}
	seen := make(map[maze.Coordinate]struct{}, len(visited))
	for _, c := range visited {
		seen[c] = struct{}{}
	}

	w := bufio.NewWriter(t.out)
	fmt.Fprint(w, "\n\n\n")
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := maze.Coordinate{X: x, Y: y}
			tile, _ := m.Tile(c)
			t.writeGlyph(w, pick(tile, c, onPath, seen))
		}
		fmt.Fprint(w, "\n")
	}
	return w.Flush()
}

func pick(tile maze.Tile, c maze.Coordinate, onPath, seen map[maze.Coordinate]struct{}) glyph {
	if tile.Start {
		return startGlyph
	}
	if tile.Exit {
		return exitGlyph
	}
	if _, ok := onPath[c]; ok {
		return pathGlyph
	}
	if _, ok := seen[c]; ok {
		return visitedGlyph
	}
	if tile.Blocked {
		return blockedGlyph
	}
	return freeGlyph
}

func (t *Terminal) writeGlyph(w io.Writer, g glyph) {
	if !t.color {
		fmt.Fprintf(w, " %c ", g.symbol)
		return
	}
	fmt.Fprintf(w, "\033[%d;%dm %c %s", g.fg, g.bg, g.symbol, config.ColorReset)
}
