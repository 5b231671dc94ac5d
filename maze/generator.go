package maze

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidForkProbability = errors.New("fork probability must be within [0, 1]")
	ErrInvalidDimension       = errors.New("invalid maze dimensions")
	ErrCoordinateOutOfRange   = errors.New("coordinate is outside the grid")
	ErrNilSampler             = errors.New("random sampler is required")
)

// The seed arms pretend their parent was fully surrounded so the seed cell
// never forks.
const seedParentNeighbors = 4

// Sampler is a source of uniform samples in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Sampler interface {
	Float64() float64
}

// ForkProbabilities holds the chance of spawning a branch rotated +90 degrees
// (Left) and -90 degrees (Right) at each eligible cell.
type ForkProbabilities struct {
	Left  float64
	Right float64
}

// Validate returns ErrInvalidForkProbability unless both values lie in [0, 1].
func (p ForkProbabilities) Validate() error {
	for _, v := range [...]float64{p.Left, p.Right} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: got %v", ErrInvalidForkProbability, v)
		}
	}
	return nil
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithCarveObserver registers fn to be called every time a cell is marked Free.
func WithCarveObserver(fn func(*Frame, Coordinate)) GeneratorOption {
	return func(g *Generator) {
		g.onCarve = fn
	}
}

// Generator carves Free corridors into a Frame. It owns the random source for
// the whole run, so a seeded source reproduces the same frame.
type Generator struct {
	rng     Sampler
	fork    ForkProbabilities
	onCarve func(*Frame, Coordinate)
}

// NewGenerator validates the fork probabilities and returns a Generator that
// draws every sample from rng.
func NewGenerator(rng Sampler, fork ForkProbabilities, opts ...GeneratorOption) (*Generator, error) {
	if rng == nil {
		return nil, ErrNilSampler
	}
	if err := fork.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		rng:  rng,
		fork: fork,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// GenerateMaze builds a width x height frame and carves it from seed.
func GenerateMaze(width, height int, seed Coordinate, fork ForkProbabilities, rng Sampler) (*Frame, error) {
	g, err := NewGenerator(rng, fork)
	if err != nil {
		return nil, err
	}
	return g.Generate(width, height, seed)
}

// Generate creates an all-Blocked frame and issues one carve per direction
// from seed. Every arm shares the frame, so later arms see earlier corridors.
func (g *Generator) Generate(width, height int, seed Coordinate) (*Frame, error) {
	frame, err := NewFrame(width, height)
	if err != nil {
		return nil, err
	}
	if !inGrid(seed, width, height) {
		return nil, fmt.Errorf("%w: seed %s in %dx%d", ErrCoordinateOutOfRange, seed, width, height)
	}

	for _, d := range directions {
		g.Carve(frame, d, seed, false, seedParentNeighbors)
	}
	return frame, nil
}

// Carve marks pos Free and keeps extending in direction d until the fill rule
// or the bounds check stops it. Unless isForkBranch is set, a cell whose
// parent had fewer than two Free neighbors may spawn a branch to either side;
// branches are carved to completion before the parent continues and never
// fork themselves.
//
// The chance of stopping at each cell is fill^2, where fill is the fraction
// of Free cells in the frame. Every step also moves strictly along d, so an
// arm ends at the grid edge at the latest.
func (g *Generator) Carve(f *Frame, d Direction, pos Coordinate, isForkBranch bool, parentNeighbors int) {
	for {
		if !f.Set(pos, Free) {
			return
		}
		if g.onCarve != nil {
			g.onCarve(f, pos)
		}
		neighbors := f.freeNeighbors(pos)

		if !isForkBranch && parentNeighbors < 2 {
			if g.rng.Float64() < g.fork.Left {
				g.branch(f, d.RotateLeft(), pos, neighbors)
			}
			if g.rng.Float64() < g.fork.Right {
				g.branch(f, d.RotateRight(), pos, neighbors)
			}
		}

		fill := f.FillPercentage()
		if g.rng.Float64() < fill*fill {
			return
		}

		next := pos.Step(d)
		if !f.InBounds(next) {
			return
		}
		pos, parentNeighbors = next, neighbors
	}
}

func (g *Generator) branch(f *Frame, d Direction, from Coordinate, neighbors int) {
	next := from.Step(d)
	if f.InBounds(next) {
		g.Carve(f, d, next, true, neighbors)
	}
}
