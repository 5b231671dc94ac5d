package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/beka-birhanu/forkmaze/config"
	"github.com/beka-birhanu/forkmaze/maze"
	"github.com/beka-birhanu/forkmaze/service/i"
	"github.com/google/uuid"
)

// MazeRunner carves a maze, encodes it, solves it and hands the outcome to a
// renderer.
type MazeRunner struct {
	width     int
	height    int
	fork      maze.ForkProbabilities
	seed      uint64
	exit      maze.Coordinate
	animate   bool
	stepDelay time.Duration
	renderer  i.Renderer
	logger    *log.Logger
}

// Config holds the settings of a MazeRunner. Renderer and Logger are optional.
type Config struct {
	Width     int
	Height    int
	Fork      maze.ForkProbabilities
	Seed      uint64
	Exit      maze.Coordinate
	Animate   bool
	StepDelay time.Duration
	Renderer  i.Renderer
	Logger    *log.Logger
}

// Result is the outcome of one run.
type Result struct {
	ID       uuid.UUID
	Seed     uint64
	Start    maze.Coordinate
	Exit     maze.Coordinate
	Fill     float64
	Maze     *maze.Maze
	Solution maze.Solution
}

// step is one solver snapshot kept for replay. The visited cells are a
// prefix of the final Solution.Visited.
type step struct {
	path    []maze.Coordinate
	visited int
}

// NewMazeRunner checks c and returns a runner for it.
func NewMazeRunner(c *Config) (*MazeRunner, error) {
	if c.Width < 1 || c.Height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", maze.ErrInvalidDimension, c.Width, c.Height)
	}
	if err := c.Fork.Validate(); err != nil {
		return nil, err
	}

	logger := c.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &MazeRunner{
		width:     c.Width,
		height:    c.Height,
		fork:      c.Fork,
		seed:      c.Seed,
		exit:      c.Exit,
		animate:   c.Animate,
		stepDelay: c.StepDelay,
		renderer:  c.Renderer,
		logger:    logger,
	}, nil
}

// Run performs one generate, encode and solve cycle. The start cell is the
// grid center, which is also the carving seed. ctx only bounds the replay of
// solver steps; the algorithmic part always runs to completion.
func (r *MazeRunner) Run(ctx context.Context) (*Result, error) {
	id := uuid.New()
	start := maze.Coordinate{X: r.width / 2, Y: r.height / 2}
	r.logger.Printf("%s[INFO]%s run %s: carving %dx%d maze with seed %d", config.LogInfoColor, config.LogColorReset, id, r.width, r.height, r.seed)

	rng := rand.New(rand.NewPCG(r.seed, r.seed))
	frame, err := maze.GenerateMaze(r.width, r.height, start, r.fork, rng)
	if err != nil {
		r.logger.Printf("%s[ERROR]%s run %s: generating maze: %s", config.LogErrorColor, config.LogColorReset, id, err)
		return nil, err
	}
	fill := frame.FillPercentage()

	frame.Set(start, maze.Start)
	frame.Set(r.exit, maze.Exit)

	m, err := maze.Encode(frame, start, r.exit)
	if err != nil {
		r.logger.Printf("%s[ERROR]%s run %s: encoding maze: %s", config.LogErrorColor, config.LogColorReset, id, err)
		return nil, err
	}

	var steps []step
	var opts []maze.SolveOption
	if r.animate && r.renderer != nil {
		opts = append(opts, maze.WithStepObserver(func(path, visited []maze.Coordinate) {
			steps = append(steps, step{path: slices.Clone(path), visited: len(visited)})
		}))
	}
	solution := maze.Solve(m, start, opts...)

	result := &Result{
		ID:       id,
		Seed:     r.seed,
		Start:    start,
		Exit:     r.exit,
		Fill:     fill,
		Maze:     m,
		Solution: solution,
	}
	r.logger.Printf("%s[INFO]%s run %s: fill %.2f, reached %v after %d cells, path length %d", config.LogInfoColor, config.LogColorReset, id, fill, solution.Reached, len(solution.Visited), len(solution.Path))

	if r.renderer == nil {
		return result, nil
	}

	if err := r.replay(ctx, m, steps, solution.Visited); err != nil {
		r.logger.Printf("%s[WARN]%s run %s: replay stopped: %s", config.LogWarnColor, config.LogColorReset, id, err)
		return result, err
	}

	if err := r.renderer.Draw(m, solution.Path, solution.Visited); err != nil {
		r.logger.Printf("%s[ERROR]%s run %s: drawing result: %s", config.LogErrorColor, config.LogColorReset, id, err)
		return result, err
	}
	return result, nil
}

func (r *MazeRunner) replay(ctx context.Context, m *maze.Maze, steps []step, visited []maze.Coordinate) error {
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.renderer.Draw(m, s.path, visited[:s.visited]); err != nil {
			return err
		}
		if r.stepDelay <= 0 {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.stepDelay):
		}
	}
	return nil
}
