package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/beka-birhanu/forkmaze/maze"
	"github.com/joho/godotenv"
)

const (
	defaultSize      = 25
	defaultForkLeft  = 0.07
	defaultForkRight = 0.05
	defaultExitX     = 15
	defaultStepDelay = 250 * time.Millisecond
)

// Config holds the application's configuration values.
type Config struct {
	Width     int           // Number of grid columns
	Height    int           // Number of grid rows
	ForkLeft  float64       // Chance of forking +90 degrees at an eligible cell
	ForkRight float64       // Chance of forking -90 degrees at an eligible cell
	Seed      uint64        // Seed for the random source used while carving
	ExitX     int           // Column of the exit cell
	ExitY     int           // Row of the exit cell
	StepDelay time.Duration // Pause between replayed solver steps
	Animate   bool          // Replay every solver step instead of only the result
}

// Load reads the configuration from the environment, loading a .env file
// first if one is present. Unset variables fall back to defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	var p envParser
	c := Config{
		Width:     p.getInt("MAZE_WIDTH", defaultSize),
		Height:    p.getInt("MAZE_HEIGHT", defaultSize),
		ForkLeft:  p.getFloat("MAZE_FORK_LEFT", defaultForkLeft),
		ForkRight: p.getFloat("MAZE_FORK_RIGHT", defaultForkRight),
		Seed:      p.getUint64("MAZE_SEED", uint64(time.Now().UnixNano())),
		StepDelay: time.Duration(p.getInt("MAZE_STEP_DELAY_MS", int(defaultStepDelay/time.Millisecond))) * time.Millisecond,
		Animate:   p.getBool("MAZE_ANIMATE", false),
	}
	c.ExitX = p.getInt("MAZE_EXIT_X", min(defaultExitX, c.Width-1))
	c.ExitY = p.getInt("MAZE_EXIT_Y", c.Height-1)
	if p.err != nil {
		return Config{}, p.err
	}

	if c.Width < 1 || c.Height < 1 {
		return Config{}, fmt.Errorf("%w: %dx%d", maze.ErrInvalidDimension, c.Width, c.Height)
	}
	if err := c.Fork().Validate(); err != nil {
		return Config{}, err
	}
	if c.StepDelay < 0 {
		return Config{}, fmt.Errorf("environment variable MAZE_STEP_DELAY_MS must not be negative")
	}

	return c, nil
}

// Fork returns the configured fork probabilities.
func (c Config) Fork() maze.ForkProbabilities {
	return maze.ForkProbabilities{Left: c.ForkLeft, Right: c.ForkRight}
}

// Center returns the middle cell, used both as generation seed and start.
func (c Config) Center() maze.Coordinate {
	return maze.Coordinate{X: c.Width / 2, Y: c.Height / 2}
}

// Exit returns the configured exit cell.
func (c Config) Exit() maze.Coordinate {
	return maze.Coordinate{X: c.ExitX, Y: c.ExitY}
}

// envParser reads typed environment variables and keeps the first parse
// error so Load can report it once.
type envParser struct {
	err error
}

func (p *envParser) lookup(key string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	return os.LookupEnv(key)
}

func (p *envParser) fail(key, kind string, err error) {
	p.err = fmt.Errorf("environment variable %s must be %s: %w", key, kind, err)
}

func (p *envParser) getInt(key string, defaultValue int) int {
	raw, ok := p.lookup(key)
	if !ok {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, "an integer", err)
		return defaultValue
	}
	return v
}

func (p *envParser) getUint64(key string, defaultValue uint64) uint64 {
	raw, ok := p.lookup(key)
	if !ok {
		return defaultValue
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		p.fail(key, "an unsigned integer", err)
		return defaultValue
	}
	return v
}

func (p *envParser) getFloat(key string, defaultValue float64) float64 {
	raw, ok := p.lookup(key)
	if !ok {
		return defaultValue
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fail(key, "a number", err)
		return defaultValue
	}
	return v
}

func (p *envParser) getBool(key string, defaultValue bool) bool {
	raw, ok := p.lookup(key)
	if !ok {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, "a boolean", err)
		return defaultValue
	}
	return v
}
