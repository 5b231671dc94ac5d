package maze

import (
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constSampler returns the same sample forever.
type constSampler float64

func (c constSampler) Float64() float64 {
	return float64(c)
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// frameRows draws f one row per string, '#' for Blocked and '.' otherwise.
func frameRows(f *Frame) []string {
	rows := make([]string, f.Height())
	for y := range rows {
		var sb strings.Builder
		for x := 0; x < f.Width(); x++ {
			cell, _ := f.At(Coordinate{X: x, Y: y})
			if cell == Blocked {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

func TestForkProbabilities(t *testing.T) {
	valid := []ForkProbabilities{{0, 0}, {1, 1}, {0.07, 0.05}}
	for _, p := range valid {
		assert.NoError(t, p.Validate())
	}

	invalid := []ForkProbabilities{{-0.1, 0}, {0, 1.5}, {math.NaN(), 0}, {0, math.Inf(1)}}
	for _, p := range invalid {
		assert.ErrorIs(t, p.Validate(), ErrInvalidForkProbability)
	}
}

func TestGenerateMaze(t *testing.T) {
	t.Run("rejects bad probabilities before carving", func(t *testing.T) {
		f, err := GenerateMaze(5, 5, Coordinate{X: 2, Y: 2}, ForkProbabilities{Left: 2}, constSampler(0.5))
		assert.ErrorIs(t, err, ErrInvalidForkProbability)
		assert.Nil(t, f)
	})

	t.Run("rejects nil sampler", func(t *testing.T) {
		_, err := GenerateMaze(5, 5, Coordinate{X: 2, Y: 2}, ForkProbabilities{}, nil)
		assert.ErrorIs(t, err, ErrNilSampler)
	})

	t.Run("rejects bad dimensions", func(t *testing.T) {
		_, err := GenerateMaze(0, 5, Coordinate{}, ForkProbabilities{}, constSampler(0.5))
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("rejects seed outside grid", func(t *testing.T) {
		_, err := GenerateMaze(5, 5, Coordinate{X: 5, Y: 2}, ForkProbabilities{}, constSampler(0.5))
		assert.True(t, errors.Is(err, ErrCoordinateOutOfRange))
	})

	t.Run("straight arms run to the edges", func(t *testing.T) {
		f, err := GenerateMaze(5, 5, Coordinate{X: 2, Y: 2}, ForkProbabilities{}, constSampler(0.99))
		require.NoError(t, err)

		want := []string{
			"#####",
			"##.##",
			"#....",
			"##.##",
			"##.##",
		}
		assert.Equal(t, want, frameRows(f), spew.Sdump(f))
		assert.Equal(t, 7, f.FreeCount())
	})

	t.Run("zero sample stops every arm at the seed", func(t *testing.T) {
		f, err := GenerateMaze(9, 9, Coordinate{X: 4, Y: 4}, ForkProbabilities{Left: 1, Right: 1}, constSampler(0))
		require.NoError(t, err)
		assert.Equal(t, 1, f.FreeCount())
	})

	t.Run("left forks branch one level only", func(t *testing.T) {
		f, err := GenerateMaze(5, 5, Coordinate{X: 2, Y: 2}, ForkProbabilities{Left: 1}, constSampler(0.5))
		require.NoError(t, err)

		want := []string{
			"#####",
			"#..#.",
			"#....",
			"#..##",
			"#..##",
		}
		assert.Equal(t, want, frameRows(f), spew.Sdump(f))
		assert.Equal(t, 11, f.FreeCount())
	})

	t.Run("row and column zero stay blocked", func(t *testing.T) {
		f, err := GenerateMaze(12, 10, Coordinate{X: 6, Y: 5}, ForkProbabilities{Left: 1, Right: 1}, newRand(3))
		require.NoError(t, err)
		for x := 0; x < f.Width(); x++ {
			cell, _ := f.At(Coordinate{X: x, Y: 0})
			assert.Equal(t, Blocked, cell)
		}
		for y := 0; y < f.Height(); y++ {
			cell, _ := f.At(Coordinate{X: 0, Y: y})
			assert.Equal(t, Blocked, cell)
		}
	})

	t.Run("same seed same frame", func(t *testing.T) {
		fork := ForkProbabilities{Left: 0.3, Right: 0.2}
		a, err := GenerateMaze(25, 25, Coordinate{X: 12, Y: 12}, fork, newRand(42))
		require.NoError(t, err)
		b, err := GenerateMaze(25, 25, Coordinate{X: 12, Y: 12}, fork, newRand(42))
		require.NoError(t, err)
		assert.Equal(t, frameRows(a), frameRows(b))
	})
}

func TestGeneratorTermination(t *testing.T) {
	forks := []ForkProbabilities{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.07, 0.05}, {0.5, 0.5}}
	sizes := [][2]int{{1, 1}, {2, 7}, {25, 25}, {120, 80}}

	for _, fork := range forks {
		for _, size := range sizes {
			w, h := size[0], size[1]
			var fills []float64
			g, err := NewGenerator(newRand(uint64(w*h)), fork, WithCarveObserver(func(f *Frame, _ Coordinate) {
				fills = append(fills, f.FillPercentage())
			}))
			require.NoError(t, err)

			f, err := g.Generate(w, h, Coordinate{X: w / 2, Y: h / 2})
			require.NoError(t, err)
			require.NotEmpty(t, fills)

			for i := 1; i < len(fills); i++ {
				require.GreaterOrEqual(t, fills[i], fills[i-1], "fill decreased for %v on %dx%d", fork, w, h)
			}
			assert.Equal(t, f.FillPercentage(), fills[len(fills)-1])
		}
	}
}

func TestGeneratedFrameIsConnected(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		start := Coordinate{X: 15, Y: 15}
		f, err := GenerateMaze(31, 31, start, ForkProbabilities{Left: 0.2, Right: 0.2}, newRand(seed))
		require.NoError(t, err)

		seen := map[Coordinate]bool{start: true}
		queue := []Coordinate{start}
		for len(queue) > 0 {
			c := queue[0]
			queue = queue[1:]
			for _, d := range Directions() {
				n := c.Step(d)
				if cell, ok := f.At(n); ok && cell == Free && !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
		assert.Equal(t, f.FreeCount(), len(seen), "seed %d", seed)
	}
}
