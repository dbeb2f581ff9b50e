package waypoint

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenerateOptions describes a synthetic waypoint lattice.
type GenerateOptions struct {
	Rows, Cols int     // lattice size, both ≥ 1
	Spacing    float64 // distance between lattice neighbors, > 0
	Jitter     float64 // maximum displacement per axis, ≥ 0
	NoiseScale float64 // simplex sampling frequency; 0 means 0.35
	Seed       int64
}

// DefaultGenerateOptions returns a 10×10 unit lattice with mild jitter.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{Rows: 10, Cols: 10, Spacing: 1, Jitter: 0.25, NoiseScale: 0.35, Seed: 1}
}

// Generate lays out Rows×Cols waypoints row by row and displaces each one
// by simplex noise. The first and last waypoints stay on the lattice so the
// conventional start and goal are stable. Identical options produce
// identical datasets.
func Generate(opts GenerateOptions) ([]Point, error) {
	if opts.Rows < 1 || opts.Cols < 1 || !(opts.Spacing > 0) || opts.Jitter < 0 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d spacing=%g jitter=%g",
			ErrBadGrid, opts.Rows, opts.Cols, opts.Spacing, opts.Jitter)
	}
	scale := opts.NoiseScale
	if scale == 0 {
		scale = 0.35
	}

	noise := opensimplex.New(opts.Seed)
	n := opts.Rows * opts.Cols
	points := make([]Point, 0, n)
	for r := 0; r < opts.Rows; r++ {
		for c := 0; c < opts.Cols; c++ {
			x, y := float64(c)*opts.Spacing, float64(r)*opts.Spacing
			k := len(points)
			if k != 0 && k != n-1 && opts.Jitter > 0 {
				fx, fy := float64(c)*scale, float64(r)*scale
				x += opts.Jitter * unit(noise.Eval2(fx, fy))
				y += opts.Jitter * unit(noise.Eval2(fx+100, fy+100))
			}
			points = append(points, Point{X: x, Y: y})
		}
	}

	return points, nil
}

// unit clamps a noise sample to [-1, 1].
func unit(v float64) float64 {
	return max(-1, min(1, v))
}
