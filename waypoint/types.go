package waypoint

import (
	"errors"
	"fmt"
	"math"
)

// DefaultThreshold is the adjacency radius of the evacuation dataset.
const DefaultThreshold = 1.3

// Sentinel errors for dataset loading and network construction.
var (
	// ErrEmptyDataset is returned when a source holds no records.
	ErrEmptyDataset = errors.New("waypoint: dataset is empty")

	// ErrMalformedRecord is wrapped by RecordError for unparsable records.
	ErrMalformedRecord = errors.New("waypoint: malformed record")

	// ErrBadThreshold is returned when the adjacency threshold is not positive.
	ErrBadThreshold = errors.New("waypoint: threshold must be positive")

	// ErrIndexOutOfRange is returned for a waypoint index outside the network.
	ErrIndexOutOfRange = errors.New("waypoint: index out of range")

	// ErrBadGrid is returned by Generate for invalid dimensions.
	ErrBadGrid = errors.New("waypoint: invalid grid options")
)

// Point is a waypoint coordinate.
type Point struct {
	X, Y float64
}

// String renders the point as "x, y".
func (p Point) String() string { return fmt.Sprintf("%g, %g", p.X, p.Y) }

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// RecordError reports the position of a record that could not be parsed.
type RecordError struct {
	Line  int    // 1-based line in the source
	Field int    // 0-based field index, -1 for the whole record
	Value string // offending text
	Err   error  // underlying parse error, may be nil
}

func (e *RecordError) Error() string {
	if e.Field < 0 {
		return fmt.Sprintf("%v: line %d: %s", ErrMalformedRecord, e.Line, e.Value)
	}
	if e.Err != nil {
		return fmt.Sprintf("%v: line %d field %d %q: %v", ErrMalformedRecord, e.Line, e.Field, e.Value, e.Err)
	}

	return fmt.Sprintf("%v: line %d field %d %q", ErrMalformedRecord, e.Line, e.Field, e.Value)
}

// Unwrap lets errors.Is match ErrMalformedRecord.
func (e *RecordError) Unwrap() error { return ErrMalformedRecord }

// Edge is an unordered adjacent pair, From < To.
type Edge struct {
	From, To int
}

// Option configures a Network.
type Option func(*Options)

// Options holds Network parameters.
type Options struct {
	// Threshold is the exclusive adjacency radius. Default DefaultThreshold.
	Threshold float64

	err error
}

// DefaultOptions returns Options with DefaultThreshold.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// WithThreshold sets the adjacency radius; two waypoints are adjacent when
// their distance is strictly below t.
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if !(t > 0) || math.IsInf(t, 0) {
			o.err = fmt.Errorf("%w: %g", ErrBadThreshold, t)
			return
		}
		o.Threshold = t
	}
}
