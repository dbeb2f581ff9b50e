package waypoint

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var errNonFinite = errors.New("not a finite number")

// Read parses comma-delimited x,y records. Extra fields are ignored, blank
// lines are skipped. Any unparsable or non-finite number or short record
// aborts with a *RecordError; a source without records returns ErrEmptyDataset.
func Read(r io.Reader) ([]Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var points []Point
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &RecordError{Line: pe.Line, Field: -1, Value: pe.Err.Error(), Err: err}
			}
			return nil, fmt.Errorf("waypoint: read: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < 2 {
			return nil, &RecordError{Line: line, Field: -1, Value: strings.Join(rec, ",")}
		}

		var xy [2]float64
		for f := 0; f < 2; f++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[f]), 64)
			if err != nil {
				return nil, &RecordError{Line: line, Field: f, Value: rec[f], Err: err}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &RecordError{Line: line, Field: f, Value: rec[f], Err: errNonFinite}
			}
			xy[f] = v
		}
		points = append(points, Point{X: xy[0], Y: xy[1]})
	}
	if len(points) == 0 {
		return nil, ErrEmptyDataset
	}

	return points, nil
}

// Load reads a dataset file with Read.
func Load(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("waypoint: open dataset: %w", err)
	}
	defer f.Close()

	points, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return points, nil
}

// Write emits points as x,y records readable by Read.
func Write(w io.Writer, points []Point) error {
	cw := csv.NewWriter(w)
	for _, p := range points {
		rec := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("waypoint: write: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
