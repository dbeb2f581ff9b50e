package waypoint_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/waypoint"
)

func TestRead_Valid(t *testing.T) {
	src := "0,0\n1.5, -2\n\n# comment\n3,4,ignored\n"
	pts, err := waypoint.Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []waypoint.Point{{X: 0, Y: 0}, {X: 1.5, Y: -2}, {X: 3, Y: 4}}, pts)
}

func TestRead_MalformedNumber(t *testing.T) {
	_, err := waypoint.Read(strings.NewReader("0,0\n1,abc\n"))
	require.ErrorIs(t, err, waypoint.ErrMalformedRecord)

	var re *waypoint.RecordError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 2, re.Line)
	assert.Equal(t, 1, re.Field)
	assert.Equal(t, "abc", re.Value)
	assert.Contains(t, err.Error(), "line 2 field 1")
}

func TestRead_NonFinite(t *testing.T) {
	for _, src := range []string{"0,0\nNaN,1\n", "0,0\n1,+Inf\n", "0,0\n-inf,2\n"} {
		_, err := waypoint.Read(strings.NewReader(src))
		require.ErrorIs(t, err, waypoint.ErrMalformedRecord, src)

		var re *waypoint.RecordError
		require.ErrorAs(t, err, &re, src)
		assert.Equal(t, 2, re.Line, src)
		assert.Contains(t, err.Error(), "not a finite number", src)
	}
}

func TestRead_ShortRecord(t *testing.T) {
	_, err := waypoint.Read(strings.NewReader("0,0\n7\n"))
	var re *waypoint.RecordError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 2, re.Line)
	assert.Equal(t, -1, re.Field)
}

func TestRead_Empty(t *testing.T) {
	_, err := waypoint.Read(strings.NewReader("\n\n"))
	require.ErrorIs(t, err, waypoint.ErrEmptyDataset)
}

func TestWriteLoad_RoundTrip(t *testing.T) {
	pts, err := waypoint.Generate(waypoint.GenerateOptions{Rows: 3, Cols: 4, Spacing: 1.25, Jitter: 0.2, Seed: 7})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, waypoint.Write(&buf, pts))

	path := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	got, err := waypoint.Load(path)
	require.NoError(t, err)
	assert.Equal(t, pts, got)

	_, err = waypoint.Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
