package report_test

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/pitcher"
	"github.com/katalvlaran/lvsearch/report"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/waypoint"
)

func TestSummarize_Found(t *testing.T) {
	p, err := pitcher.New()
	require.NoError(t, err)
	res, err := p.Solve(search.StrategyBreadth)
	require.NoError(t, err)

	s := report.Summarize("pitchers", search.StrategyBreadth, res, pitcher.State.String)
	_, err = uuid.Parse(s.RunID)
	require.NoError(t, err)
	assert.Equal(t, "found", s.Outcome)
	assert.Equal(t, 8, s.Actions)
	assert.Len(t, s.Path, 9)
	assert.Equal(t, "(0,0)", s.Path[0])
	assert.Equal(t, "(0,4)", s.Path[8])

	var buf bytes.Buffer
	require.NoError(t, report.WriteSummary(&buf, s))
	out := buf.String()
	assert.Contains(t, out, "strategy:")
	assert.Contains(t, out, "breadth")
	assert.Contains(t, out, "(0,0) → (3,0)")
	assert.Contains(t, out, "8.0000")
}

func TestSummarize_ExhaustedAndNil(t *testing.T) {
	p, err := pitcher.New(pitcher.WithTarget(6))
	require.NoError(t, err)
	res, err := p.Solve(search.StrategyDepth)
	require.NoError(t, err)

	s := report.Summarize[pitcher.State]("pitchers", search.StrategyDepth, res, nil)
	assert.Equal(t, "exhausted", s.Outcome)
	assert.Empty(t, s.Path)
	assert.Equal(t, 16, s.Expanded)

	none := report.Summarize[int]("grid", search.StrategyGreedy, nil, nil)
	assert.Equal(t, "error", none.Outcome)
	assert.NotEqual(t, s.RunID, none.RunID)

	none.Err = errors.New("boom")
	var buf bytes.Buffer
	require.NoError(t, report.WriteSummary(&buf, none))
	assert.Contains(t, buf.String(), "boom")
	assert.NotContains(t, buf.String(), "path:")
}

func TestWriteComparison(t *testing.T) {
	rows := []report.Summary{
		{Strategy: "greedy", Outcome: "found", Path: []string{"a", "b"}, Actions: 1, Cost: 1.5, Expanded: 2},
		{Strategy: "depth", Outcome: "exhausted", Expanded: 9},
	}
	var buf bytes.Buffer
	require.NoError(t, report.WriteComparison(&buf, rows))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "1.5000")
	assert.Contains(t, lines[2], "-")
}

func TestPlotPath(t *testing.T) {
	pts := []waypoint.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	var buf bytes.Buffer
	opts := report.DefaultPlotOptions()
	opts.Title = "greedy"
	require.NoError(t, report.PlotPath(&buf, pts, []waypoint.Point{pts[0], pts[2], pts[3]}, opts))

	svg := buf.String()
	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
	assert.Equal(t, 4, strings.Count(svg, "<circle"))
	assert.Equal(t, 1, strings.Count(svg, "<polyline"))
	assert.Contains(t, svg, `stroke="red"`)
	assert.Contains(t, svg, ">greedy</text>")

	require.ErrorIs(t, report.PlotPath(&buf, nil, nil, opts), report.ErrNoPoints)
}

func TestPlotNetwork(t *testing.T) {
	pts := []waypoint.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	nw, err := waypoint.NewNetwork(pts)
	require.NoError(t, err)

	opts := report.DefaultPlotOptions()
	opts.Grid = false
	var buf bytes.Buffer
	require.NoError(t, report.PlotNetwork(&buf, nw, opts))
	svg := buf.String()
	assert.Equal(t, len(nw.Edges()), strings.Count(svg, "<line"))
	assert.Equal(t, 4, strings.Count(svg, "<circle"))

	require.ErrorIs(t, report.PlotNetwork(&buf, nil, opts), report.ErrNoPoints)
}

func TestPlotPath_TitleIsEscaped(t *testing.T) {
	o := report.DefaultPlotOptions()
	o.Title = `a<b & "c"`
	pts := []waypoint.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}

	var buf bytes.Buffer
	require.NoError(t, report.PlotPath(&buf, pts, pts, o))
	assert.Contains(t, buf.String(), "a&lt;b &amp; &#34;c&#34;")

	dec := xml.NewDecoder(&buf)
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}
}
