package report

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"math"

	"github.com/katalvlaran/lvsearch/waypoint"
)

// ErrNoPoints is returned when there is nothing to plot.
var ErrNoPoints = errors.New("report: no points to plot")

// PlotOptions controls SVG output.
type PlotOptions struct {
	Width, Height float64 // canvas size in px
	Margin        float64 // padding around the data in px
	PointRadius   float64
	PointColor    string
	PathColor     string
	EdgeColor     string
	Background    string
	Grid          bool
	Title         string
}

// DefaultPlotOptions mirrors the classic matplotlib look: green points, red
// route, light grid.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Width:       640,
		Height:      640,
		Margin:      32,
		PointRadius: 4,
		PointColor:  "limegreen",
		PathColor:   "red",
		EdgeColor:   "#4285F4",
		Background:  "#ffffff",
		Grid:        true,
	}
}

// frame maps data coordinates onto the canvas with equal x/y scale and the
// y axis pointing up.
type frame struct {
	minX, minY, scale float64
	offX, offY        float64
	height            float64
}

func newFrame(points []waypoint.Point, o PlotOptions) frame {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	innerW, innerH := o.Width-2*o.Margin, o.Height-2*o.Margin
	scale := math.Min(innerW/spanX, innerH/spanY)

	return frame{
		minX:   minX,
		minY:   minY,
		scale:  scale,
		offX:   o.Margin + (innerW-spanX*scale)/2,
		offY:   o.Margin + (innerH-spanY*scale)/2,
		height: o.Height,
	}
}

func (f frame) xy(p waypoint.Point) (float64, float64) {
	return f.offX + (p.X-f.minX)*f.scale, f.height - (f.offY + (p.Y-f.minY)*f.scale)
}

func header(buf *bytes.Buffer, o PlotOptions) {
	fmt.Fprintf(buf, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg width="%g" height="%g" viewBox="0 0 %g %g" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
`, o.Width, o.Height, o.Width, o.Height, o.Background)
	if o.Title != "" {
		fmt.Fprintf(buf, `<text x="%g" y="%g" font-family="sans-serif" font-size="12" fill="#333333">%s</text>
`, o.Margin, o.Margin/2+4, html.EscapeString(o.Title))
	}
}

func grid(buf *bytes.Buffer, f frame, points []waypoint.Point, o PlotOptions) {
	if !o.Grid {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	for x := math.Floor(minX); x <= math.Ceil(maxX); x++ {
		x1, y1 := f.xy(waypoint.Point{X: x, Y: minY})
		x2, y2 := f.xy(waypoint.Point{X: x, Y: maxY})
		fmt.Fprintf(buf, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="#e0e0e0" stroke-width="0.5"/>
`, x1, y1, x2, y2)
	}
	for y := math.Floor(minY); y <= math.Ceil(maxY); y++ {
		x1, y1 := f.xy(waypoint.Point{X: minX, Y: y})
		x2, y2 := f.xy(waypoint.Point{X: maxX, Y: y})
		fmt.Fprintf(buf, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="#e0e0e0" stroke-width="0.5"/>
`, x1, y1, x2, y2)
	}
}

func circles(buf *bytes.Buffer, f frame, points []waypoint.Point, o PlotOptions) {
	for _, p := range points {
		x, y := f.xy(p)
		fmt.Fprintf(buf, `<circle cx="%g" cy="%g" r="%g" fill="%s"/>
`, x, y, o.PointRadius, o.PointColor)
	}
}

// PlotPath writes an SVG scatter of every candidate point with the route
// drawn on top as a polyline.
func PlotPath(w io.Writer, points, path []waypoint.Point, o PlotOptions) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	f := newFrame(points, o)

	var buf bytes.Buffer
	header(&buf, o)
	grid(&buf, f, points, o)
	circles(&buf, f, points, o)
	if len(path) > 0 {
		buf.WriteString(`<polyline fill="none" stroke="` + o.PathColor + `" stroke-width="2" points="`)
		for i, p := range path {
			x, y := f.xy(p)
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "%g,%g", x, y)
		}
		buf.WriteString("\"/>\n")
	}
	buf.WriteString("</svg>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// PlotNetwork writes an SVG of every adjacency in the network.
func PlotNetwork(w io.Writer, nw *waypoint.Network, o PlotOptions) error {
	if nw == nil || nw.Len() == 0 {
		return ErrNoPoints
	}
	points := nw.Points()
	f := newFrame(points, o)

	var buf bytes.Buffer
	header(&buf, o)
	grid(&buf, f, points, o)
	for _, e := range nw.Edges() {
		x1, y1 := f.xy(points[e.From])
		x2, y2 := f.xy(points[e.To])
		fmt.Fprintf(&buf, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="1"/>
`, x1, y1, x2, y2, o.EdgeColor)
	}
	circles(&buf, f, points, o)
	buf.WriteString("</svg>\n")

	_, err := w.Write(buf.Bytes())
	return err
}
