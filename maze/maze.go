package maze

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// Maze is an immutable rectangular grid of walls and open cells with one
// start and one goal.
type Maze struct {
	Width, Height int
	Conn          Connectivity

	open    []bool // row-major
	start   Cell
	goal    Cell
	offsets [][2]int
}

// New builds a Maze from text rows. Every row must have the same length.
// Complexity: O(W×H) time and memory.
func New(rows []string, opts ...Option) (*Maze, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	m := &Maze{Width: w, Height: h, Conn: o.Conn, open: make([]bool, w*h)}
	starts, goals := 0, 0
	for y, row := range rows {
		for x := 0; x < w; x++ {
			switch row[x] {
			case Wall:
				continue
			case Open:
			case Start:
				m.start = Cell{x, y}
				starts++
			case Goal:
				m.goal = Cell{x, y}
				goals++
			default:
				return nil, fmt.Errorf("%w: %q at %d:%d", ErrBadCell, row[x], x, y)
			}
			m.open[m.index(x, y)] = true
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrNoStart, starts)
	}
	if goals != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrNoGoal, goals)
	}

	if o.Conn == Conn8 {
		m.offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		m.offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return m, nil
}

// Parse reads one row per line. Blank lines are ignored.
func Parse(r io.Reader, opts ...Option) (*Maze, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}

	return New(rows, opts...)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsOpen reports whether c is inside the grid and not a wall.
func (m *Maze) IsOpen(c Cell) bool {
	return m.InBounds(c.X, c.Y) && m.open[m.index(c.X, c.Y)]
}

// Start returns the 'S' cell.
func (m *Maze) Start() Cell { return m.start }

// Goal returns the 'G' cell.
func (m *Maze) Goal() Cell { return m.goal }

// index maps (x,y) to a row-major index: y*Width + x.
func (m *Maze) index(x, y int) int {
	return y*m.Width + x
}

// step reports whether a move by d from c is legal and what it costs.
func (m *Maze) step(c Cell, d [2]int) (Cell, float64, bool) {
	next := Cell{c.X + d[0], c.Y + d[1]}
	if !m.IsOpen(next) {
		return next, 0, false
	}
	if d[0] == 0 || d[1] == 0 {
		return next, 1, true
	}
	// no corner cutting
	if !m.IsOpen(Cell{c.X + d[0], c.Y}) || !m.IsOpen(Cell{c.X, c.Y + d[1]}) {
		return next, 0, false
	}
	return next, math.Sqrt2, true
}

// Neighbors lists the cells reachable from c in one move, clockwise from north.
func (m *Maze) Neighbors(c Cell) []Cell {
	var out []Cell
	for _, d := range m.offsets {
		if next, _, ok := m.step(c, d); ok {
			out = append(out, next)
		}
	}
	return out
}

// Expand returns the unvisited neighbors of n, clockwise from north.
func (m *Maze) Expand(n *search.Node[Cell], visited search.Visited[Cell]) []*search.Node[Cell] {
	var out []*search.Node[Cell]
	for _, d := range m.offsets {
		next, cost, ok := m.step(n.State, d)
		if !ok || visited.Contains(next) {
			continue
		}
		out = append(out, n.Extend(next, cost))
	}
	return out
}

// IsGoal reports whether c is the goal cell.
func (m *Maze) IsGoal(c Cell) bool { return c == m.goal }

// Heuristic is the Manhattan distance to the goal under Conn4 and the
// octile distance under Conn8. Both never overestimate.
func (m *Maze) Heuristic(c Cell) float64 {
	dx := math.Abs(float64(c.X - m.goal.X))
	dy := math.Abs(float64(c.Y - m.goal.Y))
	if m.Conn == Conn4 {
		return dx + dy
	}
	return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
}

// Solve searches from the start to the goal with the named strategy.
func (m *Maze) Solve(strategy search.Strategy, opts ...search.Option) (*search.Result[Cell], error) {
	priority, err := search.PriorityFor[Cell](strategy, m.Heuristic)
	if err != nil {
		return nil, err
	}

	return search.Search(m.start, m.IsGoal, m.Expand, priority, opts...)
}

// Render draws the maze with path cells other than start and goal marked
// by '*'.
func (m *Maze) Render(path []Cell) string {
	grid := make([][]byte, m.Height)
	for y := range grid {
		grid[y] = make([]byte, m.Width)
		for x := range grid[y] {
			grid[y][x] = Wall
			if m.open[m.index(x, y)] {
				grid[y][x] = Open
			}
		}
	}
	for _, c := range path {
		if m.InBounds(c.X, c.Y) {
			grid[c.Y][c.X] = Route
		}
	}
	grid[m.start.Y][m.start.X] = Start
	grid[m.goal.Y][m.goal.X] = Goal

	var b strings.Builder
	for _, row := range grid {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
