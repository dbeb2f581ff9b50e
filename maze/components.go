package maze

// Components finds all contiguous regions of open cells under m.Conn.
// Each region lists its cells in BFS order from its top-left-most cell;
// regions are ordered by that first cell in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (m *Maze) Components() [][]Cell {
	seen := make([]bool, m.Width*m.Height)
	var comps [][]Cell

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			i0 := m.index(x, y)
			if !m.open[i0] || seen[i0] {
				continue
			}
			queue := []Cell{{x, y}}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				for _, v := range m.Neighbors(queue[qi]) {
					vi := m.index(v.X, v.Y)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, v)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Connected reports whether the goal lies in the start's region, so that a
// complete search is bound to find it.
func (m *Maze) Connected() bool {
	for _, comp := range m.Components() {
		has := [2]bool{}
		for _, c := range comp {
			has[0] = has[0] || c == m.start
			has[1] = has[1] || c == m.goal
		}
		if has[0] || has[1] {
			return has[0] && has[1]
		}
	}
	return false
}
