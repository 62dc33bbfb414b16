package grid

// ConnectedComponents finds all contiguous regions of walkable cells (floor
// or entity) under 4-connectivity. Components and the cells within them are
// emitted in deterministic row-major discovery order.
//
// Time:   O(H×W×4).
// Memory: O(H×W) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Coord {
	total := g.height * g.width
	seen := make([]bool, total)
	var comps [][]Coord

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || !g.cells[i0].Walkable() {
			continue
		}
		// BFS to collect the component rooted at i0.
		queue := []int{i0}
		seen[i0] = true
		var comp []Coord

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			uc := g.coordinate(u)
			comp = append(comp, uc)
			for _, d := range neighborOffsets4 {
				vc := Coord{Row: uc.Row + d.Row, Col: uc.Col + d.Col}
				if !g.InBounds(vc) || !g.cells[g.index(vc)].Walkable() {
					continue
				}
				vi := g.index(vc)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// Connected reports whether all walkable cells form at most one component.
// A grid with no walkable cells is vacuously connected.
//
// Complexity: O(H×W).
func (g *Grid) Connected() bool {
	return len(g.ConnectedComponents()) <= 1
}
