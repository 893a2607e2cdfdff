package maze

// mergeRegions relabels every cell of the region containing start with id
// to. Only cells carrying the stale id are touched, so the cost is the size
// of the merged region rather than the whole grid.
func (g *Grid) mergeRegions(start CellPosition, to int) {
	from := g.regions[start.Col][start.Row]
	if from == to {
		return
	}

	g.regions[start.Col][start.Row] = to
	queue := []CellPosition{start}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]

		for _, d := range directionOrder {
			nbr := cell.Step(d)
			if !g.InBound(nbr.Row, nbr.Col) || g.regions[nbr.Col][nbr.Row] != from {
				continue
			}
			g.regions[nbr.Col][nbr.Row] = to
			queue = append(queue, nbr)
		}
	}
}

// sides returns the two cells separated by an interior wall.
func (w WallRef) sides() (CellPosition, CellPosition) {
	if w.Orientation == Vertical {
		return CellPosition{Row: w.Row, Col: w.Col - 1}, CellPosition{Row: w.Row, Col: w.Col}
	}
	return CellPosition{Row: w.Row - 1, Col: w.Col}, CellPosition{Row: w.Row, Col: w.Col}
}

// sameRegion reports whether both sides of an interior wall already belong to
// one region.
func (g *Grid) sameRegion(w WallRef) bool {
	a, b := w.sides()
	return g.regions[a.Col][a.Row] == g.regions[b.Col][b.Row]
}
