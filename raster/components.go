package raster

// neighborOffsets returns the (dx, dy) steps for the given connectivity.
func neighborOffsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Regions finds all contiguous regions of cells whose value is ≥ threshold,
// under the given connectivity. Each region is a slice of row-major cell
// indices in BFS order; regions are ordered by their first cell in
// row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// An invalid grid (see Validate) has no regions.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(threshold float32, conn Connectivity) [][]int {
	if g.Validate() != nil {
		return nil
	}
	seen := make([]bool, len(g.Values))
	offsets := neighborOffsets(conn)
	var regions [][]int

	for i0, v := range g.Values {
		if v < threshold || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !g.InBounds(vx, vy) {
					continue
				}
				vi := g.index(vx, vy)
				if seen[vi] || g.Values[vi] < threshold {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		regions = append(regions, queue)
	}

	return regions
}
