package desk

// SpatialGrid is a fixed-resolution index over screen space used by the
// desktop to prune top-level hit-test candidates before an exact bounds
// check. It stores non-owning references; the control tree remains the
// source of truth and the grid can be fully rebuilt from a tree walk at
// any time (required after z-order changes, since per-cell priority is
// insertion order, not a stored z value).
type SpatialGrid struct {
	cells        [gridMaxCellsY][gridMaxCellsX]gridCell
	cellsX       int
	cellsY       int
	screenWidth  int
	screenHeight int
}

const (
	gridCellSize        = 64 // pixels per cell
	gridMaxCellsX       = 16 // up to 1024px wide
	gridMaxCellsY       = 12 // up to 768px tall
	gridMaxCellControls = 16
)

type gridCell struct {
	controls [gridMaxCellControls]*Control
	count    int
}

// Initialize sizes the grid for the given screen dimensions and clears
// it.
func (g *SpatialGrid) Initialize(screenWidth, screenHeight int) {
	g.screenWidth = screenWidth
	g.screenHeight = screenHeight
	g.cellsX = (screenWidth + gridCellSize - 1) / gridCellSize
	g.cellsY = (screenHeight + gridCellSize - 1) / gridCellSize
	if g.cellsX > gridMaxCellsX {
		g.cellsX = gridMaxCellsX
	}
	if g.cellsY > gridMaxCellsY {
		g.cellsY = gridMaxCellsY
	}
	g.Clear()
}

// Clear removes all controls from the grid.
func (g *SpatialGrid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			cell := &g.cells[y][x]
			for i := 0; i < cell.count; i++ {
				cell.controls[i] = nil
			}
			cell.count = 0
		}
	}
}

// cellIndex maps a screen point to cell coordinates, clamped to the
// active grid.
func (g *SpatialGrid) cellIndex(x, y int) (cx, cy int) {
	cx = x / gridCellSize
	cy = y / gridCellSize
	if cx < 0 {
		cx = 0
	}
	if cy < 0 {
		cy = 0
	}
	if cx >= g.cellsX {
		cx = g.cellsX - 1
	}
	if cy >= g.cellsY {
		cy = g.cellsY - 1
	}
	return cx, cy
}

// cellRange returns the inclusive cell range overlapped by bounds.
func (g *SpatialGrid) cellRange(bounds Rect) (minX, minY, maxX, maxY int) {
	minX, minY = g.cellIndex(bounds.X, bounds.Y)
	maxX, maxY = g.cellIndex(bounds.Right()-1, bounds.Bottom()-1)
	return minX, minY, maxX, maxY
}

// Insert adds control to every cell overlapped by bounds (screen
// coordinates), skipping cells that already contain it. A full cell
// silently drops the insertion: cells are a soft cache, not a
// correctness boundary, though under pathological density a dropped
// control falls back to the desktop's linear scan.
func (g *SpatialGrid) Insert(control *Control, bounds Rect) {
	if control == nil {
		return
	}
	minX, minY, maxX, maxY := g.cellRange(bounds)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			cell := &g.cells[y][x]
			if cell.count >= gridMaxCellControls {
				continue
			}
			found := false
			for i := 0; i < cell.count; i++ {
				if cell.controls[i] == control {
					found = true
					break
				}
			}
			if !found {
				cell.controls[cell.count] = control
				cell.count++
			}
		}
	}
}

// Remove deletes control from every cell, compacting each.
func (g *SpatialGrid) Remove(control *Control) {
	if control == nil {
		return
	}
	for y := 0; y < g.cellsY; y++ {
		for x := 0; x < g.cellsX; x++ {
			cell := &g.cells[y][x]
			for i := 0; i < cell.count; i++ {
				if cell.controls[i] == control {
					copy(cell.controls[i:cell.count-1], cell.controls[i+1:cell.count])
					cell.count--
					cell.controls[cell.count] = nil
					break
				}
			}
		}
	}
}

// HitTest returns the topmost control at the screen point, or nil. The
// grid is a coarse pre-filter: the single cell containing the point is
// scanned back-to-front (later insertion is higher z-order) and each
// candidate is confirmed with its exact HitTest.
func (g *SpatialGrid) HitTest(x, y int) *Control {
	if x < 0 || y < 0 || x >= g.screenWidth || y >= g.screenHeight {
		return nil
	}
	cx, cy := g.cellIndex(x, y)
	cell := &g.cells[cy][cx]
	for i := cell.count - 1; i >= 0; i-- {
		if c := cell.controls[i]; c != nil && c.HitTest(x, y) {
			return c
		}
	}
	return nil
}
