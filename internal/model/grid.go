package model

// Coord is a zero-based grid position.
type Coord struct {
	X, Y int
}

// Manhattan returns |x1-x2| + |y1-y2|.
func Manhattan(a, b Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Cell is one square of the board.
type Cell struct {
	X, Y        int
	Color       Color
	Probability float64
	Visited     bool
}

// Coord returns the cell position.
func (c Cell) Coord() Coord { return Coord{X: c.X, Y: c.Y} }

// Grid is a fixed W×H board stored row-major.
type Grid struct {
	width, height int
	cells         []Cell
}

// NewGrid allocates a white, zero-probability board. Callers validate dimensions.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height, cells: make([]Cell, width*height)}
	g.Clear()
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) Len() int    { return len(g.cells) }

// Contains reports whether p lies on the board.
func (g *Grid) Contains(p Coord) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns a pointer to the cell at p. p must be on the board.
func (g *Grid) At(p Coord) *Cell {
	return &g.cells[p.Y*g.width+p.X]
}

// Cells exposes the backing slice for in-place sweeps.
func (g *Grid) Cells() []Cell { return g.cells }

// Clear restores every cell to white, zero probability and unvisited.
func (g *Grid) Clear() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[y*g.width+x] = Cell{X: x, Y: y, Color: ColorWhite}
		}
	}
}

// Fill sets every cell's probability to p.
func (g *Grid) Fill(p float64) {
	for i := range g.cells {
		g.cells[i].Probability = p
	}
}

// Sum is the total probability mass on the board.
func (g *Grid) Sum() float64 {
	var sum float64
	for _, c := range g.cells {
		sum += c.Probability
	}
	return sum
}

// Snapshot returns a copy of the cells that callers may keep.
func (g *Grid) Snapshot() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// MostLikely returns the cell with the highest probability. The first one in
// row-major order wins ties.
func (g *Grid) MostLikely() Cell {
	best := g.cells[0]
	for _, c := range g.cells[1:] {
		if c.Probability > best.Probability {
			best = c
		}
	}
	return best
}
