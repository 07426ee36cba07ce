package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/levels"
)

// Effect is a behavior attached to an alive cell, triggered on destruction.
type Effect int

const (
	EffectNone      Effect = iota
	EffectMultiball        // Spawn extra balls at the cell
	EffectPowerUp          // Drop a falling power-up
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectMultiball:
		return "multiball"
	case EffectPowerUp:
		return "powerup"
	default:
		return "none"
	}
}

// Cell is one brick slot. The zero value is an empty cell.
type Cell struct {
	Alive  bool
	Effect Effect
}

// CellPos addresses a cell inside a grid.
type CellPos struct {
	X, Y int
}

// CellRef is a cell returned by a region query.
type CellRef struct {
	CellPos
	Cell Cell
}

// Grid is a block of brick cells anchored at a world position.
// Cells are stored row-major, Width cells per row.
type Grid struct {
	ID          int
	X, Y        int // World origin of cell (0, 0)
	Width       int // Columns
	CellW       int
	CellH       int
	Environment int // Tileset id carried through level files
	Cells       []Cell

	dirty bool
}

// NewGrid creates a grid of width x height alive cells.
func NewGrid(x, y, width, height, cellW, cellH int) *Grid {
	width = max(width, 0)
	height = max(height, 0)
	g := &Grid{X: x, Y: y, Width: width, CellW: cellW, CellH: cellH}
	g.Cells = make([]Cell, width*height)
	for i := range g.Cells {
		g.Cells[i].Alive = true
	}
	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	if g.Width <= 0 {
		return 0
	}
	return len(g.Cells) / g.Width
}

func (g *Grid) inRange(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height()
}

// CellAt returns the cell at (x, y). Out-of-range reads are empty.
func (g *Grid) CellAt(x, y int) Cell {
	if !g.inRange(x, y) {
		return Cell{}
	}
	return g.Cells[x+y*g.Width]
}

// SetCell overwrites the cell at (x, y). Out-of-range writes are ignored.
func (g *Grid) SetCell(c Cell, x, y int) {
	if !g.inRange(x, y) {
		return
	}
	g.Cells[x+y*g.Width] = c
	g.dirty = true
}

// Kill empties the cell if it is alive and reports whether it was.
func (g *Grid) Kill(x, y int) (Cell, bool) {
	c := g.CellAt(x, y)
	if !c.Alive {
		return c, false
	}
	g.SetCell(Cell{}, x, y)
	return c, true
}

// WorldToCell converts a world pixel to cell coordinates, flooring so
// that pixels left of or above the origin map to negative cells.
func (g *Grid) WorldToCell(wx, wy int) (int, int) {
	return core.FloorDiv(wx-g.X, g.CellW), core.FloorDiv(wy-g.Y, g.CellH)
}

// Region returns the cells of the inclusive rectangle (x1, y1)-(x2, y2) in
// row-major order. Corners may be given in any order; out-of-range
// positions are included and read as empty.
func (g *Grid) Region(x1, y1, x2, y2 int) []CellRef {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	refs := make([]CellRef, 0, (x2-x1+1)*(y2-y1+1))
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			refs = append(refs, CellRef{CellPos: CellPos{X: x, Y: y}, Cell: g.CellAt(x, y)})
		}
	}
	return refs
}

// Bounds returns the world rectangle covered by the grid.
func (g *Grid) Bounds() core.Rect {
	return core.NewRect(g.X, g.Y, g.Width*g.CellW, g.Height()*g.CellH)
}

// CellRect returns the world rectangle of one cell.
func (g *Grid) CellRect(x, y int) core.Rect {
	return core.NewRect(g.X+x*g.CellW, g.Y+y*g.CellH, g.CellW, g.CellH)
}

// AliveCount returns the number of alive cells.
func (g *Grid) AliveCount() int {
	n := 0
	for _, c := range g.Cells {
		if c.Alive {
			n++
		}
	}
	return n
}

// Dirty reports whether the grid changed since the last trim.
func (g *Grid) Dirty() bool {
	return g.dirty
}

// Tile mask bits, set when the neighbour on that side is alive.
const (
	TileNorth uint8 = 1 << iota
	TileEast
	TileSouth
	TileWest
)

// TileMask returns the 4-neighbour mask of alive cells around (x, y),
// used to pick auto-tiled glyphs.
func (g *Grid) TileMask(x, y int) uint8 {
	var m uint8
	if g.CellAt(x, y-1).Alive {
		m |= TileNorth
	}
	if g.CellAt(x+1, y).Alive {
		m |= TileEast
	}
	if g.CellAt(x, y+1).Alive {
		m |= TileSouth
	}
	if g.CellAt(x-1, y).Alive {
		m |= TileWest
	}
	return m
}

// FillWithData replaces position, shape and cells from a level descriptor.
// Effects are cleared.
func (g *Grid) FillWithData(d levels.Descriptor) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("breakout: fill grid: %w", err)
	}
	g.X = d.X
	g.Y = d.Y
	g.Width = d.Width
	g.Environment = d.EnvironmentID
	g.Cells = make([]Cell, len(d.Cells))
	for i, v := range d.Cells {
		g.Cells[i].Alive = v == 1
	}
	g.dirty = true
	return nil
}

// Descriptor serializes the grid in the 0/1 cell encoding.
func (g *Grid) Descriptor() levels.Descriptor {
	cells := make([]int, len(g.Cells))
	for i, c := range g.Cells {
		if c.Alive {
			cells[i] = 1
		}
	}
	return levels.Descriptor{
		X:             g.X,
		Y:             g.Y,
		Width:         g.Width,
		EnvironmentID: g.Environment,
		Cells:         cells,
	}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := *g
	c.Cells = make([]Cell, len(g.Cells))
	copy(c.Cells, g.Cells)
	return &c
}

// Trim strips fully empty border rows and columns: top, then bottom, then
// left, then right. The origin moves with the removed rows and columns.
// A grid without alive cells is trimmed to zero cells.
func (g *Grid) Trim() {
	g.dirty = false
	h := g.Height()

	top := 0
	for top < h && g.rowEmpty(top) {
		top++
	}
	if top == h {
		g.Y += top * g.CellH
		g.Width = 0
		g.Cells = nil
		return
	}
	bottom := h
	for bottom > top && g.rowEmpty(bottom-1) {
		bottom--
	}
	left := 0
	for left < g.Width && g.colEmpty(left, top, bottom) {
		left++
	}
	right := g.Width
	for right > left && g.colEmpty(right-1, top, bottom) {
		right--
	}

	if top == 0 && bottom == h && left == 0 && right == g.Width {
		return
	}

	width := right - left
	cells := make([]Cell, 0, width*(bottom-top))
	for y := top; y < bottom; y++ {
		row := y * g.Width
		cells = append(cells, g.Cells[row+left:row+right]...)
	}
	g.X += left * g.CellW
	g.Y += top * g.CellH
	g.Width = width
	g.Cells = cells
}

func (g *Grid) rowEmpty(y int) bool {
	for x := 0; x < g.Width; x++ {
		if g.Cells[x+y*g.Width].Alive {
			return false
		}
	}
	return true
}

func (g *Grid) colEmpty(x, top, bottom int) bool {
	for y := top; y < bottom; y++ {
		if g.Cells[x+y*g.Width].Alive {
			return false
		}
	}
	return true
}
