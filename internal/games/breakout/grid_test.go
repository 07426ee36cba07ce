package breakout

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/levels"
)

func TestGridCellAtOutOfRange(t *testing.T) {
	grids := []*Grid{
		NewGrid(0, 0, 4, 3, 16, 8),
		NewGrid(-32, 40, 1, 1, 8, 8),
		NewGrid(0, 0, 0, 0, 16, 8),
	}

	for _, g := range grids {
		h := g.Height()
		for y := -2; y < h+2; y++ {
			for x := -2; x < g.Width+2; x++ {
				inside := x >= 0 && x < g.Width && y >= 0 && y < h
				if !inside && g.CellAt(x, y).Alive {
					t.Errorf("grid %dx%d: CellAt(%d, %d) should be empty", g.Width, h, x, y)
				}
				if inside && !g.CellAt(x, y).Alive {
					t.Errorf("grid %dx%d: CellAt(%d, %d) should be alive", g.Width, h, x, y)
				}
			}
		}
	}
}

func TestGridSetCellOutOfRange(t *testing.T) {
	g := NewGrid(0, 0, 2, 2, 16, 8)
	g.SetCell(Cell{}, 5, 0)
	g.SetCell(Cell{}, -1, 1)
	if g.AliveCount() != 4 {
		t.Errorf("out-of-range writes changed the grid: alive=%d", g.AliveCount())
	}
	if g.Dirty() {
		t.Error("ignored writes should not dirty the grid")
	}

	g.SetCell(Cell{}, 1, 1)
	if g.CellAt(1, 1).Alive || !g.Dirty() {
		t.Error("in-range write not applied")
	}
}

func TestGridWorldToCell(t *testing.T) {
	g := NewGrid(16, 8, 4, 4, 16, 8)

	tests := []struct {
		wx, wy int
		x, y   int
	}{
		{16, 8, 0, 0},
		{31, 15, 0, 0},
		{32, 16, 1, 1},
		{15, 7, -1, -1}, // Floor, not truncation
		{0, 0, -1, -1},
		{-1, -1, -2, -2},
	}

	for _, tt := range tests {
		x, y := g.WorldToCell(tt.wx, tt.wy)
		if x != tt.x || y != tt.y {
			t.Errorf("WorldToCell(%d, %d) = (%d, %d), expected (%d, %d)", tt.wx, tt.wy, x, y, tt.x, tt.y)
		}
	}
}

func TestGridRegion(t *testing.T) {
	g := NewGrid(0, 0, 3, 2, 16, 8)
	g.SetCell(Cell{}, 1, 0)

	refs := g.Region(2, 1, 0, 0) // Corners swapped
	var order []CellPos
	for _, r := range refs {
		order = append(order, r.CellPos)
	}
	want := []CellPos{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("Region order = %v, expected row-major %v", order, want)
	}
	if refs[1].Cell.Alive {
		t.Error("killed cell reported alive")
	}

	outside := g.Region(5, 5, 6, 5)
	if len(outside) != 2 || outside[0].Cell.Alive || outside[1].Cell.Alive {
		t.Errorf("outside region = %+v, expected two empty cells", outside)
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(10, 20, 4, 3, 16, 8)
	if got, want := g.Bounds(), core.NewRect(10, 20, 64, 24); got != want {
		t.Errorf("Bounds() = %+v, expected %+v", got, want)
	}
	if got, want := g.CellRect(2, 1), core.NewRect(42, 28, 16, 8); got != want {
		t.Errorf("CellRect(2, 1) = %+v, expected %+v", got, want)
	}
}

func TestGridTrimRemovesTopRow(t *testing.T) {
	g := NewGrid(0, 0, 4, 4, 16, 8)
	for x := range 4 {
		g.SetCell(Cell{}, x, 0)
	}

	g.Trim()

	if g.Height() != 3 || g.Width != 4 {
		t.Errorf("size = %dx%d, expected 4x3", g.Width, g.Height())
	}
	if g.Y != 8 || g.X != 0 {
		t.Errorf("origin = (%d, %d), expected (0, 8)", g.X, g.Y)
	}
	if g.Dirty() {
		t.Error("Trim should clear the dirty flag")
	}
}

func TestGridTrimAllSides(t *testing.T) {
	// 5x4 with a single alive cell at (2, 1) and one at (3, 2)
	g := NewGrid(0, 0, 5, 4, 10, 10)
	for i := range g.Cells {
		g.Cells[i] = Cell{}
	}
	g.Cells[2+1*5] = Cell{Alive: true, Effect: EffectMultiball}
	g.Cells[3+2*5] = Cell{Alive: true}

	g.Trim()

	if g.Width != 2 || g.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 2x2", g.Width, g.Height())
	}
	if g.X != 20 || g.Y != 10 {
		t.Errorf("origin = (%d, %d), expected (20, 10)", g.X, g.Y)
	}
	if c := g.CellAt(0, 0); !c.Alive || c.Effect != EffectMultiball {
		t.Errorf("cell (0, 0) = %+v, expected alive multiball", c)
	}
	if !g.CellAt(1, 1).Alive || g.CellAt(1, 0).Alive || g.CellAt(0, 1).Alive {
		t.Error("cells shifted incorrectly")
	}
}

func TestGridTrimNoop(t *testing.T) {
	g := NewGrid(0, 0, 3, 3, 16, 8)
	g.SetCell(Cell{}, 1, 1) // Hole in the middle does not trim
	before := g.Clone()

	g.Trim()

	if g.X != before.X || g.Y != before.Y || g.Width != before.Width || !reflect.DeepEqual(g.Cells, before.Cells) {
		t.Error("trim of a grid with full borders should be a no-op")
	}
}

func TestGridTrimEmpty(t *testing.T) {
	g := NewGrid(0, 0, 3, 2, 16, 8)
	for y := range 2 {
		for x := range 3 {
			g.SetCell(Cell{}, x, y)
		}
	}

	g.Trim()

	if len(g.Cells) != 0 || g.Width != 0 || g.Height() != 0 {
		t.Errorf("empty grid trimmed to %d cells, width %d", len(g.Cells), g.Width)
	}
}

func TestGridTileMask(t *testing.T) {
	g := NewGrid(0, 0, 3, 3, 16, 8)
	g.SetCell(Cell{}, 1, 0)

	if m := g.TileMask(1, 1); m != TileEast|TileSouth|TileWest {
		t.Errorf("TileMask(1, 1) = %04b", m)
	}
	if m := g.TileMask(0, 0); m != TileSouth {
		t.Errorf("TileMask(0, 0) = %04b, expected south only", m)
	}
}

func TestGridDescriptorRoundTrip(t *testing.T) {
	d := levels.Descriptor{X: 8, Y: 16, Width: 3, EnvironmentID: 2, Cells: []int{1, 0, 1, 0, 1, 1}}

	g := &Grid{CellW: 16, CellH: 8}
	if err := g.FillWithData(d); err != nil {
		t.Fatalf("FillWithData: %v", err)
	}
	if g.Height() != 2 || g.AliveCount() != 4 || g.CellAt(1, 0).Alive {
		t.Errorf("unexpected grid after fill: %+v", g)
	}
	if got := g.Descriptor(); !reflect.DeepEqual(got, d) {
		t.Errorf("Descriptor() = %+v, expected %+v", got, d)
	}

	if err := g.FillWithData(levels.Descriptor{Width: 2, Cells: []int{1}}); err == nil {
		t.Error("ragged descriptor should be rejected")
	}
}
