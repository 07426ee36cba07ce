package breakout

import (
	"github.com/vovakirdan/tui-breaker/internal/core"
)

// GridSet owns the active grids of a level and manages their lifecycle:
// creation from world rectangles, trimming after hits, removal of emptied
// grids and level-clear detection.
type GridSet struct {
	CellW, CellH int // Lattice used by Create

	grids  []*Grid
	nextID int
}

// NewGridSet creates an empty set whose Create snaps to cellW x cellH.
func NewGridSet(cellW, cellH int) *GridSet {
	return &GridSet{CellW: max(cellW, 1), CellH: max(cellH, 1), nextID: 1}
}

// Grids returns the active grids in insertion order.
// The slice must not be modified.
func (s *GridSet) Grids() []*Grid {
	return s.grids
}

// Len returns the number of active grids.
func (s *GridSet) Len() int {
	return len(s.grids)
}

// Get returns the grid with the given ID.
func (s *GridSet) Get(id int) *Grid {
	for _, g := range s.grids {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// Add takes ownership of g and assigns it an ID.
func (s *GridSet) Add(g *Grid) *Grid {
	g.ID = s.nextID
	s.nextID++
	s.grids = append(s.grids, g)
	return g
}

// Create adds a fully alive grid covering r, snapped outward to the cell
// lattice (floor for the start, ceil for the end). A rectangle with no
// area creates nothing.
func (s *GridSet) Create(r core.Rect) (*Grid, bool) {
	if r.Empty() {
		return nil, false
	}
	x1 := core.FloorDiv(r.X, s.CellW)
	y1 := core.FloorDiv(r.Y, s.CellH)
	x2 := core.CeilDiv(r.Right(), s.CellW)
	y2 := core.CeilDiv(r.Bottom(), s.CellH)

	g := NewGrid(x1*s.CellW, y1*s.CellH, x2-x1, y2-y1, s.CellW, s.CellH)
	return s.Add(g), true
}

// AliveCount returns the alive cells across all grids.
func (s *GridSet) AliveCount() int {
	n := 0
	for _, g := range s.grids {
		n += g.AliveCount()
	}
	return n
}

// Clear drops every grid without notifications.
func (s *GridSet) Clear() {
	s.grids = nil
}

// Collect trims dirty grids and removes the ones left without alive cells.
// It returns GridDestroyed for each removal and LevelCleared when the set
// became empty during this call.
func (s *GridSet) Collect() []Notification {
	if len(s.grids) == 0 {
		return nil
	}

	var notes []Notification
	kept := s.grids[:0]
	for _, g := range s.grids {
		if g.Dirty() {
			g.Trim()
		}
		if g.AliveCount() == 0 {
			notes = append(notes, GridDestroyed{GridID: g.ID})
			continue
		}
		kept = append(kept, g)
	}
	for i := len(kept); i < len(s.grids); i++ {
		s.grids[i] = nil
	}
	s.grids = kept

	if len(s.grids) == 0 {
		notes = append(notes, LevelCleared{})
	}
	return notes
}
