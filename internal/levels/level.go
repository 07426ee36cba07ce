// Package levels reads and writes brick layouts as YAML or JSON files.
//
// A level is an ordered list of grid descriptors. Each descriptor anchors a
// block of cells at a world position; cells are stored row-major as 0 (empty)
// or 1 (alive), Width cells per row.
package levels

import (
	"errors"
	"fmt"
)

// Descriptor is the persisted form of one brick grid.
type Descriptor struct {
	X             int   `yaml:"x" json:"x"`
	Y             int   `yaml:"y" json:"y"`
	Width         int   `yaml:"width" json:"width"`
	EnvironmentID int   `yaml:"environment_id" json:"environment_id"`
	Cells         []int `yaml:"cells,flow" json:"cells"`
}

// Height returns the number of rows described.
func (d Descriptor) Height() int {
	if d.Width <= 0 {
		return 0
	}
	return len(d.Cells) / d.Width
}

// Validate checks that the cell array is a whole number of rows of 0/1 values.
func (d Descriptor) Validate() error {
	if d.Width < 0 {
		return fmt.Errorf("levels: negative width %d", d.Width)
	}
	if d.Width == 0 {
		if len(d.Cells) != 0 {
			return errors.New("levels: cells given for zero-width grid")
		}
		return nil
	}
	if len(d.Cells)%d.Width != 0 {
		return fmt.Errorf("levels: %d cells is not a multiple of width %d", len(d.Cells), d.Width)
	}
	for i, v := range d.Cells {
		if v != 0 && v != 1 {
			return fmt.Errorf("levels: cell %d has value %d, expected 0 or 1", i, v)
		}
	}
	return nil
}

// Level is a named set of grids sharing one cell size.
// Zero cell sizes mean "use the game's configured size".
type Level struct {
	Name       string       `yaml:"name" json:"name"`
	CellWidth  int          `yaml:"cell_width,omitempty" json:"cell_width,omitempty"`
	CellHeight int          `yaml:"cell_height,omitempty" json:"cell_height,omitempty"`
	Grids      []Descriptor `yaml:"grids" json:"grids"`
}

// Validate checks every grid of the level.
func (l Level) Validate() error {
	if l.CellWidth < 0 || l.CellHeight < 0 {
		return fmt.Errorf("levels: %q has negative cell size", l.Name)
	}
	for i, d := range l.Grids {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("levels: %q grid %d: %w", l.Name, i, err)
		}
	}
	return nil
}

// AliveCount returns the number of alive cells across all grids.
func (l Level) AliveCount() int {
	n := 0
	for _, d := range l.Grids {
		for _, v := range d.Cells {
			if v != 0 {
				n++
			}
		}
	}
	return n
}
