// Package breakout implements a brick breaker built on axis-separated,
// pixel-stepped collision against destructible brick grids.
package breakout

import (
	"sort"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/levels"
)

// ParseLevel creates a level from an ASCII map.
// Each distinct non-'.' character forms its own grid covering the
// bounding box of that character; cells of the box holding other
// characters are empty. Grids are ordered by character, and each grid's
// environment id is its index in that order.
//
// The map is placed at the configured grid origin, one character per cell.
func ParseLevel(name string, lines []string, cfg config.BreakoutGrid) levels.Level {
	type box struct{ x1, y1, x2, y2 int }
	boxes := make(map[byte]*box)
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			ch := line[x]
			if ch == '.' || ch == ' ' {
				continue
			}
			b, ok := boxes[ch]
			if !ok {
				boxes[ch] = &box{x, y, x, y}
				continue
			}
			b.x1, b.x2 = min(b.x1, x), max(b.x2, x)
			b.y2 = y
		}
	}

	keys := make([]byte, 0, len(boxes))
	for ch := range boxes {
		keys = append(keys, ch)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	l := levels.Level{Name: name, CellWidth: cfg.CellWidth, CellHeight: cfg.CellHeight}
	for env, ch := range keys {
		b := boxes[ch]
		width := b.x2 - b.x1 + 1
		d := levels.Descriptor{
			X:             cfg.OriginX + b.x1*cfg.CellWidth,
			Y:             cfg.OriginY + b.y1*cfg.CellHeight,
			Width:         width,
			EnvironmentID: env,
			Cells:         make([]int, 0, width*(b.y2-b.y1+1)),
		}
		for y := b.y1; y <= b.y2; y++ {
			for x := b.x1; x <= b.x2; x++ {
				v := 0
				if x < len(lines[y]) && lines[y][x] == ch {
					v = 1
				}
				d.Cells = append(d.Cells, v)
			}
		}
		l.Grids = append(l.Grids, d)
	}
	return l
}

// BuiltinLevels returns the built-in campaign for the configured grid.
func BuiltinLevels(cfg config.BreakoutConfig) []levels.Level {
	g := cfg.Grid
	return []levels.Level{
		ParseLevel("Classic", []string{
			"AAAAAAAAAA",
			"BBBBBBBBBB",
			"CCCCCCCCCC",
			"DDDDDDDDDD",
		}, g),

		ParseLevel("Pyramid", []string{
			"....AA....",
			"...AAAA...",
			"..AAAAAA..",
			".AAAAAAAA.",
			"AAAAAAAAAA",
		}, g),

		ParseLevel("Twin Towers", []string{
			"AAA....BBB",
			"AAA....BBB",
			"AAA....BBB",
			"AAA....BBB",
			"...CCCC...",
		}, g),

		ParseLevel("Checkerboard", []string{
			"A.A.A.A.A.",
			".A.A.A.A.A",
			"A.A.A.A.A.",
			".A.A.A.A.A",
		}, g),

		ParseLevel("Diamond", []string{
			"....AA....",
			"...BBBB...",
			"..CCCCCC..",
			"...BBBB...",
			"....AA....",
		}, g),

		ParseLevel("Fortress", []string{
			"AAAAAAAAAA",
			"A........A",
			"A.BBBBBB.A",
			"A.BBBBBB.A",
			"A........A",
			"AAAAAAAAAA",
		}, g),
	}
}
