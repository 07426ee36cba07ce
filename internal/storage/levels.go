package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-breaker/internal/levels"
)

// ErrPackNotFound is returned when a named level pack does not exist.
var ErrPackNotFound = errors.New("storage: level pack not found")

// PackInfo describes a stored level pack.
type PackInfo struct {
	Name      string
	Levels    int
	CreatedAt time.Time
}

// SaveLevelPack stores levels under name, replacing any pack of that name.
// Cells are kept as strings of '0' and '1', row-major.
func (s *Store) SaveLevelPack(name string, ls []levels.Level) error {
	for _, l := range ls {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("storage: level %q: %w", l.Name, err)
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := deletePack(tx, name); err != nil {
		return fmt.Errorf("storage: cannot replace pack: %w", err)
	}
	res, err := tx.Exec("INSERT INTO level_packs (name) VALUES (?)", name)
	if err != nil {
		return fmt.Errorf("storage: cannot save pack: %w", err)
	}
	packID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for i, l := range ls {
		_, err := tx.Exec(
			"INSERT INTO pack_levels (pack_id, position, name, cell_width, cell_height) VALUES (?, ?, ?, ?, ?)",
			packID, i, l.Name, l.CellWidth, l.CellHeight,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save level %q: %w", l.Name, err)
		}
		for j, d := range l.Grids {
			_, err := tx.Exec(
				`INSERT INTO pack_grids (pack_id, level_pos, grid_pos, x, y, width, environment_id, cells)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				packID, i, j, d.X, d.Y, d.Width, d.EnvironmentID, encodeCells(d.Cells),
			)
			if err != nil {
				return fmt.Errorf("storage: cannot save grid %d of %q: %w", j, l.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit pack: %w", err)
	}
	return nil
}

// LoadLevelPack returns the levels of the named pack in their saved order.
func (s *Store) LoadLevelPack(name string) ([]levels.Level, error) {
	var packID int64
	err := s.db.QueryRow("SELECT id FROM level_packs WHERE name = ?", name).Scan(&packID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrPackNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query pack: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT name, cell_width, cell_height FROM pack_levels
		 WHERE pack_id = ? ORDER BY position`,
		packID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	var ls []levels.Level
	for rows.Next() {
		var l levels.Level
		if err := rows.Scan(&l.Name, &l.CellWidth, &l.CellHeight); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan level: %w", err)
		}
		ls = append(ls, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	grows, err := s.db.Query(
		`SELECT level_pos, x, y, width, environment_id, cells FROM pack_grids
		 WHERE pack_id = ? ORDER BY level_pos, grid_pos`,
		packID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query grids: %w", err)
	}
	defer grows.Close()

	for grows.Next() {
		var pos int
		var d levels.Descriptor
		var cells string
		if err := grows.Scan(&pos, &d.X, &d.Y, &d.Width, &d.EnvironmentID, &cells); err != nil {
			return nil, fmt.Errorf("storage: cannot scan grid: %w", err)
		}
		if pos < 0 || pos >= len(ls) {
			return nil, fmt.Errorf("storage: grid refers to missing level %d", pos)
		}
		if d.Cells, err = decodeCells(cells); err != nil {
			return nil, err
		}
		ls[pos].Grids = append(ls[pos].Grids, d)
	}
	if err := grows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return ls, nil
}

// LevelPacks lists stored packs by name.
func (s *Store) LevelPacks() ([]PackInfo, error) {
	rows, err := s.db.Query(
		`SELECT p.name, COUNT(l.position), p.created_at
		 FROM level_packs p LEFT JOIN pack_levels l ON l.pack_id = p.id
		 GROUP BY p.id
		 ORDER BY p.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query packs: %w", err)
	}
	defer rows.Close()

	var packs []PackInfo
	for rows.Next() {
		var p PackInfo
		var createdAt any
		if err := rows.Scan(&p.Name, &p.Levels, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan pack: %w", err)
		}
		p.CreatedAt = parseTime(createdAt)
		packs = append(packs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return packs, nil
}

// DeleteLevelPack removes a pack and its levels.
func (s *Store) DeleteLevelPack(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	n, err := deletePack(tx, name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete pack: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrPackNotFound, name)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// deletePack removes the named pack with its levels and grids, returning the
// number of packs removed.
func deletePack(tx *sql.Tx, name string) (int64, error) {
	const owned = "pack_id IN (SELECT id FROM level_packs WHERE name = ?)"
	if _, err := tx.Exec("DELETE FROM pack_grids WHERE "+owned, name); err != nil {
		return 0, err
	}
	if _, err := tx.Exec("DELETE FROM pack_levels WHERE "+owned, name); err != nil {
		return 0, err
	}
	res, err := tx.Exec("DELETE FROM level_packs WHERE name = ?", name)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func encodeCells(cells []int) string {
	var sb strings.Builder
	sb.Grow(len(cells))
	for _, c := range cells {
		if c != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func decodeCells(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	cells := make([]int, len(s))
	for i := range len(s) {
		switch s[i] {
		case '0':
		case '1':
			cells[i] = 1
		default:
			return nil, fmt.Errorf("storage: invalid cell %q at %d", s[i], i)
		}
	}
	return cells, nil
}
