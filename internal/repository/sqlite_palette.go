package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/moodwheel/internal/db"
	"github.com/alexanderramin/moodwheel/internal/domain"
)

// SQLitePaletteRepo implements PaletteRepo using a SQLite database.
type SQLitePaletteRepo struct {
	db db.DBTX
}

// NewSQLitePaletteRepo creates a new SQLitePaletteRepo.
func NewSQLitePaletteRepo(conn db.DBTX) *SQLitePaletteRepo {
	return &SQLitePaletteRepo{db: conn}
}

func (r *SQLitePaletteRepo) List(ctx context.Context) ([]domain.Swatch, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT label, hex FROM palette ORDER BY label`)
	if err != nil {
		return nil, fmt.Errorf("listing palette: %w", err)
	}
	defer rows.Close()

	var out []domain.Swatch
	for rows.Next() {
		var s domain.Swatch
		if err := rows.Scan(&s.Label, &s.Hex); err != nil {
			return nil, fmt.Errorf("scanning swatch: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create stores a swatch. An existing color for the label is kept, so a
// label's color never changes once assigned.
func (r *SQLitePaletteRepo) Create(ctx context.Context, s domain.Swatch) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO palette (label, hex, created_at) VALUES (?, ?, ?)`,
		s.Label, s.Hex, nowUTC())
	if err != nil {
		return fmt.Errorf("inserting swatch %s: %w", s.Label, err)
	}
	return nil
}
