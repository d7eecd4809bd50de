package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/moodwheel/internal/db"
	"github.com/alexanderramin/moodwheel/internal/domain"
)

// SQLiteCheckInRepo implements CheckInRepo using a SQLite database.
type SQLiteCheckInRepo struct {
	db db.DBTX
}

// NewSQLiteCheckInRepo creates a new SQLiteCheckInRepo.
func NewSQLiteCheckInRepo(conn db.DBTX) *SQLiteCheckInRepo {
	return &SQLiteCheckInRepo{db: conn}
}

func (r *SQLiteCheckInRepo) Create(ctx context.Context, c *domain.CheckIn) error {
	query := `INSERT INTO checkins (id, core, middle, outer_label, advised, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Core,
		c.Middle,
		c.Outer,
		boolToInt(c.Advised),
		c.CompletedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting check-in: %w", err)
	}
	return nil
}

func (r *SQLiteCheckInRepo) GetByID(ctx context.Context, id string) (*domain.CheckIn, error) {
	query := `SELECT id, core, middle, outer_label, advised, completed_at
		FROM checkins WHERE id = ?`
	return r.scanCheckIn(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteCheckInRepo) ListRecent(ctx context.Context, limit int) ([]*domain.CheckIn, error) {
	query := `SELECT id, core, middle, outer_label, advised, completed_at
		FROM checkins ORDER BY completed_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent check-ins: %w", err)
	}
	defer rows.Close()

	var out []*domain.CheckIn
	for rows.Next() {
		c, err := r.scanCheckIn(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteCheckInRepo) CountByCore(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT core, COUNT(*) FROM checkins GROUP BY core`)
	if err != nil {
		return nil, fmt.Errorf("counting check-ins: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var core string
		var n int
		if err := rows.Scan(&core, &n); err != nil {
			return nil, fmt.Errorf("scanning check-in count: %w", err)
		}
		out[core] = n
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteCheckInRepo) scanCheckIn(row scanner) (*domain.CheckIn, error) {
	var c domain.CheckIn
	var advised int
	var completedAt string
	err := row.Scan(&c.ID, &c.Core, &c.Middle, &c.Outer, &advised, &completedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("check-in: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning check-in: %w", err)
	}
	c.Advised = intToBool(advised)
	c.CompletedAt, err = time.Parse(time.RFC3339, completedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing completed_at: %w", err)
	}
	return &c, nil
}
