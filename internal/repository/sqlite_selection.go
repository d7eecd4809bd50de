package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/moodwheel/internal/db"
	"github.com/alexanderramin/moodwheel/internal/domain"
)

// SQLiteSelectionRepo implements SelectionRepo using a SQLite database.
type SQLiteSelectionRepo struct {
	db db.DBTX
}

// NewSQLiteSelectionRepo creates a new SQLiteSelectionRepo.
func NewSQLiteSelectionRepo(conn db.DBTX) *SQLiteSelectionRepo {
	return &SQLiteSelectionRepo{db: conn}
}

func (r *SQLiteSelectionRepo) Get(ctx context.Context, key domain.SelectionKey) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM selection_state WHERE key = ?`, string(key)).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("selection %s: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading selection %s: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteSelectionRepo) Set(ctx context.Context, key domain.SelectionKey, value string) error {
	query := `INSERT INTO selection_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, string(key), value, nowUTC()); err != nil {
		return fmt.Errorf("writing selection %s: %w", key, err)
	}
	return nil
}

func (r *SQLiteSelectionRepo) All(ctx context.Context) (map[domain.SelectionKey]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM selection_state`)
	if err != nil {
		return nil, fmt.Errorf("listing selection: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.SelectionKey]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scanning selection: %w", err)
		}
		out[domain.SelectionKey(k)] = v
	}
	return out, rows.Err()
}

func (r *SQLiteSelectionRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM selection_state`); err != nil {
		return fmt.Errorf("clearing selection: %w", err)
	}
	return nil
}
