package repository

import (
	"context"

	"github.com/alexanderramin/moodwheel/internal/domain"
)

// SelectionRepo is a small key-value store for the in-progress selection.
type SelectionRepo interface {
	Get(ctx context.Context, key domain.SelectionKey) (string, error)
	Set(ctx context.Context, key domain.SelectionKey, value string) error
	All(ctx context.Context) (map[domain.SelectionKey]string, error)
	Clear(ctx context.Context) error
}

// PaletteRepo stores the display color assigned to each core label.
type PaletteRepo interface {
	List(ctx context.Context) ([]domain.Swatch, error)
	Create(ctx context.Context, s domain.Swatch) error
}

// CheckInRepo stores completed walks.
type CheckInRepo interface {
	Create(ctx context.Context, c *domain.CheckIn) error
	GetByID(ctx context.Context, id string) (*domain.CheckIn, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.CheckIn, error)
	CountByCore(ctx context.Context) (map[string]int, error)
}
