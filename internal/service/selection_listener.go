package service

import (
	"context"
	"time"

	"github.com/alexanderramin/moodwheel/internal/domain"
	"github.com/alexanderramin/moodwheel/internal/repository"
	"github.com/alexanderramin/moodwheel/internal/wheel"
)

// persistTimeout bounds a single best-effort selection write.
const persistTimeout = 2 * time.Second

// selectionListener mirrors controller notifications into the selection
// store. Writes are best-effort: failures are reported to the observer and
// never undo a choice.
type selectionListener struct {
	repo     repository.SelectionRepo
	observer UseCaseObserver
}

func keyForLevel(level wheel.Level) domain.SelectionKey {
	switch level {
	case wheel.Middle:
		return domain.KeyMiddle
	case wheel.Outer:
		return domain.KeyOuter
	default:
		return domain.KeyCore
	}
}

func (l *selectionListener) OnSelectionChanged(level wheel.Level, label string) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	var err error
	defer observe(ctx, l.observer, "persist-selection", time.Now(), &err, map[string]any{
		"level": level.String(),
		"label": label,
	})
	err = l.repo.Set(ctx, keyForLevel(level), label)
}

func (l *selectionListener) OnReset() {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	var err error
	defer observe(ctx, l.observer, "clear-selection", time.Now(), &err, nil)
	err = l.repo.Clear(ctx)
}
