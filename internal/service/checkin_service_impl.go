package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/moodwheel/internal/db"
	"github.com/alexanderramin/moodwheel/internal/domain"
	"github.com/alexanderramin/moodwheel/internal/repository"
	"github.com/alexanderramin/moodwheel/internal/wheel"
	"github.com/alexanderramin/moodwheel/internal/wizard"
	"github.com/google/uuid"
)

type checkInService struct {
	tree       *wheel.Tree
	ctrl       *wizard.Controller
	selections repository.SelectionRepo
	palette    repository.PaletteRepo
	checkIns   repository.CheckInRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver

	hue func() float64
	now func() time.Time
}

// NewCheckInService wires a fresh walk over tree. The walk starts at the
// first step; call Resume to pick up a persisted selection.
func NewCheckInService(
	tree *wheel.Tree,
	selections repository.SelectionRepo,
	palette repository.PaletteRepo,
	checkIns repository.CheckInRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) CheckInService {
	obs := useCaseObserverOrNoop(observers)
	ctrl := wizard.NewController(tree)
	ctrl.SetListener(&selectionListener{repo: selections, observer: obs})
	return &checkInService{
		tree:       tree,
		ctrl:       ctrl,
		selections: selections,
		palette:    palette,
		checkIns:   checkIns,
		uow:        uow,
		observer:   obs,
		hue:        func() float64 { return rand.Float64() * 360 },
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *checkInService) Tree() *wheel.Tree                { return s.tree }
func (s *checkInService) State() wizard.State              { return s.ctrl.State() }
func (s *checkInService) Options() []string                { return s.ctrl.Options() }
func (s *checkInService) Selection() wizard.Selection      { return s.ctrl.Selection() }
func (s *checkInService) Breadcrumbs() []wizard.Breadcrumb { return s.ctrl.Breadcrumbs() }
func (s *checkInService) Summary() (wizard.Result, error)  { return s.ctrl.Summary() }

func (s *checkInService) Resume(ctx context.Context) (err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "resume", time.Now(), &err, fields)

	stored, err := s.selections.All(ctx)
	if err != nil {
		return fmt.Errorf("loading selection: %w", err)
	}
	sel := wizard.Selection{
		Core:   stored[domain.KeyCore],
		Middle: stored[domain.KeyMiddle],
		Outer:  stored[domain.KeyOuter],
	}
	if replayErr := s.ctrl.Replay(sel); replayErr != nil {
		// The wheel changed under the stored selection. Start over.
		fields["discarded"] = replayErr.Error()
		if err := s.selections.Clear(ctx); err != nil {
			return fmt.Errorf("clearing stale selection: %w", err)
		}
		return nil
	}
	fields["state"] = s.ctrl.State().String()

	kept := storedFor(s.ctrl.Selection(), stored)
	if leftover := leftoverKeys(stored, kept); len(leftover) > 0 {
		fields["discarded"] = strings.Join(leftover, ",")
		if err := s.rewriteSelection(ctx, kept); err != nil {
			return fmt.Errorf("dropping leftover selection keys: %w", err)
		}
	}
	return nil
}

// storedFor returns the store contents that match a replayed selection. The
// check-in link only survives alongside a complete walk.
func storedFor(sel wizard.Selection, stored map[domain.SelectionKey]string) map[domain.SelectionKey]string {
	kept := map[domain.SelectionKey]string{}
	for key, label := range map[domain.SelectionKey]string{
		domain.KeyCore:   sel.Core,
		domain.KeyMiddle: sel.Middle,
		domain.KeyOuter:  sel.Outer,
	} {
		if label != "" {
			kept[key] = label
		}
	}
	if id, ok := stored[domain.KeyCheckIn]; ok && sel.Outer != "" {
		kept[domain.KeyCheckIn] = id
	}
	return kept
}

func leftoverKeys(stored, kept map[domain.SelectionKey]string) []string {
	var out []string
	for key, value := range stored {
		if v, ok := kept[key]; !ok || v != value {
			out = append(out, string(key))
		}
	}
	slices.Sort(out)
	return out
}

func (s *checkInService) rewriteSelection(ctx context.Context, kept map[domain.SelectionKey]string) error {
	if err := s.selections.Clear(ctx); err != nil {
		return err
	}
	for _, key := range []domain.SelectionKey{domain.KeyCore, domain.KeyMiddle, domain.KeyOuter, domain.KeyCheckIn} {
		value, ok := kept[key]
		if !ok {
			continue
		}
		if err := s.selections.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

func (s *checkInService) Choose(ctx context.Context, label string) (step wizard.Step, err error) {
	fields := map[string]any{"label": label}
	defer observe(ctx, s.observer, "choose", time.Now(), &err, fields)

	step, err = s.ctrl.Choose(label)
	if err != nil {
		return step, err
	}
	fields["state"] = step.State.String()
	if step.State != wizard.Summary {
		return step, nil
	}

	checkIn, err := s.recordCheckIn(ctx)
	if err != nil {
		return step, err
	}
	fields["check_in"] = checkIn.ID
	return step, nil
}

// recordCheckIn stores the completed walk and links it to the in-progress
// selection in one transaction.
func (s *checkInService) recordCheckIn(ctx context.Context) (*domain.CheckIn, error) {
	sel := s.ctrl.Selection()
	res, err := s.ctrl.Summary()
	if err != nil {
		return nil, err
	}
	checkIn := &domain.CheckIn{
		ID:          uuid.New().String(),
		Core:        sel.Core,
		Middle:      sel.Middle,
		Outer:       sel.Outer,
		Advised:     res.HasAdvice,
		CompletedAt: s.now(),
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteCheckInRepo(tx).Create(ctx, checkIn); err != nil {
			return err
		}
		return repository.NewSQLiteSelectionRepo(tx).Set(ctx, domain.KeyCheckIn, checkIn.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("recording check-in: %w", err)
	}
	return checkIn, nil
}

func (s *checkInService) Restart(ctx context.Context) (err error) {
	defer observe(ctx, s.observer, "restart", time.Now(), &err, nil)

	s.ctrl.Restart()
	// The listener swallows store errors.
	stored, err := s.selections.All(ctx)
	if err != nil {
		return fmt.Errorf("verifying cleared selection: %w", err)
	}
	if len(stored) > 0 {
		return errors.New("selection store was not cleared")
	}
	return nil
}

func (s *checkInService) History(ctx context.Context, limit int) ([]*domain.CheckIn, error) {
	if limit <= 0 {
		return nil, nil
	}
	return s.checkIns.ListRecent(ctx, limit)
}

func (s *checkInService) CoreCounts(ctx context.Context) (map[string]int, error) {
	return s.checkIns.CountByCore(ctx)
}
