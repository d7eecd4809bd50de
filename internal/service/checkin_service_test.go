package service

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/moodwheel/internal/db"
	"github.com/alexanderramin/moodwheel/internal/domain"
	"github.com/alexanderramin/moodwheel/internal/repository"
	"github.com/alexanderramin/moodwheel/internal/testutil"
	"github.com/alexanderramin/moodwheel/internal/wheel"
	"github.com/alexanderramin/moodwheel/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func (r *recordingObserver) named(name string) []UseCaseEvent {
	var out []UseCaseEvent
	for _, e := range r.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	db         *sql.DB
	svc        *checkInService
	selections *repository.SQLiteSelectionRepo
	checkIns   *repository.SQLiteCheckInRepo
	observer   *recordingObserver
}

func newFixture(t *testing.T, tree *wheel.Tree, uow db.UnitOfWork) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	if uow == nil {
		uow = testutil.NewTestUoW(database)
	}
	f := &fixture{
		db:         database,
		selections: repository.NewSQLiteSelectionRepo(database),
		checkIns:   repository.NewSQLiteCheckInRepo(database),
		observer:   &recordingObserver{},
	}
	f.svc = NewCheckInService(tree, f.selections, repository.NewSQLitePaletteRepo(database),
		f.checkIns, uow, f.observer).(*checkInService)
	return f
}

func chooseAll(t *testing.T, svc CheckInService, labels ...string) wizard.Step {
	t.Helper()
	var step wizard.Step
	for _, l := range labels {
		var err error
		step, err = svc.Choose(context.Background(), l)
		require.NoError(t, err, "choose %s", l)
	}
	return step
}

func TestChoose_PersistsEachLevel(t *testing.T) {
	f := newFixture(t, wheel.Default(), nil)
	ctx := context.Background()

	chooseAll(t, f.svc, "Fear", "Anxious")

	stored, err := f.selections.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.SelectionKey]string{
		domain.KeyCore:   "Fear",
		domain.KeyMiddle: "Anxious",
	}, stored)
	assert.Len(t, f.observer.named("persist-selection"), 2)
}

func TestChoose_InvalidLabelNotPersisted(t *testing.T) {
	f := newFixture(t, wheel.Default(), nil)

	_, err := f.svc.Choose(context.Background(), "NotARealLabel")
	assert.ErrorIs(t, err, wizard.ErrInvalidChoice)

	stored, err := f.selections.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)

	events := f.observer.named("choose")
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
}

func TestChoose_SummaryRecordsCheckIn(t *testing.T) {
	f := newFixture(t, wheel.Default(), nil)
	fixed := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	step := chooseAll(t, f.svc, "Fear", "Anxious", "Worried")
	assert.Equal(t, wizard.Summary, step.State)

	res, err := f.svc.Summary()
	require.NoError(t, err)
	assert.Equal(t, "Worried", res.FinalLabel)
	assert.Equal(t, "Try grounding techniques like mindful breathing or meditation.", res.Advice)

	history, err := f.svc.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Fear", history[0].Core)
	assert.Equal(t, "Anxious", history[0].Middle)
	assert.Equal(t, "Worried", history[0].Outer)
	assert.True(t, history[0].Advised)
	assert.True(t, fixed.Equal(history[0].CompletedAt))

	linked, err := f.selections.Get(ctx, domain.KeyCheckIn)
	require.NoError(t, err)
	assert.Equal(t, history[0].ID, linked)
}

func TestChoose_CheckInRolledBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2}
	selections := repository.NewSQLiteSelectionRepo(database)
	checkIns := repository.NewSQLiteCheckInRepo(database)
	svc := NewCheckInService(wheel.Default(), selections, repository.NewSQLitePaletteRepo(database), checkIns, uow)
	ctx := context.Background()

	chooseAll(t, svc, "Joy", "Happy")
	step, err := svc.Choose(ctx, "Elated")
	assert.ErrorIs(t, err, testutil.ErrInjected)
	assert.Equal(t, wizard.Summary, step.State, "the walk still completes")

	history, err := checkIns.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, history, "check-in insert must roll back with the link write")

	outer, err := selections.Get(ctx, domain.KeyOuter)
	require.NoError(t, err)
	assert.Equal(t, "Elated", outer)
}

func TestRestart_ClearsStoreAndState(t *testing.T) {
	f := newFixture(t, wheel.Default(), nil)
	ctx := context.Background()
	chooseAll(t, f.svc, "Sadness", "Gloomy", "Melancholy")

	require.NoError(t, f.svc.Restart(ctx))
	require.NoError(t, f.svc.Restart(ctx))

	assert.Equal(t, wizard.AwaitingCore, f.svc.State())
	stored, err := f.selections.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)

	history, err := f.svc.History(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, history, 1, "history survives restart")
}

func TestResume_ReplaysStoredSelection(t *testing.T) {
	f := newFixture(t, wheel.Default(), nil)
	ctx := context.Background()
	require.NoError(t, f.selections.Set(ctx, domain.KeyCore, "Fear"))
	require.NoError(t, f.selections.Set(ctx, domain.KeyMiddle, "Anxious"))

	require.NoError(t, f.svc.Resume(ctx))

	assert.Equal(t, wizard.AwaitingOuter, f.svc.State())
	assert.Equal(t, []string{"Worried", "Nervous"}, f.svc.Options())
	assert.Empty(t, f.observer.named("persist-selection"), "resume must not rewrite the store")
}

func TestResume_EmptyStoreStartsFresh(t *testing.T) {
	f := newFixture(t, wheel.Default(), nil)

	require.NoError(t, f.svc.Resume(context.Background()))

	assert.Equal(t, wizard.AwaitingCore, f.svc.State())
}

func TestResume_DiscardsStaleSelection(t *testing.T) {
	f := newFixture(t, testutil.NewTinyTree(), nil)
	ctx := context.Background()
	// Stored by a previous run against the default wheel.
	require.NoError(t, f.selections.Set(ctx, domain.KeyCore, "Fear"))

	require.NoError(t, f.svc.Resume(ctx))

	assert.Equal(t, wizard.AwaitingCore, f.svc.State())
	stored, err := f.selections.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)

	events := f.observer.named("resume")
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Fields, "discarded")
}

func TestResume_DropsLabelsAfterAGap(t *testing.T) {
	f := newFixture(t, wheel.Default(), nil)
	ctx := context.Background()
	// A failed core write leaves the middle behind on its own.
	require.NoError(t, f.selections.Set(ctx, domain.KeyMiddle, "Anxious"))

	require.NoError(t, f.svc.Resume(ctx))

	assert.Equal(t, wizard.AwaitingCore, f.svc.State())
	stored, err := f.selections.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
	events := f.observer.named("resume")
	require.Len(t, events, 1)
	assert.Equal(t, "middleEmotion", events[0].Fields["discarded"])

	_, err = f.svc.Choose(ctx, "Joy")
	require.NoError(t, err)

	next := NewCheckInService(wheel.Default(), f.selections,
		repository.NewSQLitePaletteRepo(f.db), f.checkIns, testutil.NewTestUoW(f.db))
	require.NoError(t, next.Resume(ctx))
	assert.Equal(t, wizard.Selection{Core: "Joy"}, next.Selection())
	assert.Equal(t, wizard.AwaitingMiddle, next.State())
}

func TestResume_DropsCheckInLinkWithoutOuter(t *testing.T) {
	f := newFixture(t, wheel.Default(), nil)
	ctx := context.Background()
	require.NoError(t, f.selections.Set(ctx, domain.KeyCore, "Fear"))
	require.NoError(t, f.selections.Set(ctx, domain.KeyCheckIn, "stale-id"))

	require.NoError(t, f.svc.Resume(ctx))

	assert.Equal(t, wizard.AwaitingMiddle, f.svc.State())
	stored, err := f.selections.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.SelectionKey]string{domain.KeyCore: "Fear"}, stored)
}

func TestResume_KeepsCheckInLinkForFinishedWalk(t *testing.T) {
	f := newFixture(t, wheel.Default(), nil)
	ctx := context.Background()
	chooseAll(t, f.svc, "Fear", "Anxious", "Worried")
	before, err := f.selections.All(ctx)
	require.NoError(t, err)

	next := NewCheckInService(wheel.Default(), f.selections,
		repository.NewSQLitePaletteRepo(f.db), f.checkIns, testutil.NewTestUoW(f.db), f.observer)
	require.NoError(t, next.Resume(ctx))

	after, err := f.selections.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	events := f.observer.named("resume")
	require.Len(t, events, 1)
	assert.NotContains(t, events[0].Fields, "discarded")
}

func TestResume_ThenChooseAcrossServices(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	build := func() CheckInService {
		return NewCheckInService(wheel.Default(),
			repository.NewSQLiteSelectionRepo(database),
			repository.NewSQLitePaletteRepo(database),
			repository.NewSQLiteCheckInRepo(database),
			testutil.NewTestUoW(database))
	}

	for _, label := range []string{"Anger", "Frustrated", "Resentful"} {
		svc := build()
		require.NoError(t, svc.Resume(ctx))
		_, err := svc.Choose(ctx, label)
		require.NoError(t, err)
	}

	svc := build()
	require.NoError(t, svc.Resume(ctx))
	res, err := svc.Summary()
	require.NoError(t, err)
	assert.Equal(t, "Resentful", res.FinalLabel)
	assert.Equal(t, "Consider deep breathing exercises or a brief walk to cool down.", res.Advice)
}

func TestHistory_NonPositiveLimit(t *testing.T) {
	f := newFixture(t, wheel.Default(), nil)
	chooseAll(t, f.svc, "Joy", "Cheerful", "Bright")

	history, err := f.svc.History(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestCoreCounts(t *testing.T) {
	f := newFixture(t, wheel.Default(), nil)
	ctx := context.Background()
	chooseAll(t, f.svc, "Joy", "Cheerful", "Bright")
	require.NoError(t, f.svc.Restart(ctx))
	chooseAll(t, f.svc, "Joy", "Happy", "Elated")

	counts, err := f.svc.CoreCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Joy": 2}, counts)
}

func TestLogUseCaseObserver_WritesSlogRecord(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "choose",
		Success: true,
		Fields:  map[string]any{"label": "Fear"},
	})

	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=choose")
	assert.Contains(t, out, "label=Fear")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

// failingSelectionRepo reads through to the store but rejects every write.
type failingSelectionRepo struct {
	repository.SelectionRepo
}

func (failingSelectionRepo) Set(context.Context, domain.SelectionKey, string) error {
	return testutil.ErrInjected
}

func (failingSelectionRepo) Clear(context.Context) error {
	return testutil.ErrInjected
}

func TestSelectionStoreFailures_DoNotUndoTheWalk(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	store := repository.NewSQLiteSelectionRepo(database)
	require.NoError(t, store.Set(ctx, domain.KeyCore, "Fear"))

	obs := &recordingObserver{}
	svc := NewCheckInService(wheel.Default(), failingSelectionRepo{store},
		repository.NewSQLitePaletteRepo(database), repository.NewSQLiteCheckInRepo(database),
		testutil.NewTestUoW(database), obs)
	require.NoError(t, svc.Resume(ctx))

	step, err := svc.Choose(ctx, "Anxious")
	require.NoError(t, err)
	assert.Equal(t, wizard.AwaitingOuter, step.State)
	assert.Equal(t, wizard.Selection{Core: "Fear", Middle: "Anxious"}, svc.Selection())

	persisted := obs.named("persist-selection")
	require.Len(t, persisted, 1)
	assert.False(t, persisted[0].Success)
	assert.ErrorIs(t, persisted[0].Err, testutil.ErrInjected)

	err = svc.Restart(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selection store was not cleared")
	assert.Equal(t, wizard.AwaitingCore, svc.State())
	assert.True(t, svc.Selection().IsEmpty())

	cleared := obs.named("clear-selection")
	require.Len(t, cleared, 1)
	assert.False(t, cleared[0].Success)
}
