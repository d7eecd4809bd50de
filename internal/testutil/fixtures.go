package testutil

import (
	"time"

	"github.com/alexanderramin/moodwheel/internal/domain"
	"github.com/alexanderramin/moodwheel/internal/wheel"
	"github.com/google/uuid"
)

// CheckInOption customises a check-in fixture.
type CheckInOption func(*domain.CheckIn)

func WithCompletedAt(t time.Time) CheckInOption {
	return func(c *domain.CheckIn) {
		c.CompletedAt = t
	}
}

func WithAdvised(advised bool) CheckInOption {
	return func(c *domain.CheckIn) {
		c.Advised = advised
	}
}

// NewTestCheckIn builds a check-in for the given path, completed now.
func NewTestCheckIn(core, middle, outer string, opts ...CheckInOption) *domain.CheckIn {
	c := &domain.CheckIn{
		ID:          uuid.New().String(),
		Core:        core,
		Middle:      middle,
		Outer:       outer,
		CompletedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTinyTree returns a two-core wheel used where the default wheel would
// make assertions noisy. Only "Tense" carries advice.
func NewTinyTree() *wheel.Tree {
	t, err := wheel.New(wheel.Definition{
		Core: []string{"Calm", "Tense"},
		Middle: map[string][]string{
			"Calm":  {"Relaxed"},
			"Tense": {"Stressed"},
		},
		Outer: map[string][]string{
			"Relaxed":  {"Rested"},
			"Stressed": {"Overwhelmed", "Restless"},
		},
		Advice: map[string]string{"Tense": "Take a short break."},
	})
	if err != nil {
		panic(err)
	}
	return t
}
