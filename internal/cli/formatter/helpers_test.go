package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"just now", now.Add(-20 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-2 * time.Hour), "2h ago"},
		{"yesterday", now.Add(-30 * time.Hour), "Yesterday"},
		{"older", now.Add(-10 * 24 * time.Hour), "Jan 28, 2026"},
		{"future", now.Add(24 * time.Hour), "Feb 8, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestampFrom(tt.input, now))
		})
	}
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "0f8c2d4e", TruncID("0f8c2d4e-1111-2222-3333-444455556666"))
	assert.Equal(t, "short", TruncID("short"))
}

func TestRenderBox_IncludesTitle(t *testing.T) {
	out := plain(RenderBox("Summary", "hello"))
	assert.Contains(t, out, "SUMMARY")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "╭")
}
