package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reachable(crumbs []Breadcrumb) []bool {
	out := make([]bool, len(crumbs))
	for i, b := range crumbs {
		out[i] = b.Reachable
	}
	return out
}

func TestBreadcrumbs_FollowActiveStep(t *testing.T) {
	c := newDefaultController()

	crumbs := c.Breadcrumbs()
	require.Len(t, crumbs, 4)
	assert.Equal(t, []string{"Step 1", "Step 2", "Step 3", "Summary"},
		[]string{crumbs[0].Label, crumbs[1].Label, crumbs[2].Label, crumbs[3].Label})
	assert.Equal(t, []bool{true, false, false, false}, reachable(crumbs))
	assert.True(t, crumbs[0].Active)

	_, err := c.Choose("Fear")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false, false}, reachable(c.Breadcrumbs()))

	_, err = c.Choose("Anxious")
	require.NoError(t, err)
	_, err = c.Choose("Nervous")
	require.NoError(t, err)
	crumbs = c.Breadcrumbs()
	assert.Equal(t, []bool{true, true, true, true}, reachable(crumbs))
	assert.True(t, crumbs[3].Active)
	assert.False(t, crumbs[2].Active)
}

func TestBreadcrumbs_DoNotChangeSelection(t *testing.T) {
	c := newDefaultController()
	_, err := c.Choose("Joy")
	require.NoError(t, err)

	_ = c.Breadcrumbs()

	assert.Equal(t, Selection{Core: "Joy"}, c.Selection())
	assert.Equal(t, AwaitingMiddle, c.State())
}

func TestBreadcrumbs_ResetOnRestart(t *testing.T) {
	c := newDefaultController()
	require.NoError(t, c.Replay(Selection{Core: "Joy", Middle: "Happy"}))

	c.Restart()

	assert.Equal(t, []bool{true, false, false, false}, reachable(c.Breadcrumbs()))
}
