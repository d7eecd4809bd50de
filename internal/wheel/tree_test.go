package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Exhaustive(t *testing.T) {
	tree := Default()

	cores, err := tree.OptionsFor(Core, "")
	require.NoError(t, err)
	require.Len(t, cores, 6)

	for _, c := range cores {
		middles, err := tree.OptionsFor(Middle, c)
		require.NoError(t, err, "core %s", c)
		require.NotEmpty(t, middles, "core %s", c)
		for _, m := range middles {
			outers, err := tree.OptionsFor(Outer, m)
			require.NoError(t, err, "middle %s", m)
			assert.NotEmpty(t, outers, "middle %s", m)
		}
	}
}

func TestDefault_CoreSortedAlphabetically(t *testing.T) {
	cores, err := Default().OptionsFor(Core, "ignored")
	require.NoError(t, err)
	assert.Equal(t, []string{"Anger", "Disgust", "Fear", "Joy", "Sadness", "Surprise"}, cores)
}

func TestOptionsFor_PreservesDeclaredOrder(t *testing.T) {
	tree := Default()

	middles, err := tree.OptionsFor(Middle, "Fear")
	require.NoError(t, err)
	assert.Equal(t, []string{"Anxious", "Insecure"}, middles)

	outers, err := tree.OptionsFor(Outer, "Anxious")
	require.NoError(t, err)
	assert.Equal(t, []string{"Worried", "Nervous"}, outers)
}

func TestOptionsFor_UnknownKey(t *testing.T) {
	tree := Default()

	_, err := tree.OptionsFor(Middle, "Anxious")
	assert.ErrorIs(t, err, ErrLookup, "middle lookup takes a core label")

	_, err = tree.OptionsFor(Outer, "Fear")
	assert.ErrorIs(t, err, ErrLookup, "outer lookup takes a middle label")

	_, err = tree.OptionsFor(Level(7), "Fear")
	assert.ErrorIs(t, err, ErrLookup)
}

func TestOptionsFor_ReturnsCopy(t *testing.T) {
	tree := Default()

	cores, err := tree.OptionsFor(Core, "")
	require.NoError(t, err)
	cores[0] = "Mutated"

	again, err := tree.OptionsFor(Core, "")
	require.NoError(t, err)
	assert.Equal(t, "Anger", again[0])
}

func TestAdviceFor(t *testing.T) {
	tree := Default()

	text, ok := tree.AdviceFor("Fear")
	assert.True(t, ok)
	assert.Equal(t, "Try grounding techniques like mindful breathing or meditation.", text)

	text, ok = tree.AdviceFor("Joy")
	assert.False(t, ok)
	assert.Empty(t, text)

	_, ok = tree.AdviceFor("NotARealLabel")
	assert.False(t, ok)
}

func TestNew_CopiesDefinition(t *testing.T) {
	def := DefaultDefinition()
	tree, err := New(def)
	require.NoError(t, err)

	def.Middle["Fear"][0] = "Changed"
	def.Advice["Joy"] = "added later"

	middles, err := tree.OptionsFor(Middle, "Fear")
	require.NoError(t, err)
	assert.Equal(t, "Anxious", middles[0])
	_, ok := tree.AdviceFor("Joy")
	assert.False(t, ok)
}

func TestValidate_Rejects(t *testing.T) {
	base := func() Definition {
		return Definition{
			Core:   []string{"A"},
			Middle: map[string][]string{"A": {"B"}},
			Outer:  map[string][]string{"B": {"C"}},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Definition)
	}{
		{"no cores", func(d *Definition) { d.Core = nil }},
		{"empty core label", func(d *Definition) { d.Core = []string{""} }},
		{"duplicate core", func(d *Definition) { d.Core = []string{"A", "A"} }},
		{"core without middles", func(d *Definition) { d.Middle = map[string][]string{} }},
		{"middle without outers", func(d *Definition) { d.Outer = map[string][]string{} }},
		{"middle keyed by unknown core", func(d *Definition) { d.Middle["Z"] = []string{"Y"} }},
		{"outer keyed by unknown middle", func(d *Definition) { d.Outer["Z"] = []string{"Y"} }},
		{"duplicate middle", func(d *Definition) {
			d.Core = append(d.Core, "D")
			d.Middle["D"] = []string{"B"}
		}},
		{"duplicate outer", func(d *Definition) {
			d.Middle["A"] = []string{"B", "E"}
			d.Outer["E"] = []string{"C"}
		}},
		{"advice for unknown core", func(d *Definition) { d.Advice = map[string]string{"B": "x"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := base()
			tt.mutate(&def)
			_, err := New(def)
			assert.ErrorIs(t, err, ErrInvalidTree)
		})
	}
}

func TestWalk_TopDownOrder(t *testing.T) {
	tree, err := New(Definition{
		Core:   []string{"A", "D"},
		Middle: map[string][]string{"A": {"B"}, "D": {"E"}},
		Outer:  map[string][]string{"B": {"C1", "C2"}, "E": {"F"}},
	})
	require.NoError(t, err)

	var seen []string
	tree.Walk(func(level Level, label string) bool {
		seen = append(seen, level.String()+":"+label)
		return true
	})
	assert.Equal(t, []string{
		"core:A", "middle:B", "outer:C1", "outer:C2",
		"core:D", "middle:E", "outer:F",
	}, seen)
}

func TestWalk_StopsEarly(t *testing.T) {
	count := 0
	Default().Walk(func(level Level, label string) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}
