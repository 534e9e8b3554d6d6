package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/types"
)

func TestInsertRejectsBelowMinDepth(t *testing.T) {
	table := New()
	table.Insert(42, config.Settings.Search.MinTranspositionDepth-1, 100, BoundExact, types.Move{}, types.Move{})
	_, found := table.Lookup(42)
	assert.False(t, found)
}

func TestDeepInsertThenShallowKeepsDeep(t *testing.T) {
	table := New()
	d1 := config.Settings.Search.MinTranspositionDepth
	d2 := d1 + 2
	table.Insert(7, d2, 50, BoundExact, types.Move{}, types.Move{})
	table.Insert(7, d1, 999, BoundExact, types.Move{}, types.Move{})
	e, found := table.Lookup(7)
	require.True(t, found)
	assert.Equal(t, d2, e.Depth)
	assert.Equal(t, types.Value(50), e.Score)
}

func TestShallowInsertThenDeepOverwrites(t *testing.T) {
	table := New()
	d1 := config.Settings.Search.MinTranspositionDepth
	d2 := d1 + 2
	table.Insert(7, d1, 50, BoundExact, types.Move{}, types.Move{})
	table.Insert(7, d2, 999, BoundExact, types.Move{}, types.Move{})
	e, found := table.Lookup(7)
	require.True(t, found)
	assert.Equal(t, d2, e.Depth)
	assert.Equal(t, types.Value(999), e.Score)
}

func TestLookupMissReturnsFalse(t *testing.T) {
	table := New()
	_, found := table.Lookup(123456)
	assert.False(t, found)
}

func TestPruneEvictsStaleEntries(t *testing.T) {
	table := New()
	d := config.Settings.Search.MinTranspositionDepth
	table.Insert(1, d, 0, BoundExact, types.Move{}, types.Move{})
	for i := 0; i < config.Settings.Search.MaxAgeDiff+1; i++ {
		table.AgeAdvance()
	}
	table.Insert(2, d, 0, BoundExact, types.Move{}, types.Move{})
	table.Prune()
	_, found1 := table.Lookup(1)
	_, found2 := table.Lookup(2)
	assert.False(t, found1, "entry older than MaxAgeDiff must be pruned")
	assert.True(t, found2, "freshly inserted entry must survive prune")
}

func TestResetClearsEntriesAndAge(t *testing.T) {
	table := New()
	d := config.Settings.Search.MinTranspositionDepth
	table.Insert(1, d, 0, BoundExact, types.Move{}, types.Move{})
	table.AgeAdvance()
	table.Reset()
	assert.Equal(t, 0, table.Len())
	_, found := table.Lookup(1)
	assert.False(t, found)
}
