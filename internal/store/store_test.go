package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/tt"
	"github.com/corvidchess/corvid/internal/types"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "corvid-store-test")
	s, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
		_ = os.RemoveAll(dir)
	})
	return s
}

func TestTTSnapshotRoundTrip(t *testing.T) {
	s := openTemp(t)
	table := tt.New()
	table.Insert(0xC0FFEE, 4, types.Value(123), tt.BoundExact, types.Move{}, types.Move{})
	require.NoError(t, s.SaveTTSnapshot(table))

	restored := tt.New()
	require.NoError(t, s.LoadTTSnapshot(restored))
	e, found := restored.Lookup(0xC0FFEE)
	require.True(t, found)
	assert.Equal(t, 4, e.Depth)
	assert.Equal(t, types.Value(123), e.Score)
}

func TestSessionStateRoundTrip(t *testing.T) {
	s := openTemp(t)
	want := SessionState{StartFEN: "startpos", Moves: []string{"e2e4", "e7e5"}}
	require.NoError(t, s.SaveSessionState(want))
	got, err := s.LoadSessionState()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSessionStateWithoutPriorSaveIsZeroValue(t *testing.T) {
	s := openTemp(t)
	got, err := s.LoadSessionState()
	require.NoError(t, err)
	assert.Equal(t, SessionState{}, got)
}
