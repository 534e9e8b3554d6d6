package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/types"
)

func newBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b := &board.Board{}
	require.NoError(t, b.LoadFEN(fen))
	return b
}

func TestMateInOne(t *testing.T) {
	s := New()
	b := newBoard(t, "8/8/8/8/kr5Q/8/8/1R5K w - - 0 1")
	res, err := s.StartSearch(b, Limits{Depth: 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, "h4b4", res.BestMove.String())
	assert.Equal(t, types.MateIn(1), res.Score)
}

func TestMateInTwo(t *testing.T) {
	s := New()
	b := newBoard(t, "2R5/2R5/8/8/8/7K/pn6/k1r3r1 w - - 0 1")
	res, err := s.StartSearch(b, Limits{Depth: 5}, nil)
	require.NoError(t, err)
	assert.Equal(t, "c7c1", res.BestMove.String())
	assert.Equal(t, types.MateIn(3), res.Score)
}

func TestAvoidsStalemate(t *testing.T) {
	s := New()
	b := newBoard(t, "6Q1/8/7k/8/4p3/PP2P3/4KPP1/8 w - - 0 1")
	res, err := s.StartSearch(b, Limits{Depth: 4}, nil)
	require.NoError(t, err)
	assert.NotEqual(t, "g2g4", res.BestMove.String(), "g2g4 stalemates black and must never be chosen while a winning alternative exists")
}

func TestPrefersRepetitionOnlyWhenLosing(t *testing.T) {
	s := New()
	b := newBoard(t, "8/8/8/k7/8/8/7N/7K w - - 0 1")
	for _, mv := range []string{"h1g1", "a5a6", "g1h1", "a6a5", "h1g1", "a5a6", "g1h1"} {
		_, err := b.ApplyMove(mv)
		require.NoError(t, err)
	}
	res, err := s.StartSearch(b, Limits{Depth: 4}, nil)
	require.NoError(t, err)
	assert.Equal(t, "a6a5", res.BestMove.String())
	assert.Equal(t, types.ValueDraw, res.Score)
}

func TestTerminalPositionReturnsError(t *testing.T) {
	s := New()
	// Fool's mate: white to move, checkmated by the queen on h4.
	mate := newBoard(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	_, err := s.StartSearch(mate, Limits{Depth: 2}, nil)
	assert.ErrorIs(t, err, ErrTerminalPosition)
}

func TestIterativeDeepeningReportsIncreasingDepth(t *testing.T) {
	s := New()
	b := board.New()
	var depths []int
	_, err := s.StartSearch(b, Limits{Depth: 3}, func(r Result) {
		depths = append(depths, r.Depth)
	})
	require.NoError(t, err)
	require.NotEmpty(t, depths)
	for i := 1; i < len(depths); i++ {
		assert.Greater(t, depths[i], depths[i-1])
	}
	assert.Equal(t, 3, depths[len(depths)-1])
}

func TestMoveTimeStopsSearch(t *testing.T) {
	s := New()
	b := board.New()
	start := time.Now()
	res, err := s.StartSearch(b, Limits{MoveTime: 100 * time.Millisecond}, nil)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.True(t, res.BestMove.IsInstantiated())
}

func TestStopSearchEndsAnInfiniteSearch(t *testing.T) {
	s := New()
	b := board.New()
	done := make(chan struct{})
	go func() {
		_, _ = s.StartSearch(b, Limits{Infinite: true}, nil)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	s.StopSearch()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("StopSearch did not end an infinite search in time")
	}
}
