package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/types"
)

func TestFENRoundTrip(t *testing.T) {
	cases := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1rk1/ppp1bppp/4pn2/3p4/2PP4/2N1PN2/PP3PPP/R1BQKB1R w KQ - 0 1",
	}
	for _, fen := range cases {
		b := &Board{}
		require.NoError(t, b.LoadFEN(fen))
		assert.Equal(t, fen, b.FEN())
	}
}

func TestMakeUndoIsIdentity(t *testing.T) {
	b := New()
	before := b.FEN()
	beforeHash := b.Hash()

	m, err := b.ApplyMove("e2e4")
	require.NoError(t, err)
	assert.NotEqual(t, before, b.FEN())

	require.NoError(t, b.UndoMove())
	assert.Equal(t, before, b.FEN())
	assert.Equal(t, beforeHash, b.Hash())
	assert.Equal(t, types.NewSquare(4, 1), m.From)
}

func TestHashConsistencyAfterSequence(t *testing.T) {
	b := New()
	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5"}
	for _, mv := range moves {
		_, err := b.ApplyMove(mv)
		require.NoError(t, err)
	}
	fromScratch := b.computeHashFromScratch()
	assert.Equal(t, fromScratch, b.Hash())

	for range moves {
		require.NoError(t, b.UndoMove())
	}
	assert.Equal(t, StartFEN, b.FEN())
}

func TestCastlingRightsClearedByRookCornerTouch(t *testing.T) {
	b := &Board{}
	require.NoError(t, b.LoadFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"))
	_, err := b.ApplyMove("h1h5")
	require.NoError(t, err)
	wk, wq, bk, bq := b.CastlingRights()
	assert.False(t, wk)
	assert.True(t, wq)
	assert.True(t, bk)
	assert.True(t, bq)
}

func TestEnPassantCaptureRemovesPawnAndUndoRestoresIt(t *testing.T) {
	b := &Board{}
	require.NoError(t, b.LoadFEN("8/8/8/3pP3/8/8/8/4K2k w - d6 0 1"))
	before := b.FEN()
	m, err := b.ApplyMove("e5d6")
	require.NoError(t, err)
	assert.True(t, m.EnPassant)
	assert.True(t, b.PieceAt(types.NewSquare(3, 4)).IsEmpty()) // captured pawn gone
	require.NoError(t, b.UndoMove())
	assert.Equal(t, before, b.FEN())
}

func TestUndoUnderflow(t *testing.T) {
	b := New()
	assert.ErrorIs(t, b.UndoMove(), ErrUnderflow)
}

func TestBadPositionSyntax(t *testing.T) {
	b := &Board{}
	assert.ErrorIs(t, b.LoadFEN("not a fen"), ErrBadPositionSyntax)
}

func TestIsOnlyPieceBetween(t *testing.T) {
	b := &Board{}
	require.NoError(t, b.LoadFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"))
	a5 := types.NewSquare(0, 4)
	h5 := types.NewSquare(7, 4)
	b5 := types.NewSquare(1, 4)
	assert.True(t, b.IsOnlyPieceBetween(a5, h5, b5))
}

func TestRepetitionCounter(t *testing.T) {
	b := New()
	start := b.Hash()
	assert.Equal(t, 1, b.RepetitionCount(start))

	seq := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for i := 0; i < 2; i++ {
		for _, mv := range seq {
			_, err := b.ApplyMove(mv)
			require.NoError(t, err)
		}
	}
	assert.Equal(t, 3, b.RepetitionCount(start))
}
