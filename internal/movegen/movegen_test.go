package movegen

import (
	"testing"

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

func TestPerftStartingPosition(t *testing.T) {
	g := New()
	b := newBoard(t, board.StartFEN)
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, g.Perft(b, c.depth), "depth %d", c.depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	g := New()
	b := newBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, g.Perft(b, c.depth), "depth %d", c.depth)
	}
}

func TestPerftEndgameRookPosition(t *testing.T) {
	g := New()
	b := newBoard(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, g.Perft(b, c.depth), "depth %d", c.depth)
	}
}

func TestPerftPosition4(t *testing.T) {
	g := New()
	b := newBoard(t, "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 6},
		{2, 264},
		{3, 9467},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, g.Perft(b, c.depth), "depth %d", c.depth)
	}
}

// TestEnPassantPinExposureExcluded is the scenario from spec.md §8.6: on
// "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8", once Black plays c7-c5, White's
// b5xc6 en passant would empty both b5 and c5 on rank 5 and expose the
// king on a5 to the rook on h5. That capture must not appear.
func TestEnPassantPinExposureExcluded(t *testing.T) {
	g := New()
	b := newBoard(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1")
	_, err := b.ApplyMove("c7c5")
	require.NoError(t, err)
	require.Equal(t, types.NewSquare(2, 5), b.EnPassantTarget(), "c6 should be the en passant target")
	moves := g.Generate(b, false)
	for _, m := range moves {
		assert.False(t, m.EnPassant, "en passant capture exposing king must be filtered: %s", m)
	}
}

func TestNoMoveCapturesTheKing(t *testing.T) {
	g := New()
	b := newBoard(t, board.StartFEN)
	for _, m := range g.Generate(b, false) {
		assert.False(t, m.To == b.KingSquare(types.Black))
	}
}

func TestCapturesOnlyModeIncludesEnPassant(t *testing.T) {
	g := New()
	b := newBoard(t, "8/8/8/3pP3/8/8/8/4K2k w - d6 0 1")
	moves := g.Generate(b, true)
	found := false
	for _, m := range moves {
		if m.EnPassant {
			found = true
		}
	}
	assert.True(t, found, "capture-only generation must include en passant")
}

func TestCastlingRejectedThroughAttack(t *testing.T) {
	g := New()
	// black rook on f8 attacks f1, the kingside transit square.
	b := newBoard(t, "5r2/8/8/8/8/8/8/4K2R w K - 0 1")
	moves := g.Generate(b, false)
	for _, m := range moves {
		assert.False(t, m.Castle, "castling through an attacked square must be rejected")
	}
}
