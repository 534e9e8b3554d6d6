package evaluator

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

func TestStartingPositionIsBalanced(t *testing.T) {
	e := New()
	b := newBoard(t, board.StartFEN)
	assert.Zero(t, e.Evaluate(b), "symmetric starting position must score zero for the side to move")
}

func TestExtraQueenScoresPositive(t *testing.T) {
	e := New()
	b := newBoard(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.Positive(t, e.Evaluate(b))
}

func TestBareKingsIsDraw(t *testing.T) {
	e := New()
	b := newBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.Zero(t, e.Evaluate(b))
}

func TestLoneMinorVsKingIsDraw(t *testing.T) {
	e := New()
	b := newBoard(t, "4k3/8/8/8/8/8/8/3NK3 w - - 0 1")
	assert.Zero(t, e.Evaluate(b), "king and knight vs bare king is insufficient material")
}

func TestDoubledPawnsArePenalized(t *testing.T) {
	e := New()
	doubled := newBoard(t, "4k3/8/8/8/8/4P3/4P3/4K3 w - - 0 1")
	spread := newBoard(t, "4k3/8/8/8/8/3P4/4P3/4K3 w - - 0 1")
	assert.Less(t, e.Evaluate(doubled), e.Evaluate(spread))
}

func TestAdvancedPawnScoresHigherThanHomePawn(t *testing.T) {
	e := New()
	advanced := newBoard(t, "4k3/4P3/8/8/8/8/8/4K3 w - - 0 1")
	home := newBoard(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	assert.Greater(t, e.Evaluate(advanced), e.Evaluate(home),
		"a pawn one step from promoting must score higher than one still on its home rank")
}

func TestPawnAdvancementIsMirroredAcrossColors(t *testing.T) {
	e := New()
	whiteAdvanced := newBoard(t, "4k3/4P3/8/8/8/8/8/4K3 w - - 0 1")
	blackAdvanced := newBoard(t, "4k3/8/8/8/8/8/4p3/4K3 b - - 0 1")
	assert.Equal(t, e.Evaluate(whiteAdvanced), e.Evaluate(blackAdvanced),
		"a pawn one step from promoting must score the same regardless of color")
}

func TestKingSafetyCountsChebyshevAdjacentPawnsOnly(t *testing.T) {
	near := newBoard(t, "4k3/8/8/8/8/8/3PPP2/4K3 w - - 0 1")
	far := newBoard(t, "4k3/8/8/3PPP2/8/8/8/4K3 w - - 0 1")
	pawnFiles := [8]int{0, 0, 0, 1, 1, 1, 0, 0}
	assert.Greater(t, kingSafety(near, types.White, pawnFiles), kingSafety(far, types.White, pawnFiles),
		"only pawns within Chebyshev distance 1 of the king earn the close-pawn bonus")
}

func TestKingSafetyIgnoresDistantPawnOnKingFile(t *testing.T) {
	b := newBoard(t, "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1")
	pawnFiles := [8]int{0, 0, 0, 0, 1, 0, 0, 0}
	assert.Zero(t, kingSafety(b, types.White, pawnFiles),
		"a pawn on the king's file but three ranks away is neither adjacent nor an open file")
}

func TestScoreIsAntisymmetricAcrossSideToMove(t *testing.T) {
	e := New()
	white := newBoard(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	black := newBoard(t, "4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	assert.Equal(t, e.Evaluate(white), -e.Evaluate(black))
}
