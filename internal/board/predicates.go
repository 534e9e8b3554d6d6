package board

import "github.com/corvidchess/corvid/internal/types"

// IsOnlyPieceBetween reports whether s is the unique occupied square on
// the straight or diagonal line strictly between a and b (exclusive).
func (b *Board) IsOnlyPieceBetween(a, bTo, s types.Square) bool {
	if !s.IsStrictlyBetween(a, bTo) {
		return false
	}
	df, dr, ok := types.Direction(a, bTo)
	if !ok {
		return false
	}
	count := 0
	cur := types.NewSquare(a.File+df, a.Rank+dr)
	for cur != bTo {
		if !b.PieceAt(cur).IsEmpty() {
			count++
			if cur != s {
				return false
			}
		}
		cur = types.NewSquare(cur.File+df, cur.Rank+dr)
	}
	return count == 1
}

// Clone returns a deep, independent copy of the board, used to hand the
// ponder goroutine a private snapshot to search concurrently with the
// foreground board.
func (b *Board) Clone() *Board {
	cp := *b
	cp.repetition = make(map[uint64]int, len(b.repetition))
	for k, v := range b.repetition {
		cp.repetition[k] = v
	}
	cp.undo = append([]undoRecord(nil), b.undo...)
	cp.occupied.list = append([]types.Square(nil), b.occupied.list...)
	return &cp
}
