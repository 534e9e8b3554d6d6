package movegen

import (
	"sort"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/types"
)

// Order sorts moves descending by the per-move score table in spec.md
// §4.7, then rotates ttMove (if instantiated and present) to index 0.
func Order(b *board.Board, moves []types.Move, ttMove types.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return score(b, moves[i]) > score(b, moves[j])
	})
	BumpToFront(moves, ttMove)
}

// BumpToFront moves the first occurrence of want to index 0, leaving the
// rest of the order untouched. No-op if want is not instantiated or not
// present.
func BumpToFront(moves []types.Move, want types.Move) {
	if !want.IsInstantiated() {
		return
	}
	for i, m := range moves {
		if m.Equals(want) {
			if i != 0 {
				copy(moves[1:i+1], moves[0:i])
				moves[0] = m
			}
			return
		}
	}
}

func score(b *board.Board, m types.Move) int {
	isCapture := m.EnPassant || !b.PieceAt(m.To).IsEmpty()
	if isCapture {
		attacker := b.PieceAt(m.From).Type().Value()
		victim := types.Pawn.Value()
		if !m.EnPassant {
			victim = b.PieceAt(m.To).Type().Value()
		}
		gain := victim - attacker
		switch {
		case gain > 0:
			return 5000 + (10*victim - attacker)
		case gain == 0:
			return 3000 + (10*victim - attacker)
		default:
			return 2000 - (10*victim - attacker)
		}
	}
	if m.Promotion != types.NoPieceType {
		return 4000
	}
	if m.Castle {
		return 1500
	}
	return 1000
}
