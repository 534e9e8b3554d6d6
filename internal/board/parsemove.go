package board

import (
	"github.com/corvidchess/corvid/internal/types"
)

// ParseUCIMove parses 4- or 5-character coordinate notation ("e2e4",
// "e7e8q") into a Move, inferring IsEnPassant and IsCastle from the
// current board state, but does not apply it. Fails with ErrBadMoveSyntax.
func (b *Board) ParseUCIMove(s string) (types.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return types.Move{}, ErrBadMoveSyntax
	}
	from, err := types.ParseSquare(s[0:2])
	if err != nil || from == types.SqNone {
		return types.Move{}, ErrBadMoveSyntax
	}
	to, err := types.ParseSquare(s[2:4])
	if err != nil || to == types.SqNone {
		return types.Move{}, ErrBadMoveSyntax
	}
	promo := types.NoPieceType
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = types.Queen
		case 'r':
			promo = types.Rook
		case 'b':
			promo = types.Bishop
		case 'n':
			promo = types.Knight
		default:
			return types.Move{}, ErrBadMoveSyntax
		}
	}

	mover := b.PieceAt(from)
	m := types.Move{From: from, To: to, Promotion: promo}

	if mover.Type() == types.Pawn && to == b.epTarget && from.File != to.File && b.PieceAt(to).IsEmpty() {
		m.EnPassant = true
	}
	if mover.Type() == types.King {
		df := int(to.File) - int(from.File)
		if df == 2 || df == -2 {
			m.Castle = true
		}
	}
	return m, nil
}

// ApplyMove parses and applies a coordinate move string in one step.
func (b *Board) ApplyMove(s string) (types.Move, error) {
	m, err := b.ParseUCIMove(s)
	if err != nil {
		return m, err
	}
	b.MakeMove(m)
	return m, nil
}
