package movegen

import (
	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/types"
)

var promotionPieces = [4]types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight}

// pseudoLegal generates every pseudo-legal move for us: piece movement
// rules only, no check/pin awareness. Legality is filtered separately in
// Generate.
func (g *Generator) pseudoLegal(b *board.Board, us types.Color) []types.Move {
	var moves []types.Move
	for _, sq := range b.Occupied() {
		p := b.PieceAt(sq)
		if p.Color() != us {
			continue
		}
		switch p.Type() {
		case types.Pawn:
			moves = append(moves, g.pawnMoves(b, sq, us)...)
		case types.Knight:
			moves = append(moves, steppingMoves(b, sq, us, knightOffsets[:])...)
		case types.King:
			offs := append(append([][2]int8{}, orthogonal[:]...), diagonal[:]...)
			moves = append(moves, steppingMoves(b, sq, us, offs)...)
			moves = append(moves, g.castlingMoves(b, us)...)
		case types.Bishop:
			moves = append(moves, slidingMoves(b, sq, us, diagonal[:])...)
		case types.Rook:
			moves = append(moves, slidingMoves(b, sq, us, orthogonal[:])...)
		case types.Queen:
			moves = append(moves, slidingMoves(b, sq, us, orthogonal[:])...)
			moves = append(moves, slidingMoves(b, sq, us, diagonal[:])...)
		}
	}
	return moves
}

func steppingMoves(b *board.Board, from types.Square, us types.Color, offsets [][2]int8) []types.Move {
	var moves []types.Move
	for _, o := range offsets {
		to := types.NewSquare(from.File+o[0], from.Rank+o[1])
		if !to.IsValid() {
			continue
		}
		target := b.PieceAt(to)
		if target.IsEmpty() || target.Color() != us {
			moves = append(moves, types.NewMove(from, to))
		}
	}
	return moves
}

func slidingMoves(b *board.Board, from types.Square, us types.Color, dirs [][2]int8) []types.Move {
	var moves []types.Move
	for _, d := range dirs {
		cur := types.NewSquare(from.File+d[0], from.Rank+d[1])
		for cur.IsValid() {
			target := b.PieceAt(cur)
			if target.IsEmpty() {
				moves = append(moves, types.NewMove(from, cur))
				cur = types.NewSquare(cur.File+d[0], cur.Rank+d[1])
				continue
			}
			if target.Color() != us {
				moves = append(moves, types.NewMove(from, cur))
			}
			break
		}
	}
	return moves
}

func (g *Generator) pawnMoves(b *board.Board, from types.Square, us types.Color) []types.Move {
	var moves []types.Move
	fwd := int8(1)
	homeRank := int8(1)
	promoRank := int8(7)
	if us == types.Black {
		fwd = -1
		homeRank = 6
		promoRank = 0
	}

	emit := func(to types.Square, enPassant bool) {
		if to.Rank == promoRank {
			for _, pt := range promotionPieces {
				moves = append(moves, types.Move{From: from, To: to, Promotion: pt})
			}
			return
		}
		moves = append(moves, types.Move{From: from, To: to, EnPassant: enPassant})
	}

	one := types.NewSquare(from.File, from.Rank+fwd)
	if one.IsValid() && b.PieceAt(one).IsEmpty() {
		emit(one, false)
		if from.Rank == homeRank {
			two := types.NewSquare(from.File, from.Rank+2*fwd)
			if b.PieceAt(two).IsEmpty() {
				emit(two, false)
			}
		}
	}

	for _, df := range [2]int8{1, -1} {
		to := types.NewSquare(from.File+df, from.Rank+fwd)
		if !to.IsValid() {
			continue
		}
		target := b.PieceAt(to)
		if !target.IsEmpty() && target.Color() != us {
			emit(to, false)
		} else if target.IsEmpty() && to == b.EnPassantTarget() {
			emit(to, true)
		}
	}

	return moves
}

// castlingMoves returns the pseudo-legal castling candidates: rights held,
// the squares between king and rook empty, and the king on its original
// square. The rook's square is not checked; a held right is taken to imply
// it. Attack-safety is checked by Generate's legality pass.
func (g *Generator) castlingMoves(b *board.Board, us types.Color) []types.Move {
	var moves []types.Move
	rank := int8(0)
	if us == types.Black {
		rank = 7
	}
	kingHome := types.NewSquare(4, rank)
	if b.KingSquare(us) != kingHome {
		return nil
	}
	wk, wq, bk, bq := b.CastlingRights()
	kingside, queenside := wk, wq
	if us == types.Black {
		kingside, queenside = bk, bq
	}
	empty := func(files ...int8) bool {
		for _, f := range files {
			if !b.PieceAt(types.NewSquare(f, rank)).IsEmpty() {
				return false
			}
		}
		return true
	}
	if kingside && empty(5, 6) {
		moves = append(moves, types.Move{From: kingHome, To: types.NewSquare(6, rank), Castle: true})
	}
	if queenside && empty(1, 2, 3) {
		moves = append(moves, types.Move{From: kingHome, To: types.NewSquare(2, rank), Castle: true})
	}
	return moves
}
