package board

import (
	"github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/zobrist"
)

func (b *Board) placePiece(sq types.Square, p types.Piece) {
	b.grid[sq.Rank][sq.File] = p
	b.occupied.add(sq)
	b.hash ^= zobrist.PieceKey[zobrist.PieceIndex(p)][sq.Index()]
}

// removePiece clears sq and returns whatever piece (possibly Empty) was
// there, XORing its key out of the hash if present.
func (b *Board) removePiece(sq types.Square) types.Piece {
	p := b.grid[sq.Rank][sq.File]
	if p.IsEmpty() {
		return p
	}
	b.hash ^= zobrist.PieceKey[zobrist.PieceIndex(p)][sq.Index()]
	b.grid[sq.Rank][sq.File] = types.Empty
	b.occupied.remove(sq)
	return p
}

func isRookCorner(sq types.Square) (types.Color, bool, bool) {
	// returns (color, isKingside, ok)
	switch {
	case sq == types.NewSquare(7, 0):
		return types.White, true, true
	case sq == types.NewSquare(0, 0):
		return types.White, false, true
	case sq == types.NewSquare(7, 7):
		return types.Black, true, true
	case sq == types.NewSquare(0, 7):
		return types.Black, false, true
	default:
		return types.White, false, false
	}
}

// MakeMove applies a move the caller guarantees is legal (provided by the
// move generator). It updates the grid, flags, en passant square, clocks,
// side to move, the cached occupied set and the incremental hash; pushes
// an undo record; and bumps the repetition counter for the resulting hash.
func (b *Board) MakeMove(m types.Move) {
	movingPiece := b.PieceAt(m.From)

	capturedSquare := m.To
	if m.EnPassant {
		capturedSquare = types.NewSquare(m.To.File, m.From.Rank)
	}
	capturedPiece := b.PieceAt(capturedSquare)

	rec := undoRecord{
		move:            m,
		movingPiece:     movingPiece,
		capturedPiece:   capturedPiece,
		capturedSquare:  capturedSquare,
		priorCastleWK:   b.castleWK,
		priorCastleWQ:   b.castleWQ,
		priorCastleBK:   b.castleBK,
		priorCastleBQ:   b.castleBQ,
		priorEP:         b.epTarget,
		priorHalfmove:   b.halfmoveClock,
		priorFullmove:   b.fullmoveNumber,
		priorSideToMove: b.sideToMove,
		priorHash:       b.hash,
	}
	b.undo = append(b.undo, rec)

	// remove moving piece from origin, remove captured piece (possibly a
	// different square for en passant), then place the mover (or its
	// promotion) on the destination.
	b.removePiece(m.From)
	if !capturedPiece.IsEmpty() {
		b.removePiece(capturedSquare)
	}
	placed := movingPiece
	if m.Promotion != types.NoPieceType {
		placed = types.MakePiece(movingPiece.Color(), m.Promotion)
	}
	b.placePiece(m.To, placed)

	if movingPiece.Type() == types.King {
		b.kingSq[movingPiece.Color()] = m.To
	}

	if m.Castle {
		color := movingPiece.Color()
		rank := int8(0)
		if color == types.Black {
			rank = 7
		}
		if m.To.File == 6 { // kingside
			rookFrom := types.NewSquare(7, rank)
			rookTo := types.NewSquare(5, rank)
			rook := b.removePiece(rookFrom)
			b.placePiece(rookTo, rook)
		} else { // queenside
			rookFrom := types.NewSquare(0, rank)
			rookTo := types.NewSquare(3, rank)
			rook := b.removePiece(rookFrom)
			b.placePiece(rookTo, rook)
		}
	}

	// castling rights: king move clears both of that color's rights;
	// a rook move/capture touching a corner clears that corner's right
	// regardless of which piece is moving onto or off of it.
	if movingPiece.Type() == types.King {
		if movingPiece.Color() == types.White {
			b.castleWK, b.castleWQ = false, false
		} else {
			b.castleBK, b.castleBQ = false, false
		}
	}
	b.clearCastleRightForCorner(m.From)
	b.clearCastleRightForCorner(m.To)

	// en passant target: only a two-square pawn advance sets a new one.
	newEP := types.SqNone
	if movingPiece.Type() == types.Pawn {
		dr := m.To.Rank - m.From.Rank
		if dr == 2 || dr == -2 {
			newEP = types.NewSquare(m.From.File, (m.From.Rank+m.To.Rank)/2)
		}
	}
	b.epTarget = newEP

	// half-move clock resets on pawn move or capture.
	if movingPiece.Type() == types.Pawn || !capturedPiece.IsEmpty() {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	// full-move number increments after Black moves.
	if b.sideToMove == types.Black {
		b.fullmoveNumber++
	}

	// toggle hash for the rights/EP/side deltas not already covered by
	// placePiece/removePiece (which only track piece-square keys).
	if rec.priorCastleWK != b.castleWK {
		b.hash ^= zobrist.CastleKey[zobrist.WhiteKingside]
	}
	if rec.priorCastleWQ != b.castleWQ {
		b.hash ^= zobrist.CastleKey[zobrist.WhiteQueenside]
	}
	if rec.priorCastleBK != b.castleBK {
		b.hash ^= zobrist.CastleKey[zobrist.BlackKingside]
	}
	if rec.priorCastleBQ != b.castleBQ {
		b.hash ^= zobrist.CastleKey[zobrist.BlackQueenside]
	}
	if rec.priorEP.IsValid() {
		b.hash ^= zobrist.EnPassantKey[rec.priorEP.File]
	}
	if b.epTarget.IsValid() {
		b.hash ^= zobrist.EnPassantKey[b.epTarget.File]
	}
	b.hash ^= zobrist.SideKey

	b.sideToMove = b.sideToMove.Flip()
	b.repetition[b.hash]++
}

func (b *Board) clearCastleRightForCorner(sq types.Square) {
	color, kingside, ok := isRookCorner(sq)
	if !ok {
		return
	}
	switch {
	case color == types.White && kingside:
		b.castleWK = false
	case color == types.White && !kingside:
		b.castleWQ = false
	case color == types.Black && kingside:
		b.castleBK = false
	default:
		b.castleBQ = false
	}
}

// UndoMove pops the most recent undo record and restores the pre-move
// state exactly. Fails with ErrUnderflow if no move is pending undo.
func (b *Board) UndoMove() error {
	if len(b.undo) == 0 {
		b.log.Error("undo called with an empty undo stack")
		return ErrUnderflow
	}
	rec := b.undo[len(b.undo)-1]
	b.undo = b.undo[:len(b.undo)-1]

	// the hash being retired is the current one; decrement its repetition
	// count before restoring the prior hash.
	b.repetition[b.hash]--
	if b.repetition[b.hash] <= 0 {
		delete(b.repetition, b.hash)
	}

	m := rec.move

	if m.Castle {
		color := rec.movingPiece.Color()
		rank := int8(0)
		if color == types.Black {
			rank = 7
		}
		if m.To.File == 6 {
			rookTo := types.NewSquare(7, rank)
			rookFrom := types.NewSquare(5, rank)
			rook := b.grid[rookFrom.Rank][rookFrom.File]
			b.grid[rookFrom.Rank][rookFrom.File] = types.Empty
			b.occupied.remove(rookFrom)
			b.grid[rookTo.Rank][rookTo.File] = rook
			b.occupied.add(rookTo)
		} else {
			rookTo := types.NewSquare(0, rank)
			rookFrom := types.NewSquare(3, rank)
			rook := b.grid[rookFrom.Rank][rookFrom.File]
			b.grid[rookFrom.Rank][rookFrom.File] = types.Empty
			b.occupied.remove(rookFrom)
			b.grid[rookTo.Rank][rookTo.File] = rook
			b.occupied.add(rookTo)
		}
	}

	// clear destination, restore origin with the original (pre-promotion)
	// piece, restore the captured piece (possibly on a different square
	// for en passant).
	b.grid[m.To.Rank][m.To.File] = types.Empty
	b.occupied.remove(m.To)
	b.grid[m.From.Rank][m.From.File] = rec.movingPiece
	b.occupied.add(m.From)
	if !rec.capturedPiece.IsEmpty() {
		b.grid[rec.capturedSquare.Rank][rec.capturedSquare.File] = rec.capturedPiece
		b.occupied.add(rec.capturedSquare)
	}

	if rec.movingPiece.Type() == types.King {
		b.kingSq[rec.movingPiece.Color()] = m.From
	}

	b.castleWK, b.castleWQ = rec.priorCastleWK, rec.priorCastleWQ
	b.castleBK, b.castleBQ = rec.priorCastleBK, rec.priorCastleBQ
	b.epTarget = rec.priorEP
	b.halfmoveClock = rec.priorHalfmove
	b.fullmoveNumber = rec.priorFullmove
	b.sideToMove = rec.priorSideToMove
	b.hash = rec.priorHash
	b.inCheck = false // stale after undo; recomputed by the next generate call

	return nil
}
