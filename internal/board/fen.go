package board

import (
	"fmt"
	"strconv"
	"strings"

	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/zobrist"
)

// LoadFEN parses a six-field position description (piece placement,
// side-to-move, castling rights, en passant target, half-move clock,
// full-move number) and replaces the receiver's state with it. Fails with
// ErrBadPositionSyntax if any field is missing or malformed.
func (b *Board) LoadFEN(fen string) error {
	if b.log == nil {
		b.log = myLogging.GetLog("board")
	}
	if err := b.loadFEN(fen); err != nil {
		b.log.Warningf("fen %q rejected: %v", fen, err)
		return err
	}
	return nil
}

func (b *Board) loadFEN(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) != 6 {
		return fmt.Errorf("%w: expected 6 fields, got %d", ErrBadPositionSyntax, len(fields))
	}

	var grid [8][8]types.Piece
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrBadPositionSyntax, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i // FEN ranks run 8 -> 1
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				pt := pieceTypeFromLetter(byte(ch))
				if pt == types.NoPieceType || file > 7 {
					return fmt.Errorf("%w: bad piece placement %q", ErrBadPositionSyntax, fields[0])
				}
				color := types.White
				if ch >= 'a' && ch <= 'z' {
					color = types.Black
				}
				grid[rank][file] = types.MakePiece(color, pt)
				file++
			}
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %q does not sum to 8 files", ErrBadPositionSyntax, rankStr)
		}
	}

	var side types.Color
	switch fields[1] {
	case "w":
		side = types.White
	case "b":
		side = types.Black
	default:
		return fmt.Errorf("%w: bad side to move %q", ErrBadPositionSyntax, fields[1])
	}

	var wk, wq, bk, bq bool
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				wk = true
			case 'Q':
				wq = true
			case 'k':
				bk = true
			case 'q':
				bq = true
			default:
				return fmt.Errorf("%w: bad castling rights %q", ErrBadPositionSyntax, fields[2])
			}
		}
	}

	ep := types.SqNone
	if fields[3] != "-" {
		sq, err := types.ParseSquare(fields[3])
		if err != nil {
			return fmt.Errorf("%w: bad en passant target %q", ErrBadPositionSyntax, fields[3])
		}
		ep = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return fmt.Errorf("%w: bad half-move clock %q", ErrBadPositionSyntax, fields[4])
	}

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return fmt.Errorf("%w: bad full-move number %q", ErrBadPositionSyntax, fields[5])
	}

	// commit
	b.grid = grid
	b.sideToMove = side
	b.castleWK, b.castleWQ, b.castleBK, b.castleBQ = wk, wq, bk, bq
	b.epTarget = ep
	b.halfmoveClock = halfmove
	b.fullmoveNumber = fullmove
	b.inCheck = false
	b.undo = b.undo[:0]
	b.repetition = make(map[uint64]int)

	b.occupied = squareSet{}
	for r := int8(0); r < 8; r++ {
		for f := int8(0); f < 8; f++ {
			if !b.grid[r][f].IsEmpty() {
				b.occupied.add(types.NewSquare(f, r))
			}
		}
	}
	recomputeKingSquares(b)
	b.hash = b.computeHashFromScratch()
	b.repetition[b.hash] = 1
	return nil
}

// FEN serializes the board to a position description. It is the exact
// inverse of LoadFEN for any legal position.
func (b *Board) FEN() string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		rank := 7 - i
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.grid[rank][file]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if i != 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.sideToMove.String())

	sb.WriteByte(' ')
	rights := ""
	if b.castleWK {
		rights += "K"
	}
	if b.castleWQ {
		rights += "Q"
	}
	if b.castleBK {
		rights += "k"
	}
	if b.castleBQ {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	sb.WriteByte(' ')
	sb.WriteString(b.epTarget.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))

	return sb.String()
}

func pieceTypeFromLetter(ch byte) types.PieceType {
	lower := ch
	if lower >= 'A' && lower <= 'Z' {
		lower += 'a' - 'A'
	}
	switch lower {
	case 'p':
		return types.Pawn
	case 'n':
		return types.Knight
	case 'b':
		return types.Bishop
	case 'r':
		return types.Rook
	case 'q':
		return types.Queen
	case 'k':
		return types.King
	default:
		return types.NoPieceType
	}
}

// computeHashFromScratch recomputes the Zobrist hash per spec.md §4.2: XOR
// of every occupied (piece,square) key, the side-to-move key iff Black is
// to move, the castling-rights keys currently held, and the en passant
// file key iff a target square exists.
func (b *Board) computeHashFromScratch() uint64 {
	var h uint64
	for _, sq := range b.occupied.list {
		p := b.PieceAt(sq)
		h ^= zobrist.PieceKey[zobrist.PieceIndex(p)][sq.Index()]
	}
	if b.sideToMove == types.Black {
		h ^= zobrist.SideKey
	}
	if b.castleWK {
		h ^= zobrist.CastleKey[zobrist.WhiteKingside]
	}
	if b.castleWQ {
		h ^= zobrist.CastleKey[zobrist.WhiteQueenside]
	}
	if b.castleBK {
		h ^= zobrist.CastleKey[zobrist.BlackKingside]
	}
	if b.castleBQ {
		h ^= zobrist.CastleKey[zobrist.BlackQueenside]
	}
	if b.epTarget.IsValid() {
		h ^= zobrist.EnPassantKey[b.epTarget.File]
	}
	return h
}
