package zobrist

import "github.com/corvidchess/corvid/internal/types"

// PieceIndex maps a piece code to its 0-11 slot in PieceKey: white
// pawn..king are 0-5, black pawn..king are 6-11.
func PieceIndex(p types.Piece) int {
	idx := int(p.Type()) - int(types.Pawn)
	if p.Color() == types.Black {
		idx += 6
	}
	return idx
}
