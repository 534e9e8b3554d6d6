package movegen

import "github.com/corvidchess/corvid/internal/board"

// Perft counts the leaf positions of the legal-move tree at the given
// depth, the standard correctness test for a move generator.
func (g *Generator) Perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := g.Generate(b, false)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.MakeMove(m)
		nodes += g.Perft(b, depth-1)
		_ = b.UndoMove()
	}
	return nodes
}
