package config

// searchConfiguration holds the knobs for iterative deepening, quiescence
// and the transposition table.
type searchConfiguration struct {
	// MinDepth is the first depth tried by iterative deepening. spec.md
	// §9 leaves this an open question between 1 and 2; we pick 1 so even
	// a vanishingly small time budget still completes one iteration.
	MinDepth int

	// MinTranspositionDepth is the shallowest depth allowed into the
	// transposition table.
	MinTranspositionDepth int

	// MaxAgeDiff is the largest age gap an entry survives; Prune evicts
	// entries whose age gap exceeds it.
	MaxAgeDiff int

	// TTSizeMB is a transposition table size setting. tt.Table does not
	// read it: the table is a map with no size bound.
	TTSizeMB int

	UsePonder bool

	// FiftyMoveRule enables a draw return once the half-move clock
	// reaches 100 plies (spec.md §9 leaves this an open question; see
	// DESIGN.md).
	FiftyMoveRule bool
}

func init() {
	Settings.Search.MinDepth = 1
	Settings.Search.MinTranspositionDepth = 2
	Settings.Search.MaxAgeDiff = 3
	Settings.Search.TTSizeMB = 64
	Settings.Search.UsePonder = true
	Settings.Search.FiftyMoveRule = true
}
