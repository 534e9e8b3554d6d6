package board

import "errors"

// ErrBadPositionSyntax is returned when a FEN-style position description
// fails to parse or fails a basic sanity check.
var ErrBadPositionSyntax = errors.New("board: bad position syntax")

// ErrUnderflow is returned by UndoMove when the undo stack is empty.
var ErrUnderflow = errors.New("board: undo stack underflow")

// ErrBadMoveSyntax is returned when a coordinate move string is not 4 or 5
// characters, or names squares off the board.
var ErrBadMoveSyntax = errors.New("board: bad move syntax")

// InvariantViolation is the panic value for board state corruption a
// correct caller could never trigger. spec.md §7 classifies this as fatal
// for the process. The board raises it only when New cannot load the
// starting position; undo underflow is reported as ErrUnderflow instead,
// and king captures and hash mismatches are not detected.
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string {
	return "board: invariant violation: " + e.Reason
}
