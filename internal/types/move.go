//
// corvid - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

// Move is an origin square, a destination square and the three disjoint
// special-move fields. The zero value has both squares at a1, so
// IsInstantiated reports true for it; use NoMove for an absent move and
// NewMove to build a real one.
type Move struct {
	From      Square
	To        Square
	EnPassant bool
	Castle    bool
	Promotion PieceType
}

// NewMove builds a plain move with no special flags.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NoMove is the canonical "absent move" value: both squares are SqNone, so
// IsInstantiated is false. The bare zero value Move{} is NOT equivalent to
// NoMove - its squares are (0,0), i.e. a1, which IsValid() considers a real
// square - so any code that needs an "unset" move must use NoMove
// explicitly rather than relying on a zero-initialized Move.
var NoMove = Move{From: SqNone, To: SqNone}

// IsInstantiated reports whether both squares of the move exist.
func (m Move) IsInstantiated() bool {
	return m.From.IsValid() && m.To.IsValid()
}

// Equals compares origin, destination and promotion, per spec.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// String renders UCI coordinate notation: "e2e4", "e7e8q".
func (m Move) String() string {
	if !m.IsInstantiated() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += string(rune(m.Promotion.Letter()))
	}
	return s
}
