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

// Color is the side to move or the owner of a piece.
type Color int8

const (
	White Color = iota
	Black
)

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return c ^ 1
}

// String renders "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType identifies a piece kind independent of color.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// letters indexed by PieceType, lowercase.
var pieceTypeLetters = [...]byte{0, 'p', 'n', 'b', 'r', 'q', 'k'}

// Letter returns the lowercase FEN letter for the piece type.
func (pt PieceType) Letter() byte {
	return pieceTypeLetters[pt]
}

// Piece is a single FEN character: uppercase is White, lowercase is Black.
// Empty is the distinct "no piece" marker.
type Piece byte

// Empty is the "no piece" marker.
const Empty Piece = 0

// MakePiece builds the piece code for a color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	letter := pieceTypeLetters[pt]
	if c == White {
		letter -= 'a' - 'A'
	}
	return Piece(letter)
}

// IsEmpty reports whether the piece code is the empty marker.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Color reports the owner of the piece. Undefined for Empty.
func (p Piece) Color() Color {
	if p >= 'a' && p <= 'z' {
		return Black
	}
	return White
}

// Type reports the piece kind. Returns NoPieceType for Empty.
func (p Piece) Type() PieceType {
	letter := byte(p)
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	for pt := Pawn; pt <= King; pt++ {
		if pieceTypeLetters[pt] == letter {
			return pt
		}
	}
	return NoPieceType
}

// Value is the static material worth of a piece type in centipawns.
func (pt PieceType) Value() int {
	switch pt {
	case Pawn:
		return 100
	case Knight:
		return 300
	case Bishop:
		return 300
	case Rook:
		return 500
	case Queen:
		return 900
	default:
		return 0
	}
}

// String renders the FEN character, or "." for Empty.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	return string(rune(p))
}
