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

// Package zobrist holds the process-global, read-only Zobrist key table
// used to fingerprint a chess position as a 64-bit hash. The table is
// seeded deterministically so the keys are identical across processes,
// which keeps transposition-table behavior (and tests) reproducible.
package zobrist

import "math/rand"

// seed is compiled-in so PieceKey/SideKey/CastleKey/EnPassantKey are
// identical across every process and every Board instance.
const seed = 0x5EED_C0FFEE_1234

// CastlingRight indexes CastleKey: white kingside, white queenside,
// black kingside, black queenside.
const (
	WhiteKingside = iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

var (
	// PieceKey is indexed [pieceIndex][squareIndex], one key per
	// (piece-type-and-color, square) combination.
	PieceKey [12][64]uint64

	// SideKey is XORed into the hash iff Black is to move.
	SideKey uint64

	// CastleKey holds one key per castling right currently held.
	CastleKey [4]uint64

	// EnPassantKey holds one key per file, XORed in iff an en passant
	// target square exists on that file.
	EnPassantKey [8]uint64
)

func init() {
	rng := rand.New(rand.NewSource(seed))
	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			PieceKey[p][sq] = rng.Uint64()
		}
	}
	SideKey = rng.Uint64()
	for i := range CastleKey {
		CastleKey[i] = rng.Uint64()
	}
	for i := range EnPassantKey {
		EnPassantKey[i] = rng.Uint64()
	}
}
