package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareParseAndString(t *testing.T) {
	sq, err := ParseSquare("e4")
	assert.NoError(t, err)
	assert.Equal(t, Square{File: 4, Rank: 3}, sq)
	assert.Equal(t, "e4", sq.String())

	abs, err := ParseSquare("-")
	assert.NoError(t, err)
	assert.Equal(t, SqNone, abs)
	assert.Equal(t, "-", abs.String())

	_, err = ParseSquare("z9")
	assert.Error(t, err)
}

func TestIsStrictlyBetween(t *testing.T) {
	a1, _ := ParseSquare("a1")
	h8, _ := ParseSquare("h8")
	d4, _ := ParseSquare("d4")
	e4, _ := ParseSquare("e4")

	assert.True(t, d4.IsStrictlyBetween(a1, h8))
	assert.False(t, e4.IsStrictlyBetween(a1, h8))
	assert.False(t, a1.IsStrictlyBetween(a1, h8))

	a5, _ := ParseSquare("a5")
	h5, _ := ParseSquare("h5")
	b5, _ := ParseSquare("b5")
	assert.True(t, b5.IsStrictlyBetween(a5, h5))
}

func TestDirection(t *testing.T) {
	a1, _ := ParseSquare("a1")
	h8, _ := ParseSquare("h8")
	df, dr, ok := Direction(a1, h8)
	assert.True(t, ok)
	assert.EqualValues(t, 1, df)
	assert.EqualValues(t, 1, dr)

	b1, _ := ParseSquare("b1")
	c3, _ := ParseSquare("c3")
	_, _, ok = Direction(b1, c3)
	assert.False(t, ok)
}
