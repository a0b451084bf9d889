/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPushPopHas(t *testing.T) {
	var b Bitboard
	b = b.PushSquare(Square(12))
	assert.True(t, b.Has(Square(12)))
	assert.Equal(t, 1, b.PopCount())
	b = b.PopSquare(Square(12))
	assert.False(t, b.Has(Square(12)))
	assert.Equal(t, BbZero, b)
}

func TestBitboardPopLsb(t *testing.T) {
	b := Square(3).Bb() | Square(10).Bb() | Square(63).Bb()
	var got []Square
	for b != 0 {
		got = append(got, b.PopLsb())
	}
	assert.Equal(t, []Square{3, 10, 63}, got)
	assert.Equal(t, BbZero, b)
}

func TestBitboardSwapBytes(t *testing.T) {
	b := Rank1Mask
	assert.Equal(t, Rank8Mask, b.SwapBytes())
	assert.Equal(t, b, b.SwapBytes().SwapBytes())
}

func TestBitboardNthSetSquare(t *testing.T) {
	b := Square(1).Bb() | Square(5).Bb() | Square(40).Bb()
	assert.Equal(t, Square(1), b.NthSetSquare(0))
	assert.Equal(t, Square(5), b.NthSetSquare(1))
	assert.Equal(t, Square(40), b.NthSetSquare(2))
}

func TestLightDarkSquaresPartitionTheBoard(t *testing.T) {
	assert.Equal(t, BbZero, LightSquares&DarkSquares)
	assert.Equal(t, BbAll, LightSquares|DarkSquares)
	assert.Equal(t, 32, LightSquares.PopCount())
	assert.Equal(t, 32, DarkSquares.PopCount())
}
