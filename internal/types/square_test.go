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

func TestSquareFileRank(t *testing.T) {
	sq := NewSquare(4, 0)
	assert.Equal(t, 4, sq.File())
	assert.Equal(t, 0, sq.Rank())
	assert.Equal(t, "e1", sq.String())

	sq = NewSquare(0, 7)
	assert.Equal(t, "a8", sq.String())
	assert.Equal(t, Square(56), sq)
}

func TestSquareBb(t *testing.T) {
	sq := Square(0)
	assert.Equal(t, Bitboard(1), sq.Bb())
	sq = Square(63)
	assert.Equal(t, Bitboard(1)<<63, sq.Bb())
}

func TestSquareValid(t *testing.T) {
	assert.True(t, Square(0).Valid())
	assert.True(t, Square(63).Valid())
	assert.False(t, SqNone.Valid())
	assert.False(t, Square(64).Valid())
}
