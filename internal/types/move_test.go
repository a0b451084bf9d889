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

func TestMoveStringBasic(t *testing.T) {
	m := NewBasicMove(NewSquare(0, 0), NewSquare(7, 0))
	assert.Equal(t, "a1h1", m.String())
}

func TestMoveStringPromotion(t *testing.T) {
	m := NewPromotionMove(Queen, NewSquare(0, 6), NewSquare(0, 7))
	assert.Equal(t, "a7a8q", m.String())
}

func TestMoveStringCastle(t *testing.T) {
	assert.Equal(t, "e1g1", MoveCastleKing.String())
	assert.Equal(t, "e1c1", MoveCastleQueen.String())
}

func TestMoveStringEnPassant(t *testing.T) {
	m := NewEnPassantMove(3, 4)
	assert.Equal(t, "d5e6", m.String())
}
