/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rkane/bitchess/internal/types"
)

var (
	e2e4 = types.NewBasicMove(types.NewSquare(4, 1), types.NewSquare(4, 3))
	d7d5 = types.NewBasicMove(types.NewSquare(3, 6), types.NewSquare(3, 4))
	b1c3 = types.NewBasicMove(types.NewSquare(1, 0), types.NewSquare(2, 2))
)

func TestNewMoveSlice(t *testing.T) {
	ms := NewMoveSlice(8)
	assert.Equal(t, 0, len(*ms))
	assert.Equal(t, 8, cap(*ms))
}

func TestPushBack(t *testing.T) {
	ms := NewMoveSlice(2)
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(b1c3)
	assert.Equal(t, 3, len(*ms))
	assert.Equal(t, []types.Move{e2e4, d7d5, b1c3}, []types.Move(*ms))
}

func TestString(t *testing.T) {
	ms := NewMoveSlice(4)
	assert.Equal(t, "", ms.String())
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(b1c3)
	assert.Equal(t, "e2e4 d7d5 b1c3", ms.String())
}
