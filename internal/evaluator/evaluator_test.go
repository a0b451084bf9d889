/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkane/bitchess/internal/attacks"
	"github.com/rkane/bitchess/internal/position"
	"github.com/rkane/bitchess/internal/types"
)

func TestEvaluateStartingPositionIsBalanced(t *testing.T) {
	tables := attacks.NewTables()
	pos, err := position.FromFEN(tables, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	assert.Equal(t, types.ValueDraw, Evaluate(pos))
}

func TestEvaluateFavorsTheSideWithAnExtraQueen(t *testing.T) {
	tables := attacks.NewTables()
	pos, err := position.FromFEN(tables, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, int(Evaluate(pos)), 0)
}
