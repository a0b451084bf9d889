/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkane/bitchess/internal/attacks"
	"github.com/rkane/bitchess/internal/position"
	"github.com/rkane/bitchess/internal/types"
)

func TestBestMoveFindsMateInOne(t *testing.T) {
	tables := attacks.NewTables()
	// White to move: Qa7-g7 is mate -- the queen is defended by the king
	// on f6, and g8/h7 are both covered by the queen on g7.
	pos, err := position.FromFEN(tables, "7k/Q7/5K2/8/8/8/8/8 w - - 0 1")
	require.NoError(t, err)

	m, _ := BestMove(pos, 2, types.Move{})
	require.NotEqual(t, types.Move{}, m)

	child := pos.Clone()
	child.DoMove(m)
	child.Board.Invert()
	child.SetMoves()
	// Black is mated with the board inverted, which TestEndgame scores as
	// EndgameLoss.
	assert.Equal(t, position.EndgameLoss, child.TestEndgame(),
		"the best move at depth 2 from a mate-in-one position should deliver mate")
}

func TestAlphabetaReturnsCheckmateScoreForAlreadyMatePosition(t *testing.T) {
	tables := attacks.NewTables()
	pos, err := position.FromFEN(tables, "Kqk5/8/8/8/8/8/8/8 w - - 0 1")
	require.NoError(t, err)

	score := Alphabeta(pos, types.Value(-1<<30), types.Value(1<<30), 1)
	assert.Equal(t, types.ValueCheckmate, score)
}

func TestMctsVisitsEqualsSumOfChildrenVisits(t *testing.T) {
	tables := attacks.NewTables()
	pos, err := position.FromFEN(tables, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	root := NewGameTree()
	for i := 0; i < 12; i++ {
		root.Search(pos.Clone())
	}

	sum := 0
	for _, c := range root.Children {
		sum += c.Visits
	}
	assert.Equal(t, sum, root.Visits)
}

func TestMctsPicksALegalMove(t *testing.T) {
	tables := attacks.NewTables()
	pos, err := position.FromFEN(tables, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	m, root := Mcts(pos, 16)
	require.NotEqual(t, types.Move{}, m)

	pos.SetMoves()
	legal := pos.GenMoves()
	found := false
	for _, lm := range legal {
		if lm == m {
			found = true
			break
		}
	}
	assert.True(t, found)
	assert.NotEmpty(t, root.Children)
}
