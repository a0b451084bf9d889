/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkane/bitchess/internal/attacks"
	"github.com/rkane/bitchess/internal/board"
	"github.com/rkane/bitchess/internal/movegen"
)

func TestGenMovesCountAndThreatsOnQuietMiddlegame(t *testing.T) {
	tables := attacks.NewTables()
	p := &Position{
		Board:  board.FromFEN("1kr4r/1bq1pp1p/pn3Pp1/1pp4n/4P2P/P1NNQP1B/1PP5/2KR3R"),
		Tables: tables,
	}
	p.SetMoves()

	assert.Equal(t, 45, len(p.GenMoves()))
	// No castling rights, so move generation never needs the threats
	// bitboard and reports it as not computed (0).
	_, threat := movegen.GenMovesSpecial(p.Board, tables)
	assert.Equal(t, uint64(0), uint64(threat))
}

func TestTestEndgameCheckmateNotInvertedScoresWin(t *testing.T) {
	tables := attacks.NewTables()
	p, err := FromFEN(tables, "Kqk5/8/8/8/8/8/8/8 w - - 0 1")
	require.NoError(t, err)

	p.SetMoves()
	assert.Equal(t, EndgameWin, p.TestEndgame())
}

func TestTestEndgameStalemateIsDraw(t *testing.T) {
	tables := attacks.NewTables()
	p, err := FromFEN(tables, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	p.SetMoves()
	assert.Equal(t, EndgameDraw, p.TestEndgame())
}

func TestTestEndgameFiftyMoveRuleIsDraw(t *testing.T) {
	tables := attacks.NewTables()
	p, err := FromFEN(tables, "4k3/8/8/8/8/8/8/4K3 w - - 50 40")
	require.NoError(t, err)

	p.SetMoves()
	assert.Equal(t, EndgameDraw, p.TestEndgame())
}

func TestTestEndgameInsufficientMaterialIsDraw(t *testing.T) {
	tables := attacks.NewTables()
	p, err := FromFEN(tables, "4k3/8/8/8/8/8/8/4KN2 w - - 0 1")
	require.NoError(t, err)

	p.SetMoves()
	assert.Equal(t, EndgameDraw, p.TestEndgame())
}

func TestDoMoveAdvancesFullMovesOnlyAfterBlackMoves(t *testing.T) {
	tables := attacks.NewTables()
	p, err := FromFEN(tables, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	p.SetMoves()
	moves := p.GenMoves()
	require.NotEmpty(t, moves)

	start := p.FullMoves
	p.DoMove(moves[0])
	assert.Equal(t, start, p.FullMoves, "White's move must not advance the fullmove counter")

	p.Board.Invert()
	p.SetMoves()
	moves = p.GenMoves()
	require.NotEmpty(t, moves)
	p.DoMove(moves[0])
	assert.Equal(t, start+1, p.FullMoves, "Black's move must advance the fullmove counter")
}

func TestDoRolloutTerminatesWithAValidResult(t *testing.T) {
	tables := attacks.NewTables()
	p, err := FromFEN(tables, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	result := p.DoRollout()
	assert.Contains(t, []EndgameResult{EndgameLoss, EndgameDraw, EndgameWin}, result)
}
