/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rkane/bitchess/internal/attacks"
	"github.com/rkane/bitchess/internal/board"
	"github.com/rkane/bitchess/internal/types"
)

// TestThreatsSeesThroughCKing checks that a slider's attack is not
// blocked by the current side's own king: a king standing between a
// checking rook and the square behind it does not protect that square,
// since stepping there would just walk back into the same check.
func TestThreatsSeesThroughCKing(t *testing.T) {
	tables := attacks.NewTables()
	// White king e1, black rook h1, f1/g1 empty: the rook's attack runs
	// through e1 and should also cover d1/c1/b1/a1 behind it.
	b := board.FromFEN("8/8/8/8/8/8/8/4K2r")

	threats := Threats(b, tables)

	behindKing := types.NewSquare(3, 0) // d1
	assert.True(t, threats.Has(behindKing))
	assert.True(t, threats.Has(b.CKing))
}

// TestThreatsIndependentOfCKingSquareItself verifies Threats always
// excludes the current king's own occupancy from blocker consideration,
// regardless of which square the king happens to stand on.
func TestThreatsIndependentOfCKingSquareItself(t *testing.T) {
	tables := attacks.NewTables()

	onE1 := board.FromFEN("8/8/8/8/8/8/8/4K2r")
	onD1 := board.FromFEN("8/8/8/8/8/8/8/3K3r") // king moved one square left, rook unchanged

	// Both kings sit strictly between the rook and the board edge, on the
	// same rank, so in both cases the rook's attack should reach all the
	// way to a1.
	assert.True(t, Threats(onE1, tables).Has(types.NewSquare(0, 0)))
	assert.True(t, Threats(onD1, tables).Has(types.NewSquare(0, 0)))
}

func TestGenMovesBitsLoneKingYieldsOnlyKingEntry(t *testing.T) {
	tables := attacks.NewTables()
	// A lone white king in the corner has no knight/bishop/rook/pawn
	// entries, only the trailing king entry.
	b := board.FromFEN("8/8/8/8/8/8/8/K7")

	entries := GenMovesBits(b, tables)
	a := assert.New(t)
	a.Len(entries, 1)
	a.Equal(b.CKing, entries[0].From)
}
