/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rkane/bitchess/internal/types"
)

// TestMagicLookupMatchesDirectRayWalk checks, for every square and every
// blocker subset of that square's relevant-occupancy mask, that the
// magic-indexed table lookup agrees with a direct ray walk over the same
// occupancy -- the property the whole magic-bitboard scheme depends on.
func TestMagicLookupMatchesDirectRayWalk(t *testing.T) {
	tables := NewTables()

	for sq := types.Square(0); sq < 64; sq++ {
		checkSquare(t, tables.Bishop[sq], tables, bishopDirs, sq, tables.BishopAttacks)
		checkSquare(t, tables.Rook[sq], tables, rookDirs, sq, tables.RookAttacks)
	}
}

func checkSquare(
	t *testing.T,
	m Magic,
	tables *Tables,
	dirs [4]direction,
	sq types.Square,
	lookup func(types.Square, types.Bitboard) types.Bitboard,
) {
	t.Helper()
	var b types.Bitboard
	for {
		want := slidingAttack(dirs, sq, b)
		got := lookup(sq, b)
		assert.Equalf(t, want, got, "square %d occupancy %#x", sq, uint64(b))

		b = (b - m.Mask) & m.Mask
		if b == 0 {
			break
		}
	}
}

func TestQueenAttacksIsUnionOfBishopAndRook(t *testing.T) {
	tables := NewTables()
	sq := types.Square(27) // d4
	occ := types.Bitboard(0)

	want := tables.BishopAttacks(sq, occ) | tables.RookAttacks(sq, occ)
	assert.Equal(t, want, tables.QueenAttacks(sq, occ))
}

func TestKnightAndKingAttacksAreSymmetricAtBoardCenter(t *testing.T) {
	tables := NewTables()
	// d4 and e5 are reflections of each other through the board center.
	d4 := types.NewSquare(3, 3)
	e5 := types.NewSquare(4, 4)
	assert.Equal(t, tables.Knight[d4].PopCount(), tables.Knight[e5].PopCount())
	assert.Equal(t, tables.King[d4].PopCount(), tables.King[e5].PopCount())
}
