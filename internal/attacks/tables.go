/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package attacks builds, once at startup, every lookup table the move
// generator needs: knight/king/pawn destination tables and magic-bitboard
// indexed sliding-attack tables for bishops and rooks. Tables is immutable
// once built and safe for concurrent read access.
package attacks

import "github.com/rkane/bitchess/internal/types"

// bishopShift and rookShift are fixed across all squares -- unlike a
// "fancy" per-square variable shift, every square's magic index is
// computed with the same shift, trading table size (some squares waste
// slots their occupancy never uses) for a simpler, uniform indexing
// scheme.
const (
	bishopShift = 55
	rookShift   = 52

	bishopTableSize = 1 << (64 - bishopShift)
	rookTableSize   = 1 << (64 - rookShift)
)

// direction is a ray step used only while building the tables.
type direction int

const (
	north direction = 8
	south direction = -8
	east  direction = 1
	west  direction = -1
	ne    direction = 9
	nw    direction = 7
	se    direction = -7
	sw    direction = -9
)

var bishopDirs = [4]direction{ne, nw, se, sw}
var rookDirs = [4]direction{north, south, east, west}

// step returns the square reached by moving one step in dir from sq, and
// whether that step stayed on the board (it rejects the file/rank wrap
// a raw square+offset addition would otherwise silently produce).
func step(sq types.Square, dir direction) (types.Square, bool) {
	file, rank := sq.File(), sq.Rank()
	switch dir {
	case north:
		if rank == 7 {
			return 0, false
		}
	case south:
		if rank == 0 {
			return 0, false
		}
	case east:
		if file == 7 {
			return 0, false
		}
	case west:
		if file == 0 {
			return 0, false
		}
	case ne:
		if file == 7 || rank == 7 {
			return 0, false
		}
	case nw:
		if file == 0 || rank == 7 {
			return 0, false
		}
	case se:
		if file == 7 || rank == 0 {
			return 0, false
		}
	case sw:
		if file == 0 || rank == 0 {
			return 0, false
		}
	}
	to := types.Square(int(sq) + int(dir))
	return to, to.Valid()
}

// slidingAttack walks every direction in dirs from sq until it runs off
// the board or hits an occupied square (which it includes before
// stopping). With occ == 0 this produces the full-ray attack set used to
// build both the relevant-occupancy mask and, per subset, the reference
// attack set a candidate magic must reproduce.
func slidingAttack(dirs [4]direction, sq types.Square, occ types.Bitboard) types.Bitboard {
	var attack types.Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next, ok := step(s, d)
			if !ok {
				break
			}
			s = next
			attack = attack.PushSquare(s)
			if occ.Has(s) {
				break
			}
		}
	}
	return attack
}

// Magic holds the fixed-shift magic-bitboard parameters for one square.
type Magic struct {
	Mask   types.Bitboard
	Number types.Bitboard
	Offset int
	Shift  uint
}

func (m *Magic) index(occ types.Bitboard) int {
	occ &= m.Mask
	occ *= m.Number
	occ >>= m.Shift
	return int(occ)
}

// Tables holds every precomputed attack lookup the move generator and
// threat query need. Built once via NewTables and never mutated again.
type Tables struct {
	Knight         [64]types.Bitboard
	King           [64]types.Bitboard
	PawnMoves      [64]types.Bitboard
	PawnTakes      [64]types.Bitboard
	OtherPawnTakes [64]types.Bitboard

	Bishop      [64]Magic
	Rook        [64]Magic
	bishopTable []types.Bitboard
	rookTable   []types.Bitboard
}

// BishopAttacks returns the bishop attack bitboard from sq given blocker
// occupancy occ, via magic-bitboard lookup.
func (t *Tables) BishopAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	m := &t.Bishop[sq]
	return t.bishopTable[m.Offset+m.index(occ)]
}

// RookAttacks returns the rook attack bitboard from sq given blocker
// occupancy occ, via magic-bitboard lookup.
func (t *Tables) RookAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	m := &t.Rook[sq]
	return t.rookTable[m.Offset+m.index(occ)]
}

// QueenAttacks is the union of bishop and rook attacks from sq.
func (t *Tables) QueenAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	return t.BishopAttacks(sq, occ) | t.RookAttacks(sq, occ)
}

// NewTables builds every attack table. It is deterministic (the magic
// search uses a fixed PRNG seed per square) so repeated calls produce
// identical tables.
func NewTables() *Tables {
	t := &Tables{
		bishopTable: make([]types.Bitboard, 64*bishopTableSize),
		rookTable:   make([]types.Bitboard, 64*rookTableSize),
	}
	for sq := types.Square(0); sq < 64; sq++ {
		t.Knight[sq] = knightAttack(sq)
		t.King[sq] = kingAttack(sq)
		t.PawnMoves[sq], t.PawnTakes[sq], t.OtherPawnTakes[sq] = pawnAttacks(sq)
	}
	initMagics(bishopDirs, bishopShift, t.Bishop[:], t.bishopTable, bishopTableSize)
	initMagics(rookDirs, rookShift, t.Rook[:], t.rookTable, rookTableSize)
	return t
}

func knightAttack(sq types.Square) types.Bitboard {
	file, rank := sq.File(), sq.Rank()
	deltas := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	var out types.Bitboard
	for _, d := range deltas {
		f, r := file+d[0], rank+d[1]
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		out = out.PushSquare(types.NewSquare(f, r))
	}
	return out
}

func kingAttack(sq types.Square) types.Bitboard {
	file, rank := sq.File(), sq.Rank()
	var out types.Bitboard
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			f, r := file+df, rank+dr
			if f < 0 || f > 7 || r < 0 || r > 7 {
				continue
			}
			out = out.PushSquare(types.NewSquare(f, r))
		}
	}
	return out
}

// pawnAttacks returns, for a pawn sitting at sq: the single-push
// destination for the side to move (who always pushes toward higher
// ranks under the inversion convention), that side's diagonal capture
// destinations, and the diagonal capture destinations of an opponent
// pawn sitting at sq (who pushes toward lower ranks).
func pawnAttacks(sq types.Square) (push, takes, otherTakes types.Bitboard) {
	file, rank := sq.File(), sq.Rank()
	if rank <= 6 {
		push = push.PushSquare(types.NewSquare(file, rank+1))
	}
	if rank <= 6 {
		if file > 0 {
			takes = takes.PushSquare(types.NewSquare(file-1, rank+1))
		}
		if file < 7 {
			takes = takes.PushSquare(types.NewSquare(file+1, rank+1))
		}
	}
	if rank >= 1 {
		if file > 0 {
			otherTakes = otherTakes.PushSquare(types.NewSquare(file-1, rank-1))
		}
		if file < 7 {
			otherTakes = otherTakes.PushSquare(types.NewSquare(file+1, rank-1))
		}
	}
	return
}
