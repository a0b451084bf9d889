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

// Package evaluator gives alpha-beta a static score for positions it does
// not want to search further: material balance plus a small
// piece-square bonus for pawns and knights. It has no notion of mobility,
// king safety or pawn structure -- those are out of scope for the core
// search, see DESIGN.md.
package evaluator

import (
	"github.com/rkane/bitchess/internal/board"
	"github.com/rkane/bitchess/internal/position"
	"github.com/rkane/bitchess/internal/types"
)

// pawnBonus and knightBonus are indexed as the board is: rank 0 at index
// 0, rank 7 at index 63, file A to H left to right. The side to move
// always advances toward higher ranks in this representation, so these
// tables apply directly to Curr's pieces; Other's pieces are looked up
// at the rank-mirrored square.
var pawnBonus = [64]types.Value{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -10, -10, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightBonus = [64]types.Value{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

func mirror(sq types.Square) types.Square {
	return types.NewSquare(sq.File(), 7-sq.Rank())
}

// Evaluate returns a static score for pos from the side-to-move's point
// of view: positive favors Curr, negative favors Other.
func Evaluate(pos *position.Position) types.Value {
	b := pos.Board
	var score types.Value

	score += materialTerm(b, b.Pawns(), types.PawnValue)
	score += materialTerm(b, b.Knight(), types.KnightValue)
	score += materialTerm(b, b.Bishop&^b.Rook, types.BishopValue)
	score += materialTerm(b, b.Rook&^b.Bishop, types.RookValue)
	score += materialTerm(b, b.Queen(), types.QueenValue)

	score += psqTerm(b, pawnBonus, b.Pawns())
	score += psqTerm(b, knightBonus, b.Knight())

	return score
}

// materialTerm counts pieces of one kind, worth val each: Curr's pieces
// add, Other's subtract.
func materialTerm(b *board.Board, pieces types.Bitboard, val types.Value) types.Value {
	currCount := (pieces & b.Curr).PopCount()
	otherCount := (pieces & b.Other).PopCount()
	return types.Value(currCount-otherCount) * val
}

// psqTerm sums table[sq] for every Curr piece in pieces and subtracts
// table[mirror(sq)] for every Other piece, so both sides are judged by
// the same table in their own direction of travel.
func psqTerm(b *board.Board, table [64]types.Value, pieces types.Bitboard) types.Value {
	var total types.Value

	curr := pieces & b.Curr
	for curr != 0 {
		sq := curr.Lsb()
		curr &= curr - 1
		total += table[sq]
	}
	other := pieces & b.Other
	for other != 0 {
		sq := other.Lsb()
		other &= other - 1
		total -= table[mirror(sq)]
	}
	return total
}
