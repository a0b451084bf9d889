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

// Package types holds the primitive data types shared by every other
// package in the engine: bitboards, squares, pieces and moves. Bit i of a
// Bitboard corresponds to square i = file + rank*8, file 0 = A-file,
// rank 0 = the first rank.
package types

import "math/bits"

// Bitboard is a 64 bit unsigned int with one bit per square.
type Bitboard uint64

// BbZero is the empty bitboard.
const BbZero Bitboard = 0

// BbAll has every square set.
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

// Rank masks, used throughout FEN parsing, en-passant encoding and
// insufficient-material tests.
const (
	Rank1Mask Bitboard = 0x00000000000000FF
	Rank2Mask Bitboard = 0x000000000000FF00
	Rank5Mask Bitboard = 0x000000FF00000000
	Rank7Mask Bitboard = 0x00FF000000000000
	Rank8Mask Bitboard = 0xFF00000000000000

	// LightSquares and DarkSquares classify bishops for the
	// insufficient-material draw test.
	LightSquares Bitboard = 0x55AA55AA55AA55AA
	DarkSquares  Bitboard = 0xAA55AA55AA55AA55
)

// PushSquare sets the bit for square sq.
func (b Bitboard) PushSquare(sq Square) Bitboard {
	return b | sq.Bb()
}

// PopSquare clears the bit for square sq.
func (b Bitboard) PopSquare(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// Has reports whether the bit for square sq is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the least significant set bit. The result is
// undefined if b is empty.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the square of the least significant set bit and clears
// it, in one step -- the usual way to iterate a bitboard's squares.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

// SwapBytes byte-reverses the bitboard, flipping ranks top-to-bottom.
// Used by Board.Invert to normalize the side to move.
func (b Bitboard) SwapBytes() Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

// NthSetSquare returns the square of the n-th set bit (0-indexed),
// scanning from the least significant bit. Used by the rollout random
// move sampler. It does not check n: for n >= b.PopCount() it returns
// Square(64), which is not a valid square, so callers must keep n in
// [0, b.PopCount()) themselves.
func (b Bitboard) NthSetSquare(n int) Square {
	for i := 0; i < n; i++ {
		b &= b - 1
	}
	return b.Lsb()
}
