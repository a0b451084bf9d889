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

package types

// Square is a board square, 0 = a1 .. 63 = h8, file = sq % 8, rank = sq / 8.
type Square int8

// SqNone marks "no square"; it is not a Valid square. (An empty Board's
// king squares are 0, not SqNone.)
const SqNone Square = -1

const sqFiles = "abcdefgh"
const sqRanks = "12345678"

// NewSquare builds a Square from a zero-based file (0=a..7=h) and rank
// (0=rank1..7=rank8).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the zero-based file, 0=a .. 7=h.
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the zero-based rank, 0=rank1 .. 7=rank8.
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// Bb returns the single-bit Bitboard for this square.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << uint(sq)
}

// Valid reports whether sq is within the 0..63 range.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < 64
}

// String renders the square in algebraic notation, e.g. "e4".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string(sqFiles[sq.File()]) + string(sqRanks[sq.Rank()])
}
