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

package attacks

import "github.com/rkane/bitchess/internal/types"

// seeds are the per-rank PRNG seeds used to pick magic candidates -- taken
// from the Stockfish magic initialization table, which finds good magics
// in the fewest attempts on average for a standard 64-square board.
var seeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// prng is the xorshift64star generator used to search for magic numbers.
// Based on public-domain code by Sebastiano Vigna (2014).
type prng struct {
	s uint64
}

func newPrng(seed uint64) *prng {
	return &prng{s: seed}
}

func (r *prng) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparse returns a candidate with roughly 1/8th of its bits set on
// average -- magics with few set bits are found faster.
func (r *prng) sparse() uint64 {
	return r.next() & r.next() & r.next()
}

// initMagics fills in magics[sq] and the shared flat table for every
// square, for one piece kind (bishop or rook), using the given ray
// directions and fixed shift.
func initMagics(dirs [4]direction, shift uint, magics []Magic, table []types.Bitboard, tableSize int) {
	var occupancy, reference [4096]types.Bitboard
	var epoch [4096]int
	attempt := 0

	for sq := types.Square(0); sq < 64; sq++ {
		file, rank := sq.File(), sq.Rank()
		edges := fileRankEdges(file, rank)

		m := &magics[sq]
		m.Mask = slidingAttack(dirs, sq, 0) &^ edges
		m.Shift = shift
		m.Offset = int(sq) * tableSize

		size := 0
		var b types.Bitboard
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(dirs, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		rng := newPrng(seeds[rank])
		for i := 0; i < size; {
			var candidate types.Bitboard
			for {
				candidate = types.Bitboard(rng.sparse())
				if ((candidate * m.Mask) >> 56).PopCount() >= 6 {
					continue
				}
				break
			}
			m.Number = candidate
			attempt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < attempt {
					epoch[idx] = attempt
					table[m.Offset+idx] = reference[i]
				} else if table[m.Offset+idx] != reference[i] {
					break
				}
			}
		}
	}
}

// fileRankEdges returns the board-edge squares not already on sq's own
// rank/file -- occupancy there never changes a sliding piece's reach
// along a ray starting from sq, so they are excluded from the relevant
// occupancy mask.
func fileRankEdges(file, rank int) types.Bitboard {
	var edges types.Bitboard
	// Rank 0 / rank 7, excluding sq's own rank.
	if rank != 0 {
		edges |= maskRank(0)
	}
	if rank != 7 {
		edges |= maskRank(7)
	}
	// File 0 / file 7, excluding sq's own file.
	if file != 0 {
		edges |= maskFile(0)
	}
	if file != 7 {
		edges |= maskFile(7)
	}
	return edges
}

func maskRank(rank int) types.Bitboard {
	var out types.Bitboard
	for f := 0; f < 8; f++ {
		out = out.PushSquare(types.NewSquare(f, rank))
	}
	return out
}

func maskFile(file int) types.Bitboard {
	var out types.Bitboard
	for r := 0; r < 8; r++ {
		out = out.PushSquare(types.NewSquare(file, r))
	}
	return out
}
