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

// Package movegen generates pseudo-legal moves and threat bitboards from
// a Board and a set of attack Tables. It knows nothing about check --
// filtering pseudo-legal moves down to legal ones, and computing the
// block-squares mask while in check, is Position's job.
package movegen

import (
	"github.com/rkane/bitchess/internal/attacks"
	"github.com/rkane/bitchess/internal/board"
	"github.com/rkane/bitchess/internal/types"
)

// BitsEntry is one origin square plus its destination bitboard -- the
// compact per-origin representation gen_moves_bits produces for every
// piece but pawns-about-to-promote and the special moves.
type BitsEntry struct {
	From types.Square
	Dest types.Bitboard
}

// Threats returns every square attacked by the opponent, with the
// current side's king treated as transparent so sliding attacks see
// through it (a king "blocking" its own check is not actually safe).
func Threats(b *board.Board, t *attacks.Tables) types.Bitboard {
	var out types.Bitboard
	all := b.All() &^ b.CKing.Bb()

	bishops := b.Bishop & b.Other
	for bishops != 0 {
		loc := bishops.PopLsb()
		out |= t.BishopAttacks(loc, all)
	}
	rooks := b.Rook & b.Other
	for rooks != 0 {
		loc := rooks.PopLsb()
		out |= t.RookAttacks(loc, all)
	}
	knights := b.Knight() & b.Other
	for knights != 0 {
		loc := knights.PopLsb()
		out |= t.Knight[loc]
	}
	pawns := b.Pawns() & b.Other
	for pawns != 0 {
		loc := pawns.PopLsb()
		out |= t.OtherPawnTakes[loc]
	}
	out |= t.King[b.OKing]
	return out
}

// GenMovesBits returns the per-origin bitboard moves for every
// bishop/queen, rook/queen, knight and pawn not on the seventh rank,
// plus a trailing entry for the king. Pawn entries with an empty
// destination set are omitted; bishop, rook, queen and knight entries are
// emitted even when their destination set is empty.
func GenMovesBits(b *board.Board, t *attacks.Tables) []BitsEntry {
	out := make([]BitsEntry, 0, 25)
	all := b.All()

	bishops := b.Bishop & b.Curr
	for bishops != 0 {
		loc := bishops.PopLsb()
		out = append(out, BitsEntry{loc, t.BishopAttacks(loc, all) &^ b.Curr})
	}
	rooks := b.Rook & b.Curr
	for rooks != 0 {
		loc := rooks.PopLsb()
		out = append(out, BitsEntry{loc, t.RookAttacks(loc, all) &^ b.Curr})
	}
	knights := b.Knight() & b.Curr
	for knights != 0 {
		loc := knights.PopLsb()
		out = append(out, BitsEntry{loc, t.Knight[loc] &^ b.Curr})
	}

	pawns := b.Pawn & 0x0000FFFFFFFFFF00 & b.Curr
	for pawns != 0 {
		loc := pawns.PopLsb()
		moves := t.PawnMoves[loc] &^ all
		if moves != 0 && loc.Rank() == 1 {
			moves |= types.Square(int(loc) + 16).Bb()
			moves &^= all
		}
		moves |= t.PawnTakes[loc] & b.Other
		if moves != 0 {
			out = append(out, BitsEntry{loc, moves})
		}
	}

	out = append(out, BitsEntry{b.CKing, t.King[b.CKing] &^ b.Curr})
	return out
}

// GenMovesSpecial returns en passant, promotion and castling moves, plus
// the threats bitboard if computing castling legality happened to need
// it (0 if not computed -- callers should treat 0 as "not yet known").
func GenMovesSpecial(b *board.Board, t *attacks.Tables) ([]types.Move, types.Bitboard) {
	var out []types.Move

	if top := b.Pawn >> 56; top != 0 {
		epFile := int(top.Lsb())
		if epFile != 0 && b.Curr&b.Pawn&types.NewSquare(epFile-1, 4).Bb() != 0 {
			out = append(out, types.NewEnPassantMove(epFile-1, epFile))
		}
		if epFile != 7 && b.Curr&b.Pawn&types.NewSquare(epFile+1, 4).Bb() != 0 {
			out = append(out, types.NewEnPassantMove(epFile+1, epFile))
		}
	}

	all := b.Curr | b.Other
	promotePawns := b.Pawn & b.Curr & types.Rank7Mask
	for promotePawns != 0 {
		loc := promotePawns.PopLsb()
		moves := t.PawnMoves[loc] &^ all
		moves |= t.PawnTakes[loc] & b.Other
		for moves != 0 {
			to := moves.PopLsb()
			out = append(out, types.NewPromotionMove(types.Queen, loc, to))
			out = append(out, types.NewPromotionMove(types.Bishop, loc, to))
			out = append(out, types.NewPromotionMove(types.Rook, loc, to))
			out = append(out, types.NewPromotionMove(types.Knight, loc, to))
		}
	}

	all = b.All()
	var threat types.Bitboard

	// b1, c1, d1 empty.
	if b.CastleCurr[0] && all&0b0000_1110 == 0 {
		threat = Threats(b, t)
		// d1, e1 unattacked.
		if threat&0b0001_1000 == 0 {
			out = append(out, types.MoveCastleQueen)
		}
	}
	// f1, g1 empty.
	if b.CastleCurr[1] && all&0b0110_0000 == 0 {
		if threat == 0 {
			threat = Threats(b, t)
		}
		// e1, f1 unattacked.
		if threat&0b0011_0000 == 0 {
			out = append(out, types.MoveCastleKing)
		}
	}

	return out, threat
}
