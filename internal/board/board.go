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

// Package board holds the mutable 64-square chess position: piece
// occupancy packed into five bitboards, castling rights and king
// locations. The board is always held from the moving side's point of
// view -- Curr is the side to move, Other is the opponent -- and is
// byte-swapped via Invert after every half-move so the side to move
// always "plays up the board". This halves the special-case code the
// move generator would otherwise need for Black.
package board

import (
	"github.com/rkane/bitchess/internal/assert"
	"github.com/rkane/bitchess/internal/types"
)

// Board is plain-old-data: copying a Board by value is always safe and
// is how the search and move generator explore alternatives.
type Board struct {
	Pawn   types.Bitboard // occupancy of all pawns; rank-8 byte doubles as the en-passant file marker
	Rook   types.Bitboard // occupancy of rooks and queens
	Bishop types.Bitboard // occupancy of bishops and queens
	Curr   types.Bitboard // occupancy of the side to move
	Other  types.Bitboard // occupancy of the opponent

	CKing types.Square // current side's king square
	OKing types.Square // opponent's king square

	// CastleCurr/CastleOther hold queenside ([0]) and kingside ([1])
	// castling rights still available to each side.
	CastleCurr  [2]bool
	CastleOther [2]bool

	// Inverted tracks how many times Invert has been called, mod 2: true
	// when the side to move is the side that was originally Black. Used
	// to know when to bump the fullmove counter and to pick the checkmate
	// code in Position.TestEndgame -- it plays no role in move generation.
	Inverted bool
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// FromFEN parses only the piece-placement field of a FEN string (ranks
// 8 down to 1, separated by '/', digits for empty runs). Side to move,
// castling rights, en passant and move counters are not board concerns
// -- Position.FromFEN applies them after calling this.
func FromFEN(placement string) *Board {
	b := New()
	x, y := 0, 7
	for _, c := range placement {
		bit := types.NewSquare(x, y).Bb()
		isOther := c >= 'a' && c <= 'z'
		color := &b.Curr
		if isOther {
			color = &b.Other
		}
		switch lowerRune(c) {
		case 'p':
			*color |= bit
			b.Pawn |= bit
			x++
		case 'n':
			*color |= bit
			x++
		case 'b':
			*color |= bit
			b.Bishop |= bit
			x++
		case 'r':
			*color |= bit
			b.Rook |= bit
			x++
		case 'q':
			*color |= bit
			b.Bishop |= bit
			b.Rook |= bit
			x++
		case 'k':
			*color |= bit
			if isOther {
				b.OKing = types.NewSquare(x, y)
			} else {
				b.CKing = types.NewSquare(x, y)
			}
			x++
		default:
			if c >= '1' && c <= '8' {
				x += int(c - '0')
			}
		}
		if x >= 8 && y > 0 {
			x -= 8
			y--
		}
	}
	return b
}

func lowerRune(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Pawns returns the pawn occupancy with the rank-1/rank-8 en-passant
// marker bits filtered out.
func (b *Board) Pawns() types.Bitboard {
	return b.Pawn &^ (types.Rank1Mask | types.Rank8Mask)
}

// Knight returns the occupancy of all knights (current and opponent):
// every occupied square that is not a pawn, rook, bishop or king.
func (b *Board) Knight() types.Bitboard {
	all := b.Curr | b.Other
	knk := all &^ (b.Pawns() | b.Rook | b.Bishop)
	return knk &^ (b.CKing.Bb() | b.OKing.Bb())
}

// Queen returns the occupancy of all queens: squares present in both
// the rook and bishop masks.
func (b *Board) Queen() types.Bitboard {
	return b.Rook & b.Bishop
}

// CurrQueen returns the side to move's queens.
func (b *Board) CurrQueen() types.Bitboard {
	return b.Curr & b.Rook & b.Bishop
}

// All returns the combined occupancy of both sides.
func (b *Board) All() types.Bitboard {
	return b.Curr | b.Other
}

// InvertLoc maps a square to its mirror image across the 4th/5th rank
// boundary -- the same transform Invert applies to CKing/OKing.
func InvertLoc(sq types.Square) types.Square {
	return types.NewSquare(sq.File(), 7-sq.Rank())
}

// Invert flips the board's perspective: byte-swaps every mask (mirroring
// ranks top to bottom), mirrors both king squares, then swaps
// curr/other, CKing/OKing and the two castling-rights pairs so the side
// that was "other" becomes "curr". Invert is its own inverse.
func (b *Board) Invert() {
	b.Pawn = b.Pawn.SwapBytes()
	b.Rook = b.Rook.SwapBytes()
	b.Bishop = b.Bishop.SwapBytes()
	b.Curr = b.Curr.SwapBytes()
	b.Other = b.Other.SwapBytes()
	b.CKing = InvertLoc(b.CKing)
	b.OKing = InvertLoc(b.OKing)
	b.Curr, b.Other = b.Other, b.Curr
	b.CKing, b.OKing = b.OKing, b.CKing
	b.CastleCurr, b.CastleOther = b.CastleOther, b.CastleCurr
	b.Inverted = !b.Inverted
}

// GetLocPiece returns the piece kind occupying sq, or NoPieceType if
// empty.
func (b *Board) GetLocPiece(sq types.Square) types.PieceType {
	bit := sq.Bb()
	switch {
	case b.Curr&bit == 0 && b.Other&bit == 0:
		return types.NoPieceType
	case b.Bishop&bit != 0:
		if b.Rook&bit != 0 {
			return types.Queen
		}
		return types.Bishop
	case b.Rook&bit != 0:
		return types.Rook
	case b.Pawns()&bit != 0:
		return types.Pawn
	case sq == b.CKing || sq == b.OKing:
		return types.King
	default:
		return types.Knight
	}
}

// GetLoc returns the piece at sq and whether it belongs to the opponent.
func (b *Board) GetLoc(sq types.Square) (types.PieceType, bool) {
	pt := b.GetLocPiece(sq)
	if pt == types.NoPieceType {
		return types.NoPieceType, false
	}
	return pt, b.Other&sq.Bb() != 0
}

// ClearLoc removes whatever piece occupies sq from every mask. The pawn
// mask is only touched for squares on ranks 2-7, so clearing a
// promotion-rank destination never disturbs the rank-8 en-passant
// marker byte.
func (b *Board) ClearLoc(sq types.Square) {
	bit := ^sq.Bb()
	if sq > 7 && sq < 56 {
		b.Pawn &= bit
	}
	b.Bishop &= bit
	b.Rook &= bit
	b.Curr &= bit
	b.Other &= bit
}

// SetLoc adds piece pt to sq for the requested side, without clearing
// any existing occupant first -- callers that might be overwriting a
// capture must ClearLoc the destination themselves.
func (b *Board) SetLoc(sq types.Square, pt types.PieceType, isOther bool) {
	bit := sq.Bb()
	color := &b.Curr
	if isOther {
		color = &b.Other
	}
	switch pt {
	case types.Pawn:
		*color |= bit
		b.Pawn |= bit
	case types.Knight:
		*color |= bit
	case types.Bishop:
		*color |= bit
		b.Bishop |= bit
	case types.Rook:
		*color |= bit
		b.Rook |= bit
	case types.Queen:
		*color |= bit
		b.Bishop |= bit
		b.Rook |= bit
	case types.King:
		*color |= bit
		if isOther {
			b.OKing = sq
		} else {
			b.CKing = sq
		}
	}
}

func copyBit(mask *types.Bitboard, from, to types.Bitboard) {
	if *mask&from != 0 {
		*mask |= to
	} else {
		*mask &^= to
	}
	*mask &^= from
}

// CopyLoc moves a piece's bit from `from` to `to` in every mask, as if
// relocating it, and updates CKing if the king was the piece moved.
// Used by do_move implementations that want to avoid a clear+set pair.
func (b *Board) CopyLoc(from, to types.Square) {
	bit1, bit2 := from.Bb(), to.Bb()
	copyBit(&b.Curr, bit1, bit2)
	copyBit(&b.Other, bit1, bit2)
	copyBit(&b.Bishop, bit1, bit2)
	copyBit(&b.Rook, bit1, bit2)
	if from < 56 {
		copyBit(&b.Pawn, bit1, bit2)
	}
	if from == b.CKing {
		b.CKing = to
	}
}

// DoMove applies m in place. Castling rights are updated here: a rook
// captured on its home square removes the matching opponent right, a
// king move clears both of the mover's rights, and a rook move from its
// home square clears the matching right.
func (b *Board) DoMove(m types.Move) {
	switch m.Kind {
	case types.Basic:
		piece := b.GetLocPiece(m.From)
		if assert.DEBUG {
			assert.Assert(piece != types.NoPieceType, "DoMove: no piece on from-square %d", m.From)
			assert.Assert(b.Curr.Has(m.From), "DoMove: from-square %d is not occupied by the side to move", m.From)
		}
		captured := b.GetLocPiece(m.To)
		b.ClearLoc(m.To)
		b.SetLoc(m.To, piece, false)
		b.ClearLoc(m.From)

		if m.To == 56 && captured == types.Rook {
			b.CastleOther[0] = false
		}
		if m.To == 63 && captured == types.Rook {
			b.CastleOther[1] = false
		}
		if piece == types.King {
			b.CastleCurr[0] = false
			b.CastleCurr[1] = false
		} else if piece == types.Rook {
			if m.From == 0 {
				b.CastleCurr[0] = false
			} else if m.From == 7 {
				b.CastleCurr[1] = false
			}
		}
	case types.EnPassantKind:
		b.ClearLoc(types.Square(m.ToFile + 32))
		b.ClearLoc(types.Square(m.FromFile + 32))
		b.SetLoc(types.Square(m.ToFile+40), types.Pawn, false)
	case types.CastleKing:
		b.ClearLoc(4)
		b.ClearLoc(7)
		b.SetLoc(6, types.King, false)
		b.SetLoc(5, types.Rook, false)
		b.CastleCurr[0] = false
		b.CastleCurr[1] = false
	case types.CastleQueen:
		b.ClearLoc(4)
		b.ClearLoc(0)
		b.SetLoc(2, types.King, false)
		b.SetLoc(3, types.Rook, false)
		b.CastleCurr[0] = false
		b.CastleCurr[1] = false
	case types.PromotionKind:
		b.ClearLoc(m.To)
		b.SetLoc(m.To, m.Promo, false)
		b.ClearLoc(m.From)
	}
	b.Pawn &= 0x00FFFFFFFFFFFFFF
}

// Clone returns an independent copy -- Board is plain-old-data so this is
// just a value copy, but the named method documents intent at call
// sites that clone before trying a move.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}
