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

// MoveKind discriminates the tagged variants of Move. Unlike FrankyGo's
// packed-uint32 move encoding, moves here are a small tagged struct --
// the board's do_move dispatch is a switch on Kind rather than bitfield
// extraction, which keeps the special-move semantics (en passant,
// castling, promotion) readable at the call site.
type MoveKind uint8

const (
	// Basic covers any ordinary move or capture not covered below.
	Basic MoveKind = iota
	// EnPassantKind captures a pawn that just made a double push.
	EnPassantKind
	// CastleKing is short castling for the side to move.
	CastleKing
	// CastleQueen is long castling for the side to move.
	CastleQueen
	// PromotionKind is a pawn push or capture from rank 7 to rank 8.
	PromotionKind
)

// Move is a tagged variant: the fields that matter depend on Kind.
//   - Basic: From, To.
//   - EnPassantKind: FromFile, ToFile (the moving pawn is on rank 5 at
//     FromFile, the captured pawn is on rank 5 at ToFile).
//   - CastleKing, CastleQueen: no fields used.
//   - PromotionKind: From, To, Promo (piece promoted to).
type Move struct {
	Kind     MoveKind
	From     Square
	To       Square
	FromFile int
	ToFile   int
	Promo    PieceType
}

// NewBasicMove builds a Basic move.
func NewBasicMove(from, to Square) Move {
	return Move{Kind: Basic, From: from, To: to}
}

// NewEnPassantMove builds an EnPassantKind move. fromFile is the file of
// the capturing pawn (rank 5), toFile is the file of the captured pawn.
func NewEnPassantMove(fromFile, toFile int) Move {
	return Move{Kind: EnPassantKind, FromFile: fromFile, ToFile: toFile}
}

// NewPromotionMove builds a PromotionKind move.
func NewPromotionMove(piece PieceType, from, to Square) Move {
	return Move{Kind: PromotionKind, From: from, To: to, Promo: piece}
}

// MoveCastleKing and MoveCastleQueen are the two singleton castling moves.
var (
	MoveCastleKing  = Move{Kind: CastleKing}
	MoveCastleQueen = Move{Kind: CastleQueen}
)

// String renders a move in the four-character textual form "file1 rank1
// file2 rank2", with a promotion suffix -- the form described as the
// engine's move textual form. Castling is rendered as the corresponding
// king move of two squares.
func (m Move) String() string {
	switch m.Kind {
	case CastleKing:
		return NewSquare(4, 0).String() + NewSquare(6, 0).String()
	case CastleQueen:
		return NewSquare(4, 0).String() + NewSquare(2, 0).String()
	case EnPassantKind:
		from := NewSquare(m.FromFile, 4)
		to := NewSquare(m.ToFile, 5)
		return from.String() + to.String()
	case PromotionKind:
		return m.From.String() + m.To.String() + lowerPromoLetter(m.Promo)
	default:
		return m.From.String() + m.To.String()
	}
}

func lowerPromoLetter(pt PieceType) string {
	switch pt {
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	default:
		return ""
	}
}
