/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rkane/bitchess/internal/types"
)

func TestDoMoveBasicRookSlide(t *testing.T) {
	b := FromFEN("8/8/8/8/8/8/8/R7")
	b.DoMove(types.NewBasicMove(0, 7))
	want := FromFEN("8/8/8/8/8/8/8/7R")
	assert.Equal(t, want, b)
}

func TestDoMoveEnPassant(t *testing.T) {
	b := FromFEN("8/8/8/3Pp3/8/8/8/8")
	b.Pawn |= types.Square(60).Bb()
	b.DoMove(types.NewEnPassantMove(3, 4))
	want := FromFEN("8/8/4P3/8/8/8/8/8")
	assert.Equal(t, want, b)
}

func TestDoMoveCastleKing(t *testing.T) {
	b := FromFEN("8/8/8/8/8/8/8/4K2R")
	b.DoMove(types.MoveCastleKing)
	want := FromFEN("8/8/8/8/8/8/8/5RK1")
	assert.Equal(t, want, b)
}

func TestDoMovePromotion(t *testing.T) {
	b := FromFEN("8/P7/8/8/8/8/8/8")
	b.DoMove(types.NewPromotionMove(types.Queen, 48, 56))
	want := FromFEN("Q7/8/8/8/8/8/8/8")
	assert.Equal(t, want, b)
}

func TestInvertIsInvolution(t *testing.T) {
	b := FromFEN("1kr4r/1bq1pp1p/pn3Pp1/1pp4n/4P2P/P1NNQP1B/1PP5/2KR3R")
	orig := *b
	b.Invert()
	b.Invert()
	assert.Equal(t, orig, *b)
}

func TestGetLocPieceRoundTripsSetLoc(t *testing.T) {
	b := New()
	b.SetLoc(types.NewSquare(4, 3), types.Queen, false)
	assert.Equal(t, types.Queen, b.GetLocPiece(types.NewSquare(4, 3)))
	pt, isOther := b.GetLoc(types.NewSquare(4, 3))
	assert.Equal(t, types.Queen, pt)
	assert.False(t, isOther)
}

func TestClearLocPreservesEnPassantMarkerOutsideRank8(t *testing.T) {
	b := New()
	b.Pawn |= types.Square(60).Bb() // rank-8 en-passant marker
	b.ClearLoc(types.Square(30))    // an unrelated rank-4 square
	assert.True(t, b.Pawn.Has(types.Square(60)))
}
