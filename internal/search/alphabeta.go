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

// Package search implements the two strategies that pick a move for a
// Position: iterative-deepening negamax alpha-beta with a time budget,
// and an MCTS tree (see mcts.go). Neither strategy mutates the Position
// it is handed -- every recursive step works on a clone.
package search

import (
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rkane/bitchess/internal/evaluator"
	"github.com/rkane/bitchess/internal/logging"
	"github.com/rkane/bitchess/internal/position"
	"github.com/rkane/bitchess/internal/types"
)

var log = logging.GetLog("search")
var out = message.NewPrinter(language.English)

// running guards AbSearch and Mcts against concurrent
// invocation from more than one goroutine at a time -- this package has
// no internal parallelism of its own, so a second concurrent call would
// just race on nothing useful.
var running = semaphore.NewWeighted(1)

// Alphabeta returns the negamax alpha-beta value of pos, searched to
// depth plies, from the side to move's perspective. It calls pos.SetMoves
// itself, so pos's move and threat caches are refreshed on return.
func Alphabeta(pos *position.Position, alpha, beta types.Value, depth int) types.Value {
	pos.SetMoves()
	if result := pos.TestEndgame(); result != position.EndgameNone {
		return terminalValue(result)
	}
	if depth == 0 {
		return evaluator.Evaluate(pos)
	}

	for _, m := range pos.GenMoves() {
		child := pos.Clone()
		child.DoMove(m)
		child.Board.Invert()

		score := -Alphabeta(child, -beta, -alpha, depth-1)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// terminalValue maps an EndgameResult to the Value scale alpha-beta
// searches on: a draw is worth nothing, a loss for the side to move is
// maximally bad. EndgameLoss and EndgameWin both mean the side to move's
// own king is mated (they differ only in the board's Inverted parity),
// so both map to ValueCheckmate.
func terminalValue(result position.EndgameResult) types.Value {
	if result == position.EndgameDraw {
		return types.ValueDraw
	}
	return types.ValueCheckmate
}

// BestMove evaluates every legal move of pos at the given depth and
// returns the highest-scoring one and its score. If lastBest is not the
// zero Move, it is searched first (move-ordering hint from a shallower
// iteration). Returns the zero Move if pos has no legal moves.
func BestMove(pos *position.Position, depth int, lastBest types.Move) (types.Move, types.Value) {
	pos.SetMoves()
	moves := pos.GenMoves()
	if len(moves) == 0 {
		return types.Move{}, terminalValueAtRoot(pos)
	}

	orderMovesFirst(moves, lastBest)

	best := moves[0]
	bestScore := types.Value(-1 << 30)
	alpha, beta := types.Value(-1<<30), types.Value(1<<30)

	for _, m := range moves {
		child := pos.Clone()
		child.DoMove(m)
		child.Board.Invert()

		score := -Alphabeta(child, -beta, -alpha, depth-1)
		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}
	return best, bestScore
}

// terminalValueAtRoot handles the degenerate case where the root itself
// has no legal moves (already mated or stalemated before any search).
func terminalValueAtRoot(pos *position.Position) types.Value {
	return terminalValue(pos.TestEndgame())
}

// orderMovesFirst moves target to the front of moves, if present,
// leaving the relative order of everything else unchanged.
func orderMovesFirst(moves []types.Move, target types.Move) {
	if target == (types.Move{}) {
		return
	}
	for i, m := range moves {
		if m == target {
			copy(moves[1:i+1], moves[0:i])
			moves[0] = m
			return
		}
	}
}

// AbSearch runs iterative deepening from depth 1 until timeMs has
// elapsed, using each iteration's best move to order the next. It
// returns the best move found at the deepest iteration that completed,
// and that iteration's score.
func AbSearch(pos *position.Position, timeMs int) (types.Move, types.Value) {
	if !running.TryAcquire(1) {
		log.Warning("AbSearch called while a search is already running")
		return types.Move{}, types.ValueDraw
	}
	defer running.Release(1)

	deadline := time.Now().Add(time.Duration(timeMs) * time.Millisecond)

	var bestMove types.Move
	var bestScore types.Value

	for depth := 1; ; depth++ {
		pos.SetMoves()
		if len(pos.GenMoves()) == 0 {
			break
		}

		m, score := BestMove(pos, depth, bestMove)
		bestMove, bestScore = m, score
		log.Debug(out.Sprintf("depth %d best %s score %d", depth, bestMove.String(), bestScore))

		if time.Now().After(deadline) {
			break
		}
	}
	return bestMove, bestScore
}
