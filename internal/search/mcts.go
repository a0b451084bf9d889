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

package search

import (
	"math"

	"github.com/rkane/bitchess/internal/config"
	"github.com/rkane/bitchess/internal/moveslice"
	"github.com/rkane/bitchess/internal/position"
	"github.com/rkane/bitchess/internal/types"
)

// Node is one position in the MCTS tree. Score is always this node's own
// side-to-move's estimated win probability, in [0,1] -- a parent
// aggregates its children's scores through `1 - child.Score`, the usual
// negamax-style flip, so every node can be read the same way regardless
// of depth.
type Node struct {
	Visits   int
	Score    float64
	UCB      float64
	Black    bool
	Endgame  bool
	Move     types.Move
	Children []*Node
}

// NewGameTree returns an empty root node, ready for its first Search.
func NewGameTree() *Node {
	return &Node{}
}

// expand turns a leaf into an internal node: one child per legal move of
// pos, each scored by playing it out (terminal test, else a random
// rollout).
//
// TestEndgame's win/loss codes are tied to the board's Inverted parity
// since the game's absolute start (see position.TestEndgame and
// DESIGN.md), not to any one rollout's own starting point, so they can't
// be divided by 2 and used directly as a child-local score. Instead a
// mate is scored by who is actually stuck: the side with no legal move
// while in check always has a local score of 0, whether that happens
// immediately or only after DoRollout plays the position out; a draw is
// always 0.5.
func (n *Node) expand(pos *position.Position) {
	pos.SetMoves()
	legal := pos.GenMoves()

	if len(legal) == 0 {
		n.Endgame = true
		n.Score = drawOrLoss(pos)
		return
	}

	n.Children = make([]*Node, 0, len(legal))
	for _, m := range legal {
		child := pos.Clone()
		child.DoMove(m)
		child.Board.Invert()
		startInverted := child.Board.Inverted

		node := &Node{Move: m, Visits: 1, Black: startInverted}

		child.SetMoves()
		if result := child.TestEndgame(); result != position.EndgameNone {
			node.Endgame = true
			if result == position.EndgameDraw {
				node.Score = 0.5
			} else {
				node.Score = 0
			}
		} else {
			result := child.DoRollout()
			switch {
			case result == position.EndgameDraw:
				node.Score = 0.5
			case child.Board.Inverted == startInverted:
				// An even number of plies elapsed during the rollout:
				// the mated side is this child's own original mover.
				node.Score = 0
			default:
				node.Score = 1
			}
		}

		n.Children = append(n.Children, node)
	}
}

// drawOrLoss scores a position with no legal moves for the side to move:
// 0.5 if it is a draw (stalemate, fifty-move, insufficient material), 0
// if the side to move is checkmated.
func drawOrLoss(pos *position.Position) float64 {
	if pos.TestEndgame() == position.EndgameDraw {
		return 0.5
	}
	return 0
}

// selectChild returns the child with the highest UCB (ties keep the
// first one found).
func (n *Node) selectChild() *Node {
	best := n.Children[0]
	for _, c := range n.Children[1:] {
		if c.UCB > best.UCB {
			best = c
		}
	}
	return best
}

// Search runs one MCTS iteration from n: select down to a leaf, expand
// it, then back the resulting scores up to n. pos must already be the
// position n represents, and is mutated in place as Search descends --
// callers that want to reuse pos afterward must clone it first.
func (n *Node) Search(pos *position.Position) {
	if n.Endgame {
		return
	}

	if len(n.Children) == 0 {
		n.expand(pos)
		if n.Endgame {
			return
		}
	} else {
		c := n.selectChild()
		pos.DoMove(c.Move)
		pos.Board.Invert()
		c.Search(pos)
	}

	n.backup()
}

// backup recomputes n's visit count, score and every child's UCB from
// the children's current scores and visit counts.
func (n *Node) backup() {
	var avg, best float64
	var visits int

	for i, c := range n.Children {
		avg += c.Score
		visits += c.Visits
		if i == 0 || c.Score > best {
			best = c.Score
		}
	}
	avg /= float64(len(n.Children))
	n.Visits = visits

	// The smooth gate between trusting the single best child and
	// trusting the average of all of them, tightening toward "best" as
	// visits accumulate.
	trust := math.Atan(float64(visits)/config.Settings.Search.MCTSTrustSlope-config.Settings.Search.MCTSTrustMidpoint)/math.Pi + 0.5
	n.Score = (1-best)*trust + (1-avg)*(1-trust)

	for _, c := range n.Children {
		c.UCB = c.Score + config.Settings.Search.MCTSExplorationConst*math.Log(float64(n.Visits))/float64(c.Visits)
	}
}

// BestMoveLoc returns the index of the child with the highest Score.
func (n *Node) BestMoveLoc() int {
	loc := 0
	for i, c := range n.Children {
		if c.Score > n.Children[loc].Score {
			loc = i
		}
	}
	return loc
}

// SearchedMoveLoc returns the index of the child with the highest UCB --
// the child Search would descend into next.
func (n *Node) SearchedMoveLoc() int {
	loc := 0
	for i, c := range n.Children {
		if c.UCB > n.Children[loc].UCB {
			loc = i
		}
	}
	return loc
}

// BestMove returns the move of the highest-scoring child.
func (n *Node) BestMove() types.Move {
	return n.Children[n.BestMoveLoc()].Move
}

// SearchedMove returns the move of the most-visited-by-UCB child.
func (n *Node) SearchedMove() types.Move {
	return n.Children[n.SearchedMoveLoc()].Move
}

// BestLine walks the highest-Score child at each level down to a leaf,
// returning the line as a moveslice.MoveSlice so callers can render it
// with a single String() call for logging.
func (n *Node) BestLine() moveslice.MoveSlice {
	out := *moveslice.NewMoveSlice(8)
	cur := n
	for len(cur.Children) > 0 {
		cur = cur.Children[cur.BestMoveLoc()]
		out.PushBack(cur.Move)
	}
	return out
}

// SearchedLine walks the highest-UCB child at each level down to a leaf.
func (n *Node) SearchedLine() moveslice.MoveSlice {
	out := *moveslice.NewMoveSlice(8)
	cur := n
	for len(cur.Children) > 0 {
		cur = cur.Children[cur.SearchedMoveLoc()]
		out.PushBack(cur.Move)
	}
	return out
}

// DoMove advances the tree past m, keeping that subtree (root reuse) if
// m was already explored, or resetting to a fresh node otherwise.
func (n *Node) DoMove(m types.Move) {
	for _, c := range n.Children {
		if c.Move == m {
			*n = *c
			return
		}
	}
	*n = Node{Move: m}
}

// Mcts runs iterations rounds of selection/expansion/backup from pos and
// returns the resulting tree's best move. pos itself is never mutated --
// every iteration works on a fresh clone.
func Mcts(pos *position.Position, iterations int) (types.Move, *Node) {
	if !running.TryAcquire(1) {
		log.Warning("Mcts called while a search is already running")
		return types.Move{}, NewGameTree()
	}
	defer running.Release(1)

	root := NewGameTree()
	for i := 0; i < iterations; i++ {
		root.Search(pos.Clone())
	}
	if root.Endgame || len(root.Children) == 0 {
		return types.Move{}, root
	}
	log.Debug(out.Sprintf("mcts %d iterations best line: %s", iterations, root.BestLine().String()))
	return root.BestMove(), root
}
