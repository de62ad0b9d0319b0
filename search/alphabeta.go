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
	"sync/atomic"
	"time"

	"github.com/galhamama/chess-project/config"
	"github.com/galhamama/chess-project/movegen"
	"github.com/galhamama/chess-project/position"
	"github.com/galhamama/chess-project/types"
)

// nodeTimeCheckMask bounds how often a node checks the wall clock against
// the search budget - every 1024 nodes, cheap enough not to show up in
// node-rate counts but frequent enough that a single deep subtree cannot
// run the clock out before anyone notices.
const nodeTimeCheckMask = 1023

// checkTimeBudget sets the cancelled flag once the search has run past
// its time limit, so in-flight recursions unwind the same way they do on
// an explicit cancel.
func (s *Search) checkTimeBudget() {
	if s.limits.TimeControlled() && time.Since(s.startTime) >= s.limits.TimeLimit {
		atomic.StoreInt32(&s.cancelled, 1)
	}
}

// negamax runs alpha-beta search with the PVS/null-move/LMR/TT pipeline,
// returning a score in centipawns from the side-to-move's perspective.
// ply is distance from the search root, used for killer-table indexing
// and for discounting mate scores by distance.
func (s *Search) negamax(pos *position.Position, depth, ply int, alpha, beta types.Value) types.Value {
	if s.isCancelled() {
		return types.ValueNone
	}
	s.Stats.Nodes++
	if s.Stats.Nodes&nodeTimeCheckMask == 0 {
		s.checkTimeBudget()
		if s.isCancelled() {
			return types.ValueNone
		}
	}

	if depth <= 0 {
		return s.quiescence(pos, ply, alpha, beta)
	}

	alphaOrig := alpha
	ttMove := types.NoMove
	key := pos.ZobristKey()

	if config.Settings.Search.UseTT {
		probe := s.tt.Probe(key, depth, alpha, beta)
		if probe.HasMove {
			ttMove = probe.Move
		}
		if probe.HasScore {
			s.Stats.TTHits++
			return probe.Score
		}
		s.Stats.TTMisses++
	}

	inCheck := movegen.InCheck(pos, pos.SideToMove())

	// Null-move pruning: skip our own move and see if the opponent, given
	// a free tempo, still can't beat beta - if so this node is too good to
	// be real and can be pruned. Never tried in check or near the leaves.
	if config.Settings.Search.UseNullMove && !inCheck && depth >= 3 && ply > 0 && !isZugzwangProne(pos) {
		r := config.Settings.Search.NmpBaseR + depth/config.Settings.Search.NmpDepthDiv
		pos.DoNullMove()
		score := -s.negamax(pos, depth-1-r, ply+1, -beta, -beta+1)
		pos.UndoNullMove()
		if s.isCancelled() {
			return types.ValueNone
		}
		if score >= beta {
			s.Stats.NullMoveCuts++
			return beta
		}
	}

	moves := movegen.Generate(pos, movegen.GenAll)
	if moves.Len() == 0 {
		if pos.Checkmate {
			return -types.ValueCheckMate + types.Value(ply)
		}
		return types.ValueDraw
	}

	orderMoves(moves, ttMove, ply, &s.killers, s.history)

	best := types.ValueNone
	var bestMove types.Move
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pos.MakeMove(m)

		var score types.Value
		reduction := 0
		if i == 0 {
			score = -s.negamax(pos, depth-1, ply+1, -beta, -alpha)
		} else {
			if config.Settings.Search.UseLmr && depth >= config.Settings.Search.LmrMinDepth &&
				i > config.Settings.Search.LmrMinMoveIdx && m.IsQuiet() && !inCheck &&
				!movegen.InCheck(pos, pos.SideToMove()) {
				reduction = lmrReduction(depth, i)
			}
			score = -s.negamax(pos, depth-1-reduction, ply+1, -alpha-1, -alpha)
			if reduction > 0 {
				s.Stats.LmrReductions++
			}
			if score > alpha && (reduction > 0 || score < beta) {
				if reduction > 0 {
					s.Stats.LmrReSearches++
				} else {
					s.Stats.PvsReSearches++
				}
				score = -s.negamax(pos, depth-1, ply+1, -beta, -alpha)
			}
		}

		pos.UndoMove()

		if s.isCancelled() {
			return types.ValueNone
		}

		if score > best {
			best = score
			bestMove = m
		}
		if best > alpha {
			alpha = best
			s.history.update(m, depth*depth)
		}
		if alpha >= beta {
			s.Stats.BetaCutoffs++
			if m.IsQuiet() {
				s.killers.add(ply, m)
			}
			break
		}
	}

	if config.Settings.Search.UseTT {
		bound := types.BoundExact
		if best <= alphaOrig {
			bound = types.BoundUpper
		} else if best >= beta {
			bound = types.BoundLower
		}
		s.tt.Put(key, bestMove, best, depth, bound)
	}

	return best
}

// quiescence extends search through captures only, to avoid evaluating a
// position in the middle of an exchange (the horizon effect). No
// check-evasion generation: a side in check at a quiescence node simply
// stands pat on its (likely poor) static score, per the retained open
// question on that behavior.
func (s *Search) quiescence(pos *position.Position, ply int, alpha, beta types.Value) types.Value {
	if s.isCancelled() {
		return types.ValueNone
	}
	s.Stats.Nodes++
	s.Stats.QNodes++
	if s.Stats.Nodes&nodeTimeCheckMask == 0 {
		s.checkTimeBudget()
		if s.isCancelled() {
			return types.ValueNone
		}
	}

	standPat := s.eval.Evaluate(pos)
	if !config.Settings.Search.UseQuiescence {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := movegen.Generate(pos, movegen.GenCaptures)
	orderMoves(moves, types.NoMove, ply, &s.killers, s.history)

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pos.MakeMove(m)
		score := -s.quiescence(pos, ply+1, -beta, -alpha)
		pos.UndoMove()

		if s.isCancelled() {
			return types.ValueNone
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// lmrReduction computes the late-move reduction amount for the i-th move
// (0-indexed) at the given depth, using truncating integer division
// throughout.
func lmrReduction(depth, i int) int {
	r := 1 + (depth-1)*(i-3)/20
	max := depth - 1
	if r > max {
		r = max
	}
	if r < 0 {
		r = 0
	}
	return r
}

// isZugzwangProne guards null-move pruning against positions where passing
// is dangerous - here, simply whether the side to move has no non-king,
// non-pawn material left, the standard cheap approximation.
func isZugzwangProne(pos *position.Position) bool {
	color := pos.SideToMove()
	for sq := types.Square(0); sq < 64; sq++ {
		p := pos.Board(sq)
		if p.IsEmpty() || p.ColorOf() != color {
			continue
		}
		switch p.TypeOf() {
		case types.Knight, types.Bishop, types.Rook, types.Queen:
			return false
		}
	}
	return true
}
