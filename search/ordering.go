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
	"github.com/galhamama/chess-project/types"
)

const (
	maxPly = 128

	ttMoveScore     = 10_000_000
	mvvLvaBase      = 1_000_000
	killerBaseScore = 900_000
	killerSlotGap   = 1_000
)

// killerTable remembers, per ply, the last few quiet moves that caused a
// beta cutoff - they are tried early at sibling nodes of the same ply
// since a quiet refutation often transfers across similar positions.
type killerTable struct {
	moves [maxPly][2]types.Move
}

func (k *killerTable) add(ply int, m types.Move) {
	if ply >= maxPly || !m.IsQuiet() {
		return
	}
	if k.moves[ply][0].Equal(m) {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

func (k *killerTable) score(ply int, m types.Move) (int, bool) {
	if ply >= maxPly {
		return 0, false
	}
	for i, km := range k.moves[ply] {
		if !km.IsNone() && km.Equal(m) {
			return killerBaseScore - i*killerSlotGap, true
		}
	}
	return 0, false
}

// historyKey identifies a quiet move by the piece that moves and its
// destination - the standard history-heuristic granularity.
type historyKey struct {
	piece types.Piece
	to    types.Square
}

// historyTable is a saturating counter per (piece, destination), nudged up
// whenever a quiet move raises alpha; nothing lowers it.
type historyTable map[historyKey]int

const historyMax = 16_000

func (h historyTable) score(m types.Move) int {
	return h[historyKey{m.PieceMoved, m.To}]
}

// update applies the saturating adjustment h' = h + delta - h*|delta|/512,
// which pulls h toward +-512 for |delta| up to 1024; the result is then
// clamped to +-historyMax.
func (h historyTable) update(m types.Move, delta int) {
	if !m.IsQuiet() {
		return
	}
	key := historyKey{m.PieceMoved, m.To}
	cur := h[key]
	adjusted := cur + delta - cur*abs(delta)/512
	if adjusted > historyMax {
		adjusted = historyMax
	}
	if adjusted < -historyMax {
		adjusted = -historyMax
	}
	h[key] = adjusted
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// orderMoves assigns each move a Score used purely for sorting: the TT
// move first, then captures by MVV-LVA, then killers, then history for
// the remaining quiet moves.
func orderMoves(moves types.MoveList, ttMove types.Move, ply int, killers *killerTable, history historyTable) {
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		switch {
		case !ttMove.IsNone() && m.Equal(ttMove):
			m.Score = ttMoveScore
		case m.IsCapture():
			victim := m.Captured.TypeOf().Value()
			attacker := m.PieceMoved.TypeOf().Value()
			m.Score = mvvLvaBase + 10*victim - attacker
		default:
			if s, isKiller := killers.score(ply, m); isKiller {
				m.Score = s
			} else {
				m.Score = history.score(m)
			}
		}
		moves.Set(i, m)
	}
	moves.Sort()
}
