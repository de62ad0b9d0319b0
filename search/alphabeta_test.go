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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/galhamama/chess-project/position"
	"github.com/galhamama/chess-project/types"
)

func TestLmrReductionNeverExceedsDepthMinusOne(t *testing.T) {
	for depth := 1; depth <= 20; depth++ {
		for i := 0; i < 40; i++ {
			r := lmrReduction(depth, i)
			assert.LessOrEqual(t, r, depth-1)
			assert.GreaterOrEqual(t, r, 0)
		}
	}
}

func TestLmrReductionGrowsWithMoveIndex(t *testing.T) {
	early := lmrReduction(10, 4)
	late := lmrReduction(10, 30)
	assert.LessOrEqual(t, early, late)
}

func TestIsZugzwangProneWithOnlyKingAndPawns(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	assert.True(t, isZugzwangProne(pos))
}

func TestIsZugzwangProneFalseWithAMinorPiece(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/4P3/3NK3 w - - 0 1")
	assert.False(t, isZugzwangProne(pos))
}

func TestQuiescenceStandsPatWithoutCaptures(t *testing.T) {
	s := NewSearch(nil)
	pos := mustFEN(t, position.StartFEN)

	score := s.quiescence(pos, 0, -types.ValueInfinite, types.ValueInfinite)
	assert.InDelta(t, 0, int(score), 20)
}

func TestQuiescenceFindsFreeCapture(t *testing.T) {
	s := NewSearch(nil)
	pos := mustFEN(t, "4k3/8/8/3r4/8/8/8/3QK3 w - - 0 1")

	score := s.quiescence(pos, 0, -types.ValueInfinite, types.ValueInfinite)
	assert.Greater(t, int(score), 400)
}

func TestNullMoveRoundTripLeavesPositionUnchanged(t *testing.T) {
	pos := mustFEN(t, position.StartFEN)
	before := pos.ZobristKey()
	sideBefore := pos.SideToMove()

	pos.DoNullMove()
	assert.NotEqual(t, sideBefore, pos.SideToMove())

	pos.UndoNullMove()
	assert.Equal(t, before, pos.ZobristKey())
	assert.Equal(t, sideBefore, pos.SideToMove())
}
