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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/galhamama/chess-project/position"
	"github.com/galhamama/chess-project/types"
)

func TestEvaluateStartPositionIsBalanced(t *testing.T) {
	p := position.New()
	e := NewEvaluator()
	v := e.Evaluate(p)
	// every term is symmetric at the start position.
	assert.Equal(t, types.ValueZero, v)
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	p, err := position.NewFromFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	assert.NoError(t, err)
	e := NewEvaluator()
	v := e.Evaluate(p)
	assert.Greater(t, int(v), 800, "a lone extra queen must dominate the score")
}

func TestEvaluateSymmetry(t *testing.T) {
	// A position and its vertical mirror (colors swapped) must evaluate
	// to the same score from the side-to-move's perspective, modulo the
	// mobility term's generation-order artifacts.
	white, err := position.NewFromFEN("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/2N5/PPPP1PPP/R1BQKBNR w KQkq - 2 3")
	assert.NoError(t, err)
	black, err := position.NewFromFEN("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/2N5/PPPP1PPP/R1BQKBNR b KQkq - 2 3")
	assert.NoError(t, err)

	e := NewEvaluator()
	vw := e.Evaluate(white)
	vb := e.Evaluate(black)
	assert.InDelta(t, int(vw), int(vb), 4)
}

func TestKingSafetyRewardsPawnShield(t *testing.T) {
	shielded, err := position.NewFromFEN("4k3/8/8/8/8/8/5PPP/6K1 w - - 0 1")
	assert.NoError(t, err)
	exposed, err := position.NewFromFEN("4k3/8/8/8/8/8/8/6K1 w - - 0 1")
	assert.NoError(t, err)

	e := NewEvaluator()
	assert.Greater(t, int(e.Evaluate(shielded)), int(e.Evaluate(exposed)))
}

func TestPassedPawnBonus(t *testing.T) {
	passed, err := position.NewFromFEN("4k3/8/8/4P3/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	blocked, err := position.NewFromFEN("4k3/4p3/8/4P3/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	e := NewEvaluator()
	assert.Greater(t, int(e.Evaluate(passed)), int(e.Evaluate(blocked)))
}

func TestPieceSquareBonusMirrorsForBlack(t *testing.T) {
	assert.Equal(t, pieceSquareBonus(knightTable, 0, 3, types.White), pieceSquareBonus(knightTable, 7, 3, types.Black))
}
