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

package movegen

import (
	"github.com/galhamama/chess-project/position"
	"github.com/galhamama/chess-project/types"
)

var emptyPinInfo = pinInfo{}

// PseudoLegalMobility counts color's pseudo-legal moves, ignoring pins and
// checks entirely - the evaluator's mobility term only needs a count, not
// a legal move list, so it skips the ray-scan that legality would require.
func PseudoLegalMobility(pos *position.Position, color types.Color) int {
	moves := types.NewMoveList(48)
	generatePieceMoves(pos, color, &emptyPinInfo, nil, &moves, GenAll)
	king := pos.KingSquare(color)
	for _, d := range types.AllDirections {
		to := king.Step(d)
		if !to.IsValid() {
			continue
		}
		target := pos.Board(to)
		if !target.IsEmpty() && target.ColorOf() == color {
			continue
		}
		moves.PushBack(types.Move{From: king, To: to, PieceMoved: pos.Board(king), Captured: target})
	}
	return moves.Len()
}
