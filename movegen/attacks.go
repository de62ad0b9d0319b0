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

// Package movegen computes the fully legal move list for a position: pins
// and checks are found by ray-scanning outward from the king, rather than
// the generate-pseudo-legal-then-filter-by-replay pattern, except for king
// moves themselves which are validated by a direct attack test.
package movegen

import (
	"github.com/galhamama/chess-project/position"
	"github.com/galhamama/chess-project/types"
)

const noIgnore = types.SqNone

// SquareAttacked reports whether any byColor piece attacks sq on the
// current board.
func SquareAttacked(pos *position.Position, sq types.Square, byColor types.Color) bool {
	return squareAttackedIgnoring(pos, sq, byColor, noIgnore)
}

// squareAttackedIgnoring is SquareAttacked but treats the ignore square as
// vacated - used to validate a king's destination square while scanning
// rays that would otherwise stop at the king's own (about to be vacated)
// square.
func squareAttackedIgnoring(pos *position.Position, sq types.Square, byColor types.Color, ignore types.Square) bool {
	pawnDir := byColor.PawnDirection()
	for _, dc := range [2]int{-1, 1} {
		origin := sq.Step(types.Direction{Dr: -pawnDir, Dc: dc})
		if origin.IsValid() && origin != ignore && pos.Board(origin) == types.MakePiece(byColor, types.Pawn) {
			return true
		}
	}

	for _, d := range types.KnightOffsets {
		o := sq.Step(d)
		if o.IsValid() && o != ignore && pos.Board(o) == types.MakePiece(byColor, types.Knight) {
			return true
		}
	}

	for _, d := range types.AllDirections {
		o := sq.Step(d)
		if o.IsValid() && o != ignore && pos.Board(o) == types.MakePiece(byColor, types.King) {
			return true
		}
	}

	for _, d := range types.OrthogonalDirections {
		if rayHitsSlider(pos, sq, d, byColor, ignore, types.Rook) {
			return true
		}
	}
	for _, d := range types.DiagonalDirections {
		if rayHitsSlider(pos, sq, d, byColor, ignore, types.Bishop) {
			return true
		}
	}
	return false
}

// rayHitsSlider walks from sq in direction d, skipping the ignore square as
// if empty, and reports whether the first real piece found is a byColor
// slider able to move along this ray (straight PieceType for orthogonal,
// Bishop for diagonal - Queen always qualifies for either).
func rayHitsSlider(pos *position.Position, sq types.Square, d types.Direction, byColor types.Color, ignore types.Square, straight types.PieceType) bool {
	cur := sq.Step(d)
	for cur.IsValid() {
		if cur == ignore {
			cur = cur.Step(d)
			continue
		}
		pc := pos.Board(cur)
		if pc.IsEmpty() {
			cur = cur.Step(d)
			continue
		}
		if pc.ColorOf() != byColor {
			return false
		}
		pt := pc.TypeOf()
		return pt == types.Queen || pt == straight
	}
	return false
}

// InCheck reports whether color's king is currently attacked.
func InCheck(pos *position.Position, color types.Color) bool {
	return SquareAttacked(pos, pos.KingSquare(color), color.Flip())
}

// pinInfo is the result of ray-scanning outward from the king: the squares
// of pieces giving check, and for each pinned friendly piece the axis
// (one of the eight ray directions) it may still move along.
type pinInfo struct {
	checkers []types.Square
	pinned   map[types.Square]types.Direction
}

func scanForChecksAndPins(pos *position.Position, color types.Color) pinInfo {
	info := pinInfo{pinned: make(map[types.Square]types.Direction)}
	king := pos.KingSquare(color)
	enemy := color.Flip()

	for _, d := range types.AllDirections {
		straight := d.Dr == 0 || d.Dc == 0
		var wantType types.PieceType
		if straight {
			wantType = types.Rook
		} else {
			wantType = types.Bishop
		}

		var candidate types.Square = types.SqNone
		cur := king.Step(d)
		for cur.IsValid() {
			pc := pos.Board(cur)
			if pc.IsEmpty() {
				cur = cur.Step(d)
				continue
			}
			if pc.ColorOf() == color {
				if candidate == types.SqNone {
					candidate = cur
					cur = cur.Step(d)
					continue
				}
				// a second friendly piece blocks the ray entirely.
				break
			}
			// enemy piece: does it check/pin along this ray?
			pt := pc.TypeOf()
			if pt == types.Queen || pt == wantType {
				if candidate == types.SqNone {
					info.checkers = append(info.checkers, cur)
				} else {
					info.pinned[candidate] = d
				}
			}
			break
		}
	}

	for _, d := range types.KnightOffsets {
		o := king.Step(d)
		if o.IsValid() && pos.Board(o) == types.MakePiece(enemy, types.Knight) {
			info.checkers = append(info.checkers, o)
		}
	}

	pawnDir := enemy.PawnDirection()
	for _, dc := range [2]int{-1, 1} {
		o := king.Step(types.Direction{Dr: -pawnDir, Dc: dc})
		if o.IsValid() && pos.Board(o) == types.MakePiece(enemy, types.Pawn) {
			info.checkers = append(info.checkers, o)
		}
	}

	return info
}

// onAxis reports whether moving from `from` to `to` stays on the line
// through `from` parallel to axis d - the restriction that applies to a
// piece pinned along d.
func onAxis(from, to types.Square, d types.Direction) bool {
	dr := to.Row() - from.Row()
	dc := to.Col() - from.Col()
	return dr*d.Dc == dc*d.Dr
}
