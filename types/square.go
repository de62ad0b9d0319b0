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

import "fmt"

// Square is a board coordinate encoded as row*8+col, row 0..7 and col
// 0..7. Row 0 is Black's back rank and row 7 is White's back rank (the
// board is stored from Black's side down).
type Square int8

// SqNone is the invalid/sentinel square.
const SqNone Square = -1

// SquareOf builds a Square from (row, col). Returns SqNone if either
// coordinate is out of the 0..7 range.
func SquareOf(row, col int) Square {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return SqNone
	}
	return Square(row*8 + col)
}

// IsValid reports whether sq names a real board square.
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < 64
}

// Row returns the 0..7 row, row 0 being Black's back rank.
func (sq Square) Row() int {
	return int(sq) / 8
}

// Col returns the 0..7 column, col 0 being the a-file.
func (sq Square) Col() int {
	return int(sq) % 8
}

// fileChar/rankChar convert a column/row to their algebraic labels.
func fileChar(col int) byte { return byte('a' + col) }
func rankChar(row int) byte { return byte('0' + (8 - row)) }

// String returns algebraic notation (e.g. "e4"), or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{fileChar(sq.Col()), rankChar(sq.Row())})
}

// MakeSquare parses algebraic notation (e.g. "e4") into a Square, or
// returns SqNone if the string is not well formed.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	col := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if col < 0 || col > 7 || rank < 0 || rank > 7 {
		return SqNone
	}
	row := 7 - rank
	return SquareOf(row, col)
}

// Direction is a row/col step used to scan rays and step-pieces.
type Direction struct{ Dr, Dc int }

// Ray directions, grouped orthogonal-then-diagonal for the pin/check scan
// in the move generator (ray-scan from the king outward).
var (
	OrthogonalDirections = []Direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	DiagonalDirections   = []Direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	AllDirections        = append(append([]Direction{}, OrthogonalDirections...), DiagonalDirections...)
	KnightOffsets        = []Direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// Step returns the square one step from sq in direction d, or SqNone if
// that steps off the board.
func (sq Square) Step(d Direction) Square {
	return SquareOf(sq.Row()+d.Dr, sq.Col()+d.Dc)
}

func init() {
	if len(AllDirections) != 8 {
		panic(fmt.Sprintf("expected 8 ray directions, got %d", len(AllDirections)))
	}
}
