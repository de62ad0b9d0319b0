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

// PieceType identifies the kind of a piece, independent of color.
type PieceType int8

// Constants for piece kinds. PtNone marks an empty square's kind.
const (
	PtNone PieceType = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
	PtLength
)

var pieceTypeToName = [PtLength]string{"None", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// String returns a human readable name for the piece type.
func (pt PieceType) String() string {
	return pieceTypeToName[pt]
}

// upperChar is the uppercase algebraic letter for the kind, "-" for none
// and "P" for pawn (used internally; the external tag alphabet lower-cases
// pawns, see Piece.Tag).
var upperChar = [PtLength]string{"-", "K", "P", "N", "B", "R", "Q"}

// Char returns the single uppercase letter used in algebraic/SAN contexts.
func (pt PieceType) Char() string {
	return upperChar[pt]
}

// material value in centipawns.
var pieceTypeValue = [PtLength]int{0, 0, 100, 320, 330, 500, 900}

// Value returns the material value of the piece type.
func (pt PieceType) Value() int {
	return pieceTypeValue[pt]
}

// IsValid reports whether pt is one of the six real piece kinds.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// IsSlider reports whether the piece type slides along rays (bishop, rook,
// queen) as opposed to stepping (king, knight) or pawn's special rules.
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}
