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

// Piece is a tagged (Color, PieceType) pair, plus a distinguished "empty
// square" value.
type Piece int8

// PieceNone represents an empty square.
const PieceNone Piece = 0

// MakePiece builds a Piece from a color and kind. Calling with pt ==
// PtNone always yields PieceNone regardless of color.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	return Piece(int(c)<<3 + int(pt))
}

// ColorOf returns the color of the piece. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece kind, or PtNone for an empty square.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// IsEmpty reports whether the piece represents an empty square.
func (p Piece) IsEmpty() bool {
	return p == PieceNone
}

// Value returns the material value of the piece (0 for an empty square).
func (p Piece) Value() int {
	return p.TypeOf().Value()
}

// Tag returns the two-character persisted-save-file representation:
// colors "w"/"b", kinds lowercase "p" for pawn and uppercase "RNBQK" for
// everything else, "--" for an empty square.
func (p Piece) Tag() string {
	if p.IsEmpty() {
		return "--"
	}
	kind := p.TypeOf().Char()
	if p.TypeOf() == Pawn {
		kind = "p"
	}
	return p.ColorOf().String() + kind
}

// PieceFromTag parses the two-character save-file tag alphabet.
// Returns PieceNone, true for "--" and PieceNone, false for any
// unrecognized tag.
func PieceFromTag(tag string) (Piece, bool) {
	if len(tag) != 2 || tag == "--" {
		return PieceNone, tag == "--"
	}
	var c Color
	switch tag[0] {
	case 'w':
		c = White
	case 'b':
		c = Black
	default:
		return PieceNone, false
	}
	var pt PieceType
	switch tag[1] {
	case 'p':
		pt = Pawn
	case 'R':
		pt = Rook
	case 'N':
		pt = Knight
	case 'B':
		pt = Bishop
	case 'Q':
		pt = Queen
	case 'K':
		pt = King
	default:
		return PieceNone, false
	}
	return MakePiece(c, pt), true
}
