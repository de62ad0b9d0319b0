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

// CastlingRights encodes which castling moves are still available, one
// independent bit per side and wing.
type CastlingRights uint8

// Constants for castling rights.
const (
	CastlingNone CastlingRights = 0

	WhiteOO  CastlingRights = 1 << 0 // kingside
	WhiteOOO CastlingRights = 1 << 1 // queenside
	BlackOO  CastlingRights = 1 << 2
	BlackOOO CastlingRights = 1 << 3

	CastlingWhite = WhiteOO | WhiteOOO
	CastlingBlack = BlackOO | BlackOOO
	CastlingAll   = CastlingWhite | CastlingBlack
)

// Has reports whether all bits in rhs are set in lhs.
func (c CastlingRights) Has(rhs CastlingRights) bool {
	return c&rhs == rhs
}

// Remove clears the given right(s) and returns the result.
func (c CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	return c &^ rhs
}

// Add sets the given right(s) and returns the result.
func (c CastlingRights) Add(rhs CastlingRights) CastlingRights {
	return c | rhs
}

// String renders the FEN-style "KQkq" subset, "-" if none remain.
func (c CastlingRights) String() string {
	if c == CastlingNone {
		return "-"
	}
	s := ""
	if c.Has(WhiteOO) {
		s += "K"
	}
	if c.Has(WhiteOOO) {
		s += "Q"
	}
	if c.Has(BlackOO) {
		s += "k"
	}
	if c.Has(BlackOOO) {
		s += "q"
	}
	return s
}

// KingsideRight and QueensideRight return the castling bit relevant to a
// color, used by movegen to check castling availability.
func KingsideRight(c Color) CastlingRights {
	if c == White {
		return WhiteOO
	}
	return BlackOO
}

func QueensideRight(c Color) CastlingRights {
	if c == White {
		return WhiteOOO
	}
	return BlackOOO
}

func AllRights(c Color) CastlingRights {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}
