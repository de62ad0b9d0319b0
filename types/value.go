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

// Value is a search/evaluation score in centipawns, from the side-to-move's
// perspective (negamax convention).
type Value int32

// Sentinel values.
const (
	ValueZero      Value = 0
	ValueDraw      Value = 0
	ValueCheckMate Value = 999_999
	// ValueInfinite bounds the root search window.
	ValueInfinite Value = 1_000_000
	// ValueNone marks "no value", used by a cancelled/incomplete search.
	ValueNone Value = -2_000_000
)

// IsCheckMateValue reports whether v represents a forced mate score
// (of either sign), i.e. it is within 1000 plies of ValueCheckMate.
func (v Value) IsCheckMateValue() bool {
	return v > ValueCheckMate-1000 || v < -ValueCheckMate+1000
}
