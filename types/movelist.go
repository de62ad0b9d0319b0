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

import (
	"fmt"
	"strings"
)

// MoveList is a plain slice facade for a sequence of moves
// (push/pop/sort on a []Move).
type MoveList []Move

// NewMoveList creates an empty move list with the given capacity.
func NewMoveList(cap int) MoveList {
	return make(MoveList, 0, cap)
}

// PushBack appends a move at the end of the list.
func (ml *MoveList) PushBack(m Move) {
	*ml = append(*ml, m)
}

// Len returns the number of moves in the list.
func (ml MoveList) Len() int {
	return len(ml)
}

// At returns the move at index i without removing it.
func (ml MoveList) At(i int) Move {
	return ml[i]
}

// Set replaces the move at index i.
func (ml MoveList) Set(i int, m Move) {
	ml[i] = m
}

// Clear empties the list while retaining its capacity.
func (ml *MoveList) Clear() {
	*ml = (*ml)[:0]
}

// Sort orders the list from highest Score to lowest, via insertion sort —
// move lists are short (legal moves per position rarely exceed ~40) so
// this beats the overhead of sort.Slice.
func (ml MoveList) Sort() {
	for i := 1; i < len(ml); i++ {
		tmp := ml[i]
		j := i
		for j > 0 && tmp.Score > ml[j-1].Score {
			ml[j] = ml[j-1]
			j--
		}
		ml[j] = tmp
	}
}

// Contains reports whether m (compared via Move.Equal) is present.
func (ml MoveList) Contains(m Move) bool {
	for _, x := range ml {
		if x.Equal(m) {
			return true
		}
	}
	return false
}

// String renders the list as coordinate-notation moves.
func (ml MoveList) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MoveList: [%d] { ", len(ml))
	for i, m := range ml {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteString(" }")
	return b.String()
}

// StringUci renders the list as a space-separated UCI move sequence.
func (ml MoveList) StringUci() string {
	var b strings.Builder
	for i, m := range ml {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.String())
	}
	return b.String()
}
