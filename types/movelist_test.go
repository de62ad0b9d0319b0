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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveList_PushBackAndAt(t *testing.T) {
	ml := NewMoveList(4)
	assert.Equal(t, 0, ml.Len())

	m1 := Move{From: MakeSquare("e2"), To: MakeSquare("e4")}
	m2 := Move{From: MakeSquare("d2"), To: MakeSquare("d4")}
	ml.PushBack(m1)
	ml.PushBack(m2)

	assert.Equal(t, 2, ml.Len())
	assert.True(t, ml.At(0).Equal(m1))
	assert.True(t, ml.At(1).Equal(m2))
}

func TestMoveList_Clear(t *testing.T) {
	ml := NewMoveList(4)
	ml.PushBack(Move{From: MakeSquare("e2"), To: MakeSquare("e4")})
	ml.Clear()
	assert.Equal(t, 0, ml.Len())
}

func TestMoveList_Sort(t *testing.T) {
	ml := NewMoveList(4)
	ml.PushBack(Move{From: MakeSquare("e2"), To: MakeSquare("e3"), Score: 5})
	ml.PushBack(Move{From: MakeSquare("e2"), To: MakeSquare("e4"), Score: 500})
	ml.PushBack(Move{From: MakeSquare("d2"), To: MakeSquare("d4"), Score: 50})

	ml.Sort()

	assert.Equal(t, 500, ml.At(0).Score)
	assert.Equal(t, 50, ml.At(1).Score)
	assert.Equal(t, 5, ml.At(2).Score)
}

func TestMoveList_Contains(t *testing.T) {
	ml := NewMoveList(2)
	m := Move{From: MakeSquare("e2"), To: MakeSquare("e4"), PieceMoved: MakePiece(White, Pawn)}
	ml.PushBack(m)

	assert.True(t, ml.Contains(Move{From: MakeSquare("e2"), To: MakeSquare("e4"), PieceMoved: MakePiece(White, Pawn), Score: 999}))
	assert.False(t, ml.Contains(Move{From: MakeSquare("d2"), To: MakeSquare("d4")}))
}

func TestMoveList_StringUci(t *testing.T) {
	ml := NewMoveList(2)
	ml.PushBack(Move{From: MakeSquare("e2"), To: MakeSquare("e4")})
	ml.PushBack(Move{From: MakeSquare("e7"), To: MakeSquare("e5")})
	assert.Equal(t, "e2e4 e7e5", ml.StringUci())
}
