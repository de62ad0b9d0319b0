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

func TestPieceType_Value(t *testing.T) {
	tests := []struct {
		pt   PieceType
		want int
	}{
		{PtNone, 0},
		{King, 0},
		{Pawn, 100},
		{Knight, 320},
		{Bishop, 330},
		{Rook, 500},
		{Queen, 900},
	}
	for _, tt := range tests {
		t.Run(tt.pt.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pt.Value())
		})
	}
}

func TestPieceType_Char(t *testing.T) {
	assert.Equal(t, "P", Pawn.Char())
	assert.Equal(t, "N", Knight.Char())
	assert.Equal(t, "K", King.Char())
	assert.Equal(t, "-", PtNone.Char())
}

func TestPieceType_IsValid(t *testing.T) {
	assert.False(t, PtNone.IsValid())
	assert.True(t, Pawn.IsValid())
	assert.True(t, Queen.IsValid())
	assert.False(t, PtLength.IsValid())
}

func TestPieceType_IsSlider(t *testing.T) {
	assert.True(t, Bishop.IsSlider())
	assert.True(t, Rook.IsSlider())
	assert.True(t, Queen.IsSlider())
	assert.False(t, Knight.IsSlider())
	assert.False(t, King.IsSlider())
	assert.False(t, Pawn.IsSlider())
}

func TestPieceType_String(t *testing.T) {
	assert.Equal(t, "Pawn", Pawn.String())
	assert.Equal(t, "None", PtNone.String())
}
