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

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galhamama/chess-project/openingbook"
	"github.com/galhamama/chess-project/position"
	"github.com/galhamama/chess-project/search"
)

func TestNewDriverSnapshotsLegalMovesAtStartPosition(t *testing.T) {
	pos, err := position.NewFromFEN(position.StartFEN)
	require.NoError(t, err)

	d := New(pos, nil)
	assert.Equal(t, 20, d.LegalMoves().Len())
	assert.False(t, d.IsGameOver())
	assert.False(t, d.IsThinking())
}

func TestFindAndApplyMoveUsesBookAtStartPosition(t *testing.T) {
	pos, err := position.NewFromFEN(position.StartFEN)
	require.NoError(t, err)

	d := New(pos, openingbook.NewBook())
	result := d.FindAndApplyMove(search.Limits{MaxDepth: 4, TimeLimit: time.Second})

	require.True(t, result.FromBook)
	assert.False(t, result.BestMove.IsNone())
	assert.Equal(t, 1, len(d.MoveHistory()))
}

func TestFindAndApplyMoveWithoutBookRunsSearch(t *testing.T) {
	pos, err := position.NewFromFEN("6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - 0 1")
	require.NoError(t, err)

	d := New(pos, nil)
	result := d.FindAndApplyMove(search.Limits{MaxDepth: 3, TimeLimit: 2 * time.Second})

	assert.False(t, result.FromBook)
	assert.Equal(t, "e1e8", result.BestMove.String())
	assert.Equal(t, []string{"e1e8"}, d.MoveHistory())
}

func TestFindMoveIsANoOpWhileAlreadyThinking(t *testing.T) {
	pos, err := position.NewFromFEN(position.StartFEN)
	require.NoError(t, err)

	d := New(pos, nil)
	first := d.FindMove(search.Limits{MaxDepth: 6, TimeLimit: 2 * time.Second})
	second := d.FindMove(search.Limits{MaxDepth: 6, TimeLimit: 2 * time.Second})

	assert.True(t, first == second, "a second FindMove call while thinking should return the same channel")
	<-first
}
