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

package search

import (
	"testing"
	"time"

	"github.com/pkg/profile"
	"github.com/stretchr/testify/require"

	"github.com/galhamama/chess-project/position"
)

// TestTimingProfile runs a fixed-time search under a CPU profiler, the
// same way a tuning session would measure where search time actually
// goes. Skipped under -short since it deliberately burns wall-clock time.
func TestTimingProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("profiling search takes real wall-clock time")
	}
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(t.TempDir())).Stop()

	pos, err := position.NewFromFEN(position.StartFEN)
	require.NoError(t, err)

	s := NewSearch(nil)
	s.StartSearch(pos, Limits{TimeLimit: 500 * time.Millisecond})
	s.WaitWhileSearching()

	result := s.LastResult()
	require.False(t, result.BestMove.IsNone())
	t.Logf("nodes=%d depth=%d elapsed=%s", result.Nodes, result.Depth, result.Elapsed)
}
