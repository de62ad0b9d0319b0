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

package openingbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galhamama/chess-project/types"
)

func TestLookupStartPositionReturnsAKnownOpening(t *testing.T) {
	b := NewBook()
	from, to, name, ok := b.Lookup("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", 0)

	require.True(t, ok)
	assert.True(t, from.IsValid())
	assert.True(t, to.IsValid())
	assert.NotEmpty(t, name)
}

func TestLookupUnknownPositionMisses(t *testing.T) {
	b := NewBook()
	_, _, _, ok := b.Lookup("8/8/8/8/8/8/8/k6K w - -", 0)
	assert.False(t, ok)
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.json")
	contents := `{
		"book": {
			"8/8/8/8/8/8/8/k6K w - -": [{"move": "h1h2", "weight": 1, "name": "Lone King Shuffle"}]
		},
		"max_depth": 4
	}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	b := NewBook()
	b.Load(path)

	from, to, name, ok := b.Lookup("8/8/8/8/8/8/8/k6K w - -", 0)
	require.True(t, ok)
	assert.Equal(t, types.MakeSquare("h1"), from)
	assert.Equal(t, types.MakeSquare("h2"), to)
	assert.Equal(t, "Lone King Shuffle", name)
	assert.Equal(t, 4, b.MaxDepth())
}

func TestLoadFromMissingFileLeavesBookUnchanged(t *testing.T) {
	b := NewBook()
	b.Load(filepath.Join(t.TempDir(), "does-not-exist.json"))

	_, _, _, ok := b.Lookup("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", 0)
	assert.True(t, ok, "a failed load should fall back to the default book, not an empty one")
}

func TestLookupPastMaxDepthMisses(t *testing.T) {
	b := NewBook()
	_, _, _, ok := b.Lookup("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", b.MaxDepth())
	assert.False(t, ok, "the book must not answer past its max depth")
}
