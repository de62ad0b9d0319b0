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

package config

// searchConfiguration holds the tuning knobs for the iterative-deepening
// alpha-beta search: which heuristics are switched on and their
// parameters.
type searchConfiguration struct {
	// Opening book
	UseBook  bool
	BookPath string

	// Transposition table
	UseTT    bool
	TTSizeMB int

	// Null-move pruning
	UseNullMove bool
	NmpBaseR    int
	NmpDepthDiv int

	// Late move reductions
	UseLmr        bool
	LmrMinDepth   int
	LmrMinMoveIdx int

	// Move ordering
	UseKiller   bool
	KillerSlots int
	UseHistory  bool

	UseQuiescence bool
}

func init() {
	Settings.Search.UseBook = true
	Settings.Search.BookPath = "assets/books/book.json"

	Settings.Search.UseTT = true
	Settings.Search.TTSizeMB = 64

	Settings.Search.UseNullMove = true
	Settings.Search.NmpBaseR = 3
	Settings.Search.NmpDepthDiv = 4

	Settings.Search.UseLmr = true
	Settings.Search.LmrMinDepth = 3
	Settings.Search.LmrMinMoveIdx = 3

	Settings.Search.UseKiller = true
	Settings.Search.KillerSlots = 2
	Settings.Search.UseHistory = true

	Settings.Search.UseQuiescence = true
}

func setupSearch() {
}
