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

// Package openingbook implements the book oracle the core search
// consults before thinking: a FEN-keyed table of named opening moves
// loaded from a small JSON file.
package openingbook

import (
	"encoding/json"
	"math/rand"
	"os"
	"sync"

	"github.com/galhamama/chess-project/logging"
	"github.com/galhamama/chess-project/types"
)

var log = logging.GetLog()

// Candidate is one weighted named move recorded for a book position.
type Candidate struct {
	Move   string `json:"move"` // UCI coordinate form, e.g. "e2e4"
	Weight int    `json:"weight"`
	Name   string `json:"name"`
}

// fileFormat mirrors the on-disk JSON shape: a FEN-keyed map of
// candidate move lists plus the ply depth past which the book is no
// longer consulted.
type fileFormat struct {
	Book     map[string][]Candidate `json:"book"`
	MaxDepth int                    `json:"max_depth"`
}

// Book is a FEN-keyed opening book, safe for concurrent Lookup calls.
type Book struct {
	mu       sync.RWMutex
	entries  map[string][]Candidate
	maxDepth int
}

// NewBook returns a Book seeded with a small set of well-known main
// lines, used whenever no book file is configured or the configured
// file can't be read.
func NewBook() *Book {
	return &Book{entries: defaultLines(), maxDepth: 12}
}

// Load replaces the book's contents with the JSON file at path. On any
// I/O or parse error the book is left unchanged (falls back to whatever
// it already had, normally the default lines) and the error is logged,
// per the book-lookup-failure handling: logged, swallowed, never fatal.
func (b *Book) Load(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warning("opening book: could not read ", path, ": ", err)
		return
	}
	var parsed fileFormat
	if err := json.Unmarshal(data, &parsed); err != nil {
		log.Warning("opening book: could not parse ", path, ": ", err)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = parsed.Book
	if parsed.MaxDepth > 0 {
		b.maxDepth = parsed.MaxDepth
	}
	log.Infof("opening book: loaded %d positions from %s", len(parsed.Book), path)
}

// Lookup implements search.Book: given the book-adapter FEN subset and
// the number of half-moves already played, it returns a weighted-random
// candidate's (from, to, name), or ok=false on a miss. Positions deeper
// than the book's max depth always miss, so a long game that wanders
// back into a book position doesn't get an out-of-context "opening".
func (b *Book) Lookup(fen string, historyLen int) (from, to types.Square, name string, ok bool) {
	b.mu.RLock()
	candidates, found := b.entries[fen]
	maxDepth := b.maxDepth
	b.mu.RUnlock()
	if historyLen >= maxDepth || !found || len(candidates) == 0 {
		return types.SqNone, types.SqNone, "", false
	}

	total := 0
	for _, c := range candidates {
		total += c.Weight
	}
	if total <= 0 {
		return decodeUCI(candidates[0].Move, candidates[0].Name)
	}

	roll := rand.Intn(total)
	cumulative := 0
	for _, c := range candidates {
		cumulative += c.Weight
		if roll < cumulative {
			return decodeUCI(c.Move, c.Name)
		}
	}
	return decodeUCI(candidates[len(candidates)-1].Move, candidates[len(candidates)-1].Name)
}

// MaxDepth returns the ply count past which Lookup stops answering.
func (b *Book) MaxDepth() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.maxDepth
}

// decodeUCI parses a 4-character coordinate move ("e2e4") into squares.
func decodeUCI(move, name string) (types.Square, types.Square, string, bool) {
	if len(move) < 4 {
		return types.SqNone, types.SqNone, "", false
	}
	from := types.MakeSquare(move[0:2])
	to := types.MakeSquare(move[2:4])
	if from == types.SqNone || to == types.SqNone {
		return types.SqNone, types.SqNone, "", false
	}
	return from, to, name, true
}
