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

// Package engine is the driver that sits between a caller (CLI, GUI, test
// harness) and the search: it owns the current Position and its legal
// move snapshot, consults an opening book before thinking, and otherwise
// runs the search on a dedicated worker, reporting back over a
// single-producer/single-consumer result channel of capacity one.
package engine

import (
	"sync/atomic"

	"github.com/galhamama/chess-project/config"
	"github.com/galhamama/chess-project/logging"
	"github.com/galhamama/chess-project/movegen"
	"github.com/galhamama/chess-project/openingbook"
	"github.com/galhamama/chess-project/position"
	"github.com/galhamama/chess-project/search"
	"github.com/galhamama/chess-project/types"
)

var log = logging.GetLog()

// Driver owns one game's position and drives moves into it, either from
// an opening book or from a background search.
type Driver struct {
	pos        *position.Position
	legalMoves types.MoveList

	srch *search.Search

	resultCh chan search.Result
	thinking int32

	history []string
}

// New builds a Driver over pos. book may be nil to disable opening-book
// lookups regardless of config.Settings.Search.UseBook.
func New(pos *position.Position, book *openingbook.Book) *Driver {
	var b search.Book
	if book != nil && config.Settings.Search.UseBook {
		b = book
	}
	d := &Driver{
		pos:      pos,
		srch:     search.NewSearch(b),
		resultCh: make(chan search.Result, 1),
	}
	d.legalMoves = movegen.Generate(d.pos, movegen.GenAll)
	return d
}

// Position returns the driver's current position.
func (d *Driver) Position() *position.Position {
	return d.pos
}

// LegalMoves returns the immutable snapshot of legal moves for the side
// to move in the current position.
func (d *Driver) LegalMoves() types.MoveList {
	return d.legalMoves
}

// IsGameOver reports whether the side to move has no legal move.
func (d *Driver) IsGameOver() bool {
	return d.legalMoves.Len() == 0
}

// IsThinking reports whether a search is currently in flight.
func (d *Driver) IsThinking() bool {
	return atomic.LoadInt32(&d.thinking) != 0
}

// FindMove starts looking for a move under limits. It returns
// immediately; the result arrives on the channel returned here, which
// the caller polls or blocks on without stalling the rest of the
// program. Calling FindMove while already thinking is a no-op that
// returns the same in-flight channel.
func (d *Driver) FindMove(limits search.Limits) <-chan search.Result {
	if !atomic.CompareAndSwapInt32(&d.thinking, 0, 1) {
		return d.resultCh
	}
	go func() {
		defer atomic.StoreInt32(&d.thinking, 0)
		d.srch.StartSearch(d.pos, limits)
		d.srch.WaitWhileSearching()
		d.resultCh <- d.srch.LastResult()
	}()
	return d.resultCh
}

// CancelMove requests the in-flight search stop early; it is a no-op if
// nothing is searching. The eventual result still arrives on the
// channel FindMove returned.
func (d *Driver) CancelMove() {
	d.srch.StopSearch()
}

// ApplyMove makes m on the driver's position, records it, and refreshes
// the legal-move snapshot for the next side to move. m must be one of
// the moves in the current LegalMoves() snapshot.
func (d *Driver) ApplyMove(m types.Move) {
	d.pos.MakeMove(m)
	d.history = append(d.history, m.String())
	d.legalMoves = movegen.Generate(d.pos, movegen.GenAll)
}

// FindAndApplyMove runs FindMove to completion (consulting the book
// first) and applies whatever move is produced. It blocks the calling
// goroutine until a move is ready;
// callers that need to stay responsive should use FindMove directly and
// read from its channel on their own schedule.
func (d *Driver) FindAndApplyMove(limits search.Limits) search.Result {
	result := <-d.FindMove(limits)
	if !result.BestMove.IsNone() {
		d.ApplyMove(result.BestMove)
	}
	if result.FromBook {
		log.Info("book move applied: ", result.BestMove.String())
	} else {
		log.Infof("search move applied: %s (depth %d, score %d, nodes %d)",
			result.BestMove.String(), result.Depth, result.Score, result.Nodes)
	}
	return result
}

// MoveHistory returns the UCI-notation history of moves applied through
// this driver since it was created.
func (d *Driver) MoveHistory() []string {
	out := make([]string, len(d.history))
	copy(out, d.history)
	return out
}
