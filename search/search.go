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

// Package search implements iterative-deepening alpha-beta search: move
// ordering, a transposition table, null-move pruning, late-move
// reductions and quiescence search, run as a cancellable background job.
package search

import (
	"context"
	"math/rand"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/galhamama/chess-project/config"
	"github.com/galhamama/chess-project/evaluator"
	"github.com/galhamama/chess-project/logging"
	"github.com/galhamama/chess-project/movegen"
	"github.com/galhamama/chess-project/position"
	"github.com/galhamama/chess-project/transpositiontable"
	"github.com/galhamama/chess-project/types"
)

var log = logging.GetSearchLog()

// Book is the opening-book oracle a Search consults before thinking, kept
// as a narrow interface here so this package does not need to import the
// book package's on-disk format. Lookup takes the book-adapter FEN
// subset (board, side to move, castling rights, en-passant target - no
// move counters) plus the number of half-moves already played, and
// returns either ok=false or a (from, to) pair plus the opening's name;
// the core treats the oracle as opaque and matches the returned squares
// against its own legal move list.
type Book interface {
	Lookup(fen string, historyLen int) (from, to types.Square, name string, ok bool)
}

// Search runs one engine "think" at a time on the position handed to
// StartSearch. Create with NewSearch, drive with StartSearch/StopSearch.
type Search struct {
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	book Book
	tt   *transpositiontable.TtTable
	eval *evaluator.Evaluator

	killers killerTable
	history historyTable

	Stats Statistics

	cancelled  int32
	startTime  time.Time
	limits     Limits
	lastResult Result
}

// NewSearch builds a Search with its own transposition table sized per
// config.Settings.Search.TTSizeMB. Pass nil for book to disable opening
// book lookups.
func NewSearch(book Book) *Search {
	size := config.Settings.Search.TTSizeMB
	if !config.Settings.Search.UseTT {
		size = 1
	}
	return &Search{
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
		book:          book,
		tt:            transpositiontable.NewTtTable(size),
		eval:          evaluator.NewEvaluator(),
		history:       make(historyTable),
	}
}

// StartSearch begins searching pos under limits in a background
// goroutine and returns once the goroutine has taken ownership. The
// search makes and unmakes moves on pos directly; the caller must not
// touch it until the search completes (it is handed back restored
// exactly, even on cancellation).
func (s *Search) StartSearch(pos *position.Position, limits Limits) {
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	s.limits = limits
	go s.run(pos)
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch requests cancellation and blocks until the search goroutine
// has actually finished.
func (s *Search) StopSearch() {
	atomic.StoreInt32(&s.cancelled, 1)
	s.WaitWhileSearching()
}

// IsSearching reports whether a search is currently in flight.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any in-flight search completes.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// LastResult returns the most recently completed search's result.
func (s *Search) LastResult() Result {
	return s.lastResult
}

func (s *Search) isCancelled() bool {
	return atomic.LoadInt32(&s.cancelled) != 0
}

// run performs the iterative-deepening loop. It is always started as a
// goroutine from StartSearch.
func (s *Search) run(pos *position.Position) {
	if !s.isRunning.TryAcquire(1) {
		log.Error("search already running")
		s.initSemaphore.Release(1)
		return
	}
	defer s.isRunning.Release(1)

	atomic.StoreInt32(&s.cancelled, 0)
	s.Stats = Statistics{}
	s.killers = killerTable{}
	s.history = make(historyTable)
	s.lastResult = Result{BestMove: types.NoMove}
	s.startTime = time.Now()
	s.initSemaphore.Release(1)

	legal := movegen.Generate(pos, movegen.GenAll)
	if legal.Len() == 0 {
		s.lastResult = Result{BestMove: types.NoMove, Elapsed: time.Since(s.startTime)}
		return
	}

	if s.book != nil {
		if from, to, name, ok := s.book.Lookup(pos.BookFEN(), pos.Ply()); ok {
			if mv, found := matchBookMove(legal, from, to); found {
				s.lastResult = Result{BestMove: mv, FromBook: true, Elapsed: time.Since(s.startTime)}
				log.Debug("opening book move: ", name, " ", mv.String())
				return
			}
		}
	}

	best := legal.At(rand.Intn(legal.Len()))

	maxDepth := s.limits.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 64
	}

	for depth := 1; depth <= maxDepth; depth++ {
		if s.timeIsUp() {
			break
		}
		s.tt.NewSearch()
		move, score, ok := s.searchRoot(pos, depth, legal)
		if !ok {
			break
		}
		best = move
		s.lastResult = Result{
			BestMove: best,
			Score:    score,
			Depth:    depth,
			Nodes:    s.Stats.Nodes,
			Elapsed:  time.Since(s.startTime),
		}
		log.Debugf("depth %d best %s score %d nodes %d", depth, best.String(), score, s.Stats.Nodes)
	}

	if s.lastResult.BestMove.IsNone() {
		s.lastResult = Result{BestMove: best, Elapsed: time.Since(s.startTime)}
	}
}

// matchBookMove finds the legal move matching a book's (from, to) pair.
// A from/to pair is ambiguous only for promotions, in which case a queen
// promotion is preferred - the book records an opening's intent, not the
// promotion piece, and queening is virtually always the book's implied
// choice.
func matchBookMove(legal types.MoveList, from, to types.Square) (types.Move, bool) {
	var candidate types.Move
	found := false
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From != from || m.To != to {
			continue
		}
		if m.Flag != types.FlagPromotion || m.PromoteTo == types.Queen {
			return m, true
		}
		candidate, found = m, true
	}
	return candidate, found
}

// searchRoot runs one iterative-deepening iteration over the legal root
// moves with PVS (full window for the first move, a null-window scout for
// the rest with a full-window re-search when a scout raises alpha),
// returning the best move and score. A
// cancelled (or timed-out) iteration returns ok=false and its partial
// result is discarded; the caller keeps the previous depth's move.
func (s *Search) searchRoot(pos *position.Position, depth int, legal types.MoveList) (types.Move, types.Value, bool) {
	ttMove := types.NoMove
	if !s.lastResult.BestMove.IsNone() {
		ttMove = s.lastResult.BestMove
	}
	orderMoves(legal, ttMove, 0, &s.killers, s.history)

	alpha, beta := -types.ValueInfinite, types.ValueInfinite
	var bestMove types.Move
	best := types.ValueNone

	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		pos.MakeMove(m)

		var score types.Value
		if i == 0 {
			score = -s.negamax(pos, depth-1, 1, -beta, -alpha)
		} else {
			score = -s.negamax(pos, depth-1, 1, -alpha-1, -alpha)
			if score > alpha {
				score = -s.negamax(pos, depth-1, 1, -beta, -alpha)
			}
		}

		pos.UndoMove()

		if s.isCancelled() {
			return bestMove, best, false
		}

		if score > best {
			best = score
			bestMove = m
		}
		if best > alpha {
			alpha = best
		}
	}

	return bestMove, best, true
}

func (s *Search) timeIsUp() bool {
	if !s.limits.TimeControlled() {
		return false
	}
	return time.Since(s.startTime) >= s.limits.TimeLimit
}
