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

// Package transpositiontable implements a fixed-capacity hash-addressed
// cache from position fingerprints to search results. TtTable is not
// thread safe; callers must synchronize Resize/Clear/NewSearch against
// concurrent Probe/Put calls.
package transpositiontable

import (
	"math"
	"unsafe"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/galhamama/chess-project/assert"
	"github.com/galhamama/chess-project/logging"
	"github.com/galhamama/chess-project/position"
	"github.com/galhamama/chess-project/types"
)

var out = message.NewPrinter(language.English)
var log = logging.GetLog()

// TtEntrySize is the approximate per-entry footprint assumed when sizing
// the table from a megabyte setting.
const TtEntrySize = 32

// MaxSizeInMB bounds how large a table Resize will honor.
const MaxSizeInMB = 65_536

// TtEntry is one cached search result.
type TtEntry struct {
	Key        position.Key
	Move       types.Move
	Score      types.Value
	Depth      int
	Generation int
	Bound      types.Bound
}

// TtStats tracks usage counters for diagnostics.
type TtStats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// TtTable is a flat, hash-addressed table sized from a megabyte budget.
type TtTable struct {
	data       []TtEntry
	sizeBytes  uint64
	mask       uint64
	capacity   uint64
	entries    uint64
	generation int
	Stats      TtStats
}

// NewTtTable creates a table sized to fit within sizeInMByte.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{generation: 1}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize rebuilds the table for a new megabyte budget, clearing all
// entries. Capacity is the largest power of two of entries that fits.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		log.Warning(out.Sprintf("TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	bytes := uint64(sizeInMByte) * 1024 * 1024
	tt.capacity = 0
	if bytes >= TtEntrySize {
		tt.capacity = 1 << uint(math.Floor(math.Log2(float64(bytes/TtEntrySize))))
	}
	tt.mask = tt.capacity - 1
	tt.sizeBytes = tt.capacity * TtEntrySize
	tt.data = make([]TtEntry, tt.capacity)
	tt.entries = 0
	tt.Stats = TtStats{}
	log.Info(out.Sprintf("TT resized to %d MB, %d entries (%d bytes/entry, struct is %d bytes)",
		tt.sizeBytes/(1024*1024), tt.capacity, TtEntrySize, unsafe.Sizeof(TtEntry{})))
}

func (tt *TtTable) index(key position.Key) uint64 {
	return uint64(key) & tt.mask
}

// ProbeResult is what Probe hands back to the caller: a usable score (if
// the stored bound lets the caller trust it against the search window)
// and/or a move for ordering.
type ProbeResult struct {
	HasScore bool
	Score    types.Value
	Move     types.Move
	HasMove  bool
}

// Probe looks up key and reports (score, move):
// an exact hit at sufficient depth always returns its score; a lower/upper
// bound only returns its score when it already proves a cutoff against
// (alpha, beta). A miss or an insufficient-depth entry still returns the
// stored move, if any, for move ordering.
func (tt *TtTable) Probe(key position.Key, depth int, alpha, beta types.Value) ProbeResult {
	tt.Stats.Probes++
	if tt.capacity == 0 {
		tt.Stats.Misses++
		return ProbeResult{}
	}
	e := &tt.data[tt.index(key)]
	if e.Key != key || e.Bound == types.BoundNone {
		tt.Stats.Misses++
		return ProbeResult{}
	}
	tt.Stats.Hits++
	result := ProbeResult{Move: e.Move, HasMove: !e.Move.IsNone()}
	if e.Depth < depth {
		return result
	}
	switch e.Bound {
	case types.BoundExact:
		result.HasScore = true
		result.Score = e.Score
	case types.BoundLower:
		if e.Score >= beta {
			result.HasScore = true
			result.Score = e.Score
		}
	case types.BoundUpper:
		if e.Score <= alpha {
			result.HasScore = true
			result.Score = e.Score
		}
	}
	return result
}

// Put stores a search result under the replacement policy: a
// brand new key is inserted if the table still has room (bounded
// automatically by capacity, since an empty slot only exists while
// entries < capacity); a collision (the slot already holds an entry,
// whether for this key or another) is overwritten only if the incoming
// depth is at least as deep as the stored one, or the stored entry is
// more than two generations old.
func (tt *TtTable) Put(key position.Key, move types.Move, score types.Value, depth int, bound types.Bound) {
	if assert.DEBUG {
		assert.Assert(depth >= 0, "transpositiontable: Put depth must be >= 0, got %d", depth)
	}
	if tt.capacity == 0 {
		return
	}
	tt.Stats.Puts++
	e := &tt.data[tt.index(key)]

	if e.Bound == types.BoundNone {
		tt.entries++
		tt.store(e, key, move, score, depth, bound)
		return
	}

	tt.Stats.Collisions++
	stale := tt.generation-e.Generation > 2
	if depth >= e.Depth || stale {
		tt.Stats.Overwrites++
		tt.store(e, key, move, score, depth, bound)
	}
}

func (tt *TtTable) store(e *TtEntry, key position.Key, move types.Move, score types.Value, depth int, bound types.Bound) {
	e.Key = key
	e.Move = move
	e.Score = score
	e.Depth = depth
	e.Generation = tt.generation
	e.Bound = bound
}

// NewSearch advances the generation counter so Put's staleness check can
// reclaim entries left over from searches more than two iterations ago.
// Existing entries are preserved, not cleared.
func (tt *TtTable) NewSearch() {
	tt.generation++
}

// Clear drops all entries and resets statistics.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.capacity)
	tt.entries = 0
	tt.generation = 1
	tt.Stats = TtStats{}
}

// Hashfull reports how full the table is, in permille, UCI-style.
func (tt *TtTable) Hashfull() int {
	if tt.capacity == 0 {
		return 0
	}
	return int((1000 * tt.entries) / tt.capacity)
}

func (tt *TtTable) String() string {
	return out.Sprintf("TT: %d MB, %d/%d entries (%d permille), puts %d collisions %d overwrites %d probes %d hits %d misses %d",
		tt.sizeBytes/(1024*1024), tt.entries, tt.capacity, tt.Hashfull(),
		tt.Stats.Puts, tt.Stats.Collisions, tt.Stats.Overwrites, tt.Stats.Probes, tt.Stats.Hits, tt.Stats.Misses)
}
