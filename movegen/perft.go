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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/galhamama/chess-project/position"
	"github.com/galhamama/chess-project/types"
)

var out = message.NewPrinter(language.English)

// Perft counts leaf nodes of the legal-move tree to a fixed depth, a
// standard correctness check for a move generator: the node counts from
// the starting position are well known for depths 1 through 5 or more.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	CheckCounter     uint64
	CheckMateCounter uint64
}

// Run executes perft to depth from the given FEN and returns the leaf
// node count, logging a one-line summary.
func (p *Perft) Run(fen string, depth int) uint64 {
	if depth <= 0 {
		depth = 1
	}
	*p = Perft{}

	pos, err := position.NewFromFEN(fen)
	if err != nil {
		panic(err)
	}

	start := time.Now()
	p.Nodes = p.search(pos, depth)
	elapsed := time.Since(start)

	out.Printf("perft depth %d: %d nodes in %s (%.0f nps)\n",
		depth, p.Nodes, elapsed, float64(p.Nodes)/elapsed.Seconds())
	return p.Nodes
}

func (p *Perft) search(pos *position.Position, depth int) uint64 {
	moves := Generate(pos, GenAll)

	if depth == 1 {
		var count uint64
		for _, m := range moves {
			count++
			if m.IsCapture() {
				p.CaptureCounter++
			}
			if m.Flag == types.FlagEnPassant {
				p.EnpassantCounter++
			}
			if m.Flag == types.FlagCastle {
				p.CastleCounter++
			}
			if m.Flag == types.FlagPromotion {
				p.PromotionCounter++
			}
			pos.MakeMove(m)
			if InCheck(pos, pos.SideToMove()) {
				p.CheckCounter++
				if Generate(pos, GenAll).Len() == 0 {
					p.CheckMateCounter++
				}
			}
			pos.UndoMove()
		}
		return count
	}

	var total uint64
	for _, m := range moves {
		pos.MakeMove(m)
		total += p.search(pos, depth-1)
		pos.UndoMove()
	}
	return total
}
