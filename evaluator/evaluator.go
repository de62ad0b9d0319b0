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

// Package evaluator assigns a static centipawn score to a position from
// the side-to-move's perspective, combining material, piece-square
// bonuses, king safety, pawn structure and mobility into one sweep of
// the board.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/galhamama/chess-project/config"
	myLogging "github.com/galhamama/chess-project/logging"
	"github.com/galhamama/chess-project/movegen"
	"github.com/galhamama/chess-project/position"
	"github.com/galhamama/chess-project/types"
)

// Evaluator holds no position state of its own; it is reusable across
// positions and concurrent searches.
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator creates a ready-to-use Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog()}
}

// boardSweep collects everything a single pass over the board needs for
// every evaluation term.
type boardSweep struct {
	material  [2]int
	psqt      [2]int
	kingSq    [2]types.Square
	pawnFiles [2][8]int
	pawns     [2][]types.Square
}

func sweepBoard(pos *position.Position) boardSweep {
	var s boardSweep
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := types.SquareOf(row, col)
			pc := pos.Board(sq)
			if pc.IsEmpty() {
				continue
			}
			c := pc.ColorOf()
			pt := pc.TypeOf()
			ci := int(c)

			s.material[ci] += pt.Value()

			switch pt {
			case types.Pawn:
				s.psqt[ci] += pieceSquareBonus(pawnTable, row, col, c)
				s.pawnFiles[ci][col]++
				s.pawns[ci] = append(s.pawns[ci], sq)
			case types.Knight:
				s.psqt[ci] += pieceSquareBonus(knightTable, row, col, c)
			case types.Bishop:
				s.psqt[ci] += pieceSquareBonus(bishopTable, row, col, c)
			case types.King:
				s.kingSq[ci] = sq
			}
		}
	}
	return s
}

func pieceSquareBonus(table [8][8]int, row, col int, c types.Color) int {
	if c == types.White {
		return table[row][col]
	}
	return table[7-row][col]
}

// Evaluate returns the position's static score from the side-to-move's
// perspective (negamax convention).
func (e *Evaluator) Evaluate(pos *position.Position) types.Value {
	s := sweepBoard(pos)

	value := s.material[types.White] - s.material[types.Black]
	value += s.psqt[types.White] - s.psqt[types.Black]

	if config.Settings.Eval.UseKingSafety {
		value += kingSafety(pos, s.kingSq[types.White], types.White)
		value -= kingSafety(pos, s.kingSq[types.Black], types.Black)
	}

	if config.Settings.Eval.UsePawnStructure {
		value += pawnStructure(s, types.White)
		value -= pawnStructure(s, types.Black)
	}

	if config.Settings.Eval.UseMobility {
		whiteMoves := movegen.PseudoLegalMobility(pos, types.White)
		blackMoves := movegen.PseudoLegalMobility(pos, types.Black)
		value += config.Settings.Eval.MobilityBonus * (whiteMoves - blackMoves)
	}

	if pos.SideToMove() == types.Black {
		value = -value
	}

	return types.Value(value)
}

// kingSafety inspects the three files around color's king, one rank in
// front, rewarding a friendly pawn shield and penalizing its absence.
func kingSafety(pos *position.Position, king types.Square, color types.Color) int {
	if !king.IsValid() {
		return 0
	}
	dir := color.PawnDirection()
	score := 0
	for _, dc := range [3]int{-1, 0, 1} {
		shield := king.Step(types.Direction{Dr: dir, Dc: dc})
		if !shield.IsValid() {
			continue
		}
		if pos.Board(shield) == types.MakePiece(color, types.Pawn) {
			score += config.Settings.Eval.KingShieldBonus
		} else {
			score += config.Settings.Eval.KingShieldMalus
		}
	}
	return score
}

// pawnStructure applies the doubled- and passed-pawn terms for color.
func pawnStructure(s boardSweep, color types.Color) int {
	ci := int(color)
	score := 0
	for _, count := range s.pawnFiles[ci] {
		if count > 1 {
			score -= config.Settings.Eval.DoubledPawnMalus * (count - 1)
		}
	}
	for _, sq := range s.pawns[ci] {
		if isPassed(s, sq, color) {
			ranksFromStart := ranksAdvanced(sq, color)
			score += config.Settings.Eval.PassedPawnBonus + config.Settings.Eval.PassedPawnRank*ranksFromStart
		}
	}
	return score
}

// ranksAdvanced is how many ranks the pawn has advanced from its own side.
func ranksAdvanced(sq types.Square, color types.Color) int {
	if color == types.White {
		return 7 - sq.Row()
	}
	return sq.Row()
}

// isPassed reports whether no enemy pawn on sq's file or either adjacent
// file stands between sq and the promotion rank.
func isPassed(s boardSweep, sq types.Square, color types.Color) bool {
	enemy := color.Flip()
	dir := color.PawnDirection()
	for _, dc := range [3]int{-1, 0, 1} {
		col := sq.Col() + dc
		if col < 0 || col > 7 {
			continue
		}
		for _, p := range s.pawns[enemy] {
			if p.Col() != col {
				continue
			}
			aheadOfSq := (dir < 0 && p.Row() < sq.Row()) || (dir > 0 && p.Row() > sq.Row())
			if aheadOfSq {
				return false
			}
		}
	}
	return true
}
