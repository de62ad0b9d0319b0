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

package types

import "fmt"

// MoveFlag tags a Move as a plain move or one of the special chess moves
// that need extra handling to make/unmake.
type MoveFlag int8

const (
	FlagNone MoveFlag = iota
	FlagEnPassant
	FlagPromotion
	FlagCastle
)

// Move captures everything needed to both execute and undo a single ply.
// Equality is defined by (From, To, PieceMoved, Flag); the remaining
// fields carry undo state and do not participate in equality or hashing.
type Move struct {
	From, To   Square
	PieceMoved Piece
	Captured   Piece // PieceNone if not a capture
	Flag       MoveFlag
	PromoteTo  PieceType // valid only when Flag == FlagPromotion

	// Undo state: the position's castling rights and en-passant target
	// immediately before this move was made (each Move owns its pre-state;
	// no separate parallel undo log).
	PriorCastling  CastlingRights
	PriorEnPassant Square // SqNone if none

	// Additional restore bookkeeping filled in by Position.MakeMove, not by
	// the move generator: the half-move clock and zobrist key immediately
	// before the move. Reversing the clock's reset/increment needs the old
	// value explicitly; the zobrist key could instead be rederived by
	// replaying the same XOR toggles in reverse, but storing it is simpler
	// and just as cheap.
	PriorHalfMoveClock int
	PriorZobristKey    uint64

	// Score is a scratch field used by move ordering (MVV-LVA, TT move,
	// killer, history) and by root-move bookkeeping; it never affects
	// equality.
	Score int
}

// NoMove is the absence of a move.
var NoMove = Move{From: SqNone, To: SqNone}

// IsNone reports whether m is the absence of a move.
func (m Move) IsNone() bool {
	return m.From == SqNone && m.To == SqNone
}

// Equal compares moves by (From, To, PieceMoved, Flag) only.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.PieceMoved == o.PieceMoved && m.Flag == o.Flag
}

// IsCapture reports whether the move captures a piece (including
// en-passant).
func (m Move) IsCapture() bool {
	return m.Captured != PieceNone
}

// IsQuiet reports whether the move is neither a capture nor a promotion —
// the moves eligible for killer/history ordering and LMR.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && m.Flag != FlagPromotion
}

// String renders UCI-style coordinate notation, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	if m.IsNone() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Flag == FlagPromotion {
		s += promotionSuffix(m.PromoteTo)
	}
	return s
}

func promotionSuffix(pt PieceType) string {
	switch pt {
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	default:
		panic(fmt.Sprintf("invalid promotion piece type %v", pt))
	}
}
