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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/galhamama/chess-project/position"
	"github.com/galhamama/chess-project/types"
)

func mustFEN(t *testing.T, fen string) *position.Position {
	t.Helper()
	p, err := position.NewFromFEN(fen)
	assert.NoError(t, err)
	return p
}

func TestStartPositionHas20Moves(t *testing.T) {
	p := position.New()
	moves := LegalMoves(p)
	assert.Len(t, moves, 20)
	assert.False(t, p.Checkmate)
	assert.False(t, p.Stalemate)
}

// Scenario A: one-move mate.
func TestScenarioA_OneMoveMate(t *testing.T) {
	p := mustFEN(t, "6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - 0 1")
	moves := LegalMoves(p)
	mate := types.Move{From: types.MakeSquare("e1"), To: types.MakeSquare("e8"), PieceMoved: types.MakePiece(types.White, types.Rook)}
	assert.True(t, moves.Contains(mate), "Re1-e8 must be legal")

	p.MakeMove(mate)
	after := LegalMoves(p)
	assert.Len(t, after, 0)
	assert.True(t, p.Checkmate)
	assert.False(t, p.Stalemate)
}

// Scenario C: stalemate detection.
func TestScenarioC_Stalemate(t *testing.T) {
	p := mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	moves := LegalMoves(p)
	assert.Len(t, moves, 0)
	assert.True(t, p.Stalemate)
	assert.False(t, p.Checkmate)
}

// Scenario D: en passant availability and make/unmake identity.
func TestScenarioD_EnPassant(t *testing.T) {
	p := mustFEN(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	moves := LegalMoves(p)
	ep := types.Move{
		From: types.MakeSquare("e5"), To: types.MakeSquare("f6"),
		PieceMoved: types.MakePiece(types.White, types.Pawn),
		Captured:   types.MakePiece(types.Black, types.Pawn),
		Flag:       types.FlagEnPassant,
	}
	assert.True(t, moves.Contains(ep))

	before := p.FEN()
	p.MakeMove(ep)
	p.UndoMove()
	assert.Equal(t, before, p.FEN())
}

// Scenario E: castling blocked through an attacked square.
func TestScenarioE_CastlingBlockedThroughCheck(t *testing.T) {
	p := mustFEN(t, "4k3/8/b7/8/8/8/8/4K2R w K - 0 1")
	moves := LegalMoves(p)
	castle := types.Move{From: types.MakeSquare("e1"), To: types.MakeSquare("g1"), PieceMoved: types.MakePiece(types.White, types.King), Flag: types.FlagCastle}
	assert.False(t, moves.Contains(castle), "O-O must not be legal while f1 is attacked")
}

// Scenario F: promotion.
func TestScenarioF_Promotion(t *testing.T) {
	p := mustFEN(t, "k7/4P3/8/8/8/8/8/4K3 w - - 0 1")
	moves := LegalMoves(p)
	promo := types.Move{From: types.MakeSquare("e7"), To: types.MakeSquare("e8"), PieceMoved: types.MakePiece(types.White, types.Pawn), Flag: types.FlagPromotion, PromoteTo: types.Queen}
	assert.True(t, moves.Contains(promo))

	p.MakeMove(promo)
	assert.Equal(t, types.MakePiece(types.White, types.Queen), p.Board(types.MakeSquare("e8")))
}

func TestPinnedPieceRestrictedToAxis(t *testing.T) {
	// White king e1, white rook e4 pinned by black rook e8 along the e-file.
	p := mustFEN(t, "4r1k1/8/8/8/4R3/8/8/4K3 w - - 0 1")
	moves := LegalMoves(p)
	for _, m := range moves {
		if m.From == types.MakeSquare("e4") {
			assert.Equal(t, 4, m.To.Col(), "pinned rook may only move along the e-file")
		}
	}
	// the pinned rook must still be able to capture the pinning rook.
	capturePinner := types.Move{From: types.MakeSquare("e4"), To: types.MakeSquare("e8"), PieceMoved: types.MakePiece(types.White, types.Rook), Captured: types.MakePiece(types.Black, types.Rook)}
	assert.True(t, moves.Contains(capturePinner))
}

func TestSingleCheckRestrictsToBlockOrCapture(t *testing.T) {
	// White king e1 in check from black rook e8 along the e-file; white
	// rook on a4 can interpose on e4, or the king can step aside.
	p := mustFEN(t, "4r1k1/8/8/8/R7/8/8/4K3 w - - 0 1")
	moves := LegalMoves(p)
	block := types.Move{From: types.MakeSquare("a4"), To: types.MakeSquare("e4"), PieceMoved: types.MakePiece(types.White, types.Rook)}
	assert.True(t, moves.Contains(block))
	illegalSideMove := types.Move{From: types.MakeSquare("a4"), To: types.MakeSquare("a8"), PieceMoved: types.MakePiece(types.White, types.Rook)}
	assert.False(t, moves.Contains(illegalSideMove))
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// Black king h8 attacked simultaneously by a rook on the h-file and a
	// knight a move away - double check, so only the king may move.
	p := mustFEN(t, "7k/8/6N1/8/8/8/8/K6R b - - 0 1")
	moves := LegalMoves(p)
	for _, m := range moves {
		assert.Equal(t, types.King, m.PieceMoved.TypeOf(), "double check allows only king moves")
	}
}
