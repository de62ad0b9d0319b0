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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/galhamama/chess-project/types"
)

func TestNewStartPosition(t *testing.T) {
	p := New()
	assert.Equal(t, types.White, p.SideToMove())
	assert.Equal(t, types.CastlingAll, p.CastlingRights())
	assert.Equal(t, types.SqNone, p.EnPassantSquare())
	assert.Equal(t, MakePieceAt(p, "e1"), types.MakePiece(types.White, types.King))
	assert.Equal(t, MakePieceAt(p, "e8"), types.MakePiece(types.Black, types.King))
	assert.Equal(t, StartFEN, p.FEN())
}

// MakePieceAt is a small test helper reading the board by algebraic square.
func MakePieceAt(p *Position, sq string) types.Piece {
	return p.Board(types.MakeSquare(sq))
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
	}
	for _, fen := range fens {
		p, err := NewFromFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.FEN())
	}
}

func TestMakeUnmake_NormalMove(t *testing.T) {
	p := New()
	before := p.FEN()
	beforeKey := p.ZobristKey()

	m := types.Move{From: types.MakeSquare("e2"), To: types.MakeSquare("e4"), PieceMoved: types.MakePiece(types.White, types.Pawn)}
	p.MakeMove(m)
	assert.NotEqual(t, before, p.FEN())
	assert.Equal(t, types.Black, p.SideToMove())
	assert.Equal(t, types.MakeSquare("e3"), p.EnPassantSquare())

	p.UndoMove()
	assert.Equal(t, before, p.FEN())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestMakeUnmake_Capture(t *testing.T) {
	p, err := NewFromFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	assert.NoError(t, err)
	before := p.FEN()
	beforeKey := p.ZobristKey()

	m := types.Move{
		From: types.MakeSquare("e4"), To: types.MakeSquare("d5"),
		PieceMoved: types.MakePiece(types.White, types.Pawn),
		Captured:   types.MakePiece(types.Black, types.Pawn),
	}
	p.MakeMove(m)
	assert.True(t, MakePieceAt(p, "d5") == types.MakePiece(types.White, types.Pawn))
	assert.Equal(t, 0, p.HalfMoveClock())

	p.UndoMove()
	assert.Equal(t, before, p.FEN())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestMakeUnmake_EnPassant(t *testing.T) {
	p, err := NewFromFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	assert.NoError(t, err)
	before := p.FEN()
	beforeKey := p.ZobristKey()

	m := types.Move{
		From: types.MakeSquare("e5"), To: types.MakeSquare("f6"),
		PieceMoved: types.MakePiece(types.White, types.Pawn),
		Captured:   types.MakePiece(types.Black, types.Pawn),
		Flag:       types.FlagEnPassant,
	}
	p.MakeMove(m)
	assert.True(t, MakePieceAt(p, "f6") == types.MakePiece(types.White, types.Pawn))
	assert.True(t, MakePieceAt(p, "f5").IsEmpty())

	p.UndoMove()
	assert.Equal(t, before, p.FEN())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestMakeUnmake_Castle(t *testing.T) {
	p, err := NewFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	before := p.FEN()
	beforeKey := p.ZobristKey()

	m := types.Move{
		From: types.MakeSquare("e1"), To: types.MakeSquare("g1"),
		PieceMoved: types.MakePiece(types.White, types.King),
		Flag:       types.FlagCastle,
	}
	p.MakeMove(m)
	assert.True(t, MakePieceAt(p, "g1") == types.MakePiece(types.White, types.King))
	assert.True(t, MakePieceAt(p, "f1") == types.MakePiece(types.White, types.Rook))
	assert.False(t, p.CastlingRights().Has(types.WhiteOO))
	assert.False(t, p.CastlingRights().Has(types.WhiteOOO))
	assert.True(t, p.CastlingRights().Has(types.BlackOO))

	p.UndoMove()
	assert.Equal(t, before, p.FEN())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestMakeUnmake_Promotion(t *testing.T) {
	p, err := NewFromFEN("k7/4P3/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	before := p.FEN()
	beforeKey := p.ZobristKey()

	m := types.Move{
		From: types.MakeSquare("e7"), To: types.MakeSquare("e8"),
		PieceMoved: types.MakePiece(types.White, types.Pawn),
		Flag:       types.FlagPromotion,
		PromoteTo:  types.Queen,
	}
	p.MakeMove(m)
	assert.Equal(t, types.MakePiece(types.White, types.Queen), MakePieceAt(p, "e8"))

	p.UndoMove()
	assert.Equal(t, before, p.FEN())
	assert.Equal(t, beforeKey, p.ZobristKey())
	assert.Equal(t, types.MakePiece(types.White, types.Pawn), MakePieceAt(p, "e7"))
}

func TestRookCaptureInvalidatesCastlingRights(t *testing.T) {
	p, err := NewFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	m := types.Move{
		From: types.MakeSquare("a1"), To: types.MakeSquare("a8"),
		PieceMoved: types.MakePiece(types.White, types.Rook),
		Captured:   types.MakePiece(types.Black, types.Rook),
	}
	p.MakeMove(m)
	assert.False(t, p.CastlingRights().Has(types.WhiteOOO))
	assert.False(t, p.CastlingRights().Has(types.BlackOOO))
	assert.True(t, p.CastlingRights().Has(types.WhiteOO))
	assert.True(t, p.CastlingRights().Has(types.BlackOO))
}

func TestMultipleMakeUnmakeSequenceRestoresExactly(t *testing.T) {
	p := New()
	before := p.FEN()
	beforeKey := p.ZobristKey()

	moves := []types.Move{
		{From: types.MakeSquare("e2"), To: types.MakeSquare("e4"), PieceMoved: types.MakePiece(types.White, types.Pawn)},
		{From: types.MakeSquare("e7"), To: types.MakeSquare("e5"), PieceMoved: types.MakePiece(types.Black, types.Pawn)},
		{From: types.MakeSquare("g1"), To: types.MakeSquare("f3"), PieceMoved: types.MakePiece(types.White, types.Knight)},
	}
	for _, m := range moves {
		p.MakeMove(m)
	}
	for range moves {
		p.UndoMove()
	}
	assert.Equal(t, before, p.FEN())
	assert.Equal(t, beforeKey, p.ZobristKey())
}
