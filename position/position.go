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

// Package position holds the mutable board state: a typed 8x8 grid of
// pieces plus side to move, castling rights, en-passant target and cached
// king squares. It provides make/unmake and Zobrist hashing for the
// transposition table.
package position

import (
	"fmt"
	"strings"

	"github.com/galhamama/chess-project/assert"
	"github.com/galhamama/chess-project/types"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the chess board and all state needed to make and unmake
// moves and to compute a reproducible Zobrist fingerprint.
type Position struct {
	board           [64]types.Piece
	sideToMove      types.Color
	castlingRights  types.CastlingRights
	enPassantSquare types.Square
	kingSquare      [2]types.Square
	halfMoveClock   int
	ply             int // half-move count since game start, 0-based
	zobristKey      Key

	history []types.Move

	// nullHistory backs DoNullMove/UndoNullMove, which pass the turn
	// without moving a piece (used by null-move pruning) and so cannot
	// reuse the ordinary move-undo stack.
	nullHistory []nullUndo

	// Checkmate and Stalemate are set by the move generator as a side
	// effect of computing the legal move list at the root; Position does
	// not compute them itself.
	Checkmate bool
	Stalemate bool
}

// New returns a Position set up at the standard starting position.
func New() *Position {
	p, err := NewFromFEN(StartFEN)
	if err != nil {
		panic(fmt.Sprintf("start FEN must be valid: %v", err))
	}
	return p
}

// Board returns the piece occupying sq.
func (p *Position) Board(sq types.Square) types.Piece {
	return p.board[sq]
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() types.Color {
	return p.sideToMove
}

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() types.CastlingRights {
	return p.castlingRights
}

// EnPassantSquare returns the current en-passant target, or types.SqNone.
func (p *Position) EnPassantSquare() types.Square {
	return p.enPassantSquare
}

// KingSquare returns the cached square of c's king.
func (p *Position) KingSquare(c types.Color) types.Square {
	return p.kingSquare[c]
}

// HalfMoveClock returns the 50-move-rule half-move clock.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// Ply returns the number of half-moves played since the game start.
func (p *Position) Ply() int {
	return p.ply
}

// FullMoveNumber returns the conventional FEN full-move counter.
func (p *Position) FullMoveNumber() int {
	return p.ply/2 + 1
}

// ZobristKey returns the position's current hash key.
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// HistoryLen returns the number of moves made so far (undo stack depth).
func (p *Position) HistoryLen() int {
	return len(p.history)
}

// History returns the moves made so far, oldest first. The returned
// slice is a copy; mutating it does not affect the position.
func (p *Position) History() []types.Move {
	out := make([]types.Move, len(p.history))
	copy(out, p.history)
	return out
}

func (p *Position) setPiece(pc types.Piece, sq types.Square) {
	assert.Assert(p.board[sq].IsEmpty(), "setPiece: square %s already occupied", sq.String())
	p.board[sq] = pc
	if pc.TypeOf() == types.King {
		p.kingSquare[pc.ColorOf()] = sq
	}
	p.zobristKey ^= zobristForPiece(pc, sq)
}

func (p *Position) clearPiece(sq types.Square) types.Piece {
	pc := p.board[sq]
	assert.Assert(!pc.IsEmpty(), "clearPiece: square %s already empty", sq.String())
	p.board[sq] = types.PieceNone
	p.zobristKey ^= zobristForPiece(pc, sq)
	return pc
}

func (p *Position) movePieceSq(from, to types.Square) {
	pc := p.clearPiece(from)
	p.setPiece(pc, to)
}

// rookOriginForCastle returns the rook's home square for the given castling
// side, used both to invalidate rights and to relocate the rook on O-O/O-O-O.
func rookOriginForCastle(c types.Color, kingside bool) types.Square {
	row := 7
	if c == types.Black {
		row = 0
	}
	if kingside {
		return types.SquareOf(row, 7)
	}
	return types.SquareOf(row, 0)
}

func kingHomeSquare(c types.Color) types.Square {
	row := 7
	if c == types.Black {
		row = 0
	}
	return types.SquareOf(row, 4)
}

// invalidateCastlingOn clears whichever castling right corresponds to a
// king/rook leaving (or a rook being captured on) sq, and keeps the
// zobrist key in step.
func (p *Position) invalidateCastlingOn(sq types.Square) {
	var toRemove types.CastlingRights
	switch sq {
	case kingHomeSquare(types.White):
		toRemove = types.CastlingWhite
	case kingHomeSquare(types.Black):
		toRemove = types.CastlingBlack
	case rookOriginForCastle(types.White, true):
		toRemove = types.WhiteOO
	case rookOriginForCastle(types.White, false):
		toRemove = types.WhiteOOO
	case rookOriginForCastle(types.Black, true):
		toRemove = types.BlackOO
	case rookOriginForCastle(types.Black, false):
		toRemove = types.BlackOOO
	}
	if toRemove != types.CastlingNone && p.castlingRights&toRemove != 0 {
		p.zobristKey ^= zobrist.castlingRights[p.castlingRights]
		p.castlingRights = p.castlingRights.Remove(toRemove)
		p.zobristKey ^= zobrist.castlingRights[p.castlingRights]
	}
}

func (p *Position) setEnPassant(sq types.Square) {
	if p.enPassantSquare != types.SqNone {
		p.zobristKey ^= zobrist.enPassantFile[p.enPassantSquare.Col()]
	}
	p.enPassantSquare = sq
	if sq != types.SqNone {
		p.zobristKey ^= zobrist.enPassantFile[sq.Col()]
	}
}

// MakeMove applies m to the position. m is assumed legal; the caller (the
// move generator, or a search recursion replaying a generated move) is
// responsible for legality. The position's pre-move state is captured onto
// a copy of m and pushed onto the undo stack, so UndoMove needs nothing
// but that stack.
func (p *Position) MakeMove(m types.Move) {
	assert.Assert(!m.IsNone(), "MakeMove: move must not be the none-move")

	undo := m
	undo.PriorCastling = p.castlingRights
	undo.PriorEnPassant = p.enPassantSquare
	undo.PriorHalfMoveClock = p.halfMoveClock
	undo.PriorZobristKey = uint64(p.zobristKey)

	mover := p.sideToMove
	wasPawnMove := m.PieceMoved.TypeOf() == types.Pawn
	wasCapture := m.IsCapture()

	switch m.Flag {
	case types.FlagEnPassant:
		capSq := types.SquareOf(m.From.Row(), m.To.Col())
		p.clearPiece(capSq)
		p.movePieceSq(m.From, m.To)
	case types.FlagPromotion:
		if wasCapture {
			p.clearPiece(m.To)
		}
		p.clearPiece(m.From)
		p.setPiece(types.MakePiece(mover, m.PromoteTo), m.To)
	case types.FlagCastle:
		kingside := m.To.Col() == 6
		p.movePieceSq(m.From, m.To)
		rookFrom := rookOriginForCastle(mover, kingside)
		rookTo := types.SquareOf(m.From.Row(), rookCastleDestCol(kingside))
		p.movePieceSq(rookFrom, rookTo)
	default: // FlagNone
		if wasCapture {
			p.clearPiece(m.To)
		}
		p.movePieceSq(m.From, m.To)
	}

	// castling-rights invalidation: king or rook leaving home, or a rook
	// being captured on its home square.
	if p.castlingRights != types.CastlingNone {
		p.invalidateCastlingOn(m.From)
		p.invalidateCastlingOn(m.To)
	}

	// en-passant target: cleared unless this was a pawn double push.
	if wasPawnMove && abs(m.To.Row()-m.From.Row()) == 2 {
		p.setEnPassant(types.SquareOf((m.From.Row()+m.To.Row())/2, m.From.Col()))
	} else {
		p.setEnPassant(types.SqNone)
	}

	if wasCapture || wasPawnMove {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= zobrist.sideToMove
	p.ply++

	p.history = append(p.history, undo)
	p.Checkmate = false
	p.Stalemate = false
}

// UndoMove reverses the most recent MakeMove call.
func (p *Position) UndoMove() {
	assert.Assert(len(p.history) > 0, "UndoMove: no move to undo")

	m := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	p.sideToMove = p.sideToMove.Flip()
	mover := p.sideToMove
	p.ply--

	switch m.Flag {
	case types.FlagEnPassant:
		p.movePieceSq(m.To, m.From)
		capSq := types.SquareOf(m.From.Row(), m.To.Col())
		p.setPiece(types.MakePiece(mover.Flip(), types.Pawn), capSq)
	case types.FlagPromotion:
		p.clearPiece(m.To)
		p.setPiece(m.PieceMoved, m.From)
		if m.Captured != types.PieceNone {
			p.setPiece(m.Captured, m.To)
		}
	case types.FlagCastle:
		kingside := m.To.Col() == 6
		p.movePieceSq(m.To, m.From)
		rookFrom := rookOriginForCastle(mover, kingside)
		rookTo := types.SquareOf(m.From.Row(), rookCastleDestCol(kingside))
		p.movePieceSq(rookTo, rookFrom)
	default: // FlagNone
		p.movePieceSq(m.To, m.From)
		if m.Captured != types.PieceNone {
			p.setPiece(m.Captured, m.To)
		}
	}

	p.castlingRights = m.PriorCastling
	p.enPassantSquare = m.PriorEnPassant
	p.halfMoveClock = m.PriorHalfMoveClock
	p.zobristKey = Key(m.PriorZobristKey)
	p.Checkmate = false
	p.Stalemate = false
}

// nullUndo captures the minimal state a null move needs to restore, since
// no piece moves and no history.Move entry fits.
type nullUndo struct {
	castlingRights  types.CastlingRights
	enPassantSquare types.Square
	halfMoveClock   int
	zobristKey      Key
}

// DoNullMove passes the turn without moving a piece: used by null-move
// pruning to test whether the side to move is doing so well that even
// giving the opponent a free tempo doesn't let them catch up. The
// position's external view (FEN, Zobrist key) is unchanged once paired
// with UndoNullMove.
func (p *Position) DoNullMove() {
	p.nullHistory = append(p.nullHistory, nullUndo{
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		halfMoveClock:   p.halfMoveClock,
		zobristKey:      p.zobristKey,
	})
	p.setEnPassant(types.SqNone)
	p.halfMoveClock++
	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= zobrist.sideToMove
	p.ply++
	p.Checkmate = false
	p.Stalemate = false
}

// UndoNullMove reverses the most recent DoNullMove call.
func (p *Position) UndoNullMove() {
	assert.Assert(len(p.nullHistory) > 0, "UndoNullMove: no null move to undo")

	u := p.nullHistory[len(p.nullHistory)-1]
	p.nullHistory = p.nullHistory[:len(p.nullHistory)-1]

	p.sideToMove = p.sideToMove.Flip()
	p.ply--
	p.castlingRights = u.castlingRights
	p.enPassantSquare = u.enPassantSquare
	p.halfMoveClock = u.halfMoveClock
	p.zobristKey = u.zobristKey
	p.Checkmate = false
	p.Stalemate = false
}

// rookCastleDestCol returns the rook's destination column for a castle,
// kingside lands next to the king at f-file (col 5), queenside at d-file
// (col 3).
func rookCastleDestCol(kingside bool) int {
	if kingside {
		return 5
	}
	return 3
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// String renders the FEN followed by an ASCII board diagram.
func (p *Position) String() string {
	var b strings.Builder
	b.WriteString(p.FEN())
	b.WriteString("\n")
	b.WriteString(p.StringBoard())
	return b.String()
}

// StringBoard renders an ASCII board diagram, white's perspective.
func (p *Position) StringBoard() string {
	var b strings.Builder
	b.WriteString("+---+---+---+---+---+---+---+---+\n")
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			pc := p.board[types.SquareOf(row, col)]
			ch := "."
			if !pc.IsEmpty() {
				ch = pc.Tag()
			}
			fmt.Fprintf(&b, "|%2s ", ch)
		}
		b.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return b.String()
}
