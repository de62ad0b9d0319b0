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
	"fmt"
	"strconv"
	"strings"

	"github.com/galhamama/chess-project/types"
)

// NewFromFEN builds a Position from a standard FEN string. Half-move and
// full-move counters are optional and default to 0 and 1 respectively, so
// the book adapter's move-counter-less FEN subset parses the same way.
func NewFromFEN(fen string) (*Position, error) {
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("fen: empty string")
	}

	p := &Position{enPassantSquare: types.SqNone}
	p.kingSquare[types.White] = types.SqNone
	p.kingSquare[types.Black] = types.SqNone

	if err := p.parseBoardField(fields[0]); err != nil {
		return nil, err
	}

	p.sideToMove = types.White
	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			p.sideToMove = types.White
		case "b":
			p.sideToMove = types.Black
			p.zobristKey ^= zobrist.sideToMove
		default:
			return nil, fmt.Errorf("fen: invalid side to move %q", fields[1])
		}
	}

	p.castlingRights = types.CastlingNone
	if len(fields) >= 3 && fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castlingRights = p.castlingRights.Add(types.WhiteOO)
			case 'Q':
				p.castlingRights = p.castlingRights.Add(types.WhiteOOO)
			case 'k':
				p.castlingRights = p.castlingRights.Add(types.BlackOO)
			case 'q':
				p.castlingRights = p.castlingRights.Add(types.BlackOOO)
			default:
				return nil, fmt.Errorf("fen: invalid castling char %q", c)
			}
		}
	}
	p.zobristKey ^= zobrist.castlingRights[p.castlingRights]

	if len(fields) >= 4 && fields[3] != "-" {
		sq := types.MakeSquare(fields[3])
		if !sq.IsValid() {
			return nil, fmt.Errorf("fen: invalid en-passant square %q", fields[3])
		}
		p.enPassantSquare = sq
		p.zobristKey ^= zobrist.enPassantFile[sq.Col()]
	}

	halfMoveClock := 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid half-move clock: %w", err)
		}
		halfMoveClock = n
	}
	p.halfMoveClock = halfMoveClock

	fullMove := 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid full-move number: %w", err)
		}
		if n > 0 {
			fullMove = n
		}
	}
	p.ply = 2*(fullMove-1) + int(p.sideToMove)

	if !p.kingSquare[types.White].IsValid() || !p.kingSquare[types.Black].IsValid() {
		return nil, fmt.Errorf("fen: board must have exactly one king per side")
	}

	return p, nil
}

func (p *Position) parseBoardField(field string) error {
	rows := strings.Split(field, "/")
	if len(rows) != 8 {
		return fmt.Errorf("fen: expected 8 ranks, got %d", len(rows))
	}
	for row, rowStr := range rows {
		col := 0
		for _, c := range rowStr {
			if n, err := strconv.Atoi(string(c)); err == nil {
				col += n
				continue
			}
			if col >= 8 {
				return fmt.Errorf("fen: rank %d overflows board width", row)
			}
			pc, ok := pieceFromFENChar(c)
			if !ok {
				return fmt.Errorf("fen: invalid piece character %q", c)
			}
			p.setPiece(pc, types.SquareOf(row, col))
			col++
		}
		if col != 8 {
			return fmt.Errorf("fen: rank %d does not sum to 8 squares", row)
		}
	}
	return nil
}

func pieceFromFENChar(c rune) (types.Piece, bool) {
	color := types.White
	if c >= 'a' && c <= 'z' {
		color = types.Black
	}
	var pt types.PieceType
	switch c {
	case 'P', 'p':
		pt = types.Pawn
	case 'N', 'n':
		pt = types.Knight
	case 'B', 'b':
		pt = types.Bishop
	case 'R', 'r':
		pt = types.Rook
	case 'Q', 'q':
		pt = types.Queen
	case 'K', 'k':
		pt = types.King
	default:
		return types.PieceNone, false
	}
	return types.MakePiece(color, pt), true
}

func fenCharForPiece(pc types.Piece) rune {
	var c rune
	switch pc.TypeOf() {
	case types.Pawn:
		c = 'p'
	case types.Knight:
		c = 'n'
	case types.Bishop:
		c = 'b'
	case types.Rook:
		c = 'r'
	case types.Queen:
		c = 'q'
	case types.King:
		c = 'k'
	}
	if pc.ColorOf() == types.White {
		c = c - ('a' - 'A')
	}
	return c
}

// FEN renders the full FEN, including half-move clock and full-move number.
func (p *Position) FEN() string {
	var b strings.Builder
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			pc := p.board[types.SquareOf(row, col)]
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteRune(fenCharForPiece(pc))
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			b.WriteString("/")
		}
	}
	b.WriteString(" ")
	b.WriteString(p.sideToMove.String())
	b.WriteString(" ")
	b.WriteString(p.castlingRights.String())
	b.WriteString(" ")
	b.WriteString(p.enPassantSquare.String())
	fmt.Fprintf(&b, " %d %d", p.halfMoveClock, p.FullMoveNumber())
	return b.String()
}

// BookFEN renders the book-adapter FEN subset (no half-move/full-move
// counters), per the external persistence interface.
func (p *Position) BookFEN() string {
	full := p.FEN()
	fields := strings.Fields(full)
	return strings.Join(fields[:4], " ")
}
