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
	"github.com/galhamama/chess-project/position"
	"github.com/galhamama/chess-project/types"
)

// GenFlag selects which subset of legal moves Generate produces.
type GenFlag int

const (
	GenAll GenFlag = iota
	GenCaptures
	GenQuiet
)

var promotionKinds = [4]types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight}

// Generate returns the fully legal move list for the side to move. As a
// side effect it sets pos.Checkmate and pos.Stalemate when flag is GenAll
// and the list turns out empty.
func Generate(pos *position.Position, flag GenFlag) types.MoveList {
	color := pos.SideToMove()
	king := pos.KingSquare(color)
	info := scanForChecksAndPins(pos, color)

	moves := types.NewMoveList(48)

	switch len(info.checkers) {
	case 0:
		generatePieceMoves(pos, color, &info, nil, &moves, flag)
		generateKingMoves(pos, color, king, &moves, flag)
		generateCastling(pos, color, king, &moves, flag)
	case 1:
		allowed := allowedBlockSquares(pos, king, info.checkers[0])
		generatePieceMoves(pos, color, &info, allowed, &moves, flag)
		generateKingMoves(pos, color, king, &moves, flag)
	default: // double check: only the king can move
		generateKingMoves(pos, color, king, &moves, flag)
	}

	if flag == GenAll {
		if moves.Len() == 0 {
			pos.Checkmate = len(info.checkers) > 0
			pos.Stalemate = len(info.checkers) == 0
		} else {
			pos.Checkmate = false
			pos.Stalemate = false
		}
	}

	return moves
}

// LegalMoves is a convenience alias for Generate(pos, GenAll).
func LegalMoves(pos *position.Position) types.MoveList {
	return Generate(pos, GenAll)
}

// allowedBlockSquares returns the set of destination squares a non-king
// move must land on while the king is in single check: the checking
// square itself (capture), plus - if the checker is a slider - the
// squares between king and checker (interposition).
func allowedBlockSquares(pos *position.Position, king, checker types.Square) map[types.Square]bool {
	allowed := map[types.Square]bool{checker: true}
	pt := pos.Board(checker).TypeOf()
	if pt == types.Bishop || pt == types.Rook || pt == types.Queen {
		for _, sq := range squaresBetween(king, checker) {
			allowed[sq] = true
		}
	}
	return allowed
}

func squaresBetween(from, to types.Square) []types.Square {
	dr := sign(to.Row() - from.Row())
	dc := sign(to.Col() - from.Col())
	var out []types.Square
	cur := from.Step(types.Direction{Dr: dr, Dc: dc})
	for cur.IsValid() && cur != to {
		out = append(out, cur)
		cur = cur.Step(types.Direction{Dr: dr, Dc: dc})
	}
	return out
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func wanted(flag GenFlag, m types.Move) bool {
	switch flag {
	case GenCaptures:
		return m.IsCapture()
	case GenQuiet:
		return !m.IsCapture()
	default:
		return true
	}
}

// destAllowed reports whether `to` is legal for a piece moving from `from`
// given the check-block/capture restriction (nil means no restriction,
// i.e. not in check) and any pin axis recorded for `from`.
func destAllowed(info *pinInfo, allowed map[types.Square]bool, from, to types.Square) bool {
	if allowed != nil && !allowed[to] {
		return false
	}
	if d, pinned := info.pinned[from]; pinned {
		return onAxis(from, to, d)
	}
	return true
}

func generatePieceMoves(pos *position.Position, color types.Color, info *pinInfo, allowed map[types.Square]bool, moves *types.MoveList, flag GenFlag) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			from := types.SquareOf(row, col)
			pc := pos.Board(from)
			if pc.IsEmpty() || pc.ColorOf() != color || pc.TypeOf() == types.King {
				continue
			}
			switch pc.TypeOf() {
			case types.Pawn:
				generatePawnMoves(pos, color, from, info, allowed, moves, flag)
			case types.Knight:
				for _, d := range types.KnightOffsets {
					addStepMove(pos, color, from, from.Step(d), info, allowed, moves, flag)
				}
			case types.Bishop:
				generateSliderMoves(pos, color, from, types.DiagonalDirections, info, allowed, moves, flag)
			case types.Rook:
				generateSliderMoves(pos, color, from, types.OrthogonalDirections, info, allowed, moves, flag)
			case types.Queen:
				generateSliderMoves(pos, color, from, types.AllDirections, info, allowed, moves, flag)
			}
		}
	}
}

func addStepMove(pos *position.Position, color types.Color, from, to types.Square, info *pinInfo, allowed map[types.Square]bool, moves *types.MoveList, flag GenFlag) {
	if !to.IsValid() {
		return
	}
	target := pos.Board(to)
	if !target.IsEmpty() && target.ColorOf() == color {
		return
	}
	if !destAllowed(info, allowed, from, to) {
		return
	}
	m := types.Move{From: from, To: to, PieceMoved: pos.Board(from), Captured: target}
	if wanted(flag, m) {
		moves.PushBack(m)
	}
}

func generateSliderMoves(pos *position.Position, color types.Color, from types.Square, dirs []types.Direction, info *pinInfo, allowed map[types.Square]bool, moves *types.MoveList, flag GenFlag) {
	for _, d := range dirs {
		cur := from.Step(d)
		for cur.IsValid() {
			target := pos.Board(cur)
			if target.IsEmpty() {
				if destAllowed(info, allowed, from, cur) {
					m := types.Move{From: from, To: cur, PieceMoved: pos.Board(from)}
					if wanted(flag, m) {
						moves.PushBack(m)
					}
				}
				cur = cur.Step(d)
				continue
			}
			if target.ColorOf() != color && destAllowed(info, allowed, from, cur) {
				m := types.Move{From: from, To: cur, PieceMoved: pos.Board(from), Captured: target}
				if wanted(flag, m) {
					moves.PushBack(m)
				}
			}
			break
		}
	}
}

func generatePawnMoves(pos *position.Position, color types.Color, from types.Square, info *pinInfo, allowed map[types.Square]bool, moves *types.MoveList, flag GenFlag) {
	dir := color.PawnDirection()
	startRow := 6
	promoRow := 0
	if color == types.Black {
		startRow = 1
		promoRow = 7
	}
	pieceMoved := pos.Board(from)

	one := from.Step(types.Direction{Dr: dir, Dc: 0})
	if one.IsValid() && pos.Board(one).IsEmpty() {
		if destAllowed(info, allowed, from, one) {
			if one.Row() == promoRow {
				addPromotions(from, one, pieceMoved, types.PieceNone, moves, flag)
			} else {
				m := types.Move{From: from, To: one, PieceMoved: pieceMoved}
				if wanted(flag, m) {
					moves.PushBack(m)
				}
			}
		}
		if from.Row() == startRow {
			two := from.Step(types.Direction{Dr: 2 * dir, Dc: 0})
			if two.IsValid() && pos.Board(two).IsEmpty() && destAllowed(info, allowed, from, two) {
				m := types.Move{From: from, To: two, PieceMoved: pieceMoved}
				if wanted(flag, m) {
					moves.PushBack(m)
				}
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		capSq := from.Step(types.Direction{Dr: dir, Dc: dc})
		if !capSq.IsValid() {
			continue
		}
		target := pos.Board(capSq)
		if !target.IsEmpty() && target.ColorOf() != color {
			if !destAllowed(info, allowed, from, capSq) {
				continue
			}
			if capSq.Row() == promoRow {
				addPromotions(from, capSq, pieceMoved, target, moves, flag)
			} else {
				m := types.Move{From: from, To: capSq, PieceMoved: pieceMoved, Captured: target}
				if wanted(flag, m) {
					moves.PushBack(m)
				}
			}
			continue
		}
		if capSq == pos.EnPassantSquare() {
			// en-passant must also respect the check/pin restriction - the
			// captured pawn's square counts as "the checker" for blocking
			// purposes when it is itself the piece giving check.
			capturedSq := types.SquareOf(from.Row(), capSq.Col())
			if allowed != nil && !allowed[capSq] && !allowed[capturedSq] {
				continue
			}
			if d, pinned := info.pinned[from]; pinned && !onAxis(from, capSq, d) {
				continue
			}
			captured := pos.Board(capturedSq)
			m := types.Move{From: from, To: capSq, PieceMoved: pieceMoved, Captured: captured, Flag: types.FlagEnPassant}
			if wanted(flag, m) {
				moves.PushBack(m)
			}
		}
	}
}

func addPromotions(from, to types.Square, pieceMoved, captured types.Piece, moves *types.MoveList, flag GenFlag) {
	for _, pt := range promotionKinds {
		m := types.Move{From: from, To: to, PieceMoved: pieceMoved, Captured: captured, Flag: types.FlagPromotion, PromoteTo: pt}
		if wanted(flag, m) {
			moves.PushBack(m)
		}
	}
}

func generateKingMoves(pos *position.Position, color types.Color, king types.Square, moves *types.MoveList, flag GenFlag) {
	enemy := color.Flip()
	for _, d := range types.AllDirections {
		to := king.Step(d)
		if !to.IsValid() {
			continue
		}
		target := pos.Board(to)
		if !target.IsEmpty() && target.ColorOf() == color {
			continue
		}
		if squareAttackedIgnoring(pos, to, enemy, king) {
			continue
		}
		m := types.Move{From: king, To: to, PieceMoved: pos.Board(king), Captured: target}
		if wanted(flag, m) {
			moves.PushBack(m)
		}
	}
}

func generateCastling(pos *position.Position, color types.Color, king types.Square, moves *types.MoveList, flag GenFlag) {
	if flag == GenCaptures {
		return // castling is never a capture
	}
	enemy := color.Flip()
	if SquareAttacked(pos, king, enemy) {
		return
	}
	row := king.Row()
	rights := pos.CastlingRights()

	kingsideRight := types.KingsideRight(color)
	if rights.Has(kingsideRight) {
		f := types.SquareOf(row, 5)
		g := types.SquareOf(row, 6)
		if pos.Board(f).IsEmpty() && pos.Board(g).IsEmpty() &&
			!SquareAttacked(pos, f, enemy) && !SquareAttacked(pos, g, enemy) {
			moves.PushBack(types.Move{From: king, To: g, PieceMoved: pos.Board(king), Flag: types.FlagCastle})
		}
	}

	queensideRight := types.QueensideRight(color)
	if rights.Has(queensideRight) {
		d := types.SquareOf(row, 3)
		c := types.SquareOf(row, 2)
		b := types.SquareOf(row, 1)
		if pos.Board(d).IsEmpty() && pos.Board(c).IsEmpty() && pos.Board(b).IsEmpty() &&
			!SquareAttacked(pos, d, enemy) && !SquareAttacked(pos, c, enemy) {
			moves.PushBack(types.Move{From: king, To: c, PieceMoved: pos.Board(king), Flag: types.FlagCastle})
		}
	}
}
