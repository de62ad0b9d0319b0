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

// Package persistence saves and restores a game snapshot as JSON,
// compatible with the field names the original save format used: a
// game_state dict (board, side to move, castling rights, en-passant
// target, move history, turn number) plus an ai_settings record.
package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/galhamama/chess-project/position"
	"github.com/galhamama/chess-project/types"
)

// AISettings is the auxiliary record accompanying a save: the
// difficulty and player identities in effect when the game was saved.
type AISettings struct {
	AIDepth     int     `json:"ai_depth"`
	AITimeLimit float64 `json:"ai_time_limit"`
	PlayerOne   string  `json:"player_one"`
	PlayerTwo   string  `json:"player_two"`
}

type castleRightsJSON struct {
	WKS bool `json:"wks"`
	WQS bool `json:"wqs"`
	BKS bool `json:"bks"`
	BQS bool `json:"bqs"`
}

type enPassantJSON struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type gameStateJSON struct {
	Board        [8][8]string     `json:"board"`
	SideToMove   bool             `json:"side_to_move"` // true = white to move
	CastleRights castleRightsJSON `json:"castle_rights"`
	EnPassant    *enPassantJSON   `json:"en_passant"`
	MoveHistory  []string         `json:"move_history"`
	TurnNum      int              `json:"turn_num"`
}

// saveFile is the on-disk JSON shape, matching the original format's
// top-level keys (game_state / timestamp / version / ai_settings).
type saveFile struct {
	GameState  gameStateJSON `json:"game_state"`
	Timestamp  float64       `json:"timestamp"`
	Version    string        `json:"version"`
	AISettings AISettings    `json:"ai_settings"`
}

const formatVersion = "1.0"

// Save writes pos's current state plus ai to path as JSON. nowUnix is
// the caller's timestamp (not computed here, so this package stays
// deterministic and test-friendly).
func Save(pos *position.Position, ai AISettings, nowUnix float64, path string) error {
	sf := saveFile{
		GameState:  toGameState(pos),
		Timestamp:  nowUnix,
		Version:    formatVersion,
		AISettings: ai,
	}
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("persistence: encode failed: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("persistence: write failed: %w", err)
	}
	return nil
}

// Load reads path and reconstructs the Position it describes, along
// with the recorded move history (display-only; the board itself is
// restored directly, not by replaying these moves) and AI settings.
func Load(path string) (pos *position.Position, moveHistory []string, ai AISettings, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, AISettings{}, fmt.Errorf("persistence: read failed: %w", err)
	}
	var sf saveFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, nil, AISettings{}, fmt.Errorf("persistence: decode failed: %w", err)
	}
	pos, err = fromGameState(sf.GameState)
	if err != nil {
		return nil, nil, AISettings{}, err
	}
	return pos, sf.GameState.MoveHistory, sf.AISettings, nil
}

// toGameState builds the JSON game-state record from a live position.
func toGameState(pos *position.Position) gameStateJSON {
	var board [8][8]string
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			board[row][col] = pos.Board(types.SquareOf(row, col)).Tag()
		}
	}

	rights := pos.CastlingRights()
	var ep *enPassantJSON
	if sq := pos.EnPassantSquare(); sq != types.SqNone {
		ep = &enPassantJSON{Row: sq.Row(), Col: sq.Col()}
	}

	history := pos.History()
	moves := make([]string, len(history))
	for i, m := range history {
		moves[i] = m.String()
	}

	return gameStateJSON{
		Board:      board,
		SideToMove: pos.SideToMove() == types.White,
		CastleRights: castleRightsJSON{
			WKS: rights.Has(types.WhiteOO),
			WQS: rights.Has(types.WhiteOOO),
			BKS: rights.Has(types.BlackOO),
			BQS: rights.Has(types.BlackOOO),
		},
		EnPassant:   ep,
		MoveHistory: moves,
		TurnNum:     pos.FullMoveNumber(),
	}
}

// fromGameState rebuilds a Position by rendering the snapshot as a FEN
// string and parsing it - the snapshot already carries every field a
// FEN needs (board, side to move, castling rights, en-passant target),
// so there is no need for a second board-construction code path.
func fromGameState(gs gameStateJSON) (*position.Position, error) {
	var ranks []string
	for row := 0; row < 8; row++ {
		var b strings.Builder
		empty := 0
		for col := 0; col < 8; col++ {
			tag := gs.Board[row][col]
			if tag == "--" || tag == "" {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&b, "%d", empty)
				empty = 0
			}
			piece, ok := types.PieceFromTag(tag)
			if !ok {
				return nil, fmt.Errorf("persistence: invalid piece tag %q at row %d col %d", tag, row, col)
			}
			b.WriteString(fenLetterFor(piece))
		}
		if empty > 0 {
			fmt.Fprintf(&b, "%d", empty)
		}
		ranks = append(ranks, b.String())
	}

	side := "b"
	if gs.SideToMove {
		side = "w"
	}

	castle := ""
	if gs.CastleRights.WKS {
		castle += "K"
	}
	if gs.CastleRights.WQS {
		castle += "Q"
	}
	if gs.CastleRights.BKS {
		castle += "k"
	}
	if gs.CastleRights.BQS {
		castle += "q"
	}
	if castle == "" {
		castle = "-"
	}

	ep := "-"
	if gs.EnPassant != nil {
		ep = types.SquareOf(gs.EnPassant.Row, gs.EnPassant.Col).String()
	}

	fen := fmt.Sprintf("%s %s %s %s 0 %d", strings.Join(ranks, "/"), side, castle, ep, maxInt(gs.TurnNum, 1))
	return position.NewFromFEN(fen)
}

func fenLetterFor(p types.Piece) string {
	letter := map[types.PieceType]string{
		types.Pawn: "p", types.Knight: "n", types.Bishop: "b",
		types.Rook: "r", types.Queen: "q", types.King: "k",
	}[p.TypeOf()]
	if p.ColorOf() == types.White {
		return strings.ToUpper(letter)
	}
	return letter
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
