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
	"github.com/galhamama/chess-project/types"
	"github.com/galhamama/chess-project/util"
)

// Key is a Zobrist hash key identifying a position for transposition table
// lookups. A fixed PRNG seed makes keys reproducible across runs and
// processes, which lets a transposition table be pre-populated or shared
// deterministically.
type Key uint64

const zobristSeed uint64 = 1070372

type zobristTable struct {
	pieces         [13][64]Key // index by types.Piece (0..12), see pieceIndex
	castlingRights [16]Key
	enPassantFile  [8]Key
	sideToMove     Key
}

var zobrist zobristTable

func init() {
	r := util.NewRandom(zobristSeed)
	for pc := 0; pc < 13; pc++ {
		for sq := 0; sq < 64; sq++ {
			zobrist.pieces[pc][sq] = Key(r.Rand64())
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobrist.castlingRights[cr] = Key(r.Rand64())
	}
	for f := 0; f < 8; f++ {
		zobrist.enPassantFile[f] = Key(r.Rand64())
	}
	zobrist.sideToMove = Key(r.Rand64())
}

// pieceIndex maps a types.Piece onto a dense 0..12 slot: 0 is PieceNone,
// 1..6 are White king..queen, 7..12 are Black king..queen - mirroring the
// layout of types.PieceType so the mapping is a single shift-and-add.
func pieceIndex(p types.Piece) int {
	if p.IsEmpty() {
		return 0
	}
	base := 0
	if p.ColorOf() == types.Black {
		base = 6
	}
	return base + int(p.TypeOf())
}

func zobristForPiece(p types.Piece, sq types.Square) Key {
	return zobrist.pieces[pieceIndex(p)][sq]
}
