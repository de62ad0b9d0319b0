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

package openingbook

// defaultLines returns a small set of well-known main lines covering the
// first few moves of the most common openings, keyed by the
// book-adapter FEN subset (board/side/castling/en-passant, no move
// counters).
func defaultLines() map[string][]Candidate {
	return map[string][]Candidate{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -": {
			{"e2e4", 45, "King's Pawn"},
			{"d2d4", 40, "Queen's Pawn"},
			{"g1f3", 10, "Reti Opening"},
			{"c2c4", 5, "English Opening"},
		},
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3": {
			{"e7e5", 30, "Open Game"},
			{"c7c5", 25, "Sicilian Defense"},
			{"e7e6", 15, "French Defense"},
			{"c7c6", 15, "Caro-Kann Defense"},
			{"d7d5", 10, "Scandinavian Defense"},
			{"g8f6", 5, "Alekhine Defense"},
		},
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6": {
			{"g1f3", 60, "King's Knight"},
			{"f2f4", 15, "King's Gambit"},
			{"b1c3", 15, "Vienna Game"},
			{"f1c4", 10, "Bishop's Opening"},
		},
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq -": {
			{"b8c6", 70, "Normal"},
			{"g8f6", 20, "Petroff Defense"},
			{"f7f5", 10, "Latvian Gambit"},
		},
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq -": {
			{"f1c4", 40, "Italian Game"},
			{"f1b5", 35, "Ruy Lopez"},
			{"d2d4", 15, "Scotch Game"},
			{"b1c3", 10, "Three Knights"},
		},
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6": {
			{"g1f3", 70, "Open Sicilian"},
			{"b1c3", 20, "Closed Sicilian"},
			{"c2c3", 10, "Alapin Variation"},
		},
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq -": {
			{"d7d6", 35, "Dragon/Najdorf setup"},
			{"b8c6", 30, "Classical Sicilian"},
			{"e7e6", 25, "Taimanov/Paulsen"},
			{"g7g6", 10, "Hyperaccelerated Dragon"},
		},
		"rnbqkbnr/pppp1ppp/4p3/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq -": {
			{"d2d4", 80, "Main Line"},
			{"d2d3", 10, "King's Indian Attack"},
			{"b1c3", 10, "Two Knights"},
		},
		"rnbqkbnr/ppp2ppp/4p3/3p4/3PP3/8/PPP2PPP/RNBQKBNR w KQkq d6": {
			{"b1c3", 35, "Classical French"},
			{"b1d2", 30, "Tarrasch Variation"},
			{"e4e5", 25, "Advance Variation"},
			{"e4d5", 10, "Exchange Variation"},
		},
		"rnbqkbnr/pp1ppppp/2p5/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq -": {
			{"d2d4", 70, "Main Line"},
			{"b1c3", 20, "Two Knights"},
			{"c2c4", 10, "Accelerated Panov"},
		},
		"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3": {
			{"g8f6", 40, "Indian Defense"},
			{"d7d5", 35, "Queen's Gambit"},
			{"f7f5", 10, "Dutch Defense"},
			{"e7e6", 10, "French-like"},
			{"g7g6", 5, "Modern Defense"},
		},
		"rnbqkbnr/ppp1pppp/8/3p4/3P4/8/PPP1PPPP/RNBQKBNR w KQkq d6": {
			{"c2c4", 90, "Queen's Gambit"},
			{"g1f3", 10, "London System setup"},
		},
		"rnbqkbnr/ppp1pppp/8/3p4/2PP4/8/PP2PPPP/RNBQKBNR b KQkq c3": {
			{"e7e6", 40, "Queen's Gambit Declined"},
			{"d5c4", 30, "Queen's Gambit Accepted"},
			{"c7c6", 20, "Slav Defense"},
			{"e7e5", 10, "Albin Counter-Gambit"},
		},
		"rnbqkb1r/pppppppp/5n2/8/3P4/8/PPP1PPPP/RNBQKBNR w KQkq -": {
			{"c2c4", 60, "Indian Systems"},
			{"g1f3", 25, "London/Torre"},
			{"b1c3", 15, "Veresov"},
		},
		"rnbqkb1r/pppppppp/5n2/8/2PP4/8/PP2PPPP/RNBQKBNR b KQkq c3": {
			{"e7e6", 30, "Nimzo/Queen's Indian"},
			{"g7g6", 30, "King's Indian Defense"},
			{"e7e5", 20, "Budapest Gambit"},
			{"c7c5", 20, "Benoni"},
		},
		"rnbqkb1r/pppppp1p/5np1/8/2PP4/8/PP2PPPP/RNBQKBNR w KQkq -": {
			{"b1c3", 60, "Classical KID"},
			{"g1f3", 30, "King's Indian"},
			{"f2f3", 10, "Samisch Variation"},
		},
		"rnbqkb1r/pppp1ppp/4pn2/8/2PP4/8/PP2PPPP/RNBQKBNR w KQkq -": {
			{"b1c3", 70, "Nimzo-Indian"},
			{"g1f3", 20, "Queen's Indian"},
			{"g2g3", 10, "Catalan"},
		},
		"r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b KQkq -": {
			{"a7a6", 60, "Morphy Defense"},
			{"g8f6", 20, "Berlin Defense"},
			{"f7f5", 10, "Schliemann Defense"},
			{"f8c5", 10, "Classical Defense"},
		},
		"r1bqkbnr/1ppp1ppp/p1n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq -": {
			{"b5a4", 70, "Main Line"},
			{"b5c6", 20, "Exchange Variation"},
			{"b5c4", 10, "Neo-Arkhangelsk"},
		},
		"rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR b KQkq c3": {
			{"e7e5", 35, "Reversed Sicilian"},
			{"g8f6", 30, "Indian setup"},
			{"c7c5", 20, "Symmetrical"},
			{"e7e6", 15, "Agincourt Defense"},
		},
		"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq -": {
			{"d7d5", 40, "Classical"},
			{"g8f6", 30, "Indian setup"},
			{"c7c5", 20, "Sicilian-like"},
			{"f7f5", 10, "Dutch setup"},
		},
	}
}
