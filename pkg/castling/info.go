// Copyright © 2024 The Corvus Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package castling

import (
	"github.com/corvusengine/corvus/pkg/bitboard"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

// side identifies king-side or queen-side castling.
type side int

const (
	kingside side = iota
	queenside
)

// squares holds the king/rook source and target squares, and the
// emptiness/safety path masks, for one (color, side) castling move.
type squares struct {
	kingFrom, kingTo square.Square
	rookFrom, rookTo square.Square

	// path must be entirely empty of other pieces (except the castling
	// king and rook themselves).
	path bitboard.Board
	// safe must be free of enemy attacks for every square the king
	// crosses, including its start and end squares.
	safe bitboard.Board
}

// Info holds the castling geometry for both colors and both sides,
// derived from the starting squares of the kings and rooks. Standard
// chess and Chess960/Fischer Random starting positions both reduce to
// a call to FromSquares with the appropriate squares.
type Info struct {
	squares [piece.ColorN][2]squares
	right   [piece.ColorN][2]Rights
}

// FromSquares builds an Info from the starting king and rook squares
// of each color. Rook files may differ from the standard a/h files,
// and may differ between White and Black, to support Chess960.
func FromSquares(whiteKing, whiteKingRook, whiteQueenRook square.Square, blackKing, blackKingRook, blackQueenRook square.Square) Info {
	var info Info

	info.squares[piece.White][kingside] = buildSquares(piece.White, kingside, whiteKing, whiteKingRook)
	info.squares[piece.White][queenside] = buildSquares(piece.White, queenside, whiteKing, whiteQueenRook)
	info.squares[piece.Black][kingside] = buildSquares(piece.Black, kingside, blackKing, blackKingRook)
	info.squares[piece.Black][queenside] = buildSquares(piece.Black, queenside, blackKing, blackQueenRook)

	info.right[piece.White][kingside] = WhiteKingside
	info.right[piece.White][queenside] = WhiteQueenside
	info.right[piece.Black][kingside] = BlackKingside
	info.right[piece.Black][queenside] = BlackQueenside

	return info
}

// buildSquares computes the king/rook target squares and the two path
// masks for one (color, side) combination. The king always ends on the
// c- or g-file and the rook on the d- or f-file, per standard castling
// rules, regardless of where they started (Chess960).
func buildSquares(c piece.Color, s side, king, rook square.Square) squares {
	kingToFile, rookToFile := square.FileG, square.FileF
	if s == queenside {
		kingToFile, rookToFile = square.FileC, square.FileD
	}

	rank := king.Rank()
	kingTo := square.From(kingToFile, rank)
	rookTo := square.From(rookToFile, rank)

	// path: every square the king or rook must cross to reach its
	// destination, excluding the squares they themselves start on
	// (they don't block each other).
	path := squareRange(king, kingTo) | squareRange(rook, rookTo)
	path.Unset(king)
	path.Unset(rook)

	safe := squareRange(king, kingTo)
	safe.Set(king)
	safe.Set(kingTo)

	return squares{
		kingFrom: king, kingTo: kingTo,
		rookFrom: rook, rookTo: rookTo,
		path: path, safe: safe,
	}
}

// squareRange returns every square from a to b inclusive, a and b must
// be on the same rank.
func squareRange(a, b square.Square) bitboard.Board {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	var board bitboard.Board
	for s := lo; s <= hi; s++ {
		board.Set(s)
	}
	return board
}

// King returns the king's start and destination squares for c castling
// on the given side.
func (i Info) King(c piece.Color, kingSide bool) (from, to square.Square) {
	s := i.pick(kingSide)
	sq := i.squares[c][s]
	return sq.kingFrom, sq.kingTo
}

// Rook returns the rook's start and destination squares for c castling
// on the given side.
func (i Info) Rook(c piece.Color, kingSide bool) (from, to square.Square) {
	s := i.pick(kingSide)
	sq := i.squares[c][s]
	return sq.rookFrom, sq.rookTo
}

// Path returns the mask of squares that must be empty (other than the
// castling king and rook) for c to castle on the given side.
func (i Info) Path(c piece.Color, kingSide bool) bitboard.Board {
	return i.squares[c][i.pick(kingSide)].path
}

// Safe returns the mask of squares that must be free of enemy attacks
// for c to castle on the given side.
func (i Info) Safe(c piece.Color, kingSide bool) bitboard.Board {
	return i.squares[c][i.pick(kingSide)].safe
}

// Right returns the single castling.Rights bit for c castling on the
// given side.
func (i Info) Right(c piece.Color, kingSide bool) Rights {
	return i.right[c][i.pick(kingSide)]
}

// RightsLost returns the castling rights that are forfeited the moment
// a piece moves from or is captured on s: a king's own rights if s is
// that color's king start square, or the rights of whichever rook
// starts on s.
func (i Info) RightsLost(s square.Square) Rights {
	var lost Rights
	for c := piece.White; c <= piece.Black; c++ {
		for _, sd := range [2]side{kingside, queenside} {
			sq := i.squares[c][sd]
			if s == sq.kingFrom || s == sq.rookFrom {
				if s == sq.kingFrom {
					lost |= i.right[c][kingside] | i.right[c][queenside]
				} else {
					lost |= i.right[c][sd]
				}
			}
		}
	}
	return lost
}

func (i Info) pick(kingSide bool) side {
	if kingSide {
		return kingside
	}
	return queenside
}
