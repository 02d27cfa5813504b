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

// Package castling provides types for tracking castling rights and the
// squares involved in a castling move, generalized to Chess960/Fischer
// Random starting positions.
package castling

// Rights represents the current castling rights of a position.
// [Black Queen-side][Black King-side][White Queen-side][White King-side]
type Rights byte

// Constants representing every combination of castling right.
const (
	WhiteKingside  Rights = 1 << 0
	WhiteQueenside Rights = 1 << 1
	BlackKingside  Rights = 1 << 2
	BlackQueenside Rights = 1 << 3

	None Rights = 0

	White Rights = WhiteKingside | WhiteQueenside
	Black Rights = BlackKingside | BlackQueenside

	Kingside  Rights = WhiteKingside | BlackKingside
	Queenside Rights = WhiteQueenside | BlackQueenside

	All Rights = White | Black
)

// N is the number of distinct castling.Rights values.
const N = 1 << 4

// NewRights parses a FEN castling field ("KQkq", "Kq", "-", or the
// Shredder-FEN rook-file form "HAha") into a Rights value. Of the
// Shredder letters only 'H'/'h' (king-side) and 'A'/'a' (queen-side)
// are recognized; the other file letters are ignored.
func NewRights(r string) Rights {
	if r == "-" {
		return None
	}

	var rights Rights
	for _, c := range r {
		switch c {
		case 'K', 'H':
			rights |= WhiteKingside
		case 'Q', 'A':
			rights |= WhiteQueenside
		case 'k', 'h':
			rights |= BlackKingside
		case 'q', 'a':
			rights |= BlackQueenside
		}
	}
	return rights
}

// Has reports whether c grants every right in other.
func (c Rights) Has(other Rights) bool {
	return c&other == other
}

// String converts c to its FEN castling-field representation.
func (c Rights) String() string {
	var str string

	if c&WhiteKingside != 0 {
		str += "K"
	}
	if c&WhiteQueenside != 0 {
		str += "Q"
	}
	if c&BlackKingside != 0 {
		str += "k"
	}
	if c&BlackQueenside != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}

	return str
}
