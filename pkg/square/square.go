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

// Package square declares constants representing every square on a
// chessboard, and related geometry utilities (files, ranks, diagonals,
// distances) used throughout the move generator.
//
// Squares are numbered 0..63 starting at a8 and running left to right,
// top to bottom, so that a square's index is rank*8 + file with Rank8
// as rank 0. The null square is represented by None and printed as "-".
package square

import (
	"fmt"

	"github.com/corvusengine/corvus/pkg/piece"
)

// New creates a new instance of a Square from the given identifier.
func New(id string) Square {
	switch {
	case id == "-":
		return None
	case len(id) != 2:
		panic("new square: invalid square id")
	}

	// ascii code to square index
	return From(fileFrom(string(id[0])), rankFrom(string(id[1])))
}

// From creates a new instance of a Square from the given file and rank.
func From(file File, rank Rank) Square {
	return Square(int(rank*8) + int(file))
}

// Square represents a square on a chessboard.
type Square int

const None Square = -1

// N is the number of squares on the board.
const N = 64

// constants representing various squares.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8

	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7

	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6

	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5

	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4

	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3

	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2

	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// String converts a square into it's algebraic string representation.
func (s Square) String() string {
	if s == None {
		return "-"
	}

	// <file><rank>
	return fmt.Sprintf("%s%s", s.File(), s.Rank())
}

// File returns the file of the given square.
func (s Square) File() File {
	return File(s % 8)
}

// Rank returns the rank of the given square.
func (s Square) Rank() Rank {
	return Rank(s / 8)
}

// Diagonal returns the index (0..14) of the a1-h8-parallel diagonal s
// lies on.
func (s Square) Diagonal() Diagonal {
	return 14 - Diagonal(s.Rank()) - Diagonal(s.File())
}

// AntiDiagonal returns the index (0..14) of the h1-a8-parallel
// diagonal s lies on.
func (s Square) AntiDiagonal() AntiDiagonal {
	return 7 - AntiDiagonal(s.Rank()) + AntiDiagonal(s.File())
}

// Color reports whether s is a light or dark square.
func (s Square) Color() piece.Color {
	if (int(s.Rank())+int(s.File()))%2 == 0 {
		return piece.White
	}
	return piece.Black
}

// Relative mirrors s vertically for Black, so logic written from
// White's perspective (pawn pushes, back-rank checks) also works for
// Black by calling Relative first. It is the identity for White and
// for None.
func (s Square) Relative(c piece.Color) Square {
	if s == None || c == piece.White {
		return s
	}
	return s.FlipRank()
}

// FlipFile mirrors s across the board's vertical center line (a <-> h).
func (s Square) FlipFile() Square {
	return s ^ 0b000_111
}

// FlipRank mirrors s across the board's horizontal center line (1 <-> 8).
func (s Square) FlipRank() Square {
	return s ^ 0b111_000
}

// Up returns the square directly in front of s from color c's point of
// view: north for White, south for Black.
func (s Square) Up(c piece.Color) Square {
	if c == piece.White {
		return s - 8
	}
	return s + 8
}

// Down returns the square directly behind s from color c's point of
// view: south for White, north for Black.
func (s Square) Down(c piece.Color) Square {
	if c == piece.White {
		return s + 8
	}
	return s - 8
}

// Distance returns the Chebyshev distance (king-move count) between s
// and t.
func (s Square) Distance(t Square) int {
	rd := abs(int(s.Rank()) - int(t.Rank()))
	fd := abs(int(s.File()) - int(t.File()))
	if rd > fd {
		return rd
	}
	return fd
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
