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

package bitboard

import (
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

// Useful whole-board constants.
const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// File bitboards, one file's worth of set bits each.
const (
	FileA Board = 0x0101010101010101
	FileB Board = 0x0202020202020202
	FileC Board = 0x0404040404040404
	FileD Board = 0x0808080808080808
	FileE Board = 0x1010101010101010
	FileF Board = 0x2020202020202020
	FileG Board = 0x4040404040404040
	FileH Board = 0x8080808080808080
)

// Files indexes the eight file masks by square.File.
var Files = [square.FileN]Board{
	square.FileA: FileA,
	square.FileB: FileB,
	square.FileC: FileC,
	square.FileD: FileD,
	square.FileE: FileE,
	square.FileF: FileF,
	square.FileG: FileG,
	square.FileH: FileH,
}

// Rank bitboards, one rank's worth of set bits each.
const (
	Rank8 Board = 0x00000000000000ff
	Rank7 Board = 0x000000000000ff00
	Rank6 Board = 0x0000000000ff0000
	Rank5 Board = 0x00000000ff000000
	Rank4 Board = 0x000000ff00000000
	Rank3 Board = 0x0000ff0000000000
	Rank2 Board = 0x00ff000000000000
	Rank1 Board = 0xff00000000000000
)

// Ranks indexes the eight rank masks by square.Rank.
var Ranks = [square.RankN]Board{
	square.Rank8: Rank8,
	square.Rank7: Rank7,
	square.Rank6: Rank6,
	square.Rank5: Rank5,
	square.Rank4: Rank4,
	square.Rank3: Rank3,
	square.Rank2: Rank2,
	square.Rank1: Rank1,
}

// Squares indexes the 64 single-bit masks by square.Square.
var Squares [64]Board

// Diagonals indexes the 15 a1-h8-parallel diagonal masks by
// square.Diagonal.
var Diagonals [square.DiagonalN]Board

// AntiDiagonals indexes the 15 h1-a8-parallel diagonal masks by
// square.AntiDiagonal.
var AntiDiagonals [square.DiagonalN]Board

// Light and Dark mask every light and dark square respectively.
var (
	Light Board
	Dark  Board
)

// Between[a][b] holds every square strictly between a and b if they
// share a rank, file, or diagonal, and is empty otherwise. Used to
// build check-masks and pin-rays.
var Between [64][64]Board

func init() {
	mask := Board(1)
	for s := square.A8; s <= square.H1; s++ {
		Squares[s] = mask
		if s.Color() == piece.White {
			Light |= mask
		} else {
			Dark |= mask
		}
		mask <<= 1
	}

	for s := square.A8; s <= square.H1; s++ {
		Diagonals[s.Diagonal()] |= Squares[s]
		AntiDiagonals[s.AntiDiagonal()] |= Squares[s]
	}

	// directions a sliding ray can travel: N, S, E, W and the four
	// diagonals, expressed as (file-delta, rank-delta) steps.
	directions := [8][2]int{
		{0, -1}, {0, 1}, {1, 0}, {-1, 0},
		{1, -1}, {1, 1}, {-1, -1}, {-1, 1},
	}

	for a := square.A8; a <= square.H1; a++ {
		for _, d := range directions {
			var ray Board
			file, rank := int(a.File()), int(a.Rank())
			for {
				file += d[0]
				rank += d[1]
				if file < 0 || file > 7 || rank < 0 || rank > 7 {
					break
				}
				b := square.From(square.File(file), square.Rank(rank))
				if b == a {
					break
				}
				Between[a][b] = ray
				ray |= Squares[b]
			}
		}
	}
}
