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

package attacks

import (
	"github.com/corvusengine/corvus/pkg/attacks/magic"
	"github.com/corvusengine/corvus/pkg/bitboard"
	"github.com/corvusengine/corvus/pkg/square"
)

var (
	bishopTable *magic.Table
	rookTable   *magic.Table
)

func init() {
	bishopTable = magic.NewTable(bishopMoves)
	rookTable = magic.NewTable(rookMoves)
}

func bishopMoves(s square.Square, occ bitboard.Board, edges bool) bitboard.Board {
	attacks := hyperbola(s, occ, bitboard.Diagonals[s.Diagonal()]) |
		hyperbola(s, occ, bitboard.AntiDiagonals[s.AntiDiagonal()])

	if edges {
		attacks &^= bitboard.Rank1 | bitboard.Rank8 | bitboard.FileA | bitboard.FileH
	}

	return attacks
}

func rookMoves(s square.Square, occ bitboard.Board, edges bool) bitboard.Board {
	fileAttacks := hyperbola(s, occ, bitboard.Files[s.File()])
	rankAttacks := hyperbola(s, occ, bitboard.Ranks[s.Rank()])

	if edges {
		fileAttacks &^= bitboard.Rank1 | bitboard.Rank8
		rankAttacks &^= bitboard.FileA | bitboard.FileH
	}

	return fileAttacks | rankAttacks
}
