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

// Package attacks precomputes and serves the attack bitboards for
// every piece from every square: lookup tables for knights, kings, and
// pawns, and magic-bitboard tables for the sliding pieces. None of the
// functions here mask out a side's own pieces; that is the move
// generator's job, since the raw attack set is also what's needed to
// compute checks and pins.
package attacks

import (
	"github.com/corvusengine/corvus/pkg/bitboard"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

// Lookup tables for the precalculated attack boards of non-sliding
// pieces.
var (
	King   [square.N]bitboard.Board
	Knight [square.N]bitboard.Board
	Pawn   [piece.ColorN][square.N]bitboard.Board
)

func init() {
	for s := square.A8; s <= square.H1; s++ {
		King[s] = kingAttacksFrom(s)
		Knight[s] = knightAttacksFrom(s)
		Pawn[piece.White][s] = pawnAttacksFrom(s, piece.White)
		Pawn[piece.Black][s] = pawnAttacksFrom(s, piece.Black)
	}
}

// leaper accumulates an attack bitboard for a non-sliding piece by
// adding one (file-offset, rank-offset) step at a time, discarding any
// step that would leave the board.
type leaper struct {
	origin square.Square
	board  bitboard.Board
}

func (l *leaper) addAttack(fileOffset, rankOffset int) {
	file := int(l.origin.File()) + fileOffset
	rank := int(l.origin.Rank()) + rankOffset

	if file < 0 || file > int(square.FileH) || rank < 0 || rank > int(square.Rank1) {
		return
	}

	l.board.Set(square.From(square.File(file), square.Rank(rank)))
}
