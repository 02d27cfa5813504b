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
	"github.com/corvusengine/corvus/pkg/bitboard"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

// pawnAttacksFrom computes the two diagonal capture squares of a pawn
// of color c standing on s.
func pawnAttacksFrom(s square.Square, c piece.Color) bitboard.Board {
	l := leaper{origin: s}
	if c == piece.White {
		l.addAttack(1, -1)
		l.addAttack(-1, -1)
	} else {
		l.addAttack(1, 1)
		l.addAttack(-1, 1)
	}
	return l.board
}

// PawnPush returns pawns shifted one rank toward the far side of the
// board from color's point of view.
func PawnPush(pawns bitboard.Board, color piece.Color) bitboard.Board {
	return pawns.Up(color)
}

// PawnsLeft returns the capture targets of pawns toward the a-file,
// one rank forward from color's point of view.
func PawnsLeft(pawns bitboard.Board, color piece.Color) bitboard.Board {
	return pawns.Up(color).West()
}

// PawnsRight returns the capture targets of pawns toward the h-file,
// one rank forward from color's point of view.
func PawnsRight(pawns bitboard.Board, color piece.Color) bitboard.Board {
	return pawns.Up(color).East()
}
