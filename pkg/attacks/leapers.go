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
	"github.com/corvusengine/corvus/pkg/square"
)

// knightAttacksFrom computes every square a knight on from can move
// to, ignoring occupancy.
func knightAttacksFrom(from square.Square) bitboard.Board {
	l := leaper{origin: from}

	l.addAttack(2, 1)
	l.addAttack(1, 2)
	l.addAttack(1, -2)
	l.addAttack(2, -1)
	l.addAttack(-1, 2)
	l.addAttack(-2, 1)
	l.addAttack(-2, -1)
	l.addAttack(-1, -2)

	return l.board
}

// kingAttacksFrom computes every square a king on from can step to,
// ignoring occupancy and castling.
func kingAttacksFrom(from square.Square) bitboard.Board {
	l := leaper{origin: from}

	l.addAttack(1, 0)
	l.addAttack(1, 1)
	l.addAttack(0, 1)
	l.addAttack(-1, 0)
	l.addAttack(0, -1)
	l.addAttack(1, -1)
	l.addAttack(-1, 1)
	l.addAttack(-1, -1)

	return l.board
}
