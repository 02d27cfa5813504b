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

// Package zobrist precomputes the random numbers used to incrementally
// hash a chess position: one per (piece, square), one per en-passant
// file, one per castling-rights value, and one for the side to move.
package zobrist

import (
	"github.com/corvusengine/corvus/pkg/castling"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

// Key is a Zobrist hash.
type Key uint64

// PieceSquare holds one random key per (piece, square) pair.
var PieceSquare [piece.N][square.N]Key

// EnPassant holds one random key per en-passant target file.
var EnPassant [square.FileN]Key

// Castling holds one random key per distinct castling-rights value.
var Castling [castling.N]Key

// SideToMove is XORed into the hash whenever it is Black to move.
var SideToMove Key

func init() {
	var rng prng
	rng.Seed(1070372) // seed used by Stockfish

	for p := 0; p < piece.N; p++ {
		for s := square.A8; s <= square.H1; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := castling.None; r <= castling.All; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}
