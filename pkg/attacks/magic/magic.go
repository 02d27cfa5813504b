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

// Package magic builds and serves magic-bitboard hash tables for
// sliding pieces. A magic number turns a square's relevant blocker
// bits into a dense, collision-free index into a precomputed
// attack-set table, trading a multiply and a shift for what would
// otherwise be an on-the-fly ray walk.
package magic

import (
	"github.com/corvusengine/corvus/internal/util"
	"github.com/corvusengine/corvus/pkg/bitboard"
	"github.com/corvusengine/corvus/pkg/square"
)

// seeds are PRNG seeds, indexed by rank, known to produce a valid
// magic quickly; taken from Stockfish.
var seeds = [8]uint64{255, 16645, 15100, 12281, 32803, 55013, 10316, 728}

// MoveFunc computes a sliding piece's move bitboard from a square
// given a set of blockers. When edges is true, the function is being
// asked for the relevant-blocker mask rather than an attack set, and
// should leave out the board-edge squares at the ends of each ray,
// since a blocker there cannot change the attack set.
type MoveFunc func(s square.Square, blockers bitboard.Board, edges bool) bitboard.Board

// Magic is a single square's magic-index parameters.
type Magic struct {
	Number      uint64
	BlockerMask bitboard.Board
	Shift       uint8
}

// Index computes the dense table index for the given occupancy.
func (m Magic) Index(occ bitboard.Board) uint64 {
	occ &= m.BlockerMask
	return (uint64(occ) * m.Number) >> m.Shift
}

// Table is a magic hash table for one sliding piece, covering all 64
// squares.
type Table struct {
	magics [square.N]Magic
	moves  [square.N][]bitboard.Board
}

// Probe returns the attack set for a slider on s given occupancy occ.
func (t *Table) Probe(s square.Square, occ bitboard.Board) bitboard.Board {
	return t.moves[s][t.magics[s].Index(occ)]
}

// NewTable builds a magic hash table by searching for a valid magic
// number at each square. This is slow (a search per square) and
// belongs in an init(), not on the move-generation hot path.
func NewTable(moveFunc MoveFunc) *Table {
	var t Table
	var rng util.PRNG

	for s := square.A8; s <= square.H1; s++ {
		m := &t.magics[s]

		m.BlockerMask = moveFunc(s, bitboard.Empty, true)
		bitCount := m.BlockerMask.Count()
		m.Shift = uint8(64 - bitCount)

		permutationsN := 1 << bitCount
		permutations := make([]bitboard.Board, permutationsN)
		blockers := bitboard.Empty
		for i := 0; blockers != bitboard.Empty || i == 0; i++ {
			permutations[i] = blockers
			blockers = (blockers - m.BlockerMask) & m.BlockerMask
		}

		rng.Seed(seeds[s.Rank()])

	search:
		for {
			m.Number = rng.SparseUint64()
			t.moves[s] = make([]bitboard.Board, permutationsN)

			for _, blockers := range permutations {
				index := m.Index(blockers)
				attack := moveFunc(s, blockers, false)

				if t.moves[s][index] != bitboard.Empty && t.moves[s][index] != attack {
					continue search
				}
				t.moves[s][index] = attack
			}
			break
		}
	}

	return &t
}
