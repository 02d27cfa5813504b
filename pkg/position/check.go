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

package position

import (
	"github.com/corvusengine/corvus/pkg/attacks"
	"github.com/corvusengine/corvus/pkg/bitboard"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

// isAttacked reports whether s is attacked by a piece of color by,
// given occupancy occ. occ is a parameter (rather than always p.Occupied)
// so callers can x-ray through a square, e.g. the king's own square
// when testing whether it may safely retreat along a check ray.
func isAttacked(p *Position, s square.Square, by piece.Color, occ bitboard.Board) bool {
	if attacks.Pawn[by.Other()][s]&p.Pawns(by) != bitboard.Empty {
		return true
	}
	if attacks.Knight[s]&p.Knights(by) != bitboard.Empty {
		return true
	}
	if attacks.King[s]&p.King(by) != bitboard.Empty {
		return true
	}

	queens := p.Queens(by)
	if attacks.Bishop(s, occ)&(p.Bishops(by)|queens) != bitboard.Empty {
		return true
	}
	return attacks.Rook(s, occ)&(p.Rooks(by)|queens) != bitboard.Empty
}

// refreshCheckInfo recomputes Checkers, CheckCount, and CheckMask for
// the side to move's king. The king is removed from the occupancy
// passed to the slider attack functions so that sliding checkers
// x-ray through it: a king fleeing straight back along a check ray
// must not be seen as escaping the attack.
func (p *Position) refreshCheckInfo() {
	us := p.SideToMove
	them := us.Other()

	kingSq := p.Kings[us]
	blockers := p.Occupied &^ bitboard.Squares[kingSq]

	pawns := p.Pawns(them) & attacks.Pawn[us][kingSq]
	knights := p.Knights(them) & attacks.Knight[kingSq]
	bishops := (p.Bishops(them) | p.Queens(them)) & attacks.Bishop(kingSq, blockers)
	rooks := (p.Rooks(them) | p.Queens(them)) & attacks.Rook(kingSq, blockers)

	p.Checkers = pawns | knights | bishops | rooks
	p.CheckCount = p.Checkers.Count()

	switch p.CheckCount {
	case 0:
		p.CheckMask = bitboard.Universe
	case 1:
		p.CheckMask = pawns | knights
		if bishops != bitboard.Empty {
			s := bishops.FirstOne()
			p.CheckMask |= bitboard.Squares[s] | bitboard.Between[kingSq][s]
		}
		if rooks != bitboard.Empty {
			s := rooks.FirstOne()
			p.CheckMask |= bitboard.Squares[s] | bitboard.Between[kingSq][s]
		}
	default:
		p.CheckMask = bitboard.Empty
	}
}

// refreshPinInfo recomputes PinMaskLine (orthogonal pins) and
// PinMaskDiag (diagonal pins). A friendly piece is pinned when exactly
// one friendly piece sits between the king and an enemy slider that
// would otherwise attack it; the whole ray, attacker included, is
// added to the mask so the pinned piece may still move along it.
func (p *Position) refreshPinInfo() {
	us := p.SideToMove
	them := us.Other()

	kingSq := p.Kings[us]
	friends := p.ColorBBs[us]
	enemies := p.ColorBBs[them]

	p.PinMaskLine = bitboard.Empty
	for rooks := (p.Rooks(them) | p.Queens(them)) & attacks.Rook(kingSq, enemies); rooks != bitboard.Empty; {
		s := rooks.Pop()
		ray := bitboard.Squares[s] | bitboard.Between[kingSq][s]
		if (ray & friends).Count() == 1 {
			p.PinMaskLine |= ray
		}
	}

	p.PinMaskDiag = bitboard.Empty
	for bishops := (p.Bishops(them) | p.Queens(them)) & attacks.Bishop(kingSq, enemies); bishops != bitboard.Empty; {
		s := bishops.Pop()
		ray := bitboard.Squares[s] | bitboard.Between[kingSq][s]
		if (ray & friends).Count() == 1 {
			p.PinMaskDiag |= ray
		}
	}
}

// refreshThreats recomputes Threats, every square the side not to
// move attacks. The side to move's own king is removed from the
// blocker set so a slider's attack correctly continues past the
// square the king would vacate by moving.
func (p *Position) refreshThreats() {
	us := p.SideToMove
	them := us.Other()

	blockers := p.Occupied &^ p.King(us)

	pawns := p.Pawns(them)
	threats := attacks.PawnsLeft(pawns, them) | attacks.PawnsRight(pawns, them)

	for knights := p.Knights(them); knights != bitboard.Empty; {
		threats |= attacks.Knight[knights.Pop()]
	}
	for bishops := p.Bishops(them); bishops != bitboard.Empty; {
		threats |= attacks.Bishop(bishops.Pop(), blockers)
	}
	for rooks := p.Rooks(them); rooks != bitboard.Empty; {
		threats |= attacks.Rook(rooks.Pop(), blockers)
	}
	for queens := p.Queens(them); queens != bitboard.Empty; {
		threats |= attacks.Queen(queens.Pop(), blockers)
	}

	threats |= attacks.King[p.Kings[them]]

	p.Threats = threats
}
