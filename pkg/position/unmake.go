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
	"github.com/corvusengine/corvus/pkg/move"
	"github.com/corvusengine/corvus/pkg/piece"
)

// UnmakeMove reverses the most recent MakeMove call. It must be called
// with the position in the exact state MakeMove(m) left it in.
func (p *Position) UnmakeMove() {
	p.Plys--

	them := p.SideToMove
	us := them.Other()
	p.SideToMove = us
	if us == piece.Black {
		p.FullMoves--
	}

	state := p.History[p.Plys]
	m := state.Move

	p.Castling = state.Castling
	p.EnPassant = state.EnPassant
	p.DrawClock = state.DrawClock

	source := m.Source()
	target := m.Target()

	switch m.Flag() {
	case move.Castle:
		kingside := target.File() > source.File()
		_, kingTo := p.CastlingInfo.King(us, kingside)
		_, rookTo := p.CastlingInfo.Rook(us, kingside)

		p.ClearSquare(kingTo)
		p.ClearSquare(rookTo)
		p.FillSquare(source, piece.New(piece.King, us))
		p.FillSquare(target, piece.New(piece.Rook, us))

	case move.EnPassant:
		captureSq := target.Down(us)

		p.ClearSquare(target)
		p.FillSquare(source, piece.New(piece.Pawn, us))
		p.FillSquare(captureSq, piece.New(piece.Pawn, them))

	case move.Promotion:
		p.ClearSquare(target)
		p.FillSquare(source, piece.New(piece.Pawn, us))
		if state.Captured != piece.NoPiece {
			p.FillSquare(target, state.Captured)
		}

	default: // move.Normal
		movedPiece := p.Board[target]

		p.ClearSquare(target)
		p.FillSquare(source, movedPiece)
		if state.Captured != piece.NoPiece {
			p.FillSquare(target, state.Captured)
		}
	}

	// Restored from the snapshot rather than unwound incrementally, so
	// it must happen after the Clear/FillSquare calls above, which XOR
	// into p.Hash as they go.
	p.Hash = state.Hash

	p.refreshDerived()
}
