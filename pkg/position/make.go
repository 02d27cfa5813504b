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
	"github.com/corvusengine/corvus/pkg/move"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
	"github.com/corvusengine/corvus/pkg/zobrist"
)

// MakeMove plays a pseudo-legal move, recording enough state in
// History to undo it with UnmakeMove. The caller is responsible for
// only passing moves GenerateLegal (or a GenerateQuiets/GenerateNoisies
// pair) produced for this position.
//
// A Castle move's Target is the castling rook's starting square, not
// the king's destination: the encoding is "the king captures its own
// rook", which keeps castling representable with the same two-square
// Move as every other move kind.
func (p *Position) MakeMove(m move.Move) {
	us := p.SideToMove
	them := us.Other()

	source := m.Source()
	target := m.Target()
	flag := m.Flag()

	sourcePiece := p.Board[source]
	targetPiece := p.Board[target]

	p.History[p.Plys] = BoardState{
		Move:      m,
		Captured:  targetPiece,
		Castling:  p.Castling,
		EnPassant: p.EnPassant,
		DrawClock: p.DrawClock,
		Hash:      p.Hash,
	}

	isCapture := flag != move.Castle && flag != move.EnPassant && targetPiece != piece.NoPiece
	if isCapture || sourcePiece.Type() == piece.Pawn {
		p.DrawClock = 0
	} else {
		p.DrawClock++
	}

	if p.EnPassant != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassant.File()]
		p.EnPassant = square.None
	}

	p.Hash ^= zobrist.Castling[p.Castling]
	p.Castling &^= p.CastlingInfo.RightsLost(source) | p.CastlingInfo.RightsLost(target)
	p.Hash ^= zobrist.Castling[p.Castling]

	switch flag {
	case move.Castle:
		kingside := target.File() > source.File()
		_, kingTo := p.CastlingInfo.King(us, kingside)
		_, rookTo := p.CastlingInfo.Rook(us, kingside)

		p.ClearSquare(source)
		p.ClearSquare(target)
		p.FillSquare(kingTo, sourcePiece)
		p.FillSquare(rookTo, piece.New(piece.Rook, us))

	case move.EnPassant:
		captureSq := target.Down(us)

		p.ClearSquare(source)
		p.ClearSquare(captureSq)
		p.FillSquare(target, sourcePiece)

	case move.Promotion:
		p.ClearSquare(source)
		if targetPiece != piece.NoPiece {
			p.ClearSquare(target)
		}
		p.FillSquare(target, piece.New(m.Promoted(), us))

	default: // move.Normal
		p.ClearSquare(source)
		if targetPiece != piece.NoPiece {
			p.ClearSquare(target)
		}
		p.FillSquare(target, sourcePiece)

		if sourcePiece.Type() == piece.Pawn && source.Distance(target) == 2 {
			epTarget := target.Down(us)
			// Only record the en-passant square if it is actually
			// capturable, so positions differing only by a
			// never-capturable ep target still share a hash.
			if attacks.Pawn[us][epTarget]&p.Pawns(them) != bitboard.Empty {
				p.EnPassant = epTarget
				p.Hash ^= zobrist.EnPassant[epTarget.File()]
			}
		}
	}

	p.Plys++
	if us == piece.Black {
		p.FullMoves++
	}

	p.SideToMove = them
	p.Hash ^= zobrist.SideToMove

	p.refreshDerived()
}
