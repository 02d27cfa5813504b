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

// Package position assembles the leaf packages (square, bitboard,
// attacks, zobrist, castling, fen) into the Position aggregate: the
// mailbox and bitboard dual representation, position metadata, legal
// move generation, and make/unmake.
package position

import (
	"github.com/corvusengine/corvus/pkg/bitboard"
	"github.com/corvusengine/corvus/pkg/castling"
	"github.com/corvusengine/corvus/pkg/move"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
	"github.com/corvusengine/corvus/pkg/zobrist"
)

// MaxPlys bounds the make/unmake history stack. A game exceeding this
// many plies is not a realistic chess game.
const MaxPlys = 1024

// BoardState is the pre-move snapshot of the fields make mutates,
// needed to roll a position back in unmake.
type BoardState struct {
	Move      move.Move
	Captured  piece.Piece
	Castling  castling.Rights
	EnPassant square.Square
	DrawClock int
	Hash      zobrist.Key
}

// Position is the full state of a chess game at a point in time: a
// mailbox and bitboard dual representation of the pieces, side to
// move, castling rights, en-passant target, move counters, a Zobrist
// hash, and cached check/pin information used by the move generator.
type Position struct {
	Board    [square.N]piece.Piece
	PieceBBs [piece.TypeN]bitboard.Board
	ColorBBs [piece.ColorN]bitboard.Board

	SideToMove   piece.Color
	EnPassant    square.Square
	Castling     castling.Rights
	CastlingInfo castling.Info

	Plys      int
	FullMoves int
	DrawClock int

	Hash zobrist.Key

	Kings [piece.ColorN]square.Square

	Friends  bitboard.Board
	Enemies  bitboard.Board
	Occupied bitboard.Board

	Checkers   bitboard.Board
	CheckCount int

	CheckMask   bitboard.Board
	PinMaskDiag bitboard.Board
	PinMaskLine bitboard.Board
	Threats     bitboard.Board

	History [MaxPlys]BoardState
}

// ClearSquare removes whatever piece occupies s from every
// representation (mailbox, bitboards, hash). It is a no-op's inverse
// of FillSquare and must be called on an occupied square.
func (p *Position) ClearSquare(s square.Square) {
	pc := p.Board[s]

	p.ColorBBs[pc.Color()].Unset(s)
	p.PieceBBs[pc.Type()].Unset(s)
	p.Board[s] = piece.NoPiece
	p.Hash ^= zobrist.PieceSquare[pc][s]
}

// FillSquare places pc on s. The caller must ensure s is empty;
// FillSquare does not clear whatever was there first.
func (p *Position) FillSquare(s square.Square, pc piece.Piece) {
	c := pc.Color()
	t := pc.Type()

	p.ColorBBs[c].Set(s)
	p.PieceBBs[t].Set(s)
	p.Board[s] = pc
	p.Hash ^= zobrist.PieceSquare[pc][s]

	if t == piece.King {
		p.Kings[c] = s
	}
}

// Pawns returns every pawn of color c.
func (p *Position) Pawns(c piece.Color) bitboard.Board { return p.PieceBBs[piece.Pawn] & p.ColorBBs[c] }

// Knights returns every knight of color c.
func (p *Position) Knights(c piece.Color) bitboard.Board {
	return p.PieceBBs[piece.Knight] & p.ColorBBs[c]
}

// Bishops returns every bishop of color c.
func (p *Position) Bishops(c piece.Color) bitboard.Board {
	return p.PieceBBs[piece.Bishop] & p.ColorBBs[c]
}

// Rooks returns every rook of color c.
func (p *Position) Rooks(c piece.Color) bitboard.Board { return p.PieceBBs[piece.Rook] & p.ColorBBs[c] }

// Queens returns every queen of color c.
func (p *Position) Queens(c piece.Color) bitboard.Board {
	return p.PieceBBs[piece.Queen] & p.ColorBBs[c]
}

// King returns a singleton bitboard containing c's king.
func (p *Position) King(c piece.Color) bitboard.Board { return p.PieceBBs[piece.King] & p.ColorBBs[c] }

// IsInCheck reports whether c's king is currently attacked.
func (p *Position) IsInCheck(c piece.Color) bool {
	return p.IsAttacked(p.Kings[c], c.Other())
}

// IsAttacked reports whether s is attacked by any piece of color by.
func (p *Position) IsAttacked(s square.Square, by piece.Color) bool {
	return isAttacked(p, s, by, p.Occupied)
}

// refreshDerived recomputes Friends/Enemies/Occupied and the
// check/pin/threat caches for the side now to move. It must be called
// after any change to SideToMove, the piece placement, or both.
func (p *Position) refreshDerived() {
	p.Friends = p.ColorBBs[p.SideToMove]
	p.Enemies = p.ColorBBs[p.SideToMove.Other()]
	p.Occupied = p.Friends | p.Enemies

	p.refreshCheckInfo()
	p.refreshPinInfo()
	p.refreshThreats()
}
