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

// Package move implements a move as a single packed 16-bit integer:
// a source square, a target square, a promotion piece, and a flag
// distinguishing normal moves from castles, promotions, and en-passant
// captures. Packing the move this small keeps move lists and the
// search's ordering/history tables cheap to store and copy.
package move

import (
	"fmt"

	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

// Move is a packed chess move: source(6) | target(6) | promotion(2) |
// flag(2), from LSB to MSB.
type Move uint16

const (
	sourceWidth = 6
	targetWidth = 6
	promotWidth = 2

	sourceOffset = 0
	targetOffset = sourceOffset + sourceWidth
	promotOffset = targetOffset + targetWidth
	flagOffset   = promotOffset + promotWidth

	sourceMask = 1<<sourceWidth - 1
	targetMask = 1<<targetWidth - 1
	promotMask = 1<<promotWidth - 1
	flagMask   = 0b11
)

// Flag distinguishes the four kinds of move Move can represent.
type Flag uint16

// Constants representing every move flag.
const (
	Normal Flag = iota
	Castle
	Promotion
	EnPassant
)

// Null is the zero Move, used as a sentinel meaning "no move".
const Null Move = 0

// New builds a Move with no promotion.
func New(source, target square.Square, flag Flag) Move {
	return Move(flag)<<flagOffset |
		Move(source)<<sourceOffset |
		Move(target)<<targetOffset
}

// NewPromotion builds a promotion Move. promoted must be one of
// Knight, Bishop, Rook, or Queen.
func NewPromotion(source, target square.Square, promoted piece.Type) Move {
	return Move(promoted-piece.Knight)<<promotOffset |
		Move(Promotion)<<flagOffset |
		Move(source)<<sourceOffset |
		Move(target)<<targetOffset
}

// Source returns the move's source square.
func (m Move) Source() square.Square {
	return square.Square((m >> sourceOffset) & sourceMask)
}

// Target returns the move's target square.
func (m Move) Target() square.Square {
	return square.Square((m >> targetOffset) & targetMask)
}

// Promoted returns the piece type a pawn promotes to. It is only
// meaningful when Flag() == Promotion.
func (m Move) Promoted() piece.Type {
	return piece.Type((m>>promotOffset)&promotMask) + piece.Knight
}

// Flag returns the move's kind.
func (m Move) Flag() Flag {
	return Flag((m >> flagOffset) & flagMask)
}

// IsNull reports whether m is the Null move.
func (m Move) IsNull() bool {
	return m == Null
}

// IsCastle reports whether m is a castling move.
func (m Move) IsCastle() bool {
	return m.Flag() == Castle
}

// IsEnPassant reports whether m is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == EnPassant
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag() == Promotion
}

// String renders m in long algebraic notation ("e2e4", "e7e8q").
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := fmt.Sprintf("%s%s", m.Source(), m.Target())
	if m.IsPromotion() {
		s += m.Promoted().String()
	}
	return s
}
