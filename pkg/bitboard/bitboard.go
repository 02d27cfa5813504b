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

// Package bitboard implements a 64-bit bitboard and the set-algebra
// operations used to manipulate it.
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

// Board is a set of squares packed into a 64-bit integer, one bit per
// square in square.Square order.
type Board uint64

// String renders the bitboard as an 8x8 grid of 1s and 0s, rank 8
// first, for debugging.
func (b Board) String() string {
	var sb strings.Builder
	for s := square.A8; s <= square.H1; s++ {
		if b.IsSet(s) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if s.File() == square.FileH {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Count returns the number of set squares.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// North shifts every set square one rank toward rank 8.
func (b Board) North() Board {
	return b >> 8
}

// South shifts every set square one rank toward rank 1.
func (b Board) South() Board {
	return b << 8
}

// East shifts every set square one file toward the h-file, discarding
// any bit that would wrap from file h to file a.
func (b Board) East() Board {
	return (b &^ FileH) << 1
}

// West shifts every set square one file toward the a-file, discarding
// any bit that would wrap from file a to file h.
func (b Board) West() Board {
	return (b &^ FileA) >> 1
}

// Up shifts toward the far side of the board from color c's point of
// view: North for White, South for Black.
func (b Board) Up(c piece.Color) Board {
	if c == piece.White {
		return b.North()
	}
	return b.South()
}

// Down shifts toward the near side of the board from color c's point
// of view: South for White, North for Black.
func (b Board) Down(c piece.Color) Board {
	if c == piece.White {
		return b.South()
	}
	return b.North()
}

// Pop clears and returns the least-significant set square.
func (b *Board) Pop() square.Square {
	s := b.FirstOne()
	*b &= *b - 1
	return s
}

// FirstOne returns the least-significant set square without modifying
// the bitboard. The result is meaningless if b is empty.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet reports whether s is set in b.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != 0
}

// Set marks s as present in b. Setting square.None is a no-op.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset marks s as absent in b. Clearing square.None is a no-op.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}
