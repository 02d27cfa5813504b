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

package fen

import "fmt"

// Kind identifies the field a parse failure occurred in.
type Kind uint8

// Constants enumerating every way a FEN string can fail to parse.
const (
	// WrongFieldCount means the string did not split into exactly six
	// whitespace-separated fields.
	WrongFieldCount Kind = iota
	// InvalidPiece means the piece-placement field used a character
	// that is neither a recognized piece letter nor a digit 1-8.
	InvalidPiece
	// JumpTooLong means a digit in the piece-placement field would
	// advance the file cursor past file H.
	JumpTooLong
	// RankIncomplete means a rank's data ran out before the file
	// cursor reached one past file H.
	RankIncomplete
	// TooManyRanks means piece-placement data continued after all
	// eight ranks were already filled.
	TooManyRanks
	// BadSideToMove means the side-to-move field was not "w" or "b".
	BadSideToMove
	// BadCastling means the castling field contained a character
	// outside KQkqAHah- or "-" mixed with other letters.
	BadCastling
	// BadEnPassant means the en-passant field was neither "-" nor a
	// valid algebraic square.
	BadEnPassant
	// BadHalfMoveClock means the halfmove-clock field did not parse
	// as a non-negative integer.
	BadHalfMoveClock
	// BadFullMoveCount means the fullmove-count field did not parse
	// as a positive integer.
	BadFullMoveCount
)

// String names a Kind for error messages.
func (k Kind) String() string {
	switch k {
	case WrongFieldCount:
		return "wrong field count"
	case InvalidPiece:
		return "invalid piece character"
	case JumpTooLong:
		return "jump too long"
	case RankIncomplete:
		return "rank data incomplete"
	case TooManyRanks:
		return "too many ranks"
	case BadSideToMove:
		return "invalid side to move"
	case BadCastling:
		return "invalid castling field"
	case BadEnPassant:
		return "invalid en passant square"
	case BadHalfMoveClock:
		return "invalid halfmove clock"
	case BadFullMoveCount:
		return "invalid fullmove count"
	default:
		return "unknown fen error"
	}
}

// ParseError reports why a FEN string failed to parse.
type ParseError struct {
	Kind  Kind
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fen: parse %s: %s: %v", e.Field, e.Kind, e.Err)
	}
	return fmt.Sprintf("fen: parse %s: %s", e.Field, e.Kind)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newError(kind Kind, field string) *ParseError {
	return &ParseError{Kind: kind, Field: field}
}

func wrapError(kind Kind, field string, err error) *ParseError {
	return &ParseError{Kind: kind, Field: field, Err: err}
}
