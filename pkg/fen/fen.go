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

// Package fen parses and formats Forsyth-Edwards Notation, translating
// between the six whitespace-separated FEN fields and the plain values
// (a mailbox, side to move, castling rights, en-passant target, and the
// two move counters) that pkg/position assembles into a Position. It
// has no dependency on pkg/position itself, so it can be tested and
// fuzzed in isolation.
package fen

import (
	"strconv"
	"strings"

	"github.com/corvusengine/corvus/pkg/castling"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

// Startpos is the standard chess starting position.
const Startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const (
	placementField    = "piece placement"
	sideToMoveField    = "side to move"
	castlingField      = "castling rights"
	enPassantField     = "en passant target"
	halfMoveClockField = "halfmove clock"
	fullMoveCountField = "fullmove count"
)

// Record is the plain-value decomposition of a FEN string: the six
// fields, parsed but not yet assembled into bitboards or a hash.
type Record struct {
	Board         [square.N]piece.Piece
	SideToMove    piece.Color
	Castling      castling.Rights
	EnPassant     square.Square
	HalfMoveClock uint8
	FullMoveCount uint16
}

// Parse decodes a FEN string into a Record. It rejects a wrong field
// count or any invalid sub-field with a typed *ParseError.
func Parse(s string) (Record, error) {
	var rec Record

	fields := strings.Fields(s)
	if len(fields) != 6 {
		return rec, newError(WrongFieldCount, placementField)
	}

	board, err := parsePlacement(fields[0])
	if err != nil {
		return rec, err
	}
	rec.Board = board

	side, ok := parseSide(fields[1])
	if !ok {
		return rec, newError(BadSideToMove, sideToMoveField)
	}
	rec.SideToMove = side

	rights, ok := parseCastling(fields[2])
	if !ok {
		return rec, newError(BadCastling, castlingField)
	}
	rec.Castling = rights

	ep, ok := parseSquare(fields[3])
	if !ok {
		return rec, newError(BadEnPassant, enPassantField)
	}
	rec.EnPassant = ep

	halfMove, err := strconv.ParseUint(fields[4], 10, 8)
	if err != nil {
		return rec, wrapError(BadHalfMoveClock, halfMoveClockField, err)
	}
	rec.HalfMoveClock = uint8(halfMove)

	fullMove, err := strconv.ParseUint(fields[5], 10, 16)
	if err != nil {
		return rec, wrapError(BadFullMoveCount, fullMoveCountField, err)
	}
	if fullMove == 0 {
		return rec, newError(BadFullMoveCount, fullMoveCountField)
	}
	rec.FullMoveCount = uint16(fullMove)

	return rec, nil
}

// parsePlacement decodes the piece-placement field rank-by-rank, from
// rank 8 down to rank 1, file A to file H within each rank.
func parsePlacement(s string) ([square.N]piece.Piece, error) {
	var board [square.N]piece.Piece

	ranks := strings.Split(s, "/")

	rank := square.Rank8
	file := square.FileA
	for _, data := range ranks {
		if rank > square.Rank1 {
			return board, newError(TooManyRanks, placementField)
		}

		for _, c := range data {
			if file > square.FileH {
				return board, newError(JumpTooLong, placementField)
			}

			if c >= '1' && c <= '8' {
				file += square.File(c - '0')
				if file > square.FileH+1 {
					return board, newError(JumpTooLong, placementField)
				}
				continue
			}

			p, ok := pieceFromRune(c)
			if !ok {
				return board, newError(InvalidPiece, placementField)
			}

			board[square.From(file, rank)] = p
			file++
		}

		if file != square.FileH+1 {
			return board, newError(RankIncomplete, placementField)
		}

		rank++
		file = square.FileA
	}

	if rank != square.Rank1+1 {
		return board, newError(RankIncomplete, placementField)
	}

	return board, nil
}

func pieceFromRune(c rune) (piece.Piece, bool) {
	switch c {
	case 'P':
		return piece.WhitePawn, true
	case 'N':
		return piece.WhiteKnight, true
	case 'B':
		return piece.WhiteBishop, true
	case 'R':
		return piece.WhiteRook, true
	case 'Q':
		return piece.WhiteQueen, true
	case 'K':
		return piece.WhiteKing, true
	case 'p':
		return piece.BlackPawn, true
	case 'n':
		return piece.BlackKnight, true
	case 'b':
		return piece.BlackBishop, true
	case 'r':
		return piece.BlackRook, true
	case 'q':
		return piece.BlackQueen, true
	case 'k':
		return piece.BlackKing, true
	default:
		return piece.NoPiece, false
	}
}

func parseSide(s string) (piece.Color, bool) {
	switch s {
	case "w":
		return piece.White, true
	case "b":
		return piece.Black, true
	default:
		return piece.White, false
	}
}

// parseCastling validates and decodes the castling field. Unlike
// castling.NewRights, which silently ignores unrecognized letters, it
// rejects anything outside "-" or a run of KQkqAHah letters.
func parseCastling(s string) (castling.Rights, bool) {
	if s == "-" {
		return castling.None, true
	}

	for _, c := range s {
		switch c {
		case 'K', 'Q', 'k', 'q', 'A', 'H', 'a', 'h':
		default:
			return castling.None, false
		}
	}

	return castling.NewRights(s), true
}

// parseSquare validates and decodes an algebraic square or "-",
// without square.New's panic-on-invalid-input behavior.
func parseSquare(s string) (square.Square, bool) {
	if s == "-" {
		return square.None, true
	}
	if len(s) != 2 {
		return square.None, false
	}
	if s[0] < 'a' || s[0] > 'h' {
		return square.None, false
	}
	if s[1] < '1' || s[1] > '8' {
		return square.None, false
	}
	return square.New(s), true
}

// Format encodes a Record into its FEN string, the inverse of Parse.
func Format(rec Record) string {
	var b strings.Builder

	formatPlacement(&b, rec.Board)
	b.WriteByte(' ')
	b.WriteString(rec.SideToMove.String())
	b.WriteByte(' ')
	b.WriteString(rec.Castling.String())
	b.WriteByte(' ')
	b.WriteString(rec.EnPassant.String())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(int(rec.HalfMoveClock)))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(int(rec.FullMoveCount)))

	return b.String()
}

// formatPlacement emits the piece-placement field, run-length
// compressing consecutive empty squares within each rank.
func formatPlacement(b *strings.Builder, board [square.N]piece.Piece) {
	empty := 0

	flush := func() {
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
			empty = 0
		}
	}

	for s := square.A8; s <= square.H1; s++ {
		if s != square.A8 && s.File() == square.FileA {
			flush()
			b.WriteByte('/')
		}

		p := board[s]
		if p == piece.NoPiece {
			empty++
			continue
		}

		flush()
		b.WriteString(p.String())
	}
	flush()
}
