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

import (
	"errors"
	"testing"

	"github.com/corvusengine/corvus/pkg/castling"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []string{
		Startpos,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/8/8/4K2k w - - 0 1",
		"rnbq1bnr/pppPkppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQ e6 1 5",
		"4k2r/8/8/8/8/8/8/R3K3 b Qk - 5 32",
	}

	for _, s := range cases {
		t.Run(s, func(t *testing.T) {
			rec, err := Parse(s)
			if err != nil {
				t.Fatalf("Parse(%q) = %v, want nil error", s, err)
			}
			if got := Format(rec); got != s {
				t.Errorf("Format(Parse(%q)) = %q, want %q", s, got, s)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		kind Kind
	}{
		{"too few fields", "8/8/8/8/8/8/8/8 w - - 0", WrongFieldCount},
		{"too many fields", "8/8/8/8/8/8/8/8 w - - 0 1 extra", WrongFieldCount},
		{"bad piece letter", "8/8/8/8/8/8/8/7x w - - 0 1", InvalidPiece},
		{"jump too long", "18/8/8/8/8/8/8/8 w - - 0 1", JumpTooLong},
		{"rank incomplete", "7/8/8/8/8/8/8/8 w - - 0 1", RankIncomplete},
		{"too many ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1", TooManyRanks},
		{"bad side to move", "8/8/8/8/8/8/8/8 x - - 0 1", BadSideToMove},
		{"bad castling", "8/8/8/8/8/8/8/8 w XQkq - 0 1", BadCastling},
		{"bad en passant", "8/8/8/8/8/8/8/8 w - z9 0 1", BadEnPassant},
		{"bad halfmove clock", "8/8/8/8/8/8/8/8 w - - -1 1", BadHalfMoveClock},
		{"bad fullmove count", "8/8/8/8/8/8/8/8 w - - 0 0x1", BadFullMoveCount},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.fen)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse(%q) error = %v, want *ParseError", c.fen, err)
			}
			if parseErr.Kind != c.kind {
				t.Errorf("Parse(%q) Kind = %v, want %v", c.fen, parseErr.Kind, c.kind)
			}
		})
	}
}

func TestParseStartpos(t *testing.T) {
	rec, err := Parse(Startpos)
	if err != nil {
		t.Fatalf("Parse(Startpos) = %v", err)
	}

	if rec.SideToMove != piece.White {
		t.Errorf("SideToMove = %v, want White", rec.SideToMove)
	}
	if rec.Castling != castling.All {
		t.Errorf("Castling = %v, want All", rec.Castling)
	}
	if rec.EnPassant != square.None {
		t.Errorf("EnPassant = %v, want None", rec.EnPassant)
	}
	if rec.HalfMoveClock != 0 {
		t.Errorf("HalfMoveClock = %d, want 0", rec.HalfMoveClock)
	}
	if rec.FullMoveCount != 1 {
		t.Errorf("FullMoveCount = %d, want 1", rec.FullMoveCount)
	}
	if rec.Board[square.E1] != piece.WhiteKing {
		t.Errorf("Board[e1] = %v, want WhiteKing", rec.Board[square.E1])
	}
	if rec.Board[square.E8] != piece.BlackKing {
		t.Errorf("Board[e8] = %v, want BlackKing", rec.Board[square.E8])
	}
}

func FuzzParseFormat(f *testing.F) {
	f.Add(Startpos)
	f.Add("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	f.Fuzz(func(t *testing.T, s string) {
		rec, err := Parse(s)
		if err != nil {
			return
		}
		// A successfully parsed FEN must format back to something
		// that parses to the same Record, even if not byte-identical
		// (e.g. leading zeros in the move counters).
		again, err := Parse(Format(rec))
		if err != nil {
			t.Fatalf("Format(Parse(%q)) produced unparsable FEN: %v", s, err)
		}
		if again != rec {
			t.Fatalf("round trip mismatch for %q: %+v != %+v", s, again, rec)
		}
	})
}
