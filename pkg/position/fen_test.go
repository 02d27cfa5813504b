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
	"testing"

	"github.com/corvusengine/corvus/pkg/castling"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

func TestNewStartpos(t *testing.T) {
	p, err := New(Startpos)
	if err != nil {
		t.Fatalf("New(Startpos) = %v", err)
	}

	if got := p.FEN(); got != Startpos {
		t.Errorf("FEN() = %q, want %q", got, Startpos)
	}
	if p.CheckCount != 0 {
		t.Errorf("CheckCount = %d, want 0", p.CheckCount)
	}
	if p.Kings[0] != square.E1 || p.Kings[1] != square.E8 {
		t.Errorf("Kings = %v, want [e1 e8]", p.Kings)
	}
}

func TestFENRoundTrip(t *testing.T) {
	cases := []string{
		Startpos,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"rnbq1bnr/pppPkppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQ e6 1 5",
	}

	for _, s := range cases {
		p, err := New(s)
		if err != nil {
			t.Fatalf("New(%q) = %v", s, err)
		}
		if got := p.FEN(); got != s {
			t.Errorf("FEN() = %q, want %q", got, s)
		}
	}
}

// TestChess960CastlingResolution checks that resolveCastlingInfo finds
// the true rook squares for a Fischer Random start where the king and
// rooks do not sit on their standard files.
func TestChess960CastlingResolution(t *testing.T) {
	const fen = "rkr5/pppppppp/8/8/8/8/PPPPPPPP/RKR5 w KQkq - 0 1"

	p, err := New(fen)
	if err != nil {
		t.Fatalf("New(%q) = %v", fen, err)
	}

	kingFrom, kingTo := p.CastlingInfo.King(piece.White, true)
	if kingFrom != square.B1 || kingTo != square.G1 {
		t.Errorf("White kingside King() = (%v, %v), want (b1, g1)", kingFrom, kingTo)
	}

	rookFrom, rookTo := p.CastlingInfo.Rook(piece.White, true)
	if rookFrom != square.C1 || rookTo != square.F1 {
		t.Errorf("White kingside Rook() = (%v, %v), want (c1, f1)", rookFrom, rookTo)
	}

	rookFrom, rookTo = p.CastlingInfo.Rook(piece.White, false)
	if rookFrom != square.A1 || rookTo != square.D1 {
		t.Errorf("White queenside Rook() = (%v, %v), want (a1, d1)", rookFrom, rookTo)
	}

	if p.Castling != castling.All {
		t.Errorf("Castling = %v, want All", p.Castling)
	}
}
