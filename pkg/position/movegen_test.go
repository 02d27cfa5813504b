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

	"github.com/corvusengine/corvus/pkg/move"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

func hasMove(moves []move.Move, uci string) bool {
	for _, m := range moves {
		if m.String() == uci {
			return true
		}
	}
	return false
}

// TestPinnedPieceRestricted checks that a rook pinned along a file may
// only move within the pin, not off it.
func TestPinnedPieceRestricted(t *testing.T) {
	p, err := New("4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("New = %v", err)
	}

	moves := p.GenerateLegal()
	for _, m := range moves {
		if m.Source().String() != "e2" {
			continue
		}
		if m.Target().File() != m.Source().File() {
			t.Errorf("pinned rook move %s leaves the e-file pin", m)
		}
	}
}

// TestCheckEvasionOnlyBlocksOrCaptures checks that when in check from a
// slider with no friendly piece able to block or capture it (White has
// only its king), no non-king move is generated.
func TestCheckEvasionOnlyBlocksOrCaptures(t *testing.T) {
	p, err := New("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("New = %v", err)
	}

	if p.CheckCount != 1 {
		t.Fatalf("CheckCount = %d, want 1", p.CheckCount)
	}

	moves := p.GenerateLegal()
	for _, m := range moves {
		if m.Source() == p.Kings[piece.White] {
			continue
		}
		t.Errorf("unexpected non-king move %s while in check with no blockers", m)
	}
}

// TestCastlingBlockedByOccupancy checks that castling isn't offered
// when a piece sits in the path.
func TestCastlingBlockedByOccupancy(t *testing.T) {
	p, err := New("r3k2r/8/8/8/8/8/8/R2NK2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("New = %v", err)
	}

	moves := p.GenerateLegal()
	if hasMove(moves, "e1a1") {
		t.Errorf("queenside castle offered with a knight on d1")
	}
	if !hasMove(moves, "e1h1") {
		t.Errorf("kingside castle not offered with an open path")
	}
}

// TestCastlingBlockedByAttack checks that castling through an attacked
// square is illegal even though the path is unoccupied.
func TestCastlingBlockedByAttack(t *testing.T) {
	p, err := New("4k3/b7/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("New = %v", err)
	}

	moves := p.GenerateLegal()
	if hasMove(moves, "e1h1") {
		t.Errorf("kingside castle offered through g1, attacked by the bishop on a7")
	}
}

// TestEnPassantCapture checks an en-passant capture is generated and
// correctly removes the captured pawn on make.
func TestEnPassantCapture(t *testing.T) {
	p, err := New("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatalf("New = %v", err)
	}

	moves := p.GenerateLegal()
	if !hasMove(moves, "e5d6") {
		t.Fatalf("en-passant capture e5d6 not generated")
	}

	for _, m := range moves {
		if m.String() != "e5d6" {
			continue
		}
		p.MakeMove(m)
		if p.Board[square.D5] != piece.NoPiece {
			t.Errorf("captured pawn still on d5 after en passant")
		}
		p.UnmakeMove()
		if !hasMove(p.GenerateLegal(), "e5d6") {
			t.Errorf("en-passant capture lost after unmake")
		}
	}
}

// TestEnPassantExposesCheckIsIllegal checks the horizontal-pin
// en-passant edge case: capturing removes both the capturing pawn and
// the captured pawn from the rank in one move, which here would expose
// the black king to the white rook on the same rank, so it must not be
// generated even though the destination square itself is safe.
func TestEnPassantExposesCheckIsIllegal(t *testing.T) {
	p, err := New("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	if err != nil {
		t.Fatalf("New = %v", err)
	}

	moves := p.GenerateLegal()
	if hasMove(moves, "e4d3") {
		t.Errorf("en-passant capture e4d3 should be illegal (exposes king to rook on h4)")
	}
}
