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

import "testing"

// perft counts the number of leaf nodes reachable from p at the given
// depth by making and unmaking every legal move. Move generation here
// is expected to produce only strictly legal moves, so no extra
// legality check is needed after MakeMove.
func perft(p *Position, depth int) int {
	if depth == 0 {
		return 1
	}

	moves := p.GenerateLegal()
	if depth == 1 {
		return len(moves)
	}

	nodes := 0
	for _, m := range moves {
		p.MakeMove(m)
		nodes += perft(p, depth-1)
		p.UnmakeMove()
	}
	return nodes
}

func TestPerftStartpos(t *testing.T) {
	cases := []struct {
		depth int
		nodes int
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, c := range cases {
		p, err := New(Startpos)
		if err != nil {
			t.Fatalf("New(Startpos) = %v", err)
		}
		if got := perft(p, c.depth); got != c.nodes {
			t.Errorf("perft(startpos, %d) = %d, want %d", c.depth, got, c.nodes)
		}
	}
}

// TestPerftKiwipete exercises castling, promotions, and en-passant in
// combination; it is the standard second perft position used to shake
// out move generator bugs the starting position can't reach.
func TestPerftKiwipete(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	cases := []struct {
		depth int
		nodes int
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}

	for _, c := range cases {
		p, err := New(kiwipete)
		if err != nil {
			t.Fatalf("New(kiwipete) = %v", err)
		}
		if got := perft(p, c.depth); got != c.nodes {
			t.Errorf("perft(kiwipete, %d) = %d, want %d", c.depth, got, c.nodes)
		}
	}
}

// TestPerftEnPassantPin covers a position where an en-passant capture
// would expose the king to a horizontal pin along the fifth rank and
// must be excluded.
func TestPerftEnPassantPin(t *testing.T) {
	const fen = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	p, err := New(fen)
	if err != nil {
		t.Fatalf("New(fen) = %v", err)
	}

	if got, want := perft(p, 6), 824064; got != want {
		t.Errorf("perft(en-passant pin, 6) = %d, want %d", got, want)
	}
}

func TestStartposCheckmateStalemate(t *testing.T) {
	p, err := New(Startpos)
	if err != nil {
		t.Fatalf("New(Startpos) = %v", err)
	}
	if p.IsCheckmate() || p.IsStalemate() {
		t.Errorf("starting position reported as checkmate/stalemate")
	}
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	p, err := New(Startpos)
	if err != nil {
		t.Fatalf("New(Startpos) = %v", err)
	}

	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		applyUCI(t, p, uci)
	}

	if !p.IsCheckmate() {
		t.Errorf("fool's mate position not reported as checkmate")
	}
}

// applyUCI finds and plays the legal move matching a UCI-style move
// string ("e2e4", "e7e8q"), failing the test if none matches.
func applyUCI(t *testing.T, p *Position, uci string) {
	t.Helper()

	for _, m := range p.GenerateLegal() {
		if m.String() == uci {
			p.MakeMove(m)
			return
		}
	}
	t.Fatalf("no legal move matches %q in position %s", uci, p.FEN())
}
