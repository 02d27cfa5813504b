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
	"github.com/corvusengine/corvus/pkg/castling"
	"github.com/corvusengine/corvus/pkg/fen"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
	"github.com/corvusengine/corvus/pkg/zobrist"
)

// Startpos is the FEN of the standard chess starting position.
const Startpos = fen.Startpos

// New builds a Position from a FEN string.
func New(s string) (*Position, error) {
	rec, err := fen.Parse(s)
	if err != nil {
		return nil, err
	}
	return FromRecord(rec), nil
}

// FromRecord assembles a Position from an already-parsed FEN record.
func FromRecord(rec fen.Record) *Position {
	p := &Position{
		Board:     rec.Board,
		SideToMove: rec.SideToMove,
		EnPassant: rec.EnPassant,
		Castling:  rec.Castling,
		DrawClock: int(rec.HalfMoveClock),
		FullMoves: int(rec.FullMoveCount),
	}

	p.CastlingInfo = resolveCastlingInfo(rec.Board, rec.Castling)

	for s := square.A8; s <= square.H1; s++ {
		pc := rec.Board[s]
		if pc == piece.NoPiece {
			continue
		}

		p.ColorBBs[pc.Color()].Set(s)
		p.PieceBBs[pc.Type()].Set(s)
		if pc.Type() == piece.King {
			p.Kings[pc.Color()] = s
		}
		p.Hash ^= zobrist.PieceSquare[pc][s]
	}

	p.Plys = (p.FullMoves - 1) * 2
	if p.SideToMove == piece.Black {
		p.Plys++
		p.Hash ^= zobrist.SideToMove
	}

	if p.EnPassant != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassant.File()]
	}
	p.Hash ^= zobrist.Castling[p.Castling]

	p.refreshDerived()

	return p
}

// FEN renders p back into a FEN string.
func (p *Position) FEN() string {
	return fen.Format(fen.Record{
		Board:         p.Board,
		SideToMove:    p.SideToMove,
		Castling:      p.Castling,
		EnPassant:     p.EnPassant,
		HalfMoveClock: uint8(p.DrawClock),
		FullMoveCount: uint16(p.FullMoves),
	})
}

// resolveCastlingInfo derives castling.Info from the board and the
// parsed rights. The rook square for each held right is the outermost
// rook between the king and the corresponding board edge, found by
// scanning from that edge in toward the king. This resolves
// both standard "KQkq" notation and Shredder-FEN's explicit rook-file
// letters identically, since in the standard case the outermost rook
// is simply the one on its home corner.
func resolveCastlingInfo(board [square.N]piece.Piece, rights castling.Rights) castling.Info {
	whiteKing := findKing(board, piece.White)
	blackKing := findKing(board, piece.Black)

	whiteKingRook := findRook(board, piece.White, whiteKing, square.FileH)
	whiteQueenRook := findRook(board, piece.White, whiteKing, square.FileA)
	blackKingRook := findRook(board, piece.Black, blackKing, square.FileH)
	blackQueenRook := findRook(board, piece.Black, blackKing, square.FileA)

	if !rights.Has(castling.WhiteKingside) {
		whiteKingRook = square.From(square.FileH, whiteKing.Rank())
	}
	if !rights.Has(castling.WhiteQueenside) {
		whiteQueenRook = square.From(square.FileA, whiteKing.Rank())
	}
	if !rights.Has(castling.BlackKingside) {
		blackKingRook = square.From(square.FileH, blackKing.Rank())
	}
	if !rights.Has(castling.BlackQueenside) {
		blackQueenRook = square.From(square.FileA, blackKing.Rank())
	}

	return castling.FromSquares(whiteKing, whiteKingRook, whiteQueenRook, blackKing, blackKingRook, blackQueenRook)
}

func findKing(board [square.N]piece.Piece, c piece.Color) square.Square {
	want := piece.New(piece.King, c)
	for s := square.A8; s <= square.H1; s++ {
		if board[s] == want {
			return s
		}
	}
	return square.None
}

// findRook scans king's rank from edgeFile in toward the king for the
// outermost rook of color c, i.e. the first one found starting at the
// edge and working back in toward the king.
func findRook(board [square.N]piece.Piece, c piece.Color, king square.Square, edgeFile square.File) square.Square {
	if king == square.None {
		return square.From(edgeFile, 0)
	}

	want := piece.New(piece.Rook, c)
	rank := king.Rank()

	step := 1
	if edgeFile < king.File() {
		step = -1
	}

	for f := edgeFile; f != king.File(); f -= square.File(step) {
		s := square.From(f, rank)
		if board[s] == want {
			return s
		}
	}
	return square.From(edgeFile, rank)
}
