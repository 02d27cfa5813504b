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
	"github.com/corvusengine/corvus/pkg/attacks"
	"github.com/corvusengine/corvus/pkg/bitboard"
	"github.com/corvusengine/corvus/pkg/move"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

// GenerateLegal returns every legal move (quiets and noisies) from the
// current position.
func (p *Position) GenerateLegal() []move.Move {
	return p.generate(true, true)
}

// GenerateQuiets returns every legal quiet move: non-captures, and
// under-promotions to knight, bishop, or rook.
func (p *Position) GenerateQuiets() []move.Move {
	return p.generate(true, false)
}

// GenerateNoisies returns every legal noisy move: captures,
// en-passant captures, and queen promotions.
func (p *Position) GenerateNoisies() []move.Move {
	return p.generate(false, true)
}

func (p *Position) generate(quiets, noisies bool) []move.Move {
	moves := make([]move.Move, 0, 48)

	var targets bitboard.Board
	if quiets {
		targets = ^p.Occupied
	}
	if noisies {
		targets |= p.Enemies
	}

	p.generateKingMoves(&moves, targets)

	if p.CheckCount < 2 {
		p.generatePawnMoves(&moves, quiets, noisies)
		p.generateKnightMoves(&moves, targets)
		p.generateDiagonalSliders(&moves, targets)
		p.generateOrthogonalSliders(&moves, targets)

		if quiets && p.CheckCount == 0 {
			p.generateCastlingMoves(&moves)
		}
	}

	return moves
}

func (p *Position) generateKingMoves(moves *[]move.Move, targets bitboard.Board) {
	us := p.SideToMove
	kingSq := p.Kings[us]

	for toBB := attacks.King[kingSq] & targets &^ p.Threats; toBB != bitboard.Empty; {
		to := toBB.Pop()
		*moves = append(*moves, move.New(kingSq, to, move.Normal))
	}
}

func (p *Position) generateKnightMoves(moves *[]move.Move, targets bitboard.Board) {
	us := p.SideToMove
	knights := p.Knights(us) &^ (p.PinMaskDiag | p.PinMaskLine)

	for knights != bitboard.Empty {
		from := knights.Pop()
		for toBB := attacks.Knight[from] & targets & p.CheckMask; toBB != bitboard.Empty; {
			to := toBB.Pop()
			*moves = append(*moves, move.New(from, to, move.Normal))
		}
	}
}

// generateDiagonalSliders serializes bishop and queen moves along
// diagonals. A piece pinned orthogonally cannot move at all on a
// diagonal; one pinned diagonally may only move within that pin's ray.
func (p *Position) generateDiagonalSliders(moves *[]move.Move, targets bitboard.Board) {
	us := p.SideToMove
	sliders := (p.Bishops(us) | p.Queens(us)) &^ p.PinMaskLine

	pinned := sliders & p.PinMaskDiag
	unpinned := sliders &^ p.PinMaskDiag

	for pinned != bitboard.Empty {
		from := pinned.Pop()
		toBB := attacks.Bishop(from, p.Occupied) & p.PinMaskDiag & targets & p.CheckMask
		for toBB != bitboard.Empty {
			*moves = append(*moves, move.New(from, toBB.Pop(), move.Normal))
		}
	}
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		toBB := attacks.Bishop(from, p.Occupied) & targets & p.CheckMask
		for toBB != bitboard.Empty {
			*moves = append(*moves, move.New(from, toBB.Pop(), move.Normal))
		}
	}
}

// generateOrthogonalSliders is generateDiagonalSliders' mirror image
// for rooks and queens along ranks and files.
func (p *Position) generateOrthogonalSliders(moves *[]move.Move, targets bitboard.Board) {
	us := p.SideToMove
	sliders := (p.Rooks(us) | p.Queens(us)) &^ p.PinMaskDiag

	pinned := sliders & p.PinMaskLine
	unpinned := sliders &^ p.PinMaskLine

	for pinned != bitboard.Empty {
		from := pinned.Pop()
		toBB := attacks.Rook(from, p.Occupied) & p.PinMaskLine & targets & p.CheckMask
		for toBB != bitboard.Empty {
			*moves = append(*moves, move.New(from, toBB.Pop(), move.Normal))
		}
	}
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		toBB := attacks.Rook(from, p.Occupied) & targets & p.CheckMask
		for toBB != bitboard.Empty {
			*moves = append(*moves, move.New(from, toBB.Pop(), move.Normal))
		}
	}
}

func (p *Position) generatePawnMoves(moves *[]move.Move, quiets, noisies bool) {
	us := p.SideToMove

	pawns := p.Pawns(us)
	occ := p.Occupied

	promotionRank := bitboard.Ranks[square.Rank8.Relative(us)]
	doublePushRank := bitboard.Ranks[square.Rank3.Relative(us)]
	enPassantRank := bitboard.Ranks[square.Rank5.Relative(us)]

	p.generatePawnCaptures(moves, pawns, promotionRank, quiets, noisies)
	p.generatePawnPushes(moves, pawns, promotionRank, doublePushRank, occ, quiets, noisies)

	if noisies && p.EnPassant != square.None {
		p.generateEnPassant(moves, pawns, enPassantRank)
	}
}

func (p *Position) generatePawnCaptures(moves *[]move.Move, pawns, promotionRank bitboard.Board, quiets, noisies bool) {
	us := p.SideToMove

	attackers := pawns &^ p.PinMaskLine
	unpinned := attackers &^ p.PinMaskDiag
	pinned := attackers & p.PinMaskDiag

	capturable := p.Enemies & p.CheckMask

	left := attacks.PawnsLeft(unpinned, us) & capturable
	left |= attacks.PawnsLeft(pinned, us) & capturable & p.PinMaskDiag

	right := attacks.PawnsRight(unpinned, us) & capturable
	right |= attacks.PawnsRight(pinned, us) & capturable & p.PinMaskDiag

	p.serializePawnCaptures(moves, left&^promotionRank, us, true, quiets, noisies)
	p.serializePawnCaptures(moves, right&^promotionRank, us, false, quiets, noisies)
	p.serializePawnCaptures(moves, left&promotionRank, us, true, quiets, noisies)
	p.serializePawnCaptures(moves, right&promotionRank, us, false, quiets, noisies)
}

func (p *Position) serializePawnCaptures(moves *[]move.Move, toBB bitboard.Board, us piece.Color, leftAttack bool, quiets, noisies bool) {
	for toBB != bitboard.Empty {
		to := toBB.Pop()

		from := to.Down(us)
		if leftAttack {
			from++
		} else {
			from--
		}

		if bitboard.Ranks[square.Rank8.Relative(us)].IsSet(to) {
			addPromotions(moves, from, to, us, quiets, noisies)
			continue
		}

		if noisies {
			*moves = append(*moves, move.New(from, to, move.Normal))
		}
	}
}

func (p *Position) generatePawnPushes(moves *[]move.Move, pawns, promotionRank, doublePushRank bitboard.Board, occ bitboard.Board, quiets, noisies bool) {
	us := p.SideToMove

	pushers := pawns &^ p.PinMaskDiag
	unpinned := pushers &^ p.PinMaskLine
	pinned := pushers & p.PinMaskLine

	singleUnpinned := attacks.PawnPush(unpinned, us)
	singlePinned := attacks.PawnPush(pinned, us) & p.PinMaskLine

	single := (singlePinned | singleUnpinned) &^ occ

	double := attacks.PawnPush(single&doublePushRank, us) &^ occ & p.CheckMask

	single &= p.CheckMask

	promos := single & promotionRank
	for promos != bitboard.Empty {
		to := promos.Pop()
		addPromotions(moves, to.Down(us), to, us, quiets, noisies)
	}

	if !quiets {
		return
	}

	simple := single &^ promotionRank
	for simple != bitboard.Empty {
		to := simple.Pop()
		*moves = append(*moves, move.New(to.Down(us), to, move.Normal))
	}

	for double != bitboard.Empty {
		to := double.Pop()
		*moves = append(*moves, move.New(to.Down(us).Down(us), to, move.Normal))
	}
}

func (p *Position) generateEnPassant(moves *[]move.Move, pawns, enPassantRank bitboard.Board) {
	us := p.SideToMove
	them := us.Other()

	ep := p.EnPassant
	epPawn := ep.Down(us)

	epMask := bitboard.Squares[ep] | bitboard.Squares[epPawn]
	if p.CheckMask&epMask == bitboard.Empty {
		return
	}

	kingSq := p.Kings[us]
	attackers := pawns &^ p.PinMaskLine

	kingOnRank := enPassantRank.IsSet(kingSq)
	enemyRooksQueens := (p.Rooks(them) | p.Queens(them)) & enPassantRank
	possiblePin := kingOnRank && enemyRooksQueens != bitboard.Empty

	for fromBB := attacks.Pawn[them][ep] & attackers; fromBB != bitboard.Empty; {
		from := fromBB.Pop()

		if p.PinMaskDiag.IsSet(from) && !p.PinMaskDiag.IsSet(ep) {
			continue
		}

		if possiblePin {
			without := p.Occupied &^ (bitboard.Squares[from] | bitboard.Squares[epPawn])
			if attacks.Rook(kingSq, without)&enemyRooksQueens != bitboard.Empty {
				continue
			}
		}

		*moves = append(*moves, move.New(from, ep, move.EnPassant))
	}
}

// addPromotions emits the four promotion moves for a pawn moving from
// source to target, queen promotion gated on noisies and the three
// under-promotions gated on quiets.
func addPromotions(moves *[]move.Move, source, target square.Square, us piece.Color, quiets, noisies bool) {
	if noisies {
		*moves = append(*moves, move.NewPromotion(source, target, piece.Queen))
	}
	if quiets {
		*moves = append(*moves,
			move.NewPromotion(source, target, piece.Rook),
			move.NewPromotion(source, target, piece.Bishop),
			move.NewPromotion(source, target, piece.Knight),
		)
	}
}

func (p *Position) generateCastlingMoves(moves *[]move.Move) {
	us := p.SideToMove
	kingSq := p.Kings[us]

	for _, kingSide := range [2]bool{true, false} {
		right := p.CastlingInfo.Right(us, kingSide)
		if !p.Castling.Has(right) {
			continue
		}

		if p.CastlingInfo.Path(us, kingSide)&p.Occupied != bitboard.Empty {
			continue
		}
		if p.CastlingInfo.Safe(us, kingSide)&p.Threats != bitboard.Empty {
			continue
		}

		rookFrom, _ := p.CastlingInfo.Rook(us, kingSide)
		*moves = append(*moves, move.New(kingSq, rookFrom, move.Castle))
	}
}
