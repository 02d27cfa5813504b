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

// IsFiftyMoveDraw reports whether the 50-move rule currently allows a
// draw claim: 100 plys (50 full moves by each side) have passed since
// the last pawn push or capture.
func (p *Position) IsFiftyMoveDraw() bool {
	return p.DrawClock >= 100
}

// IsRepetition reports whether the current position has occurred at
// least once before since the last irreversible move (pawn push or
// capture), the threshold most engines use to call a position drawn
// during search without waiting for the third occurrence.
func (p *Position) IsRepetition() bool {
	depth := p.Plys - p.DrawClock
	if depth < 0 {
		depth = 0
	}

	for i := p.Plys - 2; i >= depth; i -= 2 {
		if p.History[i].Hash == p.Hash {
			return true
		}
	}
	return false
}

// IsThreefoldRepetition reports whether the current position has
// occurred at least three times in total (the current occurrence plus
// two earlier ones) since the last irreversible move, the rule a game
// result actually turns on.
func (p *Position) IsThreefoldRepetition() bool {
	depth := p.Plys - p.DrawClock
	if depth < 0 {
		depth = 0
	}

	count := 1
	for i := p.Plys - 2; i >= depth; i -= 2 {
		if p.History[i].Hash == p.Hash {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is in check with no
// legal moves available.
func (p *Position) IsCheckmate() bool {
	return p.CheckCount > 0 && len(p.GenerateLegal()) == 0
}

// IsStalemate reports whether the side to move is not in check but
// has no legal moves available.
func (p *Position) IsStalemate() bool {
	return p.CheckCount == 0 && len(p.GenerateLegal()) == 0
}
