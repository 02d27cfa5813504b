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

package square

import "github.com/corvusengine/corvus/pkg/piece"

// File represents a file (vertical column) on the chessboard.
type File int8

// Constants representing every file.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// FileN is the number of files.
const FileN = 8

// String converts a File to its lower-case letter representation.
func (f File) String() string {
	const letters = "abcdefgh"
	return string(letters[f])
}

// Relative mirrors a File for Black, so that both sides can share
// pawn-structure logic written from White's perspective. It is the
// identity for White.
func (f File) Relative(c piece.Color) File {
	if c == piece.White {
		return f
	}
	return FileH - f
}

// fileFrom parses a single file letter ("a".."h") into a File.
func fileFrom(id string) File {
	c := id[0]
	if c < 'a' || c > 'h' {
		panic("square: invalid file id " + id)
	}
	return File(c - 'a')
}
