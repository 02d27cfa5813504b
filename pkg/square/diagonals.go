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

// Diagonal identifies one of the 15 a1-h8-parallel diagonals, indexed
// 0 (h1) to 14 (a8).
type Diagonal int

// DiagonalN is the number of diagonals in each direction.
const DiagonalN = 15

// AntiDiagonal identifies one of the 15 h1-a8-parallel diagonals,
// indexed 0 (a1) to 14 (h8).
type AntiDiagonal int
