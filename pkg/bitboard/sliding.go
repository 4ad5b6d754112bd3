// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package bitboard

import "github.com/phillipduarte/enoki-chess/pkg/square"

// rayAttacks implements the classical occupancy/first-blocker sliding
// attack calculation for a single direction: the attack set includes the
// first blocker's square (whatever it holds, friend or foe — callers mask
// out friendly pieces themselves) and excludes everything beyond it.
func rayAttacks(occ Board, d Direction, s square.Square) Board {
	ray := Ray[s][d]
	blockers := ray & occ
	if blockers == Empty {
		return ray
	}

	var first square.Square
	if d.Positive() {
		// moving away from s increases the bit index, so the nearest
		// blocker is the lowest set bit of the blocker set.
		first = blockers.FirstOne()
	} else {
		// moving away from s decreases the bit index, so the nearest
		// blocker is the highest set bit of the blocker set.
		first = blockers.LastOne()
	}

	return ray ^ Ray[first][d]
}

// Rook returns the rook attack set from s given occupancy occ.
func Rook(s square.Square, occ Board) Board {
	return rayAttacks(occ, North, s) | rayAttacks(occ, South, s) |
		rayAttacks(occ, East, s) | rayAttacks(occ, West, s)
}

// Bishop returns the bishop attack set from s given occupancy occ.
func Bishop(s square.Square, occ Board) Board {
	return rayAttacks(occ, NorthEast, s) | rayAttacks(occ, SouthWest, s) |
		rayAttacks(occ, NorthWest, s) | rayAttacks(occ, SouthEast, s)
}

// Queen returns the queen attack set from s given occupancy occ.
func Queen(s square.Square, occ Board) Board {
	return Rook(s, occ) | Bishop(s, occ)
}
