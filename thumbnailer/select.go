// This file is part of romshots.
//
// romshots is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// romshots is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with romshots.  If not, see <https://www.gnu.org/licenses/>.

package thumbnailer

// Select returns the index of the recommended capture. The second return
// value is false if there is no recommendation.
//
// The capture with the highest score wins, with ties going to the earliest
// capture. The recommendation is the capture immediately before the winner.
// If the winner is the first capture there is no recommendation. This is
// always the case when there are no scores or every score is zero.
func Select(scores []uint32) (int, bool) {
	var best int
	var bestScore uint32

	for i, s := range scores {
		if s > bestScore {
			best = i
			bestScore = s
		}
	}

	if best > 0 {
		return best - 1, true
	}
	return 0, false
}
