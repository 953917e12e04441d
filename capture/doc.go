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

// Package capture runs an emulation core headlessly and takes a fixed number
// of screenshots at fixed intervals.
//
// A Session owns the two pieces of state that live for the whole run: the
// converted frame buffer and the Record of similarity scores. Run() first
// steps the core through a warm-up period, so that boot screens and intros
// are skipped, and then for every capture steps the core by the interval,
// converts the current frame and hands it to the Encoder.
//
// The similarity score of a capture is the number of repeat pixels reported
// by the conversion. Failing to encode a capture does not affect its score
// and does not stop the run.
//
// After Run() has returned, Recommend() gives the index of the capture
// chosen by the thumbnailer.
package capture
