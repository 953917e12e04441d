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

// Package thumbnailer chooses which capture of a run best represents the ROM.
//
// The choice is made from the similarity scores recorded during the run. The
// capture with the highest score is the one that changed least since the
// capture before it, which usually means the screen has settled. The capture
// before that is recommended, on the basis that a static run of frames is
// normally preceded by a representative one.
//
// The recommendation can also be scaled down to a small preview image with
// Scale().
package thumbnailer
