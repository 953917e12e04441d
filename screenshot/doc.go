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

// Package screenshot writes captured frames to disk.
//
// Files are named with a prefix, a five digit capture index and the extension
// of the image format:
//
//	shots/game_00017.png
//
// The index field is fixed width. Indexes that do not fit are rejected with
// an IndexOverflow error rather than producing a longer or truncated name.
//
// Supported formats are PNG, BMP and TIFF.
package screenshot
