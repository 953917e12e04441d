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

// Package display holds the two pixel buffers involved in a capture: the
// 16-bit RGB 5-6-5 frame produced by an emulation core and the persistent
// 32-bit buffer it is converted into.
//
// Conversion is a bit placement and not a rescale. The red, green and blue
// fields of the source pixel are moved to the top of their byte in the 32-bit
// word, leaving the low bits of each channel and the whole alpha byte at zero:
//
//	rrrrrggg gggbbbbb -> rrrrr000 gggggg00 bbbbb000 00000000
//
// Because the destination buffer is reused from one capture to the next,
// Convert() can count how many pixels are unchanged since the previous
// capture at no extra cost. A zero pixel has never been painted and is never
// counted.
package display
