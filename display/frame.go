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

package display

// Frame565 is a frame of 16-bit RGB 5-6-5 pixels. Pitch is the row stride in
// pixels and may be larger than Width.
type Frame565 struct {
	Pix    []uint16
	Width  int
	Height int
	Pitch  int
}

// NewFrame565 allocates a zeroed frame. A pitch smaller than width is
// increased to width.
func NewFrame565(width, height, pitch int) *Frame565 {
	if pitch < width {
		pitch = width
	}
	return &Frame565{
		Pix:    make([]uint16, pitch*height),
		Width:  width,
		Height: height,
		Pitch:  pitch,
	}
}

// Set the pixel at x, y.
func (f *Frame565) Set(x, y int, p uint16) {
	f.Pix[y*f.Pitch+x] = p
}

// At returns the pixel at x, y.
func (f *Frame565) At(x, y int) uint16 {
	return f.Pix[y*f.Pitch+x]
}

// Fill every visible pixel with the same value. Padding is left untouched.
func (f *Frame565) Fill(p uint16) {
	for y := 0; y < f.Height; y++ {
		row := f.Pix[y*f.Pitch : y*f.Pitch+f.Width]
		for x := range row {
			row[x] = p
		}
	}
}

// Pack565 combines 5-bit red, 6-bit green and 5-bit blue values into a
// single pixel. Out of range bits are discarded.
func Pack565(r, g, b uint8) uint16 {
	return uint16(r&0x1f)<<11 | uint16(g&0x3f)<<5 | uint16(b&0x1f)
}
