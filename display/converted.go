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

import (
	"image"
	"image/color"
)

// Converted is the 32-bit destination of a conversion. Pixels are words with
// red in bits 24-31, green in bits 16-23, blue in bits 8-15 and the alpha byte
// in bits 0-7.
//
// Converted implements image.Image. The alpha byte is stored inverted (zero is
// opaque), so every converted pixel is reported as fully opaque.
type Converted struct {
	Pix    []uint32
	Width  int
	Height int
	Pitch  int
}

// NewConverted allocates a zeroed buffer. The pitch should be the pitch of the
// frames that will be converted into it.
func NewConverted(width, height, pitch int) *Converted {
	if pitch < width {
		pitch = width
	}
	return &Converted{
		Pix:    make([]uint32, pitch*height),
		Width:  width,
		Height: height,
		Pitch:  pitch,
	}
}

// Expand a 5-6-5 pixel to its 32-bit form.
func Expand(p uint16) uint32 {
	return uint32((p>>11)&0x1f)<<27 |
		uint32((p>>5)&0x3f)<<18 |
		uint32(p&0x1f)<<11
}

// Convert the top-left width by height pixels of src into the buffer and
// return the number of repeat pixels: those that were non-zero and are
// unchanged by the conversion.
//
// Rows in both buffers are addressed with the pitch of the source frame. The
// geometry must fit both buffers.
func (c *Converted) Convert(src *Frame565, width, height int) uint32 {
	var repeats uint32

	for y := 0; y < height; y++ {
		s := src.Pix[y*src.Pitch : y*src.Pitch+width]
		d := c.Pix[y*src.Pitch : y*src.Pitch+width]

		for x, p := range s {
			v := Expand(p)
			if d[x] == v && v != 0 {
				repeats++
			}
			d[x] = v
		}
	}

	return repeats
}

// Clear the buffer back to the unpainted state.
func (c *Converted) Clear() {
	clear(c.Pix)
}

// Word returns the raw 32-bit value at x, y.
func (c *Converted) Word(x, y int) uint32 {
	return c.Pix[y*c.Pitch+x]
}

// ColorModel implements the image.Image interface.
func (c *Converted) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the image.Image interface.
func (c *Converted) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

// At implements the image.Image interface.
func (c *Converted) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(c.Bounds())) {
		return color.RGBA{}
	}
	return wordToRGBA(c.Word(x, y))
}

func wordToRGBA(v uint32) color.RGBA {
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: ^uint8(v),
	}
}

// RGBA copies the buffer into an image.RGBA. The dst image is reused if it
// has the same dimensions, otherwise a new image is allocated.
func (c *Converted) RGBA(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds() != c.Bounds() {
		dst = image.NewRGBA(c.Bounds())
	}

	for y := 0; y < c.Height; y++ {
		row := c.Pix[y*c.Pitch : y*c.Pitch+c.Width]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+c.Width*4]
		for x, v := range row {
			col := wordToRGBA(v)
			out[x*4] = col.R
			out[x*4+1] = col.G
			out[x*4+2] = col.B
			out[x*4+3] = col.A
		}
	}

	return dst
}
