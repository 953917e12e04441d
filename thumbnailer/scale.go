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

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale returns a copy of the image scaled to the given width. The aspect
// ratio is preserved and the height is never less than one pixel. A width of
// less than one is treated as one.
func Scale(src image.Image, width int) *image.RGBA {
	b := src.Bounds()
	width = max(width, 1)

	height := 1
	if b.Dx() > 0 {
		height = max(b.Dy()*width/b.Dx(), 1)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	return dst
}
