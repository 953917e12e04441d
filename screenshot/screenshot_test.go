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

package screenshot_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/romshots/romshots/curated"
	"github.com/romshots/romshots/display"
	"github.com/romshots/romshots/screenshot"
	"github.com/romshots/romshots/test"
)

func TestFilename(t *testing.T) {
	fn, err := screenshot.Filename("shots/game_", 0, "png")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fn, "shots/game_00000.png")

	fn, err = screenshot.Filename("shots/game_", 17, "png")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fn, "shots/game_00017.png")

	fn, err = screenshot.Filename("", screenshot.MaxIndex, "bmp")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fn, "99999.bmp")

	fn, err = screenshot.Filename("x", screenshot.MaxIndex+1, "png")
	test.ExpectSuccess(t, curated.Is(err, screenshot.IndexOverflow))
	test.ExpectEquality(t, fn, "")

	_, err = screenshot.Filename("x", -1, "png")
	test.ExpectSuccess(t, curated.Is(err, screenshot.IndexNegative))
}

func TestLookupFormat(t *testing.T) {
	for _, n := range []string{"png", "PNG", " bmp", "tiff", "tif"} {
		_, err := screenshot.LookupFormat(n)
		test.ExpectSuccess(t, err, n)
	}

	_, err := screenshot.LookupFormat("gif")
	test.ExpectSuccess(t, curated.Is(err, screenshot.UnknownFormat))

	_, err = screenshot.NewFileEncoder("x", "jpeg")
	test.ExpectSuccess(t, curated.Is(err, screenshot.UnknownFormat))

	test.ExpectEquality(t, len(screenshot.Formats()), 3)
}

func converted() *display.Converted {
	src := display.NewFrame565(3, 2, 4)
	src.Set(0, 0, 0xf800)
	src.Set(1, 0, 0x07e0)
	src.Set(2, 0, 0x001f)
	src.Set(0, 1, 0xffff)
	dst := display.NewConverted(3, 2, 4)
	dst.Convert(src, 3, 2)
	return dst
}

func TestRoundTrip(t *testing.T) {
	for _, format := range screenshot.Formats() {
		prefix := filepath.Join(t.TempDir(), "cap_")
		enc, err := screenshot.NewFileEncoder(prefix, format)
		test.DemandSuccess(t, err)

		fn, err := enc.Encode(converted(), 3)
		test.DemandSuccess(t, err, format)
		test.ExpectEquality(t, fn, prefix+"00003."+enc.Format.Ext)

		img, err := enc.Load(3)
		test.DemandSuccess(t, err, format)

		expected := []struct {
			x, y int
			col  color.RGBA
		}{
			{0, 0, color.RGBA{R: 0xf8, A: 0xff}},
			{1, 0, color.RGBA{G: 0xfc, A: 0xff}},
			{2, 0, color.RGBA{B: 0xf8, A: 0xff}},
			{0, 1, color.RGBA{R: 0xf8, G: 0xfc, B: 0xf8, A: 0xff}},
			{1, 1, color.RGBA{A: 0xff}},
		}
		for _, e := range expected {
			got := color.RGBAModel.Convert(img.At(e.x, e.y)).(color.RGBA)
			test.ExpectEquality(t, got, e.col, format, e.x, e.y)
		}
	}
}

func TestEncodeOverflow(t *testing.T) {
	dir := t.TempDir()
	enc, err := screenshot.NewFileEncoder(filepath.Join(dir, "cap_"), "png")
	test.DemandSuccess(t, err)

	_, err = enc.Encode(converted(), screenshot.MaxIndex+1)
	test.ExpectSuccess(t, curated.Is(err, screenshot.IndexOverflow))

	// nothing should have been written
	entries, err := os.ReadDir(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 0)
}

func TestEncodeMissingDirectory(t *testing.T) {
	enc, err := screenshot.NewFileEncoder(filepath.Join(t.TempDir(), "missing", "cap_"), "png")
	test.DemandSuccess(t, err)

	_, err = enc.Encode(converted(), 0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.IsAny(err))
}

func TestSave(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "cap_")
	enc, err := screenshot.NewFileEncoder(prefix, "bmp")
	test.DemandSuccess(t, err)

	fn, err := enc.Save(converted(), "thumb")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, prefix+"thumb.bmp")

	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)
}
