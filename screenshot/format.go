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

package screenshot

import (
	"image"
	"image/png"
	"io"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/romshots/romshots/curated"
)

// UnknownFormat is returned by LookupFormat() for unsupported formats.
const UnknownFormat = "screenshot: unknown image format (%s)"

// Format describes how to encode and decode one image file format.
type Format struct {
	Name   string
	Ext    string
	Encode func(w io.Writer, img image.Image) error
	Decode func(r io.Reader) (image.Image, error)
}

var formats = map[string]Format{
	"png": {
		Name:   "png",
		Ext:    "png",
		Encode: png.Encode,
		Decode: png.Decode,
	},
	"bmp": {
		Name:   "bmp",
		Ext:    "bmp",
		Encode: bmp.Encode,
		Decode: bmp.Decode,
	},
	"tiff": {
		Name: "tiff",
		Ext:  "tiff",
		Encode: func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
		},
		Decode: tiff.Decode,
	},
}

// LookupFormat returns the named Format. Names are case insensitive.
func LookupFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "tif" {
		name = "tiff"
	}
	f, ok := formats[name]
	if !ok {
		return Format{}, curated.Errorf(UnknownFormat, name)
	}
	return f, nil
}

// Formats returns the names of the supported formats in alphabetical order.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for n := range formats {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
