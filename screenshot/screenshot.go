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
	"fmt"
	"image"
	"os"

	"github.com/romshots/romshots/curated"
)

// MaxIndex is the largest capture index that fits in a filename.
const MaxIndex = 99999

// Sentinel error patterns.
const (
	IndexOverflow = "screenshot: capture index %d exceeds %d"
	IndexNegative = "screenshot: capture index %d is negative"
	ioError    = "screenshot: %v"
)

// Filename returns the name of the file for a capture index.
func Filename(prefix string, index int, ext string) (string, error) {
	if index < 0 {
		return "", curated.Errorf(IndexNegative, index)
	}
	if index > MaxIndex {
		return "", curated.Errorf(IndexOverflow, index, MaxIndex)
	}
	return fmt.Sprintf("%s%05d.%s", prefix, index, ext), nil
}

// FileEncoder writes images to files named with Filename().
type FileEncoder struct {
	Prefix string
	Format Format

	// reused between calls to Encode()
	rgba *image.RGBA
}

// NewFileEncoder is the preferred method of initialisation for the
// FileEncoder type.
func NewFileEncoder(prefix string, format string) (*FileEncoder, error) {
	f, err := LookupFormat(format)
	if err != nil {
		return nil, err
	}
	return &FileEncoder{
		Prefix: prefix,
		Format: f,
	}, nil
}

// rgbaSource is implemented by images that can copy themselves into an
// image.RGBA more quickly than the encoders can read them with At().
type rgbaSource interface {
	RGBA(dst *image.RGBA) *image.RGBA
}

// Encode writes the image to the file for the capture index and returns the
// filename. Existing files are overwritten.
func (enc *FileEncoder) Encode(img image.Image, index int) (string, error) {
	fn, err := Filename(enc.Prefix, index, enc.Format.Ext)
	if err != nil {
		return "", err
	}

	if src, ok := img.(rgbaSource); ok {
		enc.rgba = src.RGBA(enc.rgba)
		img = enc.rgba
	}

	return fn, enc.write(fn, img)
}

// Save writes the image to a file with the given name, without any index.
// The format's extension is added to the name.
func (enc *FileEncoder) Save(img image.Image, name string) (string, error) {
	fn := fmt.Sprintf("%s%s.%s", enc.Prefix, name, enc.Format.Ext)
	return fn, enc.write(fn, img)
}

func (enc *FileEncoder) write(fn string, img image.Image) error {
	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf(ioError, err)
	}

	err = enc.Format.Encode(f, img)
	if err != nil {
		f.Close()
		return curated.Errorf(ioError, err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf(ioError, err)
	}

	return nil
}

// Load decodes the image file for a capture index.
func (enc *FileEncoder) Load(index int) (image.Image, error) {
	fn, err := Filename(enc.Prefix, index, enc.Format.Ext)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(fn)
	if err != nil {
		return nil, curated.Errorf(ioError, err)
	}
	defer f.Close()

	img, err := enc.Format.Decode(f)
	if err != nil {
		return nil, curated.Errorf("screenshot: %s: %v", fn, err)
	}
	return img, nil
}
