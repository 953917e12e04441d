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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/romshots/romshots/curated"
)

// Sentinel error patterns.
const (
	EmptyROM        = "cartridgeloader: %s: no data"
	UnexpectedHash  = "cartridgeloader: %s: unexpected hash value"
	UnsupportedURL  = "cartridgeloader: unsupported URL scheme (%s)"
	loadErrorFormat = "cartridgeloader: %v"
)

// size of the header added by copier devices.
const copierHeaderSize = 512

// FileExtensions is the list of file extensions commonly used for ROM dumps.
var FileExtensions = [...]string{".SMC", ".SFC", ".FIG", ".SWC", ".BIN"}

// Loader specifies the ROM to load and, after Load(), holds the data.
type Loader struct {
	// filename or URL of the ROM to load.
	Filename string

	// expected hash of the ROM. empty string indicates that the hash is
	// unknown and need not be validated. after a load operation the value will
	// be the hash of the loaded data
	Hash string

	// the ROM data with any copier header removed
	Data []byte

	// whether a copier header was found and removed
	Headered bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns the filename without the path and extension.
func (cl Loader) ShortName() string {
	return strings.TrimSuffix(path.Base(cl.Filename), path.Ext(cl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the ROM data. Filenames with a http or https scheme are fetched over
// the network, everything else is treated as a local file. Calling Load() on
// a loader that has already loaded is a no-op.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	scheme := ""
	if u, err := url.Parse(cl.Filename); err == nil {
		scheme = u.Scheme
	}

	var data []byte
	var err error

	switch scheme {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(loadErrorFormat, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(loadErrorFormat, fmt.Sprintf("%s: %s", cl.Filename, resp.Status))
		}
		data, err = io.ReadAll(resp.Body)

	case "file", "":
		data, err = os.ReadFile(strings.TrimPrefix(cl.Filename, "file://"))

	default:
		return curated.Errorf(UnsupportedURL, scheme)
	}

	if err != nil {
		return curated.Errorf(loadErrorFormat, err)
	}

	if len(data)%1024 == copierHeaderSize {
		data = data[copierHeaderSize:]
		cl.Headered = true
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyROM, cl.Filename)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash, cl.Filename)
	}

	cl.Hash = hash
	cl.Data = data

	return nil
}
