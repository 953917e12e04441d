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

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the statistics server.
const Address = "localhost:12600"

// URL is the path of the statistics page on the server.
const URL = "/debug/statsview"

var launched sync.Once

// Launch a new goroutine running the statsview. Calling Launch more than
// once has no further effect.
func Launch(output io.Writer) {
	launched.Do(func() {
		go func() {
			viewer.SetConfiguration(viewer.WithAddr(Address))
			mgr := statsview.New()
			mgr.Start()
		}()

		fmt.Fprintf(output, "stats server available at %s\n", Location())
	})
}

// Location returns the address and path of the statistics page.
func Location() string {
	return fmt.Sprintf("%s%s", Address, URL)
}
