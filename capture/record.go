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

package capture

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Capture is the outcome of a single capture.
type Capture struct {
	Index    int
	Score    uint32
	Filename string
	Err      error
}

// Record is the list of captures made during a run. The length of the list
// is fixed when the Record is created.
type Record struct {
	captures []Capture
}

func newRecord(n int) Record {
	r := Record{captures: make([]Capture, n)}
	for i := range r.captures {
		r.captures[i].Index = i
	}
	return r
}

// Len returns the number of captures in the record.
func (r Record) Len() int {
	return len(r.captures)
}

// Capture returns the capture at index i.
func (r Record) Capture(i int) Capture {
	return r.captures[i]
}

// Scores returns a copy of the similarity scores, in capture order.
func (r Record) Scores() []uint32 {
	s := make([]uint32, len(r.captures))
	for i, c := range r.captures {
		s[i] = c.Score
	}
	return s
}

// Visualise writes a graphviz description of the record to io.Writer.
func (r Record) Visualise(w io.Writer) {
	memviz.Map(w, &r.captures)
}
