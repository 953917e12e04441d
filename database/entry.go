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

package database

import (
	"fmt"
	"time"
)

// Capture is a single capture in a run.
type Capture struct {
	Index    int
	Filename string
	Score    uint32

	// empty if the capture was written successfully
	Error string
}

// Entry is a single run.
type Entry struct {
	// assigned by Add() if empty
	ID string

	Created time.Time

	ROM     string
	ROMHash string
	Core    string
	Prefix  string

	Warmup   int
	Interval int

	// filename of the recommended capture. empty if there is no
	// recommendation
	Recommended string

	Captures []Capture
}

func (ent Entry) String() string {
	rec := ent.Recommended
	if rec == "" {
		rec = "no recommendation"
	}
	return fmt.Sprintf("%s %s [%s] %s: %d captures, %s", ent.ID, ent.Created.Format(time.DateTime), ent.Core, ent.Prefix, len(ent.Captures), rec)
}
