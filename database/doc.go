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

// Package database is the capture catalogue: a record of every run made with
// the -db flag, stored in an SQLite file.
//
// Each run is an Entry, identified by a random UUID, and remembers the ROM it
// was made with (by filename and hash), the timing configuration, the
// recommendation and every capture with its score and filename.
//
//	db, err := database.StartSession(path)
//	...
//	defer db.EndSession()
//
//	id, err := db.Add(ent)
//
// Entries for a ROM are found by ROM hash with SelectROM(). List() prints a
// summary of those entries.
package database
