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
	"database/sql"
	"time"

	"github.com/romshots/romshots/curated"
)

// SelectROM calls onSelect for every entry recorded for the ROM hash, oldest
// first. Returns the number of entries selected. An error returned by
// onSelect stops the selection and is returned.
func (db *Session) SelectROM(romHash string, onSelect func(Entry) error) (int, error) {
	rows, err := db.db.Query(`SELECT id, created, rom, rom_hash, core, prefix, warmup, interval, recommended
		FROM runs WHERE rom_hash = ? ORDER BY created, id`, romHash)
	if err != nil {
		return 0, curated.Errorf(databaseError, err)
	}

	var entries []Entry
	for rows.Next() {
		var ent Entry
		var created string
		var recommended sql.NullString

		err = rows.Scan(&ent.ID, &created, &ent.ROM, &ent.ROMHash, &ent.Core, &ent.Prefix,
			&ent.Warmup, &ent.Interval, &recommended)
		if err != nil {
			rows.Close()
			return 0, curated.Errorf(databaseError, err)
		}

		ent.Created, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			rows.Close()
			return 0, curated.Errorf(databaseError, err)
		}
		ent.Recommended = recommended.String

		entries = append(entries, ent)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, curated.Errorf(databaseError, err)
	}

	// captures are queried after the runs query has been closed
	for i := range entries {
		entries[i].Captures, err = db.selectCaptures(entries[i].ID)
		if err != nil {
			return 0, err
		}
	}

	for i, ent := range entries {
		if err := onSelect(ent); err != nil {
			return i, err
		}
	}

	return len(entries), nil
}

func (db *Session) selectCaptures(id string) ([]Capture, error) {
	rows, err := db.db.Query("SELECT idx, filename, score, error FROM captures WHERE run_id = ? ORDER BY idx", id)
	if err != nil {
		return nil, curated.Errorf(databaseError, err)
	}
	defer rows.Close()

	var captures []Capture
	for rows.Next() {
		var c Capture
		var filename, cerr sql.NullString
		if err := rows.Scan(&c.Index, &filename, &c.Score, &cerr); err != nil {
			return nil, curated.Errorf(databaseError, err)
		}
		c.Filename = filename.String
		c.Error = cerr.String
		captures = append(captures, c)
	}
	if err := rows.Err(); err != nil {
		return nil, curated.Errorf(databaseError, err)
	}

	return captures, nil
}
