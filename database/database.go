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
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/romshots/romshots/curated"
)

// Sentinel error patterns.
const (
	NoSuchEntry   = "database: no entry with ID (%s)"
	databaseError = "database: %v"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created TEXT NOT NULL,
	rom TEXT NOT NULL,
	rom_hash TEXT NOT NULL,
	core TEXT NOT NULL,
	prefix TEXT NOT NULL,
	warmup INTEGER NOT NULL,
	interval INTEGER NOT NULL,
	recommended TEXT
);
CREATE INDEX IF NOT EXISTS idx_rom_hash ON runs(rom_hash);
CREATE TABLE IF NOT EXISTS captures (
	run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	idx INTEGER NOT NULL,
	filename TEXT,
	score INTEGER NOT NULL,
	error TEXT,
	PRIMARY KEY (run_id, idx)
);`

// Session is an open catalogue.
type Session struct {
	db *sql.DB
}

// StartSession opens the catalogue at path, creating it if necessary.
func StartSession(path string) (*Session, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", path))
	if err != nil {
		return nil, curated.Errorf(databaseError, err)
	}

	_, err = db.Exec(schema)
	if err != nil {
		db.Close()
		return nil, curated.Errorf(databaseError, err)
	}

	return &Session{db: db}, nil
}

// EndSession closes the catalogue.
func (db *Session) EndSession() error {
	if err := db.db.Close(); err != nil {
		return curated.Errorf(databaseError, err)
	}
	return nil
}

// NumEntries returns the number of runs in the catalogue.
func (db *Session) NumEntries() (int, error) {
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, curated.Errorf(databaseError, err)
	}
	return n, nil
}

// Add an entry to the catalogue. Returns the ID of the entry.
func (db *Session) Add(ent Entry) (string, error) {
	if ent.ID == "" {
		ent.ID = uuid.NewString()
	}
	if ent.Created.IsZero() {
		ent.Created = time.Now()
	}

	tx, err := db.db.Begin()
	if err != nil {
		return "", curated.Errorf(databaseError, err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs (id, created, rom, rom_hash, core, prefix, warmup, interval, recommended)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ent.ID, ent.Created.UTC().Format(time.RFC3339Nano), ent.ROM, ent.ROMHash, ent.Core, ent.Prefix,
		ent.Warmup, ent.Interval, ent.Recommended)
	if err != nil {
		return "", curated.Errorf(databaseError, err)
	}

	stmt, err := tx.Prepare("INSERT INTO captures (run_id, idx, filename, score, error) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return "", curated.Errorf(databaseError, err)
	}
	defer stmt.Close()

	for _, c := range ent.Captures {
		_, err = stmt.Exec(ent.ID, c.Index, c.Filename, c.Score, c.Error)
		if err != nil {
			return "", curated.Errorf(databaseError, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", curated.Errorf(databaseError, err)
	}

	return ent.ID, nil
}

// Delete the entry with the ID.
func (db *Session) Delete(id string) error {
	res, err := db.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return curated.Errorf(databaseError, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return curated.Errorf(databaseError, err)
	}
	if n == 0 {
		return curated.Errorf(NoSuchEntry, id)
	}
	return nil
}

// List writes a summary of every entry for the ROM hash to io.Writer.
func (db *Session) List(output io.Writer, romHash string) error {
	n, err := db.SelectROM(romHash, func(ent Entry) error {
		_, err := fmt.Fprintln(output, ent.String())
		return err
	})
	if err != nil {
		return err
	}

	if n == 0 {
		_, err = fmt.Fprintln(output, "no runs recorded for ROM")
	} else {
		_, err = fmt.Fprintf(output, "Total: %d\n", n)
	}
	return err
}
