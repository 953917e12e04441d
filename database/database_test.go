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

package database_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/romshots/romshots/curated"
	"github.com/romshots/romshots/database"
	"github.com/romshots/romshots/test"
)

func openCatalogue(t *testing.T) *database.Session {
	t.Helper()
	db, err := database.StartSession(filepath.Join(t.TempDir(), "catalogue.db"))
	test.DemandSuccess(t, err)
	t.Cleanup(func() { db.EndSession() })
	return db
}

func entry(hash string, created time.Time) database.Entry {
	return database.Entry{
		Created:     created,
		ROM:         "roms/game.smc",
		ROMHash:     hash,
		Core:        "testcard",
		Prefix:      "shots/game_",
		Warmup:      750,
		Interval:    75,
		Recommended: "shots/game_00003.png",
		Captures: []database.Capture{
			{Index: 0, Filename: "shots/game_00000.png", Score: 0},
			{Index: 1, Filename: "", Score: 100, Error: "screenshot: disk full"},
			{Index: 2, Filename: "shots/game_00002.png", Score: 57344},
		},
	}
}

func TestAddAndSelect(t *testing.T) {
	db := openCatalogue(t)

	n, err := db.NumEntries()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 0)

	first := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	id1, err := db.Add(entry("abc", first))
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, id1, "")

	id2, err := db.Add(entry("abc", first.Add(time.Hour)))
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, id1, id2)

	_, err = db.Add(entry("def", first))
	test.DemandSuccess(t, err)

	n, err = db.NumEntries()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 3)

	var selected []database.Entry
	n, err = db.SelectROM("abc", func(ent database.Entry) error {
		selected = append(selected, ent)
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.DemandEquality(t, len(selected), 2)

	test.ExpectEquality(t, selected[0].ID, id1)
	test.ExpectEquality(t, selected[1].ID, id2)
	test.ExpectSuccess(t, selected[0].Created.Equal(first))
	test.ExpectEquality(t, selected[0].Recommended, "shots/game_00003.png")
	test.ExpectEquality(t, selected[0].Warmup, 750)

	caps := selected[0].Captures
	test.DemandEquality(t, len(caps), 3)
	test.ExpectEquality(t, caps[1].Score, 100)
	test.ExpectEquality(t, caps[1].Error, "screenshot: disk full")
	test.ExpectEquality(t, caps[2].Filename, "shots/game_00002.png")
	test.ExpectEquality(t, caps[2].Score, 57344)
}

func TestSelectStops(t *testing.T) {
	db := openCatalogue(t)
	for range 3 {
		_, err := db.Add(entry("abc", time.Now()))
		test.DemandSuccess(t, err)
	}

	stop := errors.New("stop")
	n, err := db.SelectROM("abc", func(database.Entry) error {
		return stop
	})
	test.ExpectEquality(t, err, stop)
	test.ExpectEquality(t, n, 0)
}

func TestDelete(t *testing.T) {
	db := openCatalogue(t)

	id, err := db.Add(entry("abc", time.Now()))
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, db.Delete(id))
	test.ExpectSuccess(t, curated.Is(db.Delete(id), database.NoSuchEntry))

	n, err := db.NumEntries()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 0)
}

func TestList(t *testing.T) {
	db := openCatalogue(t)
	w := &strings.Builder{}

	test.DemandSuccess(t, db.List(w, "abc"))
	test.ExpectEquality(t, w.String(), "no runs recorded for ROM\n")

	ent := entry("abc", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	ent.ID = "run-1"
	_, err := db.Add(ent)
	test.DemandSuccess(t, err)

	w.Reset()
	test.DemandSuccess(t, db.List(w, "abc"))
	test.ExpectEquality(t, w.String(), "run-1 2024-01-02 03:04:05 [testcard] shots/game_: 3 captures, shots/game_00003.png\nTotal: 1\n")
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.db")

	db, err := database.StartSession(path)
	test.DemandSuccess(t, err)
	_, err = db.Add(entry("abc", time.Now()))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, db.EndSession())

	db, err = database.StartSession(path)
	test.DemandSuccess(t, err)
	defer db.EndSession()

	n, err := db.NumEntries()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 1)
}
