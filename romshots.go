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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/romshots/romshots/capture"
	"github.com/romshots/romshots/cartridgeloader"
	"github.com/romshots/romshots/curated"
	"github.com/romshots/romshots/database"
	"github.com/romshots/romshots/emulation"
	"github.com/romshots/romshots/logger"
	"github.com/romshots/romshots/modalflag"
	"github.com/romshots/romshots/paths"
	"github.com/romshots/romshots/performance"
	"github.com/romshots/romshots/screenshot"
	"github.com/romshots/romshots/statsview"
	"github.com/romshots/romshots/thumbnailer"
	"github.com/romshots/romshots/version"

	// cores register themselves with the emulation package
	_ "github.com/romshots/romshots/emulation/testcard"
)

// exit codes.
const (
	exitUsage = 10
	exitSetup = 20
)

// usageError is returned by a mode when the arguments are wrong. it is
// reported along with the help text and exitUsage.
const usageError = "%s mode: %v"

const captureUsage = "romshots [flags] rom_file output_prefix"

const captureHelp = `(output_prefix can be a relative or absolute path; typically includes a sub-directory.)
Captures are written as <output_prefix>NNNNN.<ext>. The file recommended as
a thumbnail is printed on the last line of output.`

// name of the catalogue file in the resource directory.
const catalogueFile = "catalogue.db"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the body of the program. it returns the exit code.
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.AddSubModes("CAPTURE", "CATALOGUE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitUsage
	}

	switch md.Mode() {
	case "CAPTURE":
		err = captureMode(md, stdout)
	case "CATALOGUE":
		err = catalogueMode(md, stdout)
	case "VERSION":
		fmt.Fprintln(stdout, version.String())
	}

	if err != nil {
		if curated.Is(err, usageError) {
			fmt.Fprintf(stderr, "* %v\n", err)
			md.Help(stderr)
			return exitUsage
		}

		msg := fmt.Sprintf("* setup failed in %s mode: %v\n", md, err)
		fmt.Fprint(stdout, msg)
		fmt.Fprint(stderr, msg)
		md.Help(stderr)
		return exitSetup
	}

	return 0
}

// catalogue path from the command line or the default location in the
// resource directory.
func cataloguePath(dbPath string) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return paths.ResourcePath("", catalogueFile)
}

func captureMode(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()
	md.Usage(captureUsage)
	md.AdditionalHelp(captureHelp)

	def := capture.DefaultConfig()

	coreName := md.AddString("core", "testcard", fmt.Sprintf("emulation core: %s", strings.Join(emulation.Cores(), ", ")))
	format := md.AddString("format", "png", fmt.Sprintf("image format: %s", strings.Join(screenshot.Formats(), ", ")))
	warmup := md.AddInt("warmup", def.Warmup, "steps before the first capture")
	interval := md.AddInt("interval", def.Interval, "steps between captures")
	captures := md.AddInt("captures", def.Captures, "number of captures")
	thumbWidth := md.AddInt("thumbnail", 0, "width of an additional scaled thumbnail (0 for none)")
	log := md.AddBool("log", false, "echo log to stdout")
	useDB := md.AddBool("db", false, "record the run in the catalogue")
	dbPath := md.AddString("dbpath", "", "location of the catalogue (default in the resource directory)")
	memvizFile := md.AddString("memviz", "", "write graphviz description of the capture record to file")
	cpuProfile := md.AddString("cpuprofile", "", "write cpu profile to file")
	memProfile := md.AddString("memprofile", "", "write heap profile to file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return curated.Errorf(usageError, md, err)
	}

	if len(md.RemainingArgs()) != 2 {
		return curated.Errorf(usageError, md, "rom_file and output_prefix required")
	}

	if *log {
		logger.SetEcho(stdout)
	} else {
		logger.SetEcho(nil)
	}

	cfg := capture.Config{
		Warmup:   *warmup,
		Interval: *interval,
		Captures: *captures,
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))
	err = cartload.Load()
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "romshots", "loaded %s (%s)", cartload.ShortName(), cartload.Hash)

	core, err := emulation.NewCore(*coreName)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "romshots", "using %s core", *coreName)

	err = core.Init(emulation.NewHeadless(cartload.Filename))
	if err != nil {
		return err
	}
	defer func() {
		if err := core.Teardown(); err != nil {
			logger.Log(logger.Allow, "romshots", err)
		}
	}()

	err = core.Load(cartload)
	if err != nil {
		return err
	}

	enc, err := screenshot.NewFileEncoder(md.GetArg(1), *format)
	if err != nil {
		return err
	}

	sess, err := capture.NewSession(cfg, core, enc)
	if err != nil {
		return err
	}

	var db *database.Session
	if *useDB {
		pth, err := cataloguePath(*dbPath)
		if err != nil {
			return err
		}
		db, err = database.StartSession(pth)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.EndSession(); err != nil {
				logger.Log(logger.Allow, "romshots", err)
			}
		}()
	}

	if *stats {
		statsview.Launch(stdout)
	}

	start := time.Now()
	err = performance.RunProfiler(*cpuProfile, *memProfile, func() error {
		sess.Run()
		return nil
	})
	if err != nil {
		return err
	}

	steps := cfg.Warmup + cfg.Interval*cfg.Captures
	logger.Logf(logger.Allow, "romshots", "%d steps at %.0f steps per second", steps, performance.Rate(steps, time.Since(start)))

	if *memvizFile != "" {
		writeMemviz(*memvizFile, sess.Record())
	}

	// the recommendation is the last line of output, so everything else must
	// be done before it is printed
	var recommended string
	idx, ok := sess.Recommend()
	if ok {
		recommended, err = screenshot.Filename(enc.Prefix, idx, enc.Format.Ext)
		if err != nil {
			logger.Log(logger.Allow, "romshots", err)
			ok = false
		}
	}

	if ok {
		logger.Logf(logger.Allow, "romshots", "recommended thumbnail: %s", recommended)
		if *thumbWidth > 0 {
			writeThumbnail(enc, idx, *thumbWidth)
		}
	} else {
		logger.Log(logger.Allow, "romshots", "no recommended thumbnail")
	}

	if db != nil {
		id, err := db.Add(catalogueEntry(cartload, *coreName, enc.Prefix, sess, recommended))
		if err != nil {
			logger.Log(logger.Allow, "romshots", err)
		} else {
			logger.Logf(logger.Allow, "romshots", "catalogue entry %s", id)
		}
	}

	if ok {
		fmt.Fprintf(stdout, "\n%s\n", recommended)
	}

	return nil
}

func writeMemviz(fn string, rec capture.Record) {
	f, err := os.Create(fn)
	if err != nil {
		logger.Logf(logger.Allow, "romshots", "memviz: %v", err)
		return
	}
	defer f.Close()
	rec.Visualise(f)
}

// failure to create the thumbnail is not fatal. the recommended capture is
// still available.
func writeThumbnail(enc *screenshot.FileEncoder, idx int, width int) {
	img, err := enc.Load(idx)
	if err != nil {
		logger.Logf(logger.Allow, "romshots", "thumbnail: %v", err)
		return
	}

	fn, err := enc.Save(thumbnailer.Scale(img, width), "thumb")
	if err != nil {
		logger.Logf(logger.Allow, "romshots", "thumbnail: %v", err)
		return
	}

	logger.Logf(logger.Allow, "romshots", "thumbnail written to %s", fn)
}

func catalogueEntry(cartload cartridgeloader.Loader, coreName string, prefix string, sess *capture.Session, recommended string) database.Entry {
	cfg := sess.Config()
	rec := sess.Record()

	ent := database.Entry{
		ROM:         cartload.Filename,
		ROMHash:     cartload.Hash,
		Core:        coreName,
		Prefix:      prefix,
		Warmup:      cfg.Warmup,
		Interval:    cfg.Interval,
		Recommended: recommended,
		Captures:    make([]database.Capture, rec.Len()),
	}

	for i := range ent.Captures {
		c := rec.Capture(i)
		ent.Captures[i] = database.Capture{
			Index:    c.Index,
			Filename: c.Filename,
			Score:    c.Score,
		}
		if c.Err != nil {
			ent.Captures[i].Error = c.Err.Error()
		}
	}

	return ent
}

func catalogueMode(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()
	md.Usage("romshots CATALOGUE [flags] rom_file")

	dbPath := md.AddString("dbpath", "", "location of the catalogue (default in the resource directory)")
	remove := md.AddString("delete", "", "remove the run with the ID from the catalogue")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return curated.Errorf(usageError, md, err)
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf(usageError, md, "rom_file required")
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))
	err = cartload.Load()
	if err != nil {
		return err
	}

	pth, err := cataloguePath(*dbPath)
	if err != nil {
		return err
	}

	db, err := database.StartSession(pth)
	if err != nil {
		return err
	}
	defer db.EndSession()

	if *remove != "" {
		err = db.Delete(*remove)
		if err != nil {
			return err
		}
	}

	return db.List(stdout, cartload.Hash)
}
