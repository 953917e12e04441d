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

package emulation_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/romshots/romshots/cartridgeloader"
	"github.com/romshots/romshots/curated"
	"github.com/romshots/romshots/display"
	"github.com/romshots/romshots/emulation"
	"github.com/romshots/romshots/logger"
	"github.com/romshots/romshots/test"
)

func TestHeadlessIsDriver(t *testing.T) {
	var drv emulation.Driver = emulation.NewHeadless("game.smc")

	pressed, ok := drv.PollButton(1)
	test.ExpectFailure(t, pressed)
	test.ExpectFailure(t, ok)

	_, ok = drv.PollAxis(1)
	test.ExpectFailure(t, ok)

	_, _, ok = drv.PollPointer(1)
	test.ExpectFailure(t, ok)

	render, skip := drv.SyncSpeed()
	test.ExpectSuccess(t, render)
	test.ExpectEquality(t, skip, 0)

	test.ExpectSuccess(t, drv.OpenSoundDevice(7, true, 0))
	test.ExpectSuccess(t, drv.InitUpdate())
	test.ExpectSuccess(t, drv.DeinitUpdate(256, 224))
	test.ExpectSuccess(t, drv.ContinueUpdate(256, 224))
}

func TestHeadlessSnapshots(t *testing.T) {
	drv := emulation.NewHeadless("game.smc")
	f, err := drv.OpenSnapshot("game.000", true)
	test.ExpectEquality(t, f, nil)
	test.ExpectSuccess(t, curated.Is(err, emulation.SnapshotsUnsupported))
}

func TestHeadlessFilename(t *testing.T) {
	drv := emulation.NewHeadless(filepath.Join("roms", "Some Game.smc"))
	test.ExpectEquality(t, drv.Directory(emulation.DirSRAM), ".")
	test.ExpectEquality(t, drv.Filename(".srm", emulation.DirSRAM), "Some Game.srm")

	drv = emulation.NewHeadless("noextension")
	test.ExpectEquality(t, drv.Filename(".cht", emulation.DirCheat), "noextension.cht")
}

func TestHeadlessMessages(t *testing.T) {
	drv := emulation.NewHeadless("game.smc")

	logger.Clear()
	drv.Message(emulation.MessageWarning, 3, "something odd")

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "core: warning 3: something odd\n")

	test.ExpectFailure(t, drv.ExitRequested())
	drv.Exit()
	test.ExpectSuccess(t, drv.ExitRequested())
}

type nullCore struct{}

func (nullCore) Init(emulation.Driver) error { return nil }
func (nullCore) Load(cartridgeloader.Loader) error { return nil }
func (nullCore) Step() {}
func (nullCore) Frame() *display.Frame565 { return display.NewFrame565(1, 1, 1) }
func (nullCore) Teardown() error { return nil }

func TestRegistry(t *testing.T) {
	err := emulation.Register("Registry-Test", func() emulation.Core { return nullCore{} })
	test.DemandSuccess(t, err)

	err = emulation.Register("registry-test", func() emulation.Core { return nullCore{} })
	test.ExpectSuccess(t, curated.Is(err, emulation.DuplicateCore))

	core, err := emulation.NewCore(" REGISTRY-TEST ")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, core.Frame().Width, 1)

	_, err = emulation.NewCore("no-such-core")
	test.ExpectSuccess(t, curated.Is(err, emulation.UnknownCore))

	found := false
	for _, n := range emulation.Cores() {
		if n == "registry-test" {
			found = true
		}
	}
	test.ExpectSuccess(t, found)
}
