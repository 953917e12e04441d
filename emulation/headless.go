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

package emulation

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/romshots/romshots/curated"
	"github.com/romshots/romshots/logger"
)

// SnapshotsUnsupported is returned by Headless.OpenSnapshot().
const SnapshotsUnsupported = "emulation: save states are not supported in headless mode (%s)"

// Headless is the Driver for running a core without any user interaction.
type Headless struct {
	// filename of the loaded ROM. used by Filename()
	ROM string

	exitRequested bool
}

// NewHeadless is the preferred method of initialisation for the Headless
// type.
func NewHeadless(rom string) *Headless {
	return &Headless{ROM: rom}
}

// ExitRequested returns true if the core has called Exit().
func (drv *Headless) ExitRequested() bool {
	return drv.exitRequested
}

// ProcessEvents implements the Input interface.
func (drv *Headless) ProcessEvents() {
}

// PollButton implements the Input interface.
func (drv *Headless) PollButton(_ uint32) (bool, bool) {
	return false, false
}

// PollAxis implements the Input interface.
func (drv *Headless) PollAxis(_ uint32) (int16, bool) {
	return 0, false
}

// PollPointer implements the Input interface.
func (drv *Headless) PollPointer(_ uint32) (int16, int16, bool) {
	return 0, 0, false
}

// OpenSnapshot implements the Storage interface.
func (drv *Headless) OpenSnapshot(filename string, _ bool) (io.ReadWriteCloser, error) {
	return nil, curated.Errorf(SnapshotsUnsupported, filename)
}

// Directory implements the Storage interface. Everything lives in the
// current directory.
func (drv *Headless) Directory(_ DirKind) string {
	return "."
}

// Filename implements the Storage interface.
func (drv *Headless) Filename(extension string, kind DirKind) string {
	base := filepath.Base(drv.ROM)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(drv.Directory(kind), base+extension)
}

// AutoSaveSRAM implements the Storage interface.
func (drv *Headless) AutoSaveSRAM() {
}

// OpenSoundDevice implements the Sound interface. The device is reported as
// opened so that cores carry on as normal.
func (drv *Headless) OpenSoundDevice(_ int, _ bool, _ int) bool {
	return true
}

// MixSamples implements the Sound interface.
func (drv *Headless) MixSamples(_ int) {
}

// GenerateSound implements the Sound interface.
func (drv *Headless) GenerateSound() {
}

// InitUpdate implements the Video interface.
func (drv *Headless) InitUpdate() bool {
	return true
}

// DeinitUpdate implements the Video interface.
func (drv *Headless) DeinitUpdate(_ int, _ int) bool {
	return true
}

// ContinueUpdate implements the Video interface.
func (drv *Headless) ContinueUpdate(_ int, _ int) bool {
	return true
}

// SetPalette implements the Video interface.
func (drv *Headless) SetPalette() {
}

// SyncSpeed implements the Video interface. Every frame is rendered because
// any frame might be captured.
func (drv *Headless) SyncSpeed() (bool, int) {
	return true, 0
}

// Message implements the Messages interface.
func (drv *Headless) Message(kind MessageKind, number int, message string) {
	logger.Logf(logger.Allow, "core", "%s %d: %s", kind, number, message)
}

// Exit implements the Messages interface. The request is remembered but
// otherwise ignored because a capture run always completes.
func (drv *Headless) Exit() {
	drv.exitRequested = true
}
