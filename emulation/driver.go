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

import "io"

// DirKind identifies the kind of file a core is asking for a directory for.
type DirKind int

// List of valid DirKind values.
const (
	DirDefault DirKind = iota
	DirROM
	DirSRAM
	DirSnapshot
	DirScreenshot
	DirPatch
	DirCheat
)

// MessageKind is the severity of a message sent by a core.
type MessageKind int

// List of valid MessageKind values.
const (
	MessageTrace MessageKind = iota
	MessageDebug
	MessageWarning
	MessageInfo
	MessageError
	MessageFatal
)

func (k MessageKind) String() string {
	switch k {
	case MessageTrace:
		return "trace"
	case MessageDebug:
		return "debug"
	case MessageWarning:
		return "warning"
	case MessageInfo:
		return "info"
	case MessageError:
		return "error"
	case MessageFatal:
		return "fatal"
	}
	return "unknown"
}

// Input hooks are polled by a core when it needs controller state.
type Input interface {
	ProcessEvents()
	PollButton(id uint32) (pressed bool, ok bool)
	PollAxis(id uint32) (value int16, ok bool)
	PollPointer(id uint32) (x int16, y int16, ok bool)
}

// Storage hooks resolve and open files on behalf of the core.
type Storage interface {
	// OpenSnapshot opens a save-state file for reading or writing.
	OpenSnapshot(filename string, readOnly bool) (io.ReadWriteCloser, error)

	// Directory returns the directory to use for the kind of file.
	Directory(kind DirKind) string

	// Filename returns a filename based on the loaded ROM's name with the
	// extension replaced.
	Filename(extension string, kind DirKind) string

	// AutoSaveSRAM is called periodically so that battery-backed RAM can be
	// written to disk.
	AutoSaveSRAM()
}

// Sound hooks are called by the core's audio processing.
type Sound interface {
	OpenSoundDevice(mode int, stereo bool, bufferSize int) bool
	MixSamples(samples int)
	GenerateSound()
}

// Video hooks bracket the rendering of every frame.
type Video interface {
	// InitUpdate is called when a frame is about to be rendered.
	InitUpdate() bool

	// DeinitUpdate is called when a frame of the given size has been
	// rendered.
	DeinitUpdate(width int, height int) bool

	// ContinueUpdate is called part way through rendering interlaced frames.
	ContinueUpdate(width int, height int) bool

	SetPalette()

	// SyncSpeed is called once per frame and returns whether the next frame
	// should be rendered and how many frames may be skipped.
	SyncSpeed() (render bool, frameSkip int)
}

// Messages hooks are how a core talks to the user.
type Messages interface {
	Message(kind MessageKind, number int, message string)

	// Exit is called when the core wants the host to quit.
	Exit()
}

// Driver is everything a core can ask of the host.
type Driver interface {
	Input
	Storage
	Sound
	Video
	Messages
}
