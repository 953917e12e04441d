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
	"github.com/romshots/romshots/cartridgeloader"
	"github.com/romshots/romshots/display"
)

// Core is the emulation of a console.
//
// The lifecycle of a core is Init(), Load(), any number of calls to Step(),
// and finally Teardown(). Teardown() is safe to call at any point after
// Init(), including after a failed Load().
type Core interface {
	// Init prepares the core. The driver remains in use until Teardown().
	Init(drv Driver) error

	// Load attaches the ROM data in the loader. The loader will already have
	// been loaded.
	Load(cl cartridgeloader.Loader) error

	// Step advances the emulation by one unit of simulated time (one pass of
	// the core's main loop).
	Step()

	// Frame returns the core's frame buffer. The frame is owned by the core
	// and must not be modified by the caller, nor used after Teardown().
	Frame() *display.Frame565

	// Teardown releases everything acquired by Init() and Load().
	Teardown() error
}

// Factory creates a new, uninitialised Core.
type Factory func() Core
