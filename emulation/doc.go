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

// Package emulation defines how romshots talks to an emulation core.
//
// A Core is stepped one unit of simulated time at a time and exposes the most
// recently rendered frame as a display.Frame565. Everything a core needs from
// its host (input, files, sound, video pacing and messages) is asked for
// through the Driver interface that is given to the core by Init().
//
// Headless is the Driver used by romshots. Almost every hook is inert: there
// is no input, no sound and no save state support. Messages from the core are
// forwarded to the central logger.
//
// Cores are made available by name with Register(), usually from the init()
// function of the package implementing the core.
package emulation
