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

// Package cartridgeloader reads the ROM data that is handed to an emulation
// core. Data can be read from a local file or over HTTP.
//
//	cl := cartridgeloader.NewLoader("roms/game.smc")
//	err := cl.Load()
//
// Some ROM dumps are prefixed with a 512 byte header written by the copier
// hardware used to make the dump. The header is detected by the size of the
// file (a multiple of 1024 plus 512) and removed. The Hash field is the SHA-1
// of the data after any header has been removed, so headered and unheadered
// dumps of the same game share a hash.
package cartridgeloader
