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

// Package paths prepares paths to romshots resources, such as the capture
// catalogue.
//
// If a directory called ".romshots" exists in the current directory then
// that is the base for all resources. Otherwise the base is a "romshots"
// directory in the user's config directory, as reported by
// os.UserConfigDir(). On a Linux system:
//
//	d, err := paths.ResourcePath("", "catalogue.db")
//
// returns "/home/user/.config/romshots/catalogue.db".
package paths
