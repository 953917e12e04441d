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

// Package logger is the central trace log for romshots. Entries are tagged and
// bounded in number; the oldest entries are dropped once the limit is
// reached.
//
// Every request to log must be accompanied by a Permission. For most code
// Allow is sufficient but a type can implement the Permission interface if it
// wants to silence its logging in some circumstances.
//
// Consecutive identical entries are folded into a single entry with a repeat
// count. This keeps per-capture failures (for example, a missing output
// directory) from flooding the log.
//
// Nothing is printed unless SetEcho() has been called with a non-nil
// io.Writer. The log can be written out in full with Write() or partially
// with Tail().
package logger
