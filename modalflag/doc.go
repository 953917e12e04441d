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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different
// flags for each mode.
//
// Arguments are given to the Modes type with NewArgs() and then Parse() is
// called with no arguments. This allows the same argument list to be parsed
// in layers, one layer per mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CAPTURE", "CATALOGUE", "VERSION")
//	p, err := md.Parse()
//
// After Parse() returns ParseContinue, Mode() is the selected sub-mode. The
// first sub-mode is the default and is selected when the first argument is
// not a recognised sub-mode (or is an unrecognised flag). Sub-mode
// comparisons are case insensitive.
//
// The caller then starts a new layer with NewMode(), adds the flags for that
// mode and calls Parse() again:
//
//	md.NewMode()
//	md.Usage("romshots [flags] rom_file output_prefix")
//	warmup := md.AddInt("warmup", 750, "steps before the first capture")
//	p, err = md.Parse()
//
// Arguments that are not flags can be retrieved with RemainingArgs() or
// GetArg().
//
// The -help flag is handled automatically. The help text is written to the
// Output writer and Parse() returns ParseHelp. The same help text can be
// written on demand with Help(), which is useful when the caller finds the
// remaining arguments to be wrong.
package modalflag
