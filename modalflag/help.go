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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// Help writes the help text for the current mode to output. The text is the
// usage line, the flags and their defaults, the list of sub-modes and finally
// any additional help.
func (md *Modes) Help(output io.Writer) {
	if output == nil {
		return
	}

	// flag information as formatted by the flag package
	flags := &strings.Builder{}
	md.flags.SetOutput(flags)
	md.flags.PrintDefaults()
	md.flags.SetOutput(io.Discard)

	if md.usage == "" && flags.Len() == 0 && len(md.subModes) == 0 {
		fmt.Fprint(output, "No help available")
		if md.Path() != "" {
			fmt.Fprintf(output, " for %s", md.Path())
		}
		fmt.Fprint(output, "\n")
		return
	}

	switch {
	case md.usage != "":
		fmt.Fprintf(output, "Usage: %s\n", md.usage)
	case md.Path() != "":
		fmt.Fprintf(output, "Usage: for %s mode\n", md.Path())
	default:
		fmt.Fprint(output, "Usage:\n")
	}

	fmt.Fprint(output, flags.String())

	if len(md.subModes) > 0 {
		if flags.Len() > 0 {
			fmt.Fprint(output, "\n")
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", md.additionalHelp)
	}
}
