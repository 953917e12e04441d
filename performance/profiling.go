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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/romshots/romshots/curated"
)

const profilingError = "performance: %v"

// RunProfiler runs the function with the profiles specified by the filename
// arguments. An empty filename means that profile is not wanted.
func RunProfiler(cpuFile string, memFile string, run func() error) error {
	if cpuFile != "" {
		f, err := os.Create(cpuFile)
		if err != nil {
			return curated.Errorf(profilingError, err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(profilingError, err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		return err
	}

	if memFile != "" {
		f, err := os.Create(memFile)
		if err != nil {
			return curated.Errorf(profilingError, err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf(profilingError, err)
		}
	}

	return nil
}
