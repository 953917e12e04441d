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

package capture

import (
	"fmt"

	"github.com/romshots/romshots/curated"
)

// InvalidConfig is returned by Config.Validate().
const InvalidConfig = "capture: invalid configuration: %s"

// Config specifies the timing of a run. All values are in emulation steps,
// except Captures which is the number of screenshots to take.
type Config struct {
	Warmup   int
	Interval int
	Captures int
}

// DefaultConfig returns a Config suitable for most ROMs: roughly fifteen
// seconds of warm-up and then twenty captures a second and a half apart.
func DefaultConfig() Config {
	return Config{
		Warmup:   750,
		Interval: 75,
		Captures: 20,
	}
}

// Validate returns an error if any of the values are negative.
func (cfg Config) Validate() error {
	switch {
	case cfg.Warmup < 0:
		return curated.Errorf(InvalidConfig, fmt.Sprintf("negative warmup (%d)", cfg.Warmup))
	case cfg.Interval < 0:
		return curated.Errorf(InvalidConfig, fmt.Sprintf("negative interval (%d)", cfg.Interval))
	case cfg.Captures < 0:
		return curated.Errorf(InvalidConfig, fmt.Sprintf("negative number of captures (%d)", cfg.Captures))
	}
	return nil
}

func (cfg Config) String() string {
	return fmt.Sprintf("warmup %d, interval %d, captures %d", cfg.Warmup, cfg.Interval, cfg.Captures)
}
