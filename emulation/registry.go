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
	"sort"
	"strings"

	"github.com/romshots/romshots/curated"
)

// Sentinel error patterns.
const (
	UnknownCore   = "emulation: unknown core (%s)"
	DuplicateCore = "emulation: core already registered (%s)"
)

var registry = map[string]Factory{}

func normalise(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register makes a core available by name. Names are case insensitive.
func Register(name string, factory Factory) error {
	name = normalise(name)
	if _, ok := registry[name]; ok {
		return curated.Errorf(DuplicateCore, name)
	}
	registry[name] = factory
	return nil
}

// NewCore creates a new instance of the named core.
func NewCore(name string) (Core, error) {
	factory, ok := registry[normalise(name)]
	if !ok {
		return nil, curated.Errorf(UnknownCore, name)
	}
	return factory(), nil
}

// Cores returns the names of all registered cores in alphabetical order.
func Cores() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
