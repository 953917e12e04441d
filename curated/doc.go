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

// Package curated creates error values that remember the pattern they were
// created with. Packages in romshots declare their error patterns as string
// constants and callers test for them with Is() and Has():
//
//	const IndexOverflow = "screenshot: capture index %d exceeds %d"
//
//	err := curated.Errorf(IndexOverflow, idx, MaxIndex)
//	if curated.Is(err, IndexOverflow) {
//		...
//	}
//
// Has() searches the whole chain of wrapped curated errors and not just the
// outermost one.
//
// Messages are chains of parts separated by ": ". When an error is wrapped by
// another error that starts with the same part, the repeated part is printed
// only once. This means a function does not need to know whether its caller
// has already prefixed the package name. For example:
//
//	e := curated.Errorf("capture: %v", curated.Errorf("capture: bad interval"))
//
// prints as "capture: bad interval".
//
// Curated errors also support errors.Unwrap(), returning the first error value
// found in the placeholder values.
package curated
