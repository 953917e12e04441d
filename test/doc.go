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

// Package test contains helper functions that remove common boilerplate from
// the romshots tests.
//
// The Expect functions report a failure with t.Errorf() and let the test
// continue. The Demand functions report with t.Fatalf() and end the test
// immediately, which is useful when later checks would be meaningless.
//
// ExpectSuccess() and ExpectFailure() understand bool and error values. A nil
// value is a success, because that is how errors are conventionally reported.
//
// The Writer type implements io.Writer and can be used to capture output for
// later comparison.
package test
