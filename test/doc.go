// This file is part of Laser310.
//
// Laser310 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Laser310 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Laser310.  If not, see <https://www.gnu.org/licenses/>.

// Package test bundles helper functions that remove the boilerplate from
// tests. It is intended to be used in conjunction with the standard go test
// harness.
//
// The Expect*() functions report a failed test but allow the test to
// continue. The Demand*() functions stop the test immediately. Use the Demand
// variety when later parts of the test depend on the value being correct, for
// example when checking the length of a byte slice before indexing into it.
//
// Success and failure are judged according to the type of the value:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> success
//
// It is worth noting how the nil type is handled because it is not obvious.
// Because of how errors usually work (nil to indicate no error) we need to
// interpret the nil type as success.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output for comparison.
package test
