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

// Package session is the state of a program under construction. A program is
// built one block at a time and a line is committed with Enter(). Line
// numbers are assigned automatically, each line being numbered Interval
// higher than the previous line.
//
// A Session is a value. Every operation that changes the session returns a
// new Session and leaves the original untouched, so undoing an operation is
// simply a matter of keeping the previous value. An operation that fails
// returns the original session and an error.
//
// The committed lines of a session can be saved and loaded as a JSON record.
// The record does not include the line currently under construction.
package session
