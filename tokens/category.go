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

package tokens

// Category groups dictionary entries for presentation.
type Category int

// List of valid Category values.
const (
	System Category = iota
	Control
	IO
	Printer
	Memory
	Media
	Variables
	Operators
	Math
	String
	Blocked
	numCategories
)

func (c Category) String() string {
	switch c {
	case System:
		return "system"
	case Control:
		return "control"
	case IO:
		return "input/output"
	case Printer:
		return "printer"
	case Memory:
		return "memory"
	case Media:
		return "media"
	case Variables:
		return "variables"
	case Operators:
		return "operators"
	case Math:
		return "math"
	case String:
		return "string"
	case Blocked:
		return "blocked"
	}
	return "unknown"
}

// Categories returns every category in presentation order.
func Categories() []Category {
	c := make([]Category, 0, numCategories)
	for i := Category(0); i < numCategories; i++ {
		c = append(c, i)
	}
	return c
}
