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

package cassette

import (
	"unicode/utf8"

	"github.com/jetsetilly/laser310/charset"
	"github.com/jetsetilly/laser310/curated"
)

// sentinal error patterns for program name validation.
const (
	InvalidName = "cassette: invalid name: %v"
)

// MaxNameLength is the maximum number of characters in a program name.
const MaxNameLength = 15

// NameRule specifies how strictly a program name is checked.
type NameRule int

// List of valid NameRule values.
const (
	// any character in the general character set.
	NameInteractive NameRule = iota

	// as NameInteractive but the first character must be a letter.
	NameBatch
)

// ValidateName returns an error if the name would not be accepted by the
// machine's loader. Escape sequences should have been expanded by the caller.
func ValidateName(name string, rule NameRule) error {
	n := utf8.RuneCountInString(name)
	if n == 0 {
		return curated.Errorf(InvalidName, "empty")
	}
	if n > MaxNameLength {
		return curated.Errorf(InvalidName, "longer than 15 characters")
	}

	if rule == NameBatch {
		r, _ := utf8.DecodeRuneInString(name)
		if !charset.IsLetter(r) {
			return curated.Errorf(InvalidName, "first character must be a letter")
		}
	}

	if err := charset.General.Check(name); err != nil {
		return curated.Errorf(InvalidName, err)
	}

	return nil
}
