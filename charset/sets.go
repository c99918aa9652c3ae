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

package charset

import (
	"strings"

	"github.com/jetsetilly/laser310/curated"
)

// Set is a set of characters allowed in a particular input context.
type Set int

// List of valid Set values.
const (
	// General is used for program text, strings, comments and program names.
	// Upper case letters, digits, punctuation and the block graphics.
	General Set = iota

	// Numeric is used for numeric entry, including variable names and the
	// array/comparison punctuation that commonly accompanies them.
	Numeric
)

const (
	letters     = "QWERTYUIOPASDFGHJKLZXCVBNM"
	digits      = "1234567890"
	punctuation = " !\"#$%&'()@-=[]/?;+:*\\,<.>"
	numericPunc = "().<>$%"
)

func (set Set) String() string {
	switch set {
	case General:
		return "general"
	case Numeric:
		return "numeric"
	}
	return "unknown"
}

// Allowed returns true if the character is a member of the set.
func (set Set) Allowed(r rune) bool {
	switch set {
	case General:
		if _, ok := glyphCodes[r]; ok {
			return true
		}
		return strings.ContainsRune(letters, r) || strings.ContainsRune(digits, r) ||
			strings.ContainsRune(punctuation, r)
	case Numeric:
		return strings.ContainsRune(letters, r) || strings.ContainsRune(digits, r) ||
			strings.ContainsRune(numericPunc, r)
	}
	return false
}

// Check returns an error for the first character in s that is not a member
// of the set.
func (set Set) Check(s string) error {
	for _, r := range s {
		if !set.Allowed(r) {
			return curated.Errorf(DisallowedChar, r)
		}
	}
	return nil
}

// IsLetter returns true if r is an upper case letter.
func IsLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
