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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what makes a curated error useful. The Is() function checks
// whether an error was created with a specific pattern. For this reason
// patterns that callers need to test for are stored as named constants:
//
//	const LineTooLong = "line too long: %d characters"
//
//	err := curated.Errorf(LineTooLong, 61)
//
//	if curated.Is(err, LineTooLong) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	f := curated.Errorf("session: %v", err)
//
//	if curated.Has(f, LineTooLong) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. An error that is not curated is an unexpected
// error, usually from the standard library, that has not been wrapped.
//
// The Error() function normalises the error chain by removing duplicate
// adjacent parts. This alleviates the problem of when and how to wrap errors.
// For example, if the function tokenizer.Tokenize() returns
//
//	tokenizer: line 10: invalid character '€'
//
// and the caller wraps it with the same prefix
//
//	curated.Errorf("tokenizer: %v", err)
//
// the resulting message is unchanged. Chains are composed of parts separated
// by the sub-string ": " as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan).
package curated
