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

package tokens_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/laser310/test"
	"github.com/jetsetilly/laser310/tokens"
)

func TestLookup(t *testing.T) {
	e, ok := tokens.Lookup("PRINT")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Code, uint8(0xb2))
	test.ExpectEquality(t, e.Category, tokens.IO)
	test.ExpectEquality(t, e.Kind, tokens.Token)

	e, ok = tokens.Lookup("↑")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Code, uint8(0xd1))
	test.ExpectEquality(t, e.Category, tokens.Operators)

	e, ok = tokens.Lookup("▀")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Kind, tokens.GlyphPassthrough)
	test.ExpectEquality(t, e.Category, tokens.String)
	test.ExpectEquality(t, e.Code, uint8(0x8c))

	_, ok = tokens.Lookup("REM")
	test.ExpectFailure(t, ok)

	_, ok = tokens.Lookup("print")
	test.ExpectFailure(t, ok)
}

func TestDecode(t *testing.T) {
	for _, e := range tokens.Entries() {
		if e.Kind != tokens.Token {
			continue
		}
		d, ok := tokens.Decode(e.Code)
		test.ExpectSuccess(t, ok, e.Keyword)
		test.ExpectEquality(t, d.Keyword, e.Keyword)
	}

	// glyph codes overlap token codes. decoding always gives the token
	for _, e := range tokens.Entries() {
		if e.Kind != tokens.GlyphPassthrough {
			continue
		}
		if d, ok := tokens.Decode(e.Code); ok {
			test.ExpectEquality(t, d.Kind, tokens.Token, e.Keyword)
		}
	}

	d, ok := tokens.Decode(0x8c)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Keyword, "LET")
	test.ExpectEquality(t, d.Kind, tokens.Token)
}

func TestLongestMatch(t *testing.T) {
	e, ok := tokens.LongestMatch("INPUT A")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Keyword, "INPUT")

	e, ok = tokens.LongestMatch("INP(1)")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Keyword, "INP")

	e, ok = tokens.LongestMatch("TAB(5)")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Keyword, "TAB(")

	e, ok = tokens.LongestMatch("DEFINT A")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Keyword, "DEFINT")

	_, ok = tokens.LongestMatch("▀")
	test.ExpectFailure(t, ok)

	_, ok = tokens.LongestMatch("")
	test.ExpectFailure(t, ok)

	_, ok = tokens.LongestMatch("XYZ")
	test.ExpectFailure(t, ok)
}

func TestCategories(t *testing.T) {
	var total int
	for _, c := range tokens.Categories() {
		l := tokens.InCategory(c)
		test.ExpectInequality(t, len(l), 0, c)
		total += len(l)
	}
	test.ExpectEquality(t, total, len(tokens.Entries()))
	test.ExpectEquality(t, len(tokens.InCategory(tokens.Blocked)), 45)

	var glyphs int
	for _, e := range tokens.InCategory(tokens.String) {
		if e.Kind == tokens.GlyphPassthrough {
			glyphs++
		}
	}
	test.ExpectEquality(t, glyphs, 16)
}

func TestList(t *testing.T) {
	s := tokens.List()
	test.ExpectSuccess(t, strings.HasPrefix(s, "system\n"))
	test.ExpectSuccess(t, strings.Contains(s, "  PRINT    0xb2\n"))
	test.ExpectSuccess(t, strings.Contains(s, "blocked\n"))
}
