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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/laser310/charset"
)

// Kind distinguishes entries that are tokenized from those that are not.
type Kind int

// List of valid Kind values.
const (
	// Token entries are replaced by their code.
	Token Kind = iota

	// GlyphPassthrough entries are block graphics glyphs and are transcoded
	// as text. The Code field holds the glyph's character code.
	GlyphPassthrough
)

func (k Kind) String() string {
	switch k {
	case Token:
		return "token"
	case GlyphPassthrough:
		return "glyph"
	}
	return "unknown"
}

// Entry is a single entry in the dictionary.
type Entry struct {
	Keyword  string
	Code     uint8
	Category Category
	Kind     Kind
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (%#02x)", e.Keyword, e.Code)
}

// all entries in presentation order.
var entries []Entry

// lookup tables built from the entries slice.
var byKeyword map[string]Entry
var byCode map[uint8]Entry

// the length of the longest keyword in bytes. used to bound LongestMatch().
var longest int

func init() {
	groups := []struct {
		category Category
		entries  []Entry
	}{
		{System, system},
		{Control, control},
		{IO, inout},
		{Printer, printer},
		{Memory, memory},
		{Media, media},
		{Variables, variables},
		{Operators, operators},
		{Math, maths},
		{String, strs},
		{Blocked, blocked},
	}

	byKeyword = make(map[string]Entry)
	byCode = make(map[uint8]Entry)

	for _, g := range groups {
		for _, e := range g.entries {
			e.Category = g.category
			e.Kind = Token
			add(e)
		}

		// the block graphics glyphs are presented with the string functions
		if g.category == String {
			for _, r := range charset.Glyphs() {
				c, _ := charset.Glyph(r)
				add(Entry{
					Keyword:  string(r),
					Code:     c,
					Category: String,
					Kind:     GlyphPassthrough,
				})
			}
		}
	}
}

// add entry to dictionary. a duplicate keyword is a mistake in the tables and
// causes a panic. codes need not be unique and the first entry with a code is
// the one used when decoding.
func add(e Entry) {
	if d, ok := byKeyword[e.Keyword]; ok {
		panic(fmt.Sprintf("tokens: duplicate keyword %s in %s and %s", e.Keyword, d.Category, e.Category))
	}
	byKeyword[e.Keyword] = e

	if e.Kind == Token {
		if _, ok := byCode[e.Code]; !ok {
			byCode[e.Code] = e
		}

		if len(e.Keyword) > longest {
			longest = len(e.Keyword)
		}
	}

	entries = append(entries, e)
}

// Lookup returns the dictionary entry for the keyword. The keyword must match
// exactly.
func Lookup(keyword string) (Entry, bool) {
	e, ok := byKeyword[keyword]
	return e, ok
}

// Decode returns the Token entry for a code.
func Decode(code uint8) (Entry, bool) {
	e, ok := byCode[code]
	return e, ok
}

// LongestMatch returns the longest Token entry whose keyword is a prefix of s.
// GlyphPassthrough entries are never matched.
func LongestMatch(s string) (Entry, bool) {
	n := longest
	if n > len(s) {
		n = len(s)
	}
	for ; n > 0; n-- {
		if e, ok := byKeyword[s[:n]]; ok && e.Kind == Token {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns every entry in the dictionary in presentation order.
func Entries() []Entry {
	c := make([]Entry, len(entries))
	copy(c, entries)
	return c
}

// InCategory returns the entries in a single category in presentation order.
func InCategory(c Category) []Entry {
	var l []Entry
	for _, e := range entries {
		if e.Category == c {
			l = append(l, e)
		}
	}
	return l
}

// List writes the dictionary grouped by category. Used by the TOKENS mode.
func List() string {
	s := strings.Builder{}
	for _, c := range Categories() {
		s.WriteString(fmt.Sprintf("%s\n", c))
		for _, e := range InCategory(c) {
			if e.Kind == GlyphPassthrough {
				s.WriteString(fmt.Sprintf("  %-8s %#02x %s\n", e.Keyword, e.Code, e.Kind))
			} else {
				s.WriteString(fmt.Sprintf("  %-8s %#02x\n", e.Keyword, e.Code))
			}
		}
	}
	return s.String()
}
