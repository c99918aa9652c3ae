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
	"unicode/utf8"

	"github.com/jetsetilly/laser310/curated"
)

// DisallowedChar is the error pattern for a character that is not in the
// allowed set for the context.
const DisallowedChar = "disallowed character %q"

// glyphs in the order of their machine code, from 0x80 to 0x8f.
var glyphs = [16]rune{
	'□', // 0x80 U+25A1
	'▗', // 0x81 U+2597
	'▖', // 0x82 U+2596
	'▄', // 0x83 U+2584
	'▝', // 0x84 U+259D
	'▐', // 0x85 U+2590
	'▞', // 0x86 U+259E
	'▟', // 0x87 U+259F
	'▘', // 0x88 U+2598
	'▚', // 0x89 U+259A
	'▌', // 0x8a U+258C
	'▙', // 0x8b U+2599
	'▀', // 0x8c U+2580
	'▜', // 0x8d U+259C
	'▛', // 0x8e U+259B
	'█', // 0x8f U+2588
}

// GlyphBase is the machine code of the first block graphic.
const GlyphBase = 0x80

var glyphCodes map[rune]uint8

func init() {
	glyphCodes = make(map[rune]uint8, len(glyphs))
	for i, r := range glyphs {
		glyphCodes[r] = uint8(GlyphBase + i)
	}
}

// Glyphs returns the block graphics glyphs in code order.
func Glyphs() []rune {
	return glyphs[:]
}

// Glyph returns the machine code for a block graphics glyph.
func Glyph(r rune) (uint8, bool) {
	c, ok := glyphCodes[r]
	return c, ok
}

// GlyphRune returns the glyph for a machine code in the range 0x80 to 0x8f.
func GlyphRune(code uint8) (rune, bool) {
	if code < GlyphBase || code >= GlyphBase+uint8(len(glyphs)) {
		return utf8.RuneError, false
	}
	return glyphs[code-GlyphBase], true
}

// Transcode converts every character in s to its machine code. A character
// that is neither a glyph nor in the range 0x00 to 0x7f causes an error and
// no bytes are returned.
func Transcode(s string) ([]uint8, error) {
	b := make([]uint8, 0, len(s))
	for _, r := range s {
		if c, ok := glyphCodes[r]; ok {
			b = append(b, c)
			continue
		}
		if r > 0x7f {
			return nil, curated.Errorf(DisallowedChar, r)
		}
		b = append(b, uint8(r))
	}
	return b, nil
}

// Decode is the inverse of Transcode. Codes in the glyph range become glyphs.
// Codes above the glyph range have no printable form and are returned as a
// brace escape of their hex value, eg. "{d1}".
func Decode(b []uint8) string {
	s := strings.Builder{}
	for _, c := range b {
		if r, ok := GlyphRune(c); ok {
			s.WriteRune(r)
		} else if c > 0x7f {
			s.WriteString(escapeHex(c))
		} else {
			s.WriteByte(c)
		}
	}
	return s.String()
}

func escapeHex(c uint8) string {
	const hex = "0123456789abcdef"
	return string([]byte{'{', hex[c>>4], hex[c&0x0f], '}'})
}
