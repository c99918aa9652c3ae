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
)

// UpArrow is the exponentiation operator. It has no ASCII equivalent so it has
// an escape of its own in the plain text format.
const UpArrow = '↑'

// escapes in the plain text source format. indexed by the glyph's position in
// the code table rather than by rune to keep the two tables in step.
var escapes = map[string]rune{
	"{a}":    glyphs[0x00],
	"{ard}":  glyphs[0x01],
	"{ald}":  glyphs[0x02],
	"{u}":    glyphs[0x03],
	"{aru}":  glyphs[0x04],
	"{l}":    glyphs[0x05],
	"{lurd}": glyphs[0x06],
	"{lu}":   glyphs[0x07],
	"{alu}":  glyphs[0x08],
	"{ldru}": glyphs[0x09],
	"{r}":    glyphs[0x0a],
	"{ru}":   glyphs[0x0b],
	"{d}":    glyphs[0x0c],
	"{ld}":   glyphs[0x0d],
	"{rd}":   glyphs[0x0e],
	"{aa}":   glyphs[0x0f],
	"{arr}":  UpArrow,
}

var escapeReplacer *strings.Replacer

func init() {
	pairs := make([]string, 0, len(escapes)*2)
	for k, v := range escapes {
		pairs = append(pairs, k, string(v))
	}
	escapeReplacer = strings.NewReplacer(pairs...)
}

// ExpandEscapes replaces every brace escape in s with the character it
// represents. Unrecognised escapes are left untouched.
func ExpandEscapes(s string) string {
	return escapeReplacer.Replace(s)
}
