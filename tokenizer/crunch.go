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

package tokenizer

import (
	"strings"
	"unicode/utf8"

	"github.com/jetsetilly/laser310/charset"
	"github.com/jetsetilly/laser310/tokens"
)

// Crunch splits plain text into blocks. Brace escapes are expanded first.
//
// Text beginning with REM is a comment and the remainder of the text is a
// single block. Otherwise double quoted text, including the quotes, is a
// single block. An unterminated quote runs to the end of the text. Outside of
// quotes the longest keyword at each position becomes a block and all other
// characters are collected into raw blocks.
//
// Keywords are matched wherever they occur. A variable named TOTAL will be
// crunched as the keyword TO followed by TAL, exactly as it would be when
// typed into the machine.
func Crunch(text string) []string {
	text = charset.ExpandEscapes(text)

	if strings.HasPrefix(text, Rem) {
		if len(text) == len(Rem) {
			return []string{Rem}
		}
		return []string{Rem, text[len(Rem):]}
	}

	var blocks []string
	var raw strings.Builder

	flush := func() {
		if raw.Len() > 0 {
			blocks = append(blocks, raw.String())
			raw.Reset()
		}
	}

	for i := 0; i < len(text); {
		if text[i] == '"' {
			flush()
			j := strings.IndexByte(text[i+1:], '"')
			if j == -1 {
				blocks = append(blocks, text[i:])
				break
			}
			blocks = append(blocks, text[i:i+j+2])
			i += j + 2
			continue
		}

		if e, ok := tokens.LongestMatch(text[i:]); ok {
			flush()
			blocks = append(blocks, e.Keyword)
			i += len(e.Keyword)
			continue
		}

		_, n := utf8.DecodeRuneInString(text[i:])
		raw.WriteString(text[i : i+n])
		i += n
	}
	flush()

	return blocks
}
