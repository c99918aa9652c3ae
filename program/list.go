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

package program

import (
	"strings"

	"github.com/jetsetilly/laser310/charset"
	"github.com/jetsetilly/laser310/curated"
	"github.com/jetsetilly/laser310/logger"
	"github.com/jetsetilly/laser310/tokenizer"
	"github.com/jetsetilly/laser310/tokens"
)

// sentinal error patterns returned by List().
const (
	BrokenChain  = "program: broken line chain at offset %d"
	BrokenLink   = "program: line %d: next line address is %#04x but should be %#04x"
	UnknownToken = "program: line %d: unknown token %v"
)

// List recovers the lines of the program by following the chain of next-line
// addresses from the start of the image.
//
// Codes outside of string literals are listed as keywords. Inside string
// literals, and in the remainder of a line after REM, codes are listed as
// text. The REM code used by some editors is the same as the code for END and
// those lines will be listed as such.
func List(img Image) ([]tokenizer.Line, error) {
	var lines []tokenizer.Line

	p := img.Program
	i := 0

	for {
		if i+2 > len(p) {
			return nil, curated.Errorf(BrokenChain, i)
		}

		next := int(p[i]) | int(p[i+1])<<8
		if next == 0 {
			break
		}

		if i+4 > len(p) {
			return nil, curated.Errorf(BrokenChain, i)
		}
		num := int(p[i+2]) | int(p[i+3])<<8

		j := i + 4
		for j < len(p) && p[j] != 0x00 {
			j++
		}
		if j >= len(p) {
			return nil, curated.Errorf(BrokenChain, i)
		}

		if expected := (int(img.Start) + j + 1) & 0xffff; next != expected {
			return nil, curated.Errorf(BrokenLink, num, next, expected)
		}

		blocks, err := decodeBody(p[i+4 : j])
		if err != nil {
			return nil, curated.Errorf(UnknownToken, num, err)
		}
		lines = append(lines, tokenizer.Line{Number: num, Blocks: blocks})

		i = j + 1
	}

	if i+2 != len(p) {
		logger.Logf(logger.Allow, logTag, "%d bytes after end of program", len(p)-i-2)
	}

	return lines, nil
}

type unknownCode uint8

func (c unknownCode) Error() string {
	return charset.Decode([]uint8{uint8(c)})
}

func decodeBody(body []uint8) ([]string, error) {
	var blocks []string
	var raw strings.Builder

	flush := func() {
		if raw.Len() > 0 {
			blocks = append(blocks, raw.String())
			raw.Reset()
		}
	}

	for i := 0; i < len(body); i++ {
		c := body[i]

		if c == uint8(tokenizer.RemCanonical) {
			flush()
			blocks = append(blocks, tokenizer.Rem)
			if i+1 < len(body) {
				blocks = append(blocks, decodeText(body[i+1:]))
			}
			return blocks, nil
		}

		if c == '"' {
			flush()
			j := i + 1
			for j < len(body) && body[j] != '"' {
				j++
			}
			if j < len(body) {
				j++
			}
			blocks = append(blocks, decodeText(body[i:j]))
			i = j - 1
			continue
		}

		if c > 0x7f {
			e, ok := tokens.Decode(c)
			if !ok {
				return nil, unknownCode(c)
			}
			flush()
			blocks = append(blocks, e.Keyword)
			continue
		}

		raw.WriteByte(c)
	}
	flush()

	return blocks, nil
}

// decodeText is used for string literals and comments.
func decodeText(b []uint8) string {
	var s strings.Builder
	for _, c := range b {
		if c == upArrowCode {
			s.WriteRune(charset.UpArrow)
		} else {
			s.WriteString(charset.Decode([]uint8{c}))
		}
	}
	return s.String()
}

var upArrowCode uint8

func init() {
	e, _ := tokens.Lookup(string(charset.UpArrow))
	upArrowCode = e.Code
}
