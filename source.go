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

package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/laser310/curated"
	"github.com/jetsetilly/laser310/logger"
	"github.com/jetsetilly/laser310/tokenizer"
)

// MalformedSource is the error pattern for a source line with a line number
// that cannot be parsed.
const MalformedSource = "source: line %d: invalid line number %q"

// readSource reads a plain text program. each line is a line number, a space
// and the text of the line. lines without a space are ignored. the text is
// crunched into blocks.
func readSource(r io.Reader) ([]tokenizer.Line, error) {
	var lines []tokenizer.Line

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++

		s := strings.TrimSpace(scanner.Text())
		num, text, ok := strings.Cut(s, " ")
		if !ok {
			if s != "" {
				logger.Logf(logger.Allow, "source", "line %d: ignored: %s", n, s)
			}
			continue
		}

		v, err := strconv.Atoi(num)
		if err != nil {
			return nil, curated.Errorf(MalformedSource, n, num)
		}

		lines = append(lines, tokenizer.Line{
			Number: v,
			Blocks: tokenizer.Crunch(strings.TrimSpace(text)),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("source: %v", err)
	}

	return lines, nil
}
