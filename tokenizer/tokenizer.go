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
	"fmt"
	"strings"

	"github.com/jetsetilly/laser310/charset"
	"github.com/jetsetilly/laser310/curated"
	"github.com/jetsetilly/laser310/tokens"
)

// sentinal error patterns returned by the tokenizer.
const (
	LineTooLong    = "tokenizer: line %d: encoded length of %d exceeds %d bytes"
	InvalidContent = "tokenizer: line %d: %v"
)

// MaxLineLength is the maximum length of a tokenized line body in bytes. The
// body does not include the four byte header or the terminating zero.
const MaxLineLength = 60

// Rem is the block that starts a comment line.
const Rem = "REM"

// RemCode is the byte emitted for the Rem block.
type RemCode uint8

// List of valid RemCode values.
const (
	// the code used by the machine's own interpreter.
	RemCanonical RemCode = 0x93

	// the code used by some editors. the interpreter treats the line as if it
	// begins with the END keyword, which has the same effect for a line that
	// is never reached.
	RemEditor RemCode = 0x80
)

func (rem RemCode) String() string {
	return fmt.Sprintf("%#02x", uint8(rem))
}

// NewRemCode checks that v is one of the valid RemCode values.
func NewRemCode(v int) (RemCode, error) {
	switch RemCode(v) {
	case RemCanonical, RemEditor:
		return RemCode(v), nil
	}
	return RemCanonical, curated.Errorf("tokenizer: REM code must be %v or %v not %#02x", RemCanonical, RemEditor, v)
}

// Line is a single program line before tokenization.
type Line struct {
	Number int
	Blocks []string
}

// String returns the line as it would be listed. Blocks are concatenated
// without separation, spaces being blocks in their own right.
func (l Line) String() string {
	return fmt.Sprintf("%d %s", l.Number, strings.Join(l.Blocks, ""))
}

// IsRem returns true if the line is a comment line.
func (l Line) IsRem() bool {
	return len(l.Blocks) > 0 && l.Blocks[0] == Rem
}

// Tokenizer converts lines to their tokenized form.
type Tokenizer struct {
	rem RemCode
}

// NewTokenizer is the preferred method of initialisation for the Tokenizer
// type.
func NewTokenizer(rem RemCode) *Tokenizer {
	return &Tokenizer{rem: rem}
}

// Rem returns the code used for the REM block.
func (tk *Tokenizer) Rem() RemCode {
	return tk.rem
}

// Tokenize returns the body of the line. An error is returned, and no bytes,
// if a block contains a character that cannot be represented or if the body
// is longer than MaxLineLength.
func (tk *Tokenizer) Tokenize(l Line) ([]uint8, error) {
	body := make([]uint8, 0, MaxLineLength)

	if l.IsRem() {
		body = append(body, uint8(tk.rem))
		for _, b := range l.Blocks[1:] {
			t, err := transcode(b)
			if err != nil {
				return nil, curated.Errorf(InvalidContent, l.Number, err)
			}
			body = append(body, t...)
		}
	} else {
		for _, b := range l.Blocks {
			if e, ok := tokens.Lookup(b); ok && e.Kind == tokens.Token {
				body = append(body, e.Code)
				continue
			}
			t, err := transcode(b)
			if err != nil {
				return nil, curated.Errorf(InvalidContent, l.Number, err)
			}
			body = append(body, t...)
		}
	}

	if len(body) > MaxLineLength {
		return nil, curated.Errorf(LineTooLong, l.Number, len(body), MaxLineLength)
	}

	return body, nil
}

// EncodedLength returns the length of the tokenized body of the line.
func (tk *Tokenizer) EncodedLength(l Line) (int, error) {
	b, err := tk.Tokenize(l)
	if err != nil {
		return 0, err
	}
	return len(b), nil
}

// the code for the up arrow. the arrow is an operator but it can also appear
// in string literals and comments, where it is not replaced by a keyword.
var upArrowCode uint8

func init() {
	e, ok := tokens.Lookup(string(charset.UpArrow))
	if !ok {
		panic("tokenizer: no token for up arrow")
	}
	upArrowCode = e.Code
}

// transcode raw text. every character must be in the general character set.
func transcode(s string) ([]uint8, error) {
	b := make([]uint8, 0, len(s))
	for _, r := range s {
		if r == charset.UpArrow {
			b = append(b, upArrowCode)
			continue
		}
		if !charset.General.Allowed(r) {
			return nil, curated.Errorf(charset.DisallowedChar, r)
		}
		c, err := charset.Transcode(string(r))
		if err != nil {
			return nil, err
		}
		b = append(b, c...)
	}
	return b, nil
}
