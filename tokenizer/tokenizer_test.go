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

package tokenizer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/laser310/charset"
	"github.com/jetsetilly/laser310/curated"
	"github.com/jetsetilly/laser310/test"
	"github.com/jetsetilly/laser310/tokenizer"
	"github.com/jetsetilly/laser310/tokens"
)

func hex(b []uint8) string {
	return fmt.Sprintf("% x", b)
}

func TestPrint(t *testing.T) {
	tk := tokenizer.NewTokenizer(tokenizer.RemCanonical)
	l := tokenizer.Line{Number: 10, Blocks: []string{"PRINT", " ", "\"HI\""}}
	b, err := tk.Tokenize(l)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, hex(b), "b2 20 22 48 49 22")
	test.ExpectEquality(t, l.String(), "10 PRINT \"HI\"")
}

func TestQuotedKeyword(t *testing.T) {
	tk := tokenizer.NewTokenizer(tokenizer.RemCanonical)
	b, err := tk.Tokenize(tokenizer.Line{Number: 10, Blocks: []string{"PRINT", "\"END\""}})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, hex(b), "b2 22 45 4e 44 22")
}

func TestRem(t *testing.T) {
	l := tokenizer.Line{Number: 20, Blocks: []string{"REM", " PRINT ▀", "GOTO"}}
	test.ExpectSuccess(t, l.IsRem())

	tk := tokenizer.NewTokenizer(tokenizer.RemCanonical)
	b, err := tk.Tokenize(l)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, hex(b), "93 20 50 52 49 4e 54 20 8c 47 4f 54 4f")

	tk = tokenizer.NewTokenizer(tokenizer.RemEditor)
	b, err = tk.Tokenize(l)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b[0], uint8(0x80))
	test.ExpectEquality(t, len(b), 13)

	// REM is only special as the first block
	l = tokenizer.Line{Number: 20, Blocks: []string{"END", "REM"}}
	test.ExpectFailure(t, l.IsRem())
	b, err = tk.Tokenize(l)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, hex(b), "80 52 45 4d")
}

func TestRemCode(t *testing.T) {
	r, err := tokenizer.NewRemCode(0x80)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, tokenizer.RemEditor)

	r, err = tokenizer.NewRemCode(0x93)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, tokenizer.RemCanonical)

	_, err = tokenizer.NewRemCode(0x94)
	test.ExpectFailure(t, err)
}

func TestDisallowed(t *testing.T) {
	tk := tokenizer.NewTokenizer(tokenizer.RemCanonical)

	b, err := tk.Tokenize(tokenizer.Line{Number: 10, Blocks: []string{"PRINT", "\"A€\""}})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, len(b), 0)
	test.ExpectSuccess(t, curated.Is(err, tokenizer.InvalidContent))
	test.ExpectSuccess(t, curated.Has(err, charset.DisallowedChar))
	test.ExpectEquality(t, err.Error(), "tokenizer: line 10: disallowed character '€'")

	// lower case letters are not in the character set
	_, err = tk.Tokenize(tokenizer.Line{Number: 10, Blocks: []string{"REM", "hello"}})
	test.ExpectFailure(t, err)
}

func TestUpArrow(t *testing.T) {
	tk := tokenizer.NewTokenizer(tokenizer.RemCanonical)

	// as an operator and inside a string literal
	b, err := tk.Tokenize(tokenizer.Line{Number: 10, Blocks: []string{"X", "↑", "\"2↑\""}})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, hex(b), "58 d1 22 32 d1 22")
}

func TestLengthGate(t *testing.T) {
	tk := tokenizer.NewTokenizer(tokenizer.RemCanonical)

	l := tokenizer.Line{Number: 10, Blocks: []string{strings.Repeat("A", 60)}}
	n, err := tk.EncodedLength(l)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 60)

	l = tokenizer.Line{Number: 10, Blocks: []string{strings.Repeat("A", 61)}}
	b, err := tk.Tokenize(l)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, len(b), 0)
	test.ExpectSuccess(t, curated.Is(err, tokenizer.LineTooLong))

	// a keyword counts as a single byte however long it is
	l = tokenizer.Line{Number: 10, Blocks: []string{"RESTORE", strings.Repeat("A", 59)}}
	n, err = tk.EncodedLength(l)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 60)

	l = tokenizer.Line{Number: 10, Blocks: []string{"REM", strings.Repeat("A", 60)}}
	_, err = tk.EncodedLength(l)
	test.ExpectSuccess(t, curated.Is(err, tokenizer.LineTooLong))
}

func TestTokenCoverage(t *testing.T) {
	tk := tokenizer.NewTokenizer(tokenizer.RemCanonical)
	for _, e := range tokens.Entries() {
		b, err := tk.Tokenize(tokenizer.Line{Number: 1, Blocks: []string{e.Keyword}})
		test.ExpectSuccess(t, err, e.Keyword)
		test.ExpectEquality(t, len(b), 1, e.Keyword)
		if len(b) == 1 {
			test.ExpectEquality(t, b[0], e.Code, e.Keyword)
		}
	}
}

func TestCrunch(t *testing.T) {
	crunch := func(s string) string {
		return strings.Join(tokenizer.Crunch(s), "|")
	}

	test.ExpectEquality(t, crunch(`PRINT "HI"`), `PRINT| |"HI"`)
	test.ExpectEquality(t, crunch(`REM PRINT "HI"`), `REM| PRINT "HI"`)
	test.ExpectEquality(t, crunch(`REM`), `REM`)
	test.ExpectEquality(t, crunch(`A=B+1`), `A|=|B|+|1`)
	test.ExpectEquality(t, crunch(`FORI=1TO10`), `FOR|I|=|1|TO|10`)
	test.ExpectEquality(t, crunch(`INPUT A$`), `INPUT| A$`)
	test.ExpectEquality(t, crunch(`PRINT TAB(5);"X"`), `PRINT| |TAB(|5);|"X"`)
	test.ExpectEquality(t, crunch(`PRINT "A`), `PRINT| |"A`)
	test.ExpectEquality(t, crunch(`PRINT "{d}{aa}"`), `PRINT| |"▀█"`)
	test.ExpectEquality(t, crunch(`X=2{arr}3`), `X|=|2|↑|3`)
	test.ExpectEquality(t, crunch(``), ``)
}

func TestCrunchTokenize(t *testing.T) {
	tk := tokenizer.NewTokenizer(tokenizer.RemCanonical)
	l := tokenizer.Line{Number: 10, Blocks: tokenizer.Crunch(`PRINT "HI"`)}
	b, err := tk.Tokenize(l)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, hex(b), "b2 20 22 48 49 22")
}
