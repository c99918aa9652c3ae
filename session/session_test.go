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

package session_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/laser310/charset"
	"github.com/jetsetilly/laser310/curated"
	"github.com/jetsetilly/laser310/program"
	"github.com/jetsetilly/laser310/session"
	"github.com/jetsetilly/laser310/test"
	"github.com/jetsetilly/laser310/tokenizer"
)

func TestPrint(t *testing.T) {
	s := session.NewSession()
	test.ExpectEquality(t, s.Interval, session.DefaultInterval)
	test.ExpectEquality(t, s.Next(), 10)

	var err error
	s, err = s.InsertToken("PRINT")
	test.DemandSuccess(t, err)
	s, err = s.InsertString("HI")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Render(), "10 PRINT \"HI\"\n")

	s, err = s.Enter()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.LineNumber, 10)
	test.ExpectEquality(t, len(s.Current), 0)
	test.DemandEquality(t, len(s.Lines), 1)
	test.ExpectEquality(t, strings.Join(s.Lines[0].Blocks, "|"), `PRINT| |"HI"`)

	tk := tokenizer.NewTokenizer(tokenizer.RemCanonical)
	img, err := program.Assemble(tk, s.Lines, program.DefaultStartAddress)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("% x", img.Program[4:11]), "b2 20 22 48 49 22 00")
}

func TestImmutable(t *testing.T) {
	a := session.NewSession()
	b, err := a.InsertRaw("A")
	test.DemandSuccess(t, err)
	c, err := b.InsertToken("=")
	test.DemandSuccess(t, err)
	d, err := c.Enter()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, len(a.Current), 0)
	test.ExpectEquality(t, len(b.Current), 1)
	test.ExpectEquality(t, len(c.Current), 2)
	test.ExpectEquality(t, len(c.Lines), 0)
	test.ExpectEquality(t, len(d.Lines), 1)

	// changing a later session does not change the line in an earlier one
	e, _ := d.Backspace()
	e, err = e.InsertRaw("1")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.Render(), "10 A=\n")
	test.ExpectEquality(t, e.Render(), "10 A=1\n")
}

func TestLengthGate(t *testing.T) {
	s := session.NewSession()

	// "10 " plus 57 characters is 60
	_, err := s.InsertRaw(strings.Repeat("A", 57))
	test.ExpectSuccess(t, err)
	_, err = s.InsertRaw(strings.Repeat("A", 58))
	test.ExpectSuccess(t, curated.Is(err, session.LineTooLong))

	// a string literal counts its quotes and the space before it
	_, err = s.InsertString(strings.Repeat("A", 54))
	test.ExpectSuccess(t, err)
	_, err = s.InsertString(strings.Repeat("A", 55))
	test.ExpectSuccess(t, curated.Is(err, session.LineTooLong))

	_, err = s.InsertREM(strings.Repeat("A", 51))
	test.ExpectSuccess(t, err)
	_, err = s.InsertREM(strings.Repeat("A", 52))
	test.ExpectSuccess(t, curated.Is(err, session.LineTooLong))

	// a space is only allowed if there is room for something after it
	t56, err := s.InsertRaw(strings.Repeat("A", 56))
	test.DemandSuccess(t, err)
	_, err = t56.InsertSpace()
	test.ExpectSuccess(t, err)
	t57, err := s.InsertRaw(strings.Repeat("A", 57))
	test.DemandSuccess(t, err)
	_, err = t57.InsertSpace()
	test.ExpectSuccess(t, curated.Is(err, session.LineTooLong))

	// block graphics count as one character each
	_, err = s.InsertRaw(strings.Repeat("▀", 57))
	test.ExpectSuccess(t, err)
}

func TestCharacterSets(t *testing.T) {
	s := session.NewSession()

	_, err := s.InsertNumber("12AB$")
	test.ExpectSuccess(t, err)

	_, err = s.InsertNumber("1+2")
	test.ExpectSuccess(t, curated.Is(err, session.DisallowedInput))
	test.ExpectSuccess(t, curated.Has(err, charset.DisallowedChar))

	_, err = s.InsertRaw("hello")
	test.ExpectFailure(t, err)

	_, err = s.InsertREM("A€")
	test.ExpectFailure(t, err)

	_, err = s.InsertString(`SAY "HI"`)
	test.ExpectFailure(t, err)

	// empty text changes nothing
	n, err := s.InsertRaw("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(n.Current), 0)
}

func TestTokens(t *testing.T) {
	s := session.NewSession()

	_, err := s.InsertToken("NOPE")
	test.ExpectSuccess(t, curated.Is(err, session.UnknownKeyword))

	// glyphs are added as raw text
	g, err := s.InsertToken("▀")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g.Current[0], "▀")

	g, err = g.InsertToken("↑")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g.Render(), "10 ▀↑\n")
}

func TestEnter(t *testing.T) {
	s := session.NewSession()

	_, err := s.Enter()
	test.ExpectSuccess(t, curated.Is(err, session.EmptyLine))

	s, err = s.InsertREM("HELLO")
	test.DemandSuccess(t, err)
	s, err = s.InsertToken("END")
	test.DemandSuccess(t, err)
	s, err = s.Enter()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Render(), "10 REM HELLO\n20 END\n")

	s.LineNumber = 65530
	s, err = s.InsertToken("END")
	test.DemandSuccess(t, err)
	_, err = s.Enter()
	test.ExpectSuccess(t, curated.Is(err, session.LineNumberOverflow))
	_, err = s.InsertREM("X")
	test.ExpectSuccess(t, curated.Is(err, session.LineNumberOverflow))

	s.LineNumber = 65520
	_, err = s.Enter()
	test.ExpectSuccess(t, err)
}

func TestEnterEncodable(t *testing.T) {
	// lines built without the insert operations are still checked
	s := session.NewSession()
	s.Current = []string{"PRINT", " ", "\"€\""}
	c, err := s.Enter()
	test.ExpectSuccess(t, curated.Is(err, session.DisallowedInput))
	test.ExpectSuccess(t, curated.Has(err, charset.DisallowedChar))
	test.ExpectEquality(t, len(c.Lines), 0)
	test.ExpectEquality(t, c.LineNumber, 0)

	s.Current = []string{strings.Repeat("1", tokenizer.MaxLineLength+1)}
	_, err = s.Enter()
	test.ExpectSuccess(t, curated.Has(err, tokenizer.LineTooLong))

	s.Current = []string{strings.Repeat("1", tokenizer.MaxLineLength)}
	c, err = s.Enter()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(c.Lines), 1)
}

func TestInterval(t *testing.T) {
	s := session.NewSession()

	_, err := s.SetInterval(0)
	test.ExpectSuccess(t, curated.Is(err, session.InvalidInterval))
	_, err = s.SetInterval(21)
	test.ExpectSuccess(t, curated.Is(err, session.InvalidInterval))

	s, err = s.SetInterval(5)
	test.DemandSuccess(t, err)
	s, _ = s.InsertToken("CLS")
	s, _ = s.Enter()
	s, _ = s.InsertToken("END")
	s, _ = s.Enter()
	test.ExpectEquality(t, s.Render(), "5 CLS\n10 END\n")
}

func TestBackspace(t *testing.T) {
	s := session.NewSession()
	s, _ = s.InsertToken("CLS")
	s, _ = s.Enter()
	s, _ = s.InsertToken("PRINT")
	s, _ = s.InsertString("HI")

	s, b := s.Backspace()
	test.ExpectEquality(t, b, `"HI"`)
	s, b = s.Backspace()
	test.ExpectEquality(t, b, " ")
	s, b = s.Backspace()
	test.ExpectEquality(t, b, "")
	test.ExpectEquality(t, len(s.Current), 0)

	// the previous line becomes the current line
	s, _ = s.Backspace()
	test.ExpectEquality(t, len(s.Lines), 0)
	test.ExpectEquality(t, s.LineNumber, 0)
	test.ExpectEquality(t, s.Render(), "10 CLS\n")

	s, _ = s.Backspace()
	s, b = s.Backspace()
	test.ExpectEquality(t, b, "")
	test.ExpectEquality(t, s.Render(), "")
}

func TestRecord(t *testing.T) {
	s := session.NewSession()
	s, _ = s.InsertREM("TEST ▀")
	s, _ = s.InsertToken("PRINT")
	s, _ = s.InsertString("HI")
	s, _ = s.Enter()

	// not saved
	s, _ = s.InsertToken("END")

	var b bytes.Buffer
	test.DemandSuccess(t, s.Save(&b))
	test.ExpectSuccess(t, strings.Contains(b.String(), `"fileVer":"1.0.0"`))
	test.ExpectSuccess(t, strings.Contains(b.String(), `"lineNum":20`))

	l, err := session.NewSession().Load(&b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.LineNumber, 20)
	test.ExpectEquality(t, l.Render(), "10 REM TEST ▀\n20 PRINT \"HI\"\n")
}

func TestLoadFailure(t *testing.T) {
	s := session.NewSession()
	s, _ = s.InsertToken("CLS")
	s, _ = s.Enter()

	l, err := s.Load(strings.NewReader(`{"fileVer":"2.0.0","lineNum":10,"lines":[]}`))
	test.ExpectSuccess(t, curated.Is(err, session.VersionMismatch))
	test.ExpectEquality(t, l.Render(), s.Render())

	l, err = s.Load(strings.NewReader(`{"fileVer":"1.0.0",`))
	test.ExpectSuccess(t, curated.Is(err, session.InvalidRecord))
	test.ExpectEquality(t, l.Render(), s.Render())

	_, err = s.Load(strings.NewReader(`{"fileVer":"1.0.0","lineNum":10,"lines":[{"lineNum":10,"blocks":["print"]}]}`))
	test.ExpectSuccess(t, curated.Has(err, charset.DisallowedChar))

	_, err = s.Load(strings.NewReader(`{"fileVer":"1.0.0","lineNum":10,"lines":[{"lineNum":10,"blocks":[]}]}`))
	test.ExpectSuccess(t, curated.Has(err, session.EmptyLine))

	_, err = s.Load(strings.NewReader(`{"fileVer":"1.0.0","lineNum":10,"lines":[{"lineNum":70000,"blocks":["END"]}]}`))
	test.ExpectSuccess(t, curated.Has(err, session.LineNumberOverflow))

	l, err = s.Load(strings.NewReader(`{"fileVer":"1.0.0","lineNum":30,"lines":[{"lineNum":30,"blocks":["X","↑","2"]}]}`))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, l.Render(), "30 X↑2\n")
}
