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

package session

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/jetsetilly/laser310/charset"
	"github.com/jetsetilly/laser310/curated"
	"github.com/jetsetilly/laser310/program"
	"github.com/jetsetilly/laser310/tokenizer"
	"github.com/jetsetilly/laser310/tokens"
)

// sentinal error patterns returned by session operations.
const (
	LineTooLong        = "session: line %d would be %d characters long (maximum %d)"
	LineNumberOverflow = "session: line number %d exceeds %d"
	InvalidInterval    = "session: interval of %d must be in range %d to %d"
	UnknownKeyword     = "session: %s is not a keyword"
	EmptyLine          = "session: line %d is empty"
	DisallowedInput    = "session: %v"
)

// Line numbering.
const (
	DefaultInterval = 10
	MinInterval     = 1
	MaxInterval     = 20
)

// MaxLineText is the maximum length of a line as it would be listed,
// including the line number.
const MaxLineText = 60

// Session is the state of a program under construction.
type Session struct {
	// the number of the most recently committed line. zero if no line has
	// been committed
	LineNumber int

	// the amount by which the line number increases with each line
	Interval int

	// committed lines
	Lines []tokenizer.Line

	// blocks of the line being constructed
	Current []string
}

// NewSession is the preferred method of initialisation for the Session type.
func NewSession() Session {
	return Session{
		Interval: DefaultInterval,
	}
}

// clone makes a deep copy of the session so that the returned session can be
// changed without affecting the original.
func (s Session) clone() Session {
	c := s
	c.Lines = make([]tokenizer.Line, len(s.Lines))
	for i, l := range s.Lines {
		c.Lines[i] = tokenizer.Line{Number: l.Number, Blocks: slices.Clone(l.Blocks)}
	}
	c.Current = slices.Clone(s.Current)
	return c
}

// Next returns the number that will be given to the next committed line.
func (s Session) Next() int {
	return s.LineNumber + s.Interval
}

// SetInterval changes the interval between line numbers.
func (s Session) SetInterval(interval int) (Session, error) {
	if interval < MinInterval || interval > MaxInterval {
		return s, curated.Errorf(InvalidInterval, interval, MinInterval, MaxInterval)
	}
	c := s.clone()
	c.Interval = interval
	return c, nil
}

// lines are measured with the canonical REM code. the choice of code does not
// change the length.
var measure = tokenizer.NewTokenizer(tokenizer.RemCanonical)

// encodable checks that a line can be tokenized before it is committed.
func encodable(number int, blocks []string) error {
	if _, err := measure.EncodedLength(tokenizer.Line{Number: number, Blocks: blocks}); err != nil {
		return curated.Errorf(DisallowedInput, err)
	}
	return nil
}

// gate checks the listed length of a line.
func gate(number int, text string, max int) error {
	if n := utf8.RuneCountInString(text); n > max {
		return curated.Errorf(LineTooLong, number, n, max)
	}
	return nil
}

// InsertREM commits a comment line immediately. The line under construction
// is unaffected and will be numbered after the comment.
func (s Session) InsertREM(text string) (Session, error) {
	if err := charset.General.Check(text); err != nil {
		return s, curated.Errorf(DisallowedInput, err)
	}

	n := s.Next()
	if n > program.MaxLineNumber {
		return s, curated.Errorf(LineNumberOverflow, n, program.MaxLineNumber)
	}

	// the quotes are not part of the line but are counted anyway
	if err := gate(n, fmt.Sprintf("%d %s \"%s\"", n, tokenizer.Rem, text), MaxLineText); err != nil {
		return s, err
	}

	blocks := []string{tokenizer.Rem, " ", text}
	if err := encodable(n, blocks); err != nil {
		return s, err
	}

	c := s.clone()
	c.LineNumber = n
	c.Lines = append(c.Lines, tokenizer.Line{Number: n, Blocks: blocks})
	return c, nil
}

func (s Session) insert(set charset.Set, text string) (Session, error) {
	if text == "" {
		return s, nil
	}

	if err := set.Check(text); err != nil {
		return s, curated.Errorf(DisallowedInput, err)
	}

	n := s.Next()
	if err := gate(n, fmt.Sprintf("%d %s%s", n, strings.Join(s.Current, ""), text), MaxLineText); err != nil {
		return s, err
	}

	c := s.clone()
	c.Current = append(c.Current, text)
	return c, nil
}

// InsertRaw adds a block of text to the current line. The text is never
// replaced by a keyword.
func (s Session) InsertRaw(text string) (Session, error) {
	return s.insert(charset.General, text)
}

// InsertNumber adds a block of text to the current line. The text is limited
// to the numeric character set.
func (s Session) InsertNumber(text string) (Session, error) {
	return s.insert(charset.Numeric, text)
}

// InsertString adds a space and a quoted string literal to the current line.
func (s Session) InsertString(text string) (Session, error) {
	if err := charset.General.Check(text); err != nil {
		return s, curated.Errorf(DisallowedInput, err)
	}
	if strings.ContainsRune(text, '"') {
		return s, curated.Errorf(DisallowedInput, curated.Errorf(charset.DisallowedChar, '"'))
	}

	n := s.Next()
	if err := gate(n, fmt.Sprintf("%d %s \"%s\"", n, strings.Join(s.Current, ""), text), MaxLineText); err != nil {
		return s, err
	}

	c := s.clone()
	c.Current = append(c.Current, " ", fmt.Sprintf("\"%s\"", text))
	return c, nil
}

// InsertSpace adds a single space to the current line.
func (s Session) InsertSpace() (Session, error) {
	n := s.Next()
	if err := gate(n, fmt.Sprintf("%d %s", n, strings.Join(s.Current, "")), MaxLineText-1); err != nil {
		return s, err
	}

	c := s.clone()
	c.Current = append(c.Current, " ")
	return c, nil
}

// InsertToken adds a keyword to the current line. The block graphics glyphs
// are in the dictionary but are added as raw text.
func (s Session) InsertToken(keyword string) (Session, error) {
	e, ok := tokens.Lookup(keyword)
	if !ok {
		return s, curated.Errorf(UnknownKeyword, keyword)
	}

	if e.Kind == tokens.GlyphPassthrough {
		return s.InsertRaw(keyword)
	}

	n := s.Next()
	if err := gate(n, fmt.Sprintf("%d %s%s", n, strings.Join(s.Current, ""), keyword), MaxLineText); err != nil {
		return s, err
	}

	c := s.clone()
	c.Current = append(c.Current, keyword)
	return c, nil
}

// Enter commits the current line. The line must be one that the tokenizer
// will accept.
func (s Session) Enter() (Session, error) {
	n := s.Next()
	if n > program.MaxLineNumber {
		return s, curated.Errorf(LineNumberOverflow, n, program.MaxLineNumber)
	}
	if len(s.Current) == 0 {
		return s, curated.Errorf(EmptyLine, n)
	}
	if err := encodable(n, s.Current); err != nil {
		return s, err
	}

	c := s.clone()
	c.LineNumber = n
	c.Lines = append(c.Lines, tokenizer.Line{Number: n, Blocks: c.Current})
	c.Current = nil
	return c, nil
}

// Backspace removes the most recent block from the current line. If the
// block was not a keyword then the text of the block is also returned, so that
// it can be edited and inserted again.
//
// If the current line is empty then the most recently committed line becomes
// the current line.
func (s Session) Backspace() (Session, string) {
	if len(s.Current) > 0 {
		c := s.clone()
		b := c.Current[len(c.Current)-1]
		c.Current = c.Current[:len(c.Current)-1]
		if _, ok := tokens.Lookup(b); ok {
			return c, ""
		}
		return c, b
	}

	if len(s.Lines) > 0 {
		c := s.clone()
		l := c.Lines[len(c.Lines)-1]
		c.Lines = c.Lines[:len(c.Lines)-1]
		c.Current = l.Blocks
		if len(c.Lines) > 0 {
			c.LineNumber = c.Lines[len(c.Lines)-1].Number
		} else {
			c.LineNumber = 0
		}
		return c, ""
	}

	return s, ""
}

// Render returns the program as it would be listed. The current line is
// included, with the number it will be given, if it is not empty.
func (s Session) Render() string {
	var b strings.Builder
	for _, l := range s.Lines {
		b.WriteString(l.String())
		b.WriteString("\n")
	}
	if len(s.Current) > 0 {
		b.WriteString(tokenizer.Line{Number: s.Next(), Blocks: s.Current}.String())
		b.WriteString("\n")
	}
	return b.String()
}
