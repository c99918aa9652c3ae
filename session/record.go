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
	"encoding/json"
	"io"

	"github.com/jetsetilly/laser310/charset"
	"github.com/jetsetilly/laser310/curated"
	"github.com/jetsetilly/laser310/program"
	"github.com/jetsetilly/laser310/tokenizer"
)

// sentinal error patterns returned by Load() and Save().
const (
	VersionMismatch = "session: file version %s does not match %s"
	InvalidRecord   = "session: invalid record: %v"
)

// FileVersion is the version of the JSON record.
const FileVersion = "1.0.0"

type lineRecord struct {
	LineNum int      `json:"lineNum"`
	Blocks  []string `json:"blocks"`
}

type record struct {
	FileVer string       `json:"fileVer"`
	LineNum int          `json:"lineNum"`
	Lines   []lineRecord `json:"lines"`
}

// Save writes the committed lines of the session as a JSON record.
func (s Session) Save(w io.Writer) error {
	rec := record{
		FileVer: FileVersion,
		LineNum: s.LineNumber,
		Lines:   make([]lineRecord, 0, len(s.Lines)),
	}
	for _, l := range s.Lines {
		rec.Lines = append(rec.Lines, lineRecord{LineNum: l.Number, Blocks: l.Blocks})
	}

	if err := json.NewEncoder(w).Encode(rec); err != nil {
		return curated.Errorf("session: %v", err)
	}
	return nil
}

// Load replaces the committed lines of the session with the lines in the
// JSON record. The line under construction is discarded and the interval is
// unchanged.
//
// Nothing is changed if the record cannot be loaded.
func (s Session) Load(r io.Reader) (Session, error) {
	var rec record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return s, curated.Errorf(InvalidRecord, err)
	}

	if rec.FileVer != FileVersion {
		return s, curated.Errorf(VersionMismatch, rec.FileVer, FileVersion)
	}

	if rec.LineNum < 0 || rec.LineNum > program.MaxLineNumber {
		return s, curated.Errorf(InvalidRecord, curated.Errorf(LineNumberOverflow, rec.LineNum, program.MaxLineNumber))
	}

	lines := make([]tokenizer.Line, 0, len(rec.Lines))
	for _, l := range rec.Lines {
		if l.LineNum < 0 || l.LineNum > program.MaxLineNumber {
			return s, curated.Errorf(InvalidRecord, curated.Errorf(LineNumberOverflow, l.LineNum, program.MaxLineNumber))
		}
		if len(l.Blocks) == 0 {
			return s, curated.Errorf(InvalidRecord, curated.Errorf(EmptyLine, l.LineNum))
		}
		for _, b := range l.Blocks {
			if err := check(b); err != nil {
				return s, curated.Errorf(InvalidRecord, err)
			}
		}
		lines = append(lines, tokenizer.Line{Number: l.LineNum, Blocks: l.Blocks})
	}

	c := NewSession()
	c.Interval = s.Interval
	c.LineNumber = rec.LineNum
	c.Lines = lines

	return c, nil
}

// check that a block loaded from a record contains only characters that can
// be tokenized. keywords are allowed as they are.
func check(b string) error {
	for _, r := range b {
		if r == charset.UpArrow {
			continue
		}
		if !charset.General.Allowed(r) {
			return curated.Errorf(charset.DisallowedChar, r)
		}
	}
	return nil
}
