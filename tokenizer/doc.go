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

// Package tokenizer converts a single line of BASIC into the tokenized form
// stored in memory by the Laser 310 interpreter.
//
// A line is a line number and a sequence of blocks. A block is either the
// exact keyword of a dictionary entry, in which case it is replaced by the
// entry's code, or it is raw text, in which case it is transcoded character
// by character. Raw text that begins and ends with a double quote is a string
// literal.
//
// A line whose first block is REM is a comment. The REM code is emitted and
// the remaining blocks are transcoded without any keyword replacement.
//
// The tokenizer does not know anything about the address of the line or of
// the line that follows it. Those are the concern of the program package.
//
// The Crunch() function turns plain text into a sequence of blocks suitable
// for tokenization. It is the method by which the plain text source format is
// tokenized.
package tokenizer
