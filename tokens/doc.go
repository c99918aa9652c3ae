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

// Package tokens is the dictionary of Laser 310 BASIC keywords and operators
// and their one byte tokenized codes.
//
// The dictionary is built once, when the package is initialised, and is read
// only afterwards. It is safe to use from more than one goroutine.
//
// Every entry belongs to a Category. Categories exist to group keywords for
// presentation (the TOKENS mode of the command line, for example) and have no
// effect on tokenization.
//
// Entries are of one of two kinds. Token entries are replaced by their code
// when a line is tokenized. GlyphPassthrough entries are the sixteen block
// graphics glyphs, which are listed in the String category so that they can
// be presented alongside the string functions. They are never replaced by a
// token code and are instead transcoded as ordinary text by the charset
// package.
//
// Note that REM is not in the dictionary. The code used for REM is a property
// of the tokenizer.
package tokens
