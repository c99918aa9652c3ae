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

// Package charset converts text to the character codes of the Laser 310.
//
// Characters in the range 0x00 to 0x7f are passed through as their ASCII
// value. The sixteen block graphics characters of the machine are entered as
// the Unicode block element glyphs and are transcoded to the codes 0x80 to
// 0x8f. Any other character cannot be represented.
//
// The package also defines the character sets accepted for input, and the
// brace escapes (eg. "{aa}") of the plain text source format, which allow the
// block graphics to be entered on an ordinary keyboard.
package charset
