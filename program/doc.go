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

// Package program assembles tokenized lines into a program image that can be
// loaded into the memory of the Laser 310 at a start address.
//
// Each line in the image is a record of four header bytes, the tokenized
// body and a terminating zero. The header holds the address of the next
// record and the line number, both in little-endian order. The final record
// is followed by two zero bytes, which the interpreter reads as a next-line
// address of zero.
//
// The image is output as a stream that begins with the start and end
// addresses of the program and ends with a sixteen bit checksum. The checksum
// is the sum of every program byte and the four address bytes.
//
// An image can be read back from a stream with Parse() and listed with List().
package program
