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

package program

import (
	"fmt"

	"github.com/jetsetilly/laser310/curated"
	"github.com/jetsetilly/laser310/logger"
	"github.com/jetsetilly/laser310/tokenizer"
)

// sentinal error patterns returned by the program package.
const (
	InvalidAddress        = "program: start address %#04x must be in range %#04x to %#04x"
	LineNumberOutOfRange  = "program: line number %d must be in range 0 to %d"
	AssemblyError         = "program: %v"
	ImageTruncated        = "program: image of %d bytes is too short"
	ImageLengthMismatch   = "program: addresses %#04x to %#04x imply %d bytes but image has %d"
	ImageChecksumMismatch = "program: checksum %#04x does not match calculated value of %#04x"
)

// Memory limits.
const (
	MinStartAddress     = 0x7ae9
	MaxStartAddress     = 0xffff
	DefaultStartAddress = MinStartAddress
)

// MaxLineNumber is the largest line number accepted by the interpreter.
const MaxLineNumber = 65530

const logTag = "program"

// Image is an assembled program.
type Image struct {
	Start    uint16
	End      uint16
	Checksum uint16

	// the program bytes not including the address and checksum fields
	Program []uint8
}

func (img Image) String() string {
	return fmt.Sprintf("start %#04x end %#04x (%d bytes) checksum %#04x",
		img.Start, img.End, len(img.Program), img.Checksum)
}

// Bytes returns the image as a stream: the start and end addresses, the
// program and the checksum. All values are little-endian.
func (img Image) Bytes() []uint8 {
	b := make([]uint8, 0, len(img.Program)+6)
	b = append(b, uint8(img.Start), uint8(img.Start>>8))
	b = append(b, uint8(img.End), uint8(img.End>>8))
	b = append(b, img.Program...)
	b = append(b, uint8(img.Checksum), uint8(img.Checksum>>8))
	return b
}

// checksum is the sum of the program and the bytes of the two addresses.
// accumulated in 32 bits and truncated.
func checksum(start uint16, end uint16, program []uint8) uint16 {
	var sum uint32
	for _, b := range program {
		sum += uint32(b)
	}
	sum += uint32(start & 0xff)
	sum += uint32(start >> 8)
	sum += uint32(end & 0xff)
	sum += uint32(end >> 8)
	return uint16(sum)
}

// Assemble tokenizes every line and assembles them into an image that will
// be loaded at the start address. Lines are assembled in the order given.
//
// Any error in any line means that no image is returned.
func Assemble(tk *tokenizer.Tokenizer, lines []tokenizer.Line, start int) (Image, error) {
	if start < MinStartAddress || start > MaxStartAddress {
		return Image{}, curated.Errorf(InvalidAddress, start, MinStartAddress, MaxStartAddress)
	}

	program := make([]uint8, 0, len(lines)*(tokenizer.MaxLineLength/2))

	// address of the next record
	address := start

	prev := -1
	for _, l := range lines {
		if l.Number < 0 || l.Number > MaxLineNumber {
			return Image{}, curated.Errorf(LineNumberOutOfRange, l.Number, MaxLineNumber)
		}

		// the interpreter will not complain about lines out of order but it
		// is probably a mistake
		if l.Number <= prev {
			logger.Logf(logger.Allow, logTag, "line %d follows line %d", l.Number, prev)
		}
		prev = l.Number

		body, err := tk.Tokenize(l)
		if err != nil {
			return Image{}, curated.Errorf(AssemblyError, err)
		}

		// header, body and terminator. addresses wrap at the top of memory
		address = (address + 4 + len(body) + 1) & 0xffff

		program = append(program, uint8(address), uint8(address>>8))
		program = append(program, uint8(l.Number), uint8(l.Number>>8))
		program = append(program, body...)
		program = append(program, 0x00)
	}

	// end of program marker
	program = append(program, 0x00, 0x00)

	if start+len(program) > MaxStartAddress {
		logger.Logf(logger.Allow, logTag, "program wraps past %#04x", MaxStartAddress)
	}

	img := Image{
		Start:   uint16(start),
		End:     uint16(start + len(program)),
		Program: program,
	}
	img.Checksum = checksum(img.Start, img.End, img.Program)

	logger.Logf(logger.Allow, logTag, "assembled %d lines: %s", len(lines), img)

	return img, nil
}

// Parse reads an image from a stream in the format returned by Image.Bytes().
// The length of the stream must agree with the addresses and the checksum
// must be correct.
func Parse(data []uint8) (Image, error) {
	if len(data) < 6 {
		return Image{}, curated.Errorf(ImageTruncated, len(data))
	}

	img := Image{
		Start: uint16(data[0]) | uint16(data[1])<<8,
		End:   uint16(data[2]) | uint16(data[3])<<8,
	}

	// the end address may have wrapped
	n := int(img.End - img.Start)
	if len(data) != n+6 {
		return Image{}, curated.Errorf(ImageLengthMismatch, img.Start, img.End, n, len(data)-6)
	}

	img.Program = make([]uint8, n)
	copy(img.Program, data[4:4+n])

	img.Checksum = uint16(data[4+n]) | uint16(data[5+n])<<8
	if c := checksum(img.Start, img.End, img.Program); c != img.Checksum {
		return Image{}, curated.Errorf(ImageChecksumMismatch, img.Checksum, c)
	}

	return img, nil
}
