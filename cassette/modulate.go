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

package cassette

// Audio format.
const (
	SampleRate    = 22050
	BitDepth      = 8
	NumChannels   = 1
	SamplesPerBit = 36
)

// Sample levels.
const (
	High    uint8 = 0xff
	Low     uint8 = 0x00
	Silence uint8 = 0x80
)

// Framing lengths in samples.
const (
	LeaderSamples  = 20
	GapSamples     = 58
	TrailerSamples = 20
)

// pulse widths in samples. a pulse is a high period followed by a low period
// of the same length.
const (
	shortPulse = 6
	longPulse  = 12
)

var zeroBit []uint8
var oneBit []uint8

func pulse(width int) []uint8 {
	p := make([]uint8, 0, width*2)
	for range width {
		p = append(p, High)
	}
	for range width {
		p = append(p, Low)
	}
	return p
}

func init() {
	zeroBit = append(zeroBit, pulse(shortPulse)...)
	zeroBit = append(zeroBit, pulse(longPulse)...)

	oneBit = append(oneBit, pulse(shortPulse)...)
	oneBit = append(oneBit, pulse(shortPulse)...)
	oneBit = append(oneBit, pulse(shortPulse)...)
}

func fill(s []uint8, v uint8, n int) []uint8 {
	for range n {
		s = append(s, v)
	}
	return s
}

// ModulateBlock returns the samples for data. The number of samples is always
// len(data) * 8 * SamplesPerBit.
func ModulateBlock(data []uint8) []uint8 {
	s := make([]uint8, 0, len(data)*8*SamplesPerBit)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			if (b>>i)&0x01 == 0x01 {
				s = append(s, oneBit...)
			} else {
				s = append(s, zeroBit...)
			}
		}
	}
	return s
}

// Modulate returns the complete recording of the preamble and main blocks,
// including the leader, the gap between blocks and the trailer.
func Modulate(preamble []uint8, main []uint8) []uint8 {
	n := LeaderSamples + (len(preamble)+len(main))*8*SamplesPerBit + GapSamples + TrailerSamples
	s := make([]uint8, 0, n)
	s = fill(s, Silence, LeaderSamples)
	s = append(s, ModulateBlock(preamble)...)
	s = fill(s, Low, GapSamples)
	s = append(s, ModulateBlock(main)...)
	s = fill(s, Silence, TrailerSamples)
	return s
}
