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

import (
	"github.com/jetsetilly/laser310/charset"
	"github.com/jetsetilly/laser310/curated"
	"github.com/jetsetilly/laser310/logger"
	"github.com/jetsetilly/laser310/program"
)

// sentinal error patterns returned by Demodulate() and Decode().
const (
	BadPulse      = "cassette: block %d: unexpected pulse width of %d samples"
	TruncatedBit  = "cassette: block %d: signal ends part way through a bit"
	PartialByte   = "cassette: block %d: %d bits is not a whole number of bytes"
	BlockCount    = "cassette: expected 2 blocks but found %d"
	BadPreamble   = "cassette: preamble: %v"
	BadMainBlock  = "cassette: main block: %v"
	WrongFileType = "cassette: file type %#02x is not tokenized BASIC"
)

const logTag = "cassette"

// thresholds used when measuring the signal. a high pulse narrower than the
// short threshold is a short pulse. a low period longer than the gap
// threshold ends a block.
const (
	highThreshold  = 0xc0
	lowThreshold   = 0x40
	shortThreshold = (shortPulse + longPulse) / 2
	gapThreshold   = longPulse * 2
)

type level int

const (
	levelHigh level = iota
	levelLow
	levelSilent
)

func measure(v uint8) level {
	if v > highThreshold {
		return levelHigh
	}
	if v < lowThreshold {
		return levelLow
	}
	return levelSilent
}

// Demodulate returns the bytes of every block in the sample stream. Blocks are
// separated by silence or by a long low period.
func Demodulate(samples []uint8) ([][]uint8, error) {
	var blocks [][]uint8

	// widths of the high part of each pulse in the current block
	var widths []int

	endBlock := func() error {
		if len(widths) == 0 {
			return nil
		}
		b, err := decodePulses(len(blocks), widths)
		if err != nil {
			return err
		}
		blocks = append(blocks, b)
		widths = widths[:0]
		return nil
	}

	for i := 0; i < len(samples); {
		l := measure(samples[i])
		j := i + 1
		for j < len(samples) && measure(samples[j]) == l {
			j++
		}
		n := j - i

		switch l {
		case levelHigh:
			widths = append(widths, n)
		case levelLow:
			if n > gapThreshold {
				if err := endBlock(); err != nil {
					return nil, err
				}
			}
		case levelSilent:
			if err := endBlock(); err != nil {
				return nil, err
			}
		}

		i = j
	}

	if err := endBlock(); err != nil {
		return nil, err
	}

	return blocks, nil
}

// a short pulse followed by a long pulse is a zero bit. three short pulses is
// a one bit.
func decodePulses(block int, widths []int) ([]uint8, error) {
	out := make([]uint8, 0, len(widths)/16)

	var b uint8
	var bits int

	emit := func(bit uint8) {
		b = (b << 1) | bit
		bits++
		if bits%8 == 0 {
			out = append(out, b)
			b = 0
		}
	}

	short := func(i int) bool {
		return widths[i] < shortThreshold
	}

	for i := 0; i < len(widths); {
		if !short(i) {
			return nil, curated.Errorf(BadPulse, block, widths[i])
		}
		if i+1 >= len(widths) {
			return nil, curated.Errorf(TruncatedBit, block)
		}
		if !short(i + 1) {
			emit(0)
			i += 2
			continue
		}
		if i+2 >= len(widths) {
			return nil, curated.Errorf(TruncatedBit, block)
		}
		if !short(i + 2) {
			return nil, curated.Errorf(BadPulse, block, widths[i+2])
		}
		emit(1)
		i += 3
	}

	if bits%8 != 0 {
		return nil, curated.Errorf(PartialByte, block, bits)
	}

	return out, nil
}

// Tape is the result of decoding a recording.
type Tape struct {
	Name     string
	FileType uint8
	Image    program.Image
}

// Decode demodulates the sample stream and interprets the preamble and main
// blocks.
func Decode(samples []uint8) (Tape, error) {
	blocks, err := Demodulate(samples)
	if err != nil {
		return Tape{}, err
	}
	if len(blocks) != 2 {
		return Tape{}, curated.Errorf(BlockCount, len(blocks))
	}

	var tp Tape

	tp.Name, tp.FileType, err = parseHeader(blocks[0])
	if err != nil {
		return Tape{}, curated.Errorf(BadPreamble, err)
	}
	if tp.FileType != FileTypeBasic {
		return Tape{}, curated.Errorf(WrongFileType, tp.FileType)
	}

	tp.Image, err = program.Parse(blocks[1])
	if err != nil {
		return Tape{}, curated.Errorf(BadMainBlock, err)
	}

	return tp, nil
}

func parseHeader(h []uint8) (string, uint8, error) {
	i := 0
	for i < len(h) && h[i] == SyncByte {
		i++
	}
	if i < SyncLength {
		logger.Logf(logger.Allow, logTag, "only %d sync bytes in preamble", i)
	}

	j := i
	for j < len(h) && h[j] == LeaderByte {
		j++
	}
	if j == i {
		return "", 0, curated.Errorf("no leader bytes")
	}
	if j >= len(h) {
		return "", 0, curated.Errorf("no file type")
	}
	fileType := h[j]

	k := j + 1
	for k < len(h) && h[k] != NameEnd {
		k++
	}
	if k >= len(h) {
		return "", 0, curated.Errorf("unterminated name")
	}

	return charset.Decode(h[j+1 : k]), fileType, nil
}
