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
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/laser310/curated"
)

// sentinal error patterns returned by LoadWAV().
const (
	InvalidWAV     = "cassette: wav: %v"
	UnsupportedWAV = "cassette: wav: format is %dHz %dbit %d channel(s) but must be %dHz %dbit %d channel"
)

// LoadWAV reads the samples from a WAV file. The file must be in the same
// format as produced by the modulator.
func LoadWAV(r io.ReadSeeker) ([]uint8, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return nil, curated.Errorf(InvalidWAV, "error decoding")
	}

	if !dec.IsValidFile() {
		return nil, curated.Errorf(InvalidWAV, "not a valid wav file")
	}

	if dec.SampleRate != SampleRate || dec.BitDepth != BitDepth || dec.NumChans != NumChannels {
		return nil, curated.Errorf(UnsupportedWAV, dec.SampleRate, dec.BitDepth, dec.NumChans,
			SampleRate, BitDepth, NumChannels)
	}

	var buf *audio.IntBuffer
	var err error

	buf, err = dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf(InvalidWAV, err)
	}

	// eight bit samples are unsigned and are decoded as such
	s := make([]uint8, len(buf.Data))
	for i, v := range buf.Data {
		s[i] = uint8(v)
	}

	return s, nil
}
