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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety and only written to
// disk when mixing has ended. A file is never created for an incomplete
// recording.
package wavwriter

import (
	"bytes"
	"io"
	"os"

	"github.com/youpy/go-wav"

	"github.com/jetsetilly/laser310/cassette"
	"github.com/jetsetilly/laser310/curated"
	"github.com/jetsetilly/laser310/logger"
)

// WavWriter implements the cassette.Mixer interface.
type WavWriter struct {
	filename string
	buffer   []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename")
	}

	aw := &WavWriter{
		filename: filename,
		buffer:   make([]wav.Sample, 0),
	}

	return aw, nil
}

// SetAudio implements the cassette.Mixer interface.
func (aw *WavWriter) SetAudio(samples []uint8) error {
	for _, s := range samples {
		w := wav.Sample{}
		w.Values[0] = int(s)
		aw.buffer = append(aw.buffer, w)
	}
	return nil
}

// WriteTo encodes the buffered samples as a WAV file and writes them to w.
func (aw *WavWriter) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer

	enc := wav.NewWriter(&b, uint32(len(aw.buffer)), cassette.NumChannels,
		cassette.SampleRate, cassette.BitDepth)
	if enc == nil {
		return 0, curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	if err := enc.WriteSamples(aw.buffer); err != nil {
		return 0, curated.Errorf("wavwriter: %v", err)
	}

	n, err := b.WriteTo(w)
	if err != nil {
		return n, curated.Errorf("wavwriter: %v", err)
	}

	return n, nil
}

// EndMixing implements the cassette.Mixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	var b bytes.Buffer
	if _, err := aw.WriteTo(&b); err != nil {
		return err
	}

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	if _, err := b.WriteTo(f); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
