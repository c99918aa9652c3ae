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
	"github.com/jetsetilly/laser310/curated"
	"github.com/jetsetilly/laser310/program"
)

// Mixer implementations receive a modulated sample stream.
type Mixer interface {
	SetAudio(samples []uint8) error

	// EndMixing is called when there are no more samples. An implementation
	// that writes to disk should do so at this point.
	EndMixing() error
}

// Encode returns the complete recording of a program.
func Encode(name string, img program.Image) ([]uint8, error) {
	h, err := Header(name)
	if err != nil {
		return nil, err
	}
	return Modulate(h, img.Bytes()), nil
}

// Record sends the samples to every mixer and ends mixing. The first error
// encountered is returned but every mixer is ended regardless.
func Record(samples []uint8, mixers ...Mixer) error {
	var rerr error

	for _, m := range mixers {
		if err := m.SetAudio(samples); err != nil {
			if rerr == nil {
				rerr = curated.Errorf("cassette: %v", err)
			}
		}
	}

	for _, m := range mixers {
		if err := m.EndMixing(); err != nil {
			if rerr == nil {
				rerr = curated.Errorf("cassette: %v", err)
			}
		}
	}

	return rerr
}
