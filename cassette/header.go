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
)

// Preamble block values.
const (
	SyncByte      = 0x80
	SyncLength    = 255
	LeaderByte    = 0xfe
	LeaderLength  = 5
	FileTypeBasic = 0xf0
	NameEnd       = 0x00
)

// Header returns the preamble block for a program with the name. The name is
// transcoded but is otherwise unchecked. ValidateName() should be used first.
func Header(name string) ([]uint8, error) {
	n, err := charset.Transcode(name)
	if err != nil {
		return nil, curated.Errorf("cassette: header: %v", err)
	}

	h := make([]uint8, 0, SyncLength+LeaderLength+1+len(n)+1)
	for range SyncLength {
		h = append(h, SyncByte)
	}
	for range LeaderLength {
		h = append(h, LeaderByte)
	}
	h = append(h, FileTypeBasic)
	h = append(h, n...)
	h = append(h, NameEnd)

	return h, nil
}
