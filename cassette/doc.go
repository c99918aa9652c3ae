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

// Package cassette converts a program image into the audio signal expected by
// the cassette interface of the Laser 310, and back again.
//
// A recording consists of two blocks. The preamble block contains the
// synchronisation bytes, the file type and the name of the program. The main
// block contains the program image, as returned by program.Image.Bytes().
//
// Bits are frequency shift keyed. Each bit lasts for 36 samples at 22050Hz
// and is made of full amplitude square pulses: one short and one long pulse
// for a zero bit and three short pulses for a one bit. Bytes are sent most
// significant bit first.
//
// The Mixer interface allows the modulated sample stream to be sent to any
// number of consumers. The wavwriter and digest packages both implement the
// interface.
//
// For verification, Demodulate() recovers the bytes of each block from a
// sample stream and Decode() interprets those blocks.
package cassette
