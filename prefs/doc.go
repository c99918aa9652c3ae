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

// Package prefs facilitates the storage of preferential values. Preference
// values are typed (Bool, Int) and can be associated with a key and
// stored on disk with the Disk type.
//
//	var interval prefs.Int
//	dsk, _ := prefs.NewDisk(path)
//	dsk.Add("session.interval", &interval)
//	dsk.Load()
//
// The file on disk is a list of key/value pairs, one per line, separated by
// the " :: " sequence. Entries in the file that the Disk instance does not
// know about are preserved when the file is saved. This means that more than
// one Disk instance can safely use the same file.
//
// Values can be overridden for a single run of the program with the command
// line stack. PushCommandLineStack() parses a string of the form
//
//	"key::value; key::value"
//
// and any key that is subsequently Load()ed will take the value from the top
// of the stack instead of the value in the file. Command line values are
// never saved to disk unless they are changed with Set() and Save() is called.
//
// Values can be validated by setting a pre-hook with SetHookPre(). An error
// returned by the hook prevents the value from being stored.
package prefs
