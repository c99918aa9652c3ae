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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/laser310/prefs"
	"github.com/jetsetilly/laser310/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("tokenizer.rem::0x80")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "tokenizer.rem::0x80")

	// single value but with additional space
	prefs.PushCommandLineStack("   tokenizer.rem:: 0x80 ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "tokenizer.rem::0x80")

	// more than one key/value in the prefs string. remaining string will be
	// sorted
	prefs.PushCommandLineStack("tokenizer.rem::0x80; session.interval::5")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "session.interval::5; tokenizer.rem::0x80")

	// invalid prefs string
	prefs.PushCommandLineStack("tokenizer.rem")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// partially invalid prefs string
	prefs.PushCommandLineStack("tokenizer.rem;session.interval::5")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "session.interval::5")

	// values are consumed by GetCommandLinePref()
	prefs.PushCommandLineStack("tokenizer.rem::0x80;session.interval::5")
	ok, v := prefs.GetCommandLinePref("session.interval")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "5")
	ok, _ = prefs.GetCommandLinePref("session.interval")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "tokenizer.rem::0x80")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("tokenizer.rem::0x80")

	// add another command line group
	prefs.PushCommandLineStack("session.interval::5")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "session.interval::5")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "tokenizer.rem::0x80")
}
