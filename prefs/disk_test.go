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
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/laser310/curated"
	"github.com/jetsetilly/laser310/prefs"
	"github.com/jetsetilly/laser310/test"
)

func TestTypes(t *testing.T) {
	var i prefs.Int
	test.ExpectSuccess(t, i.Set("0x7ae9"))
	test.ExpectEquality(t, i.Get().(int), 0x7ae9)
	test.ExpectEquality(t, i.String(), "31465")
	i.SetFormat("%#04x")
	test.ExpectEquality(t, i.String(), "0x7ae9")
	test.ExpectFailure(t, i.Set("seven"))
	test.ExpectFailure(t, i.Set(1.5))

	var b prefs.Bool
	test.ExpectSuccess(t, b.Set("TRUE"))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectSuccess(t, b.Set("no"))
	test.ExpectEquality(t, b.Get().(bool), false)

	test.ExpectEquality(t, b.String(), "false")
}

func TestHooks(t *testing.T) {
	const outOfRange = "out of range: %d"

	var i prefs.Int
	i.SetHookPre(func(v prefs.Value) error {
		if v.(int) > 20 {
			return curated.Errorf(outOfRange, v)
		}
		return nil
	})

	var post int
	i.SetHookPost(func(v prefs.Value) error {
		post = v.(int)
		return nil
	})

	test.ExpectSuccess(t, i.Set(10))
	test.ExpectEquality(t, post, 10)

	// the pre-hook prevents the value being stored
	err := i.Set(21)
	test.ExpectSuccess(t, curated.Is(err, outOfRange))
	test.ExpectEquality(t, i.Get().(int), 10)
	test.ExpectEquality(t, post, 10)
}

func TestDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	var addr prefs.Int
	var interval prefs.Int
	addr.SetFormat("%#04x")

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk.Add("convert.startaddress", &addr))
	test.DemandSuccess(t, dsk.Add("session.interval", &interval))
	test.ExpectFailure(t, dsk.Add("bad;key", &interval))

	// loading a missing file leaves values untouched
	test.ExpectSuccess(t, interval.Set(10))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, interval.Get().(int), 10)

	test.ExpectSuccess(t, addr.Set(0x8000))
	test.ExpectSuccess(t, dsk.Save())

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\nconvert.startaddress :: 0x8000\nsession.interval :: 10\n")

	// a second disk instance sharing the file
	var other prefs.Bool
	dsk2, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk2.Add("export.digest", &other))
	test.ExpectSuccess(t, other.Set(true))
	test.ExpectSuccess(t, dsk2.Save())

	// values are reloaded and unknown entries are preserved
	test.ExpectSuccess(t, addr.Set(0))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, addr.Get().(int), 0x8000)

	data, err = os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\nconvert.startaddress :: 0x8000\nexport.digest :: true\nsession.interval :: 10\n")

	// command line values take precedence over the file
	prefs.PushCommandLineStack("session.interval::5")
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, interval.Get().(int), 5)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// Set() by key
	test.ExpectSuccess(t, dsk.Set("session.interval", "20"))
	test.ExpectEquality(t, interval.Get().(int), 20)
	test.ExpectFailure(t, dsk.Set("unknown", "20"))
}

func TestInvalidFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("not a prefs file\n"), 0600))

	var i prefs.Int
	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk.Add("session.interval", &i))
	test.ExpectFailure(t, dsk.Load())
}
