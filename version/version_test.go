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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/laser310/test"
)

func TestVCSInfo(t *testing.T) {
	rev, dirty, ok := vcsInfo(nil)
	test.ExpectEquality(t, rev, "")
	test.ExpectFailure(t, dirty)
	test.ExpectFailure(t, ok)

	rev, dirty, ok = vcsInfo([]debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.modified", Value: "true"},
	})
	test.ExpectEquality(t, rev, "abc123")
	test.ExpectSuccess(t, dirty)
	test.ExpectSuccess(t, ok)

	_, dirty, _ = vcsInfo([]debug.BuildSetting{{Key: "vcs.modified", Value: "false"}})
	test.ExpectFailure(t, dirty)
}
