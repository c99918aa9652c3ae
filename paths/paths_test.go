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

package paths_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/laser310/paths"
	"github.com/jetsetilly/laser310/test"
)

func TestPaths(t *testing.T) {
	// resource directories are created relative to the working directory
	t.Chdir(t.TempDir())

	pth, err := paths.ResourcePath("projects/demo", "prog.json")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".laser310/projects/demo/prog.json")

	_, err = os.Stat(".laser310/projects/demo")
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("projects", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".laser310/projects")

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".laser310/preferences")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".laser310")
}
