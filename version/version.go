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
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name used when reporting the version.
const ApplicationName = "Laser310"

// number is set at link time:
//
//	-ldflags "-X github.com/jetsetilly/laser310/version.number=v0.1.0"
var number string

// decided once by init()
var (
	version  string
	revision string
)

// vcsInfo extracts the revision and the dirty flag from the build settings. ok
// is false if the binary was built without vcs stamping.
func vcsInfo(settings []debug.BuildSetting) (rev string, dirty bool, ok bool) {
	for _, s := range settings {
		switch s.Key {
		case "vcs":
			ok = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	return rev, dirty, ok
}

func init() {
	var vcs bool

	revision = "no revision information"
	if info, ok := debug.ReadBuildInfo(); ok {
		var rev string
		var dirty bool
		rev, dirty, vcs = vcsInfo(info.Settings)
		if rev != "" {
			revision = rev
			if dirty {
				revision += "+dirty"
			}
		}
	}

	// "unreleased" when built from a repository without a version number.
	// "local" when there is neither, for example with "go run ."
	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name and version in a form suitable for
// the VERSION mode of the command line.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}
