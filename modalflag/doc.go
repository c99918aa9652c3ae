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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a method of handling program modes and sub-modes, each
// with their own flags.
//
// Unlike flag.FlagSet, where Parse() is called with the arguments, the
// arguments are given to NewArgs() and Parse() is called with no arguments.
// This allows the same arguments to be parsed in stages as the mode of the
// program is discovered. For example (error handling not shown):
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CONVERT", "VERIFY")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "VERIFY":
//		md.NewMode()
//		list := md.AddBool("list", false, "list program")
//		_, _ = md.Parse()
//		verify(md.GetArg(0), *list)
//	}
//
// The first sub-mode given to AddSubModes() is the default mode. It is
// selected if the first argument after the flags is not the name of a mode.
// Mode names are case insensitive and are always returned in upper case.
//
// Parse() returns ParseHelp when the -help flag has been given. A help message
// for the current mode, including the list of sub-modes and any additional
// help, will have been written to the Output field.
//
// Once parsed, the non-flag arguments are available with RemainingArgs() and
// GetArg().
package modalflag
