// This file is part of Fretinput.
//
// Fretinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Fretinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Fretinput.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It allows a program to be run in one of several modes, each mode
// having its own set of flags.
//
// Arguments are given with NewArgs() and the list of modes with AddModes().
// The first mode in the list is the default mode. After Parse(), the
// selected mode is returned by Mode(). Flags for the selected mode are then
// added and Parse() is called again:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddModes("SDL", "TERM")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "SDL":
//		md.NewMode()
//		repeat := md.AddBool("repeat", false, "enable key repeat")
//		...
//	}
//
// Mode names are case insensitive. If the first non-flag argument is not a
// mode name then the default mode is selected and the argument is left for
// the next call to Parse().
package modalflag
