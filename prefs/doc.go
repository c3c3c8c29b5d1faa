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

// Package prefs facilitates the storage of preferential values in the
// application. The Bool and Int types wrap a live value that can be read and
// changed at any time. Callback functions can be set
// that run immediately before and after a value changes.
//
// Values are associated with a key and collected on a Disk. The Disk type
// loads and saves the values to a text file. Each line of the file is of the
// form:
//
//	key :: value
//
// Lines in the file that refer to keys that have not been added to the Disk
// are preserved when the file is saved. This means that more than one Disk
// instance can share the same file.
//
// The command line stack allows values to be overridden for a single run of
// the application. Overridden values are applied by the next call to
// Disk.Load(). For example:
//
//	prefs.PushCommandLineStack("key_left::80; key_right::79")
package prefs
