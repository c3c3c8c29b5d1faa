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

// Package terminput implements the userinput.Platform interface with a POSIX
// terminal in raw mode.
//
// A terminal only sends characters. Each character (or escape sequence) is
// translated to the USB HID usage ID of the key that most likely produced it
// and is delivered as a key press immediately followed by a key release. A
// terminal has no mouse or joystick support and key repeat is under the
// control of the terminal.
//
// The interrupt character (ctrl-c) is delivered as a quit event.
package terminput
