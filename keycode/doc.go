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

// Package keycode defines the single flat code space shared by keyboard keys
// and joystick inputs.
//
// Codes below BaseButton belong to the platform. In practice these are USB HID
// usage IDs (the same values SDL uses for scancodes) and are all well below
// BaseButton.
//
// The three ranges above the native range encode joystick buttons, the two
// ends of each joystick axis, and the nine positions of each joystick hat:
//
//	button:  BaseButton | joy<<8 | button
//	axis:    BaseAxis   | joy<<8 | axis<<4 | end
//	hat:     BaseHat    | joy<<8 | hat<<4  | (y+1)*3 + (x+1)
//
// Each Encode function has an exact inverse Decode function. Decoding a code
// that lies outside the expected range is a programming error and will cause
// a panic.
//
// Name() returns a human readable name for any code. Native codes are named
// by a function supplied by the platform. HIDName() is a fallback that can be
// used by platforms that have no names of their own.
package keycode
