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

// Package sdlinput implements the userinput.Platform interface with SDL.
//
// Keyboard events are identified by scancode. The text generated by a key
// press is taken from the text input event that SDL sends immediately after
// the key down event.
//
// Key repeat generated by the operating system is ignored. Repeated key
// presses are instead generated by the keyrepeat package at the rate
// requested by SetKeyRepeat().
//
// Joysticks are opened when the platform is created. Events from joysticks
// attached after that time are dropped.
//
// The SDL functions are not thread safe. With the exception of Post(), all
// functions must be called from the goroutine that called NewPlatform().
package sdlinput
