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

// Package userinput normalises input from real hardware and delivers it to
// interested listeners.
//
// It can be thought of as a translation layer between the platform (SDL or a
// terminal) and the rest of the application. Keyboard keys, mouse buttons,
// and joystick buttons, axes and hats are all delivered as key presses and
// releases in a single code space (see the keycode package). Analogue axes
// are reduced to the presses and releases of each end of the axis, with a
// threshold that avoids chatter. Hats are reduced to one active position at a
// time.
//
// Listeners are registered with the Input type for each of the three event
// families: keyboard, mouse and system. Keyboard listeners can be registered
// with priority. A priority listener is given the first refusal of a key
// event. If it consumes the event (by returning true) then no regular
// keyboard listener will see the event.
//
// Within a family, listeners are visited in the reverse order of
// registration. The most recently added listener (usually the screen that is
// currently focused) sees an event first.
//
// The Service() function should be called once per tick from the main
// thread. It never blocks. Listeners are called synchronously from within
// Service() and are free to add and remove listeners.
package userinput
