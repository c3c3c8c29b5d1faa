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

package userinput

import (
	"image"

	"github.com/jetsetilly/fretinput/keycode"
)

// Event represents all the different type of events that can occur in the
// platform queue.
type Event any

// EventQuit is sent when the platform (window manager or terminal) has
// requested that the application end.
type EventQuit struct{}

// EventKeyboard is sent for a native key press or release. Text is the
// character generated by the key press, if any. Text is always zero for key
// releases.
type EventKeyboard struct {
	Key  keycode.KeyCode
	Text rune
	Down bool
}

// EventMouseMotion is sent when the mouse moves. Rel is the movement since
// the previous motion event.
type EventMouseMotion struct {
	Pos image.Point
	Rel image.Point
}

// Mouse buttons are numbered from one. Wheel movement is delivered as a press
// and release of the wheel buttons.
const (
	MouseButtonLeft      = 1
	MouseButtonMiddle    = 2
	MouseButtonRight     = 3
	MouseButtonWheelUp   = 4
	MouseButtonWheelDown = 5
)

// EventMouseButton is sent when a mouse button is pressed or released.
type EventMouseButton struct {
	Button int
	Pos    image.Point
	Down   bool
}

// EventResize is sent when the window has been resized.
type EventResize struct {
	Size image.Point
}

// EventMusicFinished is sent when the current music track has finished
// playing.
type EventMusicFinished struct{}

// EventJoyButton is sent when a joystick button is pressed or released.
type EventJoyButton struct {
	Joy    int
	Button int
	Down   bool
}

// EventJoyAxis is sent when a joystick axis moves. Value is in the range -1.0
// to 1.0.
type EventJoyAxis struct {
	Joy   int
	Axis  int
	Value float32
}

// EventJoyHat is sent when a joystick hat changes position.
type EventJoyHat struct {
	Joy   int
	Hat   int
	Value keycode.HatPosition
}
