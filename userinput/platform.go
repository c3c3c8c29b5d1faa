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
	"time"

	"github.com/jetsetilly/fretinput/controls"
	"github.com/jetsetilly/fretinput/keycode"
)

// Joystick describes a joystick device that was present when the platform was
// initialised.
type Joystick struct {
	// the device index. used as the joystick number in key codes
	ID int

	Name       string
	NumAxes    int
	NumHats    int
	NumButtons int
}

// Platform is the source of raw events. Implementations translate the
// platform's native events into the Event types of this package.
type Platform interface {
	// Poll returns the next event in the queue or nil if the queue is empty.
	// Poll must never block.
	Poll() Event

	// Pending returns the number of events that Poll() will return before it
	// returns nil. Events posted after the call to Pending() are not counted.
	Pending() int

	// Post adds an event to the end of the queue. It must be safe to call
	// Post() from any goroutine.
	Post(ev Event) error

	// Joysticks returns the joysticks that were present when the platform was
	// initialised.
	Joysticks() []Joystick

	// SetKeyRepeat enables the generation of repeated key presses while a
	// key is held down. A delay of zero disables key repeat.
	SetKeyRepeat(delay time.Duration, interval time.Duration)

	// KeyName returns the name of a native key code.
	KeyName(key keycode.KeyCode) string
}

// MusicNotifier is implemented by music players that can signal the end of
// a track. The function may be called from any goroutine. A nil function
// removes the notification.
type MusicNotifier interface {
	SetEndEvent(func())
}

// ControlsLoader returns a new instance of the game controls. It is called by
// NewInput() and by Input.ReloadControls().
type ControlsLoader func() (*controls.Controls, error)
