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

// KeyListener implementations receive key presses and releases. Joystick
// buttons, axes and hats are delivered as keys. Functions should return true
// if the event has been consumed.
type KeyListener interface {
	KeyPressed(key keycode.KeyCode, text rune) bool
	KeyReleased(key keycode.KeyCode) bool
}

// MouseListener implementations receive mouse events. Functions should
// return true if the event has been consumed.
type MouseListener interface {
	MouseButtonPressed(button int, pos image.Point) bool
	MouseButtonReleased(button int, pos image.Point) bool
	MouseMoved(pos image.Point, rel image.Point) bool
}

// SystemListener implementations receive events about the application and
// its window. Functions should return true if the event has been consumed.
//
// RestartRequested() is never called by the Input type. It is reserved for
// other parts of the application that need to notify system listeners.
type SystemListener interface {
	ScreenResized(size image.Point) bool
	RestartRequested() bool
	MusicFinished() bool
	Quit() bool
}

// sequence is an ordered set of listeners. Listeners are visited in reverse
// order of insertion.
//
// Listeners are compared with the == operator so the dynamic type of a
// listener must be comparable. In practice, listeners are pointers.
type sequence[T comparable] struct {
	listeners []T
}

func (s *sequence[T]) contains(l T) bool {
	for _, m := range s.listeners {
		if m == l {
			return true
		}
	}
	return false
}

// add listener to end of sequence. returns false if the listener was already
// present.
func (s *sequence[T]) add(l T) bool {
	if s.contains(l) {
		return false
	}
	s.listeners = append(s.listeners, l)
	return true
}

// remove listener from sequence. returns false if the listener was not
// present.
func (s *sequence[T]) remove(l T) bool {
	for i, m := range s.listeners {
		if m == l {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (s *sequence[T]) clear() {
	s.listeners = nil
}

func (s *sequence[T]) len() int {
	return len(s.listeners)
}

// broadcast calls f for each listener in reverse order of insertion, until f
// returns true. returns true if any call to f returned true.
//
// iteration is over a snapshot of the sequence. listeners added during the
// broadcast will not be visited and listeners removed during the broadcast
// will not be visited if they have not been visited already.
func (s *sequence[T]) broadcast(f func(T) bool) bool {
	if len(s.listeners) == 0 {
		return false
	}

	snapshot := make([]T, len(s.listeners))
	copy(snapshot, s.listeners)

	for i := len(snapshot) - 1; i >= 0; i-- {
		l := snapshot[i]
		if !s.contains(l) {
			continue
		}
		if f(l) {
			return true
		}
	}

	return false
}
