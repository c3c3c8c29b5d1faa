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

package main

import (
	"image"

	"github.com/jetsetilly/fretinput/controls"
	"github.com/jetsetilly/fretinput/keycode"
	"github.com/jetsetilly/fretinput/logger"
	"github.com/jetsetilly/fretinput/userinput"
)

// monitor is a listener for all event families. every event is logged.
type monitor struct {
	inp  *userinput.Input
	quit bool
}

func (mon *monitor) describe(key keycode.KeyCode) string {
	name := mon.inp.KeyName(key)
	if ctrl, ok := mon.inp.Controls().Mapping(key); ok {
		return name + " [" + ctrl.String() + "]"
	}
	return name
}

func (mon *monitor) KeyPressed(key keycode.KeyCode, text rune) bool {
	if text != 0 {
		logger.Logf(logger.Allow, "key", "pressed: %s (%#x) %q", mon.describe(key), int(key), text)
	} else {
		logger.Logf(logger.Allow, "key", "pressed: %s (%#x)", mon.describe(key), int(key))
	}

	ctrl := mon.inp.Controls().KeyPressed(key)
	if ctrl != controls.None {
		logger.Logf(logger.Allow, "controls", "held: %s", mon.inp.Controls().Held())
	}

	switch {
	case ctrl == controls.Cancel:
		mon.quit = true
	case key == keycode.HIDF12:
		if err := mon.inp.ReloadControls(); err != nil {
			logger.Log(logger.Allow, "controls", err)
		} else {
			logger.Log(logger.Allow, "controls", "reloaded")
		}
	}

	return true
}

func (mon *monitor) KeyReleased(key keycode.KeyCode) bool {
	logger.Logf(logger.Allow, "key", "released: %s (%#x)", mon.describe(key), int(key))
	if mon.inp.Controls().KeyReleased(key) != controls.None {
		logger.Logf(logger.Allow, "controls", "held: %s", mon.inp.Controls().Held())
	}
	return true
}

func (mon *monitor) MouseButtonPressed(button int, pos image.Point) bool {
	logger.Logf(logger.Allow, "mouse", "button %d pressed at %v", button, pos)
	return true
}

func (mon *monitor) MouseButtonReleased(button int, pos image.Point) bool {
	logger.Logf(logger.Allow, "mouse", "button %d released at %v", button, pos)
	return true
}

func (mon *monitor) MouseMoved(pos image.Point, rel image.Point) bool {
	logger.Logf(logger.Allow, "mouse", "moved to %v (%v)", pos, rel)
	return true
}

func (mon *monitor) ScreenResized(size image.Point) bool {
	logger.Logf(logger.Allow, "system", "resized to %dx%d", size.X, size.Y)
	return true
}

func (mon *monitor) RestartRequested() bool {
	logger.Log(logger.Allow, "system", "restart requested")
	return true
}

func (mon *monitor) MusicFinished() bool {
	logger.Log(logger.Allow, "system", "music finished")
	return true
}

func (mon *monitor) Quit() bool {
	logger.Log(logger.Allow, "system", "quit")
	mon.quit = true
	return true
}
