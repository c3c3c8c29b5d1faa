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
	"github.com/jetsetilly/fretinput/keycode"
	"github.com/jetsetilly/fretinput/logger"
)

// device records the last known state of each axis and hat of a joystick.
type device struct {
	Joystick Joystick

	// -1, 0 or 1 for each axis
	Axes []int

	Hats []keycode.HatPosition
}

// devices maps joystick ID to device. only joysticks that were present at
// initialisation time are added.
type devices map[int]*device

func newDevices(joysticks []Joystick) devices {
	d := make(devices)

	for _, j := range joysticks {
		if j.ID < 0 || j.ID >= keycode.MaxJoysticks {
			logger.Logf(logger.Allow, "userinput", "joystick %d (%s) cannot be used", j.ID, j.Name)
			continue
		}

		numAxes := j.NumAxes
		if numAxes > keycode.MaxAxes {
			logger.Logf(logger.Allow, "userinput", "joystick %d has %d axes. only %d will be used", j.ID, numAxes, keycode.MaxAxes)
			numAxes = keycode.MaxAxes
		}

		numHats := j.NumHats
		if numHats > keycode.MaxHats {
			logger.Logf(logger.Allow, "userinput", "joystick %d has %d hats. only %d will be used", j.ID, numHats, keycode.MaxHats)
			numHats = keycode.MaxHats
		}

		dev := &device{
			Joystick: j,
			Axes:     make([]int, max(numAxes, 0)),
			Hats:     make([]keycode.HatPosition, max(numHats, 0)),
		}

		d[j.ID] = dev
		logger.Logf(logger.Allow, "userinput", "joystick %d: %s (%d axes, %d hats, %d buttons)", j.ID, j.Name, j.NumAxes, j.NumHats, j.NumButtons)
	}

	return d
}

// axis returns a pointer to the recorded state of the axis. returns false if
// the joystick or axis is unknown.
func (d devices) axis(joy int, axis int) (*int, bool) {
	dev, ok := d[joy]
	if !ok {
		return nil, false
	}
	if axis < 0 || axis >= len(dev.Axes) {
		return nil, false
	}
	return &dev.Axes[axis], true
}

// hat returns a pointer to the recorded state of the hat. returns false if the
// joystick or hat is unknown.
func (d devices) hat(joy int, hat int) (*keycode.HatPosition, bool) {
	dev, ok := d[joy]
	if !ok {
		return nil, false
	}
	if hat < 0 || hat >= len(dev.Hats) {
		return nil, false
	}
	return &dev.Hats[hat], true
}
