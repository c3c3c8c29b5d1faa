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

// AxisThreshold is the absolute axis value beyond which an end of the axis
// is considered pressed. Returning to within the threshold releases it.
const AxisThreshold = 0.8

// QuirkButton is the button pressed on behalf of the hat when the hat quirk
// is active.
const QuirkButton = 7

func (inp *Input) joyButton(ev EventJoyButton) {
	if ev.Joy < 0 || ev.Joy >= keycode.MaxJoysticks || ev.Button < 0 || ev.Button >= keycode.MaxButtons {
		inp.ignore(ev.Joy, "button", ev.Button)
		return
	}

	key := keycode.EncodeButton(ev.Joy, ev.Button)
	if ev.Down {
		inp.keyPressed(key, 0)
	} else {
		inp.keyReleased(key)
	}
}

func (inp *Input) joyAxis(ev EventJoyAxis) {
	state, ok := inp.devices.axis(ev.Joy, ev.Axis)
	if !ok {
		inp.ignore(ev.Joy, "axis", ev.Axis)
		return
	}

	switch {
	case ev.Value > AxisThreshold && *state != 1:
		*state = 1
		inp.keyPressed(keycode.EncodeAxis(ev.Joy, ev.Axis, keycode.High), 0)

	case ev.Value < -AxisThreshold && *state != -1:
		*state = -1
		inp.keyPressed(keycode.EncodeAxis(ev.Joy, ev.Axis, keycode.Low), 0)

	case *state != 0 && ev.Value >= -AxisThreshold && ev.Value <= AxisThreshold:
		end := keycode.Low
		if *state == 1 {
			end = keycode.High
		}
		*state = 0
		inp.keyReleased(keycode.EncodeAxis(ev.Joy, ev.Axis, end))
	}
}

func (inp *Input) joyHat(ev EventJoyHat) {
	state, ok := inp.devices.hat(ev.Joy, ev.Hat)
	if !ok {
		inp.ignore(ev.Joy, "hat", ev.Hat)
		return
	}

	if !ev.Value.Valid() {
		inp.ignore(ev.Joy, "hat position on hat", ev.Hat)
		return
	}

	value := ev.Value

	// a horizontal hat position on its own should not happen with a guitar
	// controller. it means that the release of button 7 was lost by the
	// driver. press the button again and treat the hat as being vertical
	switch value {
	case keycode.HatPosition{X: 1, Y: 0}:
		inp.keyPressed(keycode.EncodeButton(ev.Joy, QuirkButton), 0)
		value = keycode.HatPosition{X: 0, Y: -1}
	case keycode.HatPosition{X: -1, Y: 0}:
		inp.keyPressed(keycode.EncodeButton(ev.Joy, QuirkButton), 0)
		value = keycode.HatPosition{X: 0, Y: 1}
	}

	// only one hat position is ever active. moving directly from one position
	// to another releases the first and does not press the second
	if !value.IsCentre() && state.IsCentre() {
		*state = value
		inp.keyPressed(keycode.EncodeHat(ev.Joy, ev.Hat, value), 0)
		return
	}

	prior := *state
	*state = keycode.HatCentre
	inp.keyReleased(keycode.EncodeHat(ev.Joy, ev.Hat, prior))
}

// ignoredInput identifies a joystick input that produces events that cannot
// be used. an unknown joystick is identified by the joystick alone.
type ignoredInput struct {
	joy   int
	kind  string
	index int
}

// ignore logs the first event from an input that cannot be used. later events
// from the same input are dropped silently.
func (inp *Input) ignore(joy int, kind string, index int) {
	in := ignoredInput{joy: joy}
	if _, ok := inp.devices[joy]; ok {
		in.kind = kind
		in.index = index
	}

	if inp.ignored[in] {
		return
	}
	inp.ignored[in] = true

	if in.kind == "" {
		logger.Logf(logger.Allow, "userinput", "ignoring events from joystick %d", joy)
		return
	}
	logger.Logf(logger.Allow, "userinput", "ignoring %s %d on joystick %d", kind, index, joy)
}
