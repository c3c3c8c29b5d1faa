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

package keycode

import "fmt"

// KeyCode identifies a key, a joystick button, one end of a joystick axis or
// one position of a joystick hat.
type KeyCode int

// Base values for the three joystick ranges. Each range is 0x10000 codes wide
// and all are above the native key range.
const (
	BaseButton KeyCode = 0x10000
	BaseAxis   KeyCode = 0x20000
	BaseHat    KeyCode = 0x30000

	rangeWidth KeyCode = 0x10000
)

// Limits of the values that can be encoded.
const (
	MaxJoysticks = 256
	MaxButtons   = 256
	MaxAxes      = 16
	MaxHats      = 16
)

// Range of a KeyCode.
type Range int

// List of valid Range values.
const (
	RangeNative Range = iota
	RangeButton
	RangeAxis
	RangeHat
	RangeInvalid
)

func (r Range) String() string {
	switch r {
	case RangeNative:
		return "native"
	case RangeButton:
		return "button"
	case RangeAxis:
		return "axis"
	case RangeHat:
		return "hat"
	}
	return "invalid"
}

// Range returns the range the KeyCode belongs to.
func (c KeyCode) Range() Range {
	switch {
	case c < 0:
		return RangeInvalid
	case c < BaseButton:
		return RangeNative
	case c < BaseAxis:
		return RangeButton
	case c < BaseHat:
		return RangeAxis
	case c < BaseHat+rangeWidth:
		return RangeHat
	}
	return RangeInvalid
}

// IsJoystick returns true if KeyCode was synthesised from a joystick event.
func (c KeyCode) IsJoystick() bool {
	switch c.Range() {
	case RangeButton, RangeAxis, RangeHat:
		return true
	}
	return false
}

// End is one end of an axis.
type End int

// List of valid End values. The numeric values are part of the encoding.
const (
	Low  End = 0
	High End = 1
)

func (e End) String() string {
	if e == High {
		return "high"
	}
	return "low"
}

// HatPosition is one of the nine positions of a hat. Both X and Y are in the
// range -1 to 1. Positive Y is up.
type HatPosition struct {
	X int
	Y int
}

// HatCentre is the neutral position of a hat.
var HatCentre = HatPosition{}

func (p HatPosition) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Valid returns true if both components are in the range -1 to 1.
func (p HatPosition) Valid() bool {
	return p.X >= -1 && p.X <= 1 && p.Y >= -1 && p.Y <= 1
}

// IsCentre returns true if the position is neutral.
func (p HatPosition) IsCentre() bool {
	return p == HatCentre
}

func (p HatPosition) value() KeyCode {
	return KeyCode((p.Y+1)*3 + (p.X + 1))
}

func hatFromValue(v KeyCode) HatPosition {
	return HatPosition{
		X: int(v%3) - 1,
		Y: int(v/3) - 1,
	}
}

func checkJoystick(joy int) {
	if joy < 0 || joy >= MaxJoysticks {
		panic(fmt.Sprintf("keycode: joystick index out of range (%d)", joy))
	}
}

// EncodeButton returns the KeyCode for a joystick button.
func EncodeButton(joy int, button int) KeyCode {
	checkJoystick(joy)
	if button < 0 || button >= MaxButtons {
		panic(fmt.Sprintf("keycode: button index out of range (%d)", button))
	}
	return BaseButton | KeyCode(joy<<8) | KeyCode(button)
}

// EncodeAxis returns the KeyCode for one end of a joystick axis.
func EncodeAxis(joy int, axis int, end End) KeyCode {
	checkJoystick(joy)
	if axis < 0 || axis >= MaxAxes {
		panic(fmt.Sprintf("keycode: axis index out of range (%d)", axis))
	}
	if end != Low && end != High {
		panic(fmt.Sprintf("keycode: invalid axis end (%d)", end))
	}
	return BaseAxis | KeyCode(joy<<8) | KeyCode(axis<<4) | KeyCode(end)
}

// EncodeHat returns the KeyCode for one position of a joystick hat.
func EncodeHat(joy int, hat int, pos HatPosition) KeyCode {
	checkJoystick(joy)
	if hat < 0 || hat >= MaxHats {
		panic(fmt.Sprintf("keycode: hat index out of range (%d)", hat))
	}
	if !pos.Valid() {
		panic(fmt.Sprintf("keycode: invalid hat position %s", pos))
	}
	return BaseHat | KeyCode(joy<<8) | KeyCode(hat<<4) | pos.value()
}

func mustRange(c KeyCode, r Range) {
	if c.Range() != r {
		panic(fmt.Sprintf("keycode: %#x is not in the %s range", int(c), r))
	}
}

// DecodeButton is the inverse of EncodeButton.
func DecodeButton(c KeyCode) (joy int, button int) {
	mustRange(c, RangeButton)
	c -= BaseButton
	return int(c >> 8), int(c & 0xff)
}

// DecodeAxis is the inverse of EncodeAxis.
func DecodeAxis(c KeyCode) (joy int, axis int, end End) {
	mustRange(c, RangeAxis)
	c -= BaseAxis
	return int(c >> 8), int((c >> 4) & 0x0f), End(c & 0x0f)
}

// DecodeHat is the inverse of EncodeHat.
func DecodeHat(c KeyCode) (joy int, hat int, pos HatPosition) {
	mustRange(c, RangeHat)
	c -= BaseHat
	return int(c >> 8), int((c >> 4) & 0x0f), hatFromValue(c & 0x0f)
}
