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

package keycode_test

import (
	"testing"

	"github.com/jetsetilly/fretinput/keycode"
	"github.com/jetsetilly/fretinput/test"
)

var hatPositions = []keycode.HatPosition{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

func TestButtonRoundTrip(t *testing.T) {
	for joy := 0; joy < keycode.MaxJoysticks; joy++ {
		for button := 0; button < keycode.MaxButtons; button++ {
			c := keycode.EncodeButton(joy, button)
			test.DemandEquality(t, c.Range(), keycode.RangeButton, joy, button)
			j, b := keycode.DecodeButton(c)
			test.DemandEquality(t, j, joy, joy, button)
			test.DemandEquality(t, b, button, joy, button)
		}
	}
}

func TestAxisRoundTrip(t *testing.T) {
	for joy := 0; joy < keycode.MaxJoysticks; joy++ {
		for axis := 0; axis < keycode.MaxAxes; axis++ {
			for _, end := range []keycode.End{keycode.Low, keycode.High} {
				c := keycode.EncodeAxis(joy, axis, end)
				test.DemandEquality(t, c.Range(), keycode.RangeAxis, joy, axis)
				j, a, e := keycode.DecodeAxis(c)
				test.DemandEquality(t, j, joy, joy, axis)
				test.DemandEquality(t, a, axis, joy, axis)
				test.DemandEquality(t, e, end, joy, axis)
			}
		}
	}
}

func TestHatRoundTrip(t *testing.T) {
	for joy := 0; joy < keycode.MaxJoysticks; joy++ {
		for hat := 0; hat < keycode.MaxHats; hat++ {
			for _, pos := range hatPositions {
				c := keycode.EncodeHat(joy, hat, pos)
				test.DemandEquality(t, c.Range(), keycode.RangeHat, joy, hat, pos)
				j, h, p := keycode.DecodeHat(c)
				test.DemandEquality(t, j, joy, joy, hat, pos)
				test.DemandEquality(t, h, hat, joy, hat, pos)
				test.DemandEquality(t, p, pos, joy, hat, pos)
			}
		}
	}
}

func TestDisjointness(t *testing.T) {
	seen := make(map[keycode.KeyCode]bool)
	add := func(c keycode.KeyCode) {
		t.Helper()
		test.DemandEquality(t, seen[c], false, c)
		test.DemandEquality(t, c >= keycode.BaseButton, true, c)
		seen[c] = true
	}

	for joy := 0; joy < keycode.MaxJoysticks; joy++ {
		for button := 0; button < keycode.MaxButtons; button++ {
			add(keycode.EncodeButton(joy, button))
		}
		for axis := 0; axis < keycode.MaxAxes; axis++ {
			add(keycode.EncodeAxis(joy, axis, keycode.Low))
			add(keycode.EncodeAxis(joy, axis, keycode.High))
		}
		for hat := 0; hat < keycode.MaxHats; hat++ {
			for _, pos := range hatPositions {
				add(keycode.EncodeHat(joy, hat, pos))
			}
		}
	}

	// the largest HID usage ID is well below the joystick ranges
	test.ExpectEquality(t, keycode.HIDRightAlt.Range(), keycode.RangeNative)
	test.ExpectEquality(t, keycode.KeyCode(0xffff).Range(), keycode.RangeNative)
	test.ExpectEquality(t, keycode.KeyCode(-1).Range(), keycode.RangeInvalid)
	test.ExpectEquality(t, keycode.KeyCode(0x40000).Range(), keycode.RangeInvalid)
}

func TestHatEncoding(t *testing.T) {
	// the value part of a hat code is (y+1)*3 + (x+1)
	test.ExpectEquality(t, keycode.EncodeHat(0, 0, keycode.HatPosition{X: -1, Y: -1}), keycode.BaseHat)
	test.ExpectEquality(t, keycode.EncodeHat(0, 0, keycode.HatCentre), keycode.BaseHat+4)
	test.ExpectEquality(t, keycode.EncodeHat(0, 0, keycode.HatPosition{X: 1, Y: 1}), keycode.BaseHat+8)
	test.ExpectEquality(t, keycode.EncodeHat(2, 3, keycode.HatPosition{X: 0, Y: -1}), keycode.BaseHat+0x200+0x30+1)
	test.ExpectEquality(t, keycode.EncodeAxis(1, 2, keycode.High), keycode.BaseAxis+0x100+0x20+1)
	test.ExpectEquality(t, keycode.EncodeButton(1, 7), keycode.BaseButton+0x107)
}

func TestNames(t *testing.T) {
	test.ExpectEquality(t, keycode.Name(keycode.EncodeButton(0, 2), nil), "Joy #1, C")
	test.ExpectEquality(t, keycode.Name(keycode.EncodeButton(3, 0), nil), "Joy #4, A")
	test.ExpectEquality(t, keycode.Name(keycode.EncodeAxis(0, 1, keycode.High), nil), "Joy #1, axis 1 high")
	test.ExpectEquality(t, keycode.Name(keycode.EncodeAxis(1, 0, keycode.Low), nil), "Joy #2, axis 0 low")
	test.ExpectEquality(t, keycode.Name(keycode.EncodeHat(0, 0, keycode.HatPosition{X: 1, Y: -1}), nil), "Joy #1, hat 0 (1, -1)")

	// native codes are delegated
	native := func(c keycode.KeyCode) string {
		return "native"
	}
	test.ExpectEquality(t, keycode.Name(keycode.HIDReturn, native), "native")
	test.ExpectEquality(t, keycode.Name(keycode.EncodeButton(0, 0), native), "Joy #1, A")

	// and the fallback is the HID name
	test.ExpectEquality(t, keycode.Name(keycode.HIDReturn, nil), "Return")
	test.ExpectEquality(t, keycode.Name(keycode.KeyCode(-5), nil), "Unknown (-0x5)")
}

func TestHIDNames(t *testing.T) {
	test.ExpectEquality(t, keycode.HIDName(keycode.HIDA), "A")
	test.ExpectEquality(t, keycode.HIDName(keycode.HIDZ), "Z")
	test.ExpectEquality(t, keycode.HIDName(keycode.HID1), "1")
	test.ExpectEquality(t, keycode.HIDName(keycode.HID0), "0")
	test.ExpectEquality(t, keycode.HIDName(keycode.HIDF1), "F1")
	test.ExpectEquality(t, keycode.HIDName(keycode.HIDF12), "F12")
	test.ExpectEquality(t, keycode.HIDName(keycode.HIDRightShift), "Right Shift")
	test.ExpectEquality(t, keycode.HIDName(keycode.KeyCode(0x1ff)), "0x1ff")
}

func TestDecodePanics(t *testing.T) {
	expectPanic := func(f func()) {
		t.Helper()
		defer func() {
			t.Helper()
			test.ExpectInequality(t, recover(), nil)
		}()
		f()
	}

	expectPanic(func() { keycode.DecodeButton(keycode.HIDReturn) })
	expectPanic(func() { keycode.DecodeAxis(keycode.EncodeButton(0, 0)) })
	expectPanic(func() { keycode.DecodeHat(keycode.EncodeAxis(0, 0, keycode.High)) })
	expectPanic(func() { keycode.EncodeAxis(0, keycode.MaxAxes, keycode.High) })
	expectPanic(func() { keycode.EncodeHat(0, 0, keycode.HatPosition{X: 2}) })
	expectPanic(func() { keycode.EncodeButton(keycode.MaxJoysticks, 0) })
}
