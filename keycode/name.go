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

// NativeNamer returns the name of a code in the native range.
type NativeNamer func(KeyCode) string

// Name returns a human readable name for the KeyCode. Codes in the native
// range are named by the native function. If native is nil then HIDName() is
// used.
func Name(c KeyCode, native NativeNamer) string {
	switch c.Range() {
	case RangeHat:
		joy, hat, pos := DecodeHat(c)
		return fmt.Sprintf("Joy #%d, hat %d %s", joy+1, hat, pos)
	case RangeAxis:
		joy, axis, end := DecodeAxis(c)
		return fmt.Sprintf("Joy #%d, axis %d %s", joy+1, axis, end)
	case RangeButton:
		joy, button := DecodeButton(c)
		return fmt.Sprintf("Joy #%d, %c", joy+1, rune('A'+button))
	case RangeInvalid:
		return fmt.Sprintf("Unknown (%#x)", int(c))
	}

	if native == nil {
		return HIDName(c)
	}
	return native(c)
}
