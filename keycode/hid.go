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

// USB HID usage IDs for the keys that are referred to by name elsewhere in
// the module. SDL scancodes share these values.
const (
	HIDA          KeyCode = 4
	HIDZ          KeyCode = 29
	HID1          KeyCode = 30
	HID0          KeyCode = 39
	HIDReturn     KeyCode = 40
	HIDEscape     KeyCode = 41
	HIDBackspace  KeyCode = 42
	HIDTab        KeyCode = 43
	HIDSpace      KeyCode = 44
	HIDF1         KeyCode = 58
	HIDF12        KeyCode = 69
	HIDRight      KeyCode = 79
	HIDLeft       KeyCode = 80
	HIDDown       KeyCode = 81
	HIDUp         KeyCode = 82
	HIDLeftCtrl   KeyCode = 224
	HIDLeftShift  KeyCode = 225
	HIDLeftAlt    KeyCode = 226
	HIDRightCtrl  KeyCode = 228
	HIDRightShift KeyCode = 229
	HIDRightAlt   KeyCode = 230
)

var hidNames = map[KeyCode]string{
	HIDReturn:     "Return",
	HIDEscape:     "Escape",
	HIDBackspace:  "Backspace",
	HIDTab:        "Tab",
	HIDSpace:      "Space",
	45:            "-",
	46:            "=",
	47:            "[",
	48:            "]",
	49:            "\\",
	51:            ";",
	52:            "'",
	53:            "`",
	54:            ",",
	55:            ".",
	56:            "/",
	57:            "CapsLock",
	73:            "Insert",
	74:            "Home",
	75:            "PageUp",
	76:            "Delete",
	77:            "End",
	78:            "PageDown",
	HIDRight:      "Right",
	HIDLeft:       "Left",
	HIDDown:       "Down",
	HIDUp:         "Up",
	HIDLeftCtrl:   "Left Ctrl",
	HIDLeftShift:  "Left Shift",
	HIDLeftAlt:    "Left Alt",
	HIDRightCtrl:  "Right Ctrl",
	HIDRightShift: "Right Shift",
	HIDRightAlt:   "Right Alt",
}

// HIDName returns a name for a native code, assuming the code is a USB HID
// usage ID. Codes without a known name are returned as a hex number.
func HIDName(c KeyCode) string {
	switch {
	case c >= HIDA && c <= HIDZ:
		return string(rune('A' + c - HIDA))
	case c >= HID1 && c < HID0:
		return string(rune('1' + c - HID1))
	case c == HID0:
		return "0"
	case c >= HIDF1 && c <= HIDF12:
		return fmt.Sprintf("F%d", c-HIDF1+1)
	}
	if n, ok := hidNames[c]; ok {
		return n
	}
	return fmt.Sprintf("%#x", int(c))
}
