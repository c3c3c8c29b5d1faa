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

package terminput

import (
	"github.com/jetsetilly/fretinput/keycode"
)

// list of ASCII codes for non-alphanumeric characters
const (
	keyInterrupt = 3
	keyBackspace = 8
	keyTab       = 9
	keyLineFeed  = 10
	keyReturn    = 13
	keyEsc       = 27
	keyDelete    = 127
)

// list of characters that can follow keyEsc
const (
	escCSI = '['
	escSS3 = 'O'
)

// key is a decoded key press.
type key struct {
	code keycode.KeyCode
	text rune
	quit bool
}

// unshifted and shifted punctuation. the value is the HID usage ID of the key
// on a US keyboard
var punctuation = map[byte]keycode.KeyCode{
	'-': 45, '_': 45,
	'=': 46, '+': 46,
	'[': 47, '{': 47,
	']': 48, '}': 48,
	'\\': 49, '|': 49,
	';': 51, ':': 51,
	'\'': 52, '"': 52,
	'`': 53, '~': 53,
	',': 54, '<': 54,
	'.': 55, '>': 55,
	'/': 56, '?': 56,
	'!': keycode.HID1,
	'@': keycode.HID1 + 1,
	'#': keycode.HID1 + 2,
	'$': keycode.HID1 + 3,
	'%': keycode.HID1 + 4,
	'^': keycode.HID1 + 5,
	'&': keycode.HID1 + 6,
	'*': keycode.HID1 + 7,
	'(': keycode.HID1 + 8,
	')': keycode.HID0,
}

// final byte of cursor and editing sequences. ESC [ x
var csiFinal = map[byte]keycode.KeyCode{
	'A': keycode.HIDUp,
	'B': keycode.HIDDown,
	'C': keycode.HIDRight,
	'D': keycode.HIDLeft,
	'H': 74,
	'F': 77,
}

// numbered sequences. ESC [ n ~
var csiNumbered = map[int]keycode.KeyCode{
	1:  74,
	2:  73,
	3:  76,
	4:  77,
	5:  75,
	6:  78,
	15: keycode.HIDF1 + 4,
	17: keycode.HIDF1 + 5,
	18: keycode.HIDF1 + 6,
	19: keycode.HIDF1 + 7,
	20: keycode.HIDF1 + 8,
	21: keycode.HIDF1 + 9,
	23: keycode.HIDF1 + 10,
	24: keycode.HIDF1 + 11,
}

// decode the bytes read from the terminal. a single read is assumed to
// contain only complete escape sequences. bytes that cannot be decoded are
// returned as the second value.
func decode(b []byte) ([]key, []byte) {
	var keys []key
	var unknown []byte

	for i := 0; i < len(b); i++ {
		c := b[i]

		switch {
		case c >= 'a' && c <= 'z':
			keys = append(keys, key{code: keycode.HIDA + keycode.KeyCode(c-'a'), text: rune(c)})
		case c >= 'A' && c <= 'Z':
			keys = append(keys, key{code: keycode.HIDA + keycode.KeyCode(c-'A'), text: rune(c)})
		case c >= '1' && c <= '9':
			keys = append(keys, key{code: keycode.HID1 + keycode.KeyCode(c-'1'), text: rune(c)})
		case c == '0':
			keys = append(keys, key{code: keycode.HID0, text: rune(c)})
		case c == ' ':
			keys = append(keys, key{code: keycode.HIDSpace, text: ' '})
		case c == keyReturn || c == keyLineFeed:
			keys = append(keys, key{code: keycode.HIDReturn, text: '\r'})
		case c == keyTab:
			keys = append(keys, key{code: keycode.HIDTab, text: '\t'})
		case c == keyBackspace || c == keyDelete:
			keys = append(keys, key{code: keycode.HIDBackspace, text: '\b'})
		case c == keyInterrupt:
			keys = append(keys, key{quit: true})
		case c == keyEsc:
			k, n, ok := decodeEscape(b[i+1:])
			if ok {
				keys = append(keys, k)
				i += n
			} else {
				keys = append(keys, key{code: keycode.HIDEscape, text: keyEsc})
			}
		default:
			if code, ok := punctuation[c]; ok {
				keys = append(keys, key{code: code, text: rune(c)})
			} else {
				unknown = append(unknown, c)
			}
		}
	}

	return keys, unknown
}

// decodeEscape decodes the bytes following an escape character. returns the
// key and the number of bytes used. returns false if the bytes are not a
// recognised sequence, in which case the escape is a key press on its own.
func decodeEscape(b []byte) (key, int, bool) {
	if len(b) < 2 {
		return key{}, 0, false
	}

	switch b[0] {
	case escSS3:
		// F1 to F4
		if b[1] >= 'P' && b[1] <= 'S' {
			return key{code: keycode.HIDF1 + keycode.KeyCode(b[1]-'P')}, 2, true
		}

	case escCSI:
		if code, ok := csiFinal[b[1]]; ok {
			return key{code: code}, 2, true
		}

		// linux console F1 to F5. ESC [ [ A to ESC [ [ E
		if b[1] == escCSI && len(b) >= 3 && b[2] >= 'A' && b[2] <= 'E' {
			return key{code: keycode.HIDF1 + keycode.KeyCode(b[2]-'A')}, 3, true
		}

		var n int
		for i := 1; i < len(b) && i < 4; i++ {
			switch {
			case b[i] >= '0' && b[i] <= '9':
				n = n*10 + int(b[i]-'0')
			case b[i] == '~':
				if code, ok := csiNumbered[n]; ok {
					return key{code: code}, i + 1, true
				}
				return key{}, 0, false
			default:
				return key{}, 0, false
			}
		}
	}

	return key{}, 0, false
}
