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

// Package controls maps KeyCodes to the logical controls of a player.
//
// The mapping is stored in a prefs file. Each control has a key in the file
// (eg. "key_left") and the value is a KeyCode, which may be a native key or a
// joystick input synthesised by the userinput package.
//
// Controls also keeps track of which controls are currently held.
package controls

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/fretinput/curated"
	"github.com/jetsetilly/fretinput/keycode"
	"github.com/jetsetilly/fretinput/logger"
	"github.com/jetsetilly/fretinput/prefs"
)

// Control is a bit flag representing a single logical control. Control
// values can be combined.
type Control int

// List of valid Control values.
const (
	Left Control = 1 << iota
	Right
	Up
	Down
	Cancel
	Action1
	Action2
	Key1
	Key2
	Key3
	Key4
	Key5

	None Control = 0
)

// Keys are the fret controls. Actions are the pick controls.
var (
	Keys    = []Control{Key1, Key2, Key3, Key4, Key5}
	Actions = []Control{Action1, Action2}
)

// definition of a control: its name in the prefs file and the default key.
type definition struct {
	control Control
	name    string
	label   string
	def     keycode.KeyCode
}

// all controls in the order they are applied. if two controls share a key
// then the control later in the list wins.
var definitions = []definition{
	{control: Left, name: "key_left", label: "Left", def: keycode.HIDLeft},
	{control: Right, name: "key_right", label: "Right", def: keycode.HIDRight},
	{control: Up, name: "key_up", label: "Up", def: keycode.HIDUp},
	{control: Down, name: "key_down", label: "Down", def: keycode.HIDDown},
	{control: Cancel, name: "key_cancel", label: "Cancel", def: keycode.HIDEscape},
	{control: Action1, name: "key_action1", label: "Pick", def: keycode.HIDReturn},
	{control: Action2, name: "key_action2", label: "Secondary Pick", def: keycode.HIDRightShift},
	{control: Key1, name: "key_1", label: "Fret #1", def: keycode.HIDF1},
	{control: Key2, name: "key_2", label: "Fret #2", def: keycode.HIDF1 + 1},
	{control: Key3, name: "key_3", label: "Fret #3", def: keycode.HIDF1 + 2},
	{control: Key4, name: "key_4", label: "Fret #4", def: keycode.HIDF1 + 3},
	{control: Key5, name: "key_5", label: "Fret #5", def: keycode.HIDF1 + 4},
}

func (c Control) String() string {
	if c == None {
		return "None"
	}

	s := make([]string, 0, 1)
	for _, d := range definitions {
		if c&d.control == d.control {
			s = append(s, d.label)
		}
	}
	if len(s) == 0 {
		return fmt.Sprintf("Control(%#x)", int(c))
	}
	return strings.Join(s, "|")
}

// PrefsName returns the key used for the control in the prefs file. Returns
// the empty string if Control is not a single control.
func (c Control) PrefsName() string {
	for _, d := range definitions {
		if d.control == c {
			return d.name
		}
	}
	return ""
}

// UnknownControl is returned by SetKey() when the Control is not valid.
const UnknownControl = "controls: unknown control: %v"

// InvalidKey is returned when a key code cannot be mapped to a control.
const InvalidKey = "controls: invalid key code: %#x"

// name of the key repeat value in the prefs file.
const repeatName = "key_repeat"

// Controls is a mapping from KeyCode to Control. It also tracks which
// controls are held.
type Controls struct {
	dsk  *prefs.Disk
	keys map[Control]*prefs.Int

	// whether key repeat should be enabled by the application
	repeat prefs.Bool

	mapping map[keycode.KeyCode]Control
	reverse map[Control]keycode.KeyCode

	flags Control
}

// NewControls is the preferred method of initialisation for the Controls
// type. Values are loaded from the prefs file at path. If the file does not
// exist then the default mapping is used.
//
// An empty path creates Controls with the default mapping that cannot be
// saved.
func NewControls(path string) (*Controls, error) {
	c := &Controls{
		keys: make(map[Control]*prefs.Int),
	}

	if path != "" {
		var err error
		c.dsk, err = prefs.NewDisk(path)
		if err != nil {
			return nil, curated.Errorf("controls: %v", err)
		}
	}

	for _, d := range definitions {
		v := &prefs.Int{}
		if err := v.Set(int(d.def)); err != nil {
			return nil, curated.Errorf("controls: %v", err)
		}
		v.SetHookPre(validKey)
		c.keys[d.control] = v
		if c.dsk != nil {
			if err := c.dsk.Add(d.name, v); err != nil {
				return nil, curated.Errorf("controls: %v", err)
			}
		}
	}

	if c.dsk != nil {
		if err := c.dsk.Add(repeatName, &c.repeat); err != nil {
			return nil, curated.Errorf("controls: %v", err)
		}
		if err := c.dsk.Load(); err != nil {
			return nil, curated.Errorf("controls: %v", err)
		}
	}

	c.build()

	// the mapping is rebuilt whenever a key changes. the hook is added after
	// the initial load so that the mapping is only built once on creation
	for _, v := range c.keys {
		v.SetHookPost(func(_ prefs.Value) error {
			c.flags = None
			c.build()
			return nil
		})
	}

	return c, nil
}

// validKey is the pre hook for the key values. the value is not changed if
// the key code is not in one of the valid ranges.
func validKey(value prefs.Value) error {
	k := keycode.KeyCode(value.(int))
	if k.Range() == keycode.RangeInvalid {
		return curated.Errorf(InvalidKey, int(k))
	}
	return nil
}

// build the mapping and reverse mapping from the current prefs values.
func (c *Controls) build() {
	c.mapping = make(map[keycode.KeyCode]Control)
	c.reverse = make(map[Control]keycode.KeyCode)

	for _, d := range definitions {
		k := keycode.KeyCode(c.keys[d.control].Get().(int))
		if o, ok := c.mapping[k]; ok {
			logger.Logf(logger.Allow, "controls", "%s and %s share the same key (%#x)", o, d.control, int(k))
			delete(c.reverse, o)
		}
		c.mapping[k] = d.control
		c.reverse[d.control] = k
	}
}

// Save the current mapping to the prefs file.
func (c *Controls) Save() error {
	if c.dsk == nil {
		return curated.Errorf("controls: no prefs file")
	}
	return c.dsk.Save()
}

// SetKey changes the key for a control. The held state of all controls is
// cleared.
func (c *Controls) SetKey(control Control, key keycode.KeyCode) error {
	v, ok := c.keys[control]
	if !ok {
		return curated.Errorf(UnknownControl, control)
	}
	if err := v.Set(int(key)); err != nil {
		return curated.Errorf("controls: %v", err)
	}
	return nil
}

// KeyRepeat returns true if the prefs file asks for key repeat to be enabled.
func (c *Controls) KeyRepeat() bool {
	return c.repeat.Get().(bool)
}

// SetKeyRepeat changes the key repeat preference. The change does not take
// effect until the controls are next loaded by the application.
func (c *Controls) SetKeyRepeat(repeat bool) error {
	return c.repeat.Set(repeat)
}

// Mapping returns the Control for the KeyCode.
func (c *Controls) Mapping(key keycode.KeyCode) (Control, bool) {
	ctrl, ok := c.mapping[key]
	return ctrl, ok
}

// KeyFor returns the KeyCode that is mapped to the Control.
func (c *Controls) KeyFor(control Control) (keycode.KeyCode, bool) {
	k, ok := c.reverse[control]
	return k, ok
}

// KeyPressed marks the control mapped to the KeyCode as held. Returns the
// control or None if the KeyCode is not mapped.
func (c *Controls) KeyPressed(key keycode.KeyCode) Control {
	ctrl, ok := c.mapping[key]
	if !ok {
		return None
	}
	c.Toggle(ctrl, true)
	return ctrl
}

// KeyReleased marks the control mapped to the KeyCode as released. Returns
// the control or None if the KeyCode is not mapped.
func (c *Controls) KeyReleased(key keycode.KeyCode) Control {
	ctrl, ok := c.mapping[key]
	if !ok {
		return None
	}
	c.Toggle(ctrl, false)
	return ctrl
}

// Toggle sets the held state of a control. Returns true if the state of the
// control has changed.
func (c *Controls) Toggle(control Control, state bool) bool {
	prev := c.flags
	if state {
		c.flags |= control
		return prev&control != control
	}
	c.flags &^= control
	return prev&control != 0
}

// State returns true if all controls in the argument are held.
func (c *Controls) State(control Control) bool {
	return control != None && c.flags&control == control
}

// Held returns all the controls that are currently held.
func (c *Controls) Held() Control {
	return c.flags
}
