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
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/fretinput/assert"
	"github.com/jetsetilly/fretinput/controls"
	"github.com/jetsetilly/fretinput/curated"
	"github.com/jetsetilly/fretinput/keycode"
	"github.com/jetsetilly/fretinput/keyrepeat"
	"github.com/jetsetilly/fretinput/logger"
)

// Input drains the platform event queue and delivers the normalised events to
// the registered listeners.
//
// Input is not safe for concurrent use. All functions should be called from
// the same goroutine as Service().
type Input struct {
	platform Platform
	music    MusicNotifier
	loader   ControlsLoader

	controls  *controls.Controls
	joysticks []Joystick
	devices   devices

	// joystick inputs that have been logged as unusable
	ignored map[ignoredInput]bool

	priorityKeys sequence[KeyListener]
	keys         sequence[KeyListener]
	mouse        sequence[MouseListener]
	system       sequence[SystemListener]

	keyRepeat bool

	// the goroutine that created the Input
	owner assert.Owner
}

// NewInput is the preferred method of initialisation for the Input type.
//
// The music argument can be nil. If the loader argument is nil then the
// default controls are used.
func NewInput(platform Platform, music MusicNotifier, loader ControlsLoader) (*Input, error) {
	if platform == nil {
		return nil, curated.Errorf("userinput: no platform")
	}

	if loader == nil {
		loader = func() (*controls.Controls, error) {
			return controls.NewControls("")
		}
	}

	inp := &Input{
		platform: platform,
		music:    music,
		loader:   loader,
		ignored:  make(map[ignoredInput]bool),
		owner:    assert.NewOwner(),
	}

	var err error
	inp.controls, err = loader()
	if err != nil {
		return nil, curated.Errorf("userinput: %v", err)
	}

	// key repeat is off until requested
	inp.platform.SetKeyRepeat(0, 0)

	inp.joysticks = platform.Joysticks()
	logger.Logf(logger.Allow, "userinput", "%d joysticks found", len(inp.joysticks))
	inp.devices = newDevices(inp.joysticks)

	// the end of music callback can happen in any goroutine so the event is
	// posted to the platform queue and handled by Service()
	if inp.music != nil {
		inp.music.SetEndEvent(func() {
			err := inp.platform.Post(EventMusicFinished{})
			if err != nil {
				logger.Log(logger.Allow, "userinput", err)
			}
		})
	}

	return inp, nil
}

// Destroy removes all listeners and the music notification.
func (inp *Input) Destroy() {
	if inp.music != nil {
		inp.music.SetEndEvent(nil)
	}
	inp.priorityKeys.clear()
	inp.keys.clear()
	inp.mouse.clear()
	inp.system.clear()
}

// AddKeyListener adds a keyboard listener. If priority is true the listener
// will see key events before any regular listener. Adding a listener that is
// already present has no effect.
func (inp *Input) AddKeyListener(l KeyListener, priority bool) {
	if l == nil {
		return
	}
	if priority {
		inp.priorityKeys.add(l)
	} else {
		inp.keys.add(l)
	}
}

// RemoveKeyListener removes the listener from both the priority and regular
// keyboard listeners.
func (inp *Input) RemoveKeyListener(l KeyListener) {
	inp.priorityKeys.remove(l)
	inp.keys.remove(l)
}

// AddMouseListener adds a mouse listener. Adding a listener that is already
// present has no effect.
func (inp *Input) AddMouseListener(l MouseListener) {
	if l == nil {
		return
	}
	inp.mouse.add(l)
}

// RemoveMouseListener removes a mouse listener.
func (inp *Input) RemoveMouseListener(l MouseListener) {
	inp.mouse.remove(l)
}

// AddSystemListener adds a system listener. Adding a listener that is
// already present has no effect.
func (inp *Input) AddSystemListener(l SystemListener) {
	if l == nil {
		return
	}
	inp.system.add(l)
}

// RemoveSystemListener removes a system listener.
func (inp *Input) RemoveSystemListener(l SystemListener) {
	inp.system.remove(l)
}

// EnableKeyRepeat turns on the repetition of key presses while a key is held
// down.
func (inp *Input) EnableKeyRepeat() {
	inp.keyRepeat = true
	inp.platform.SetKeyRepeat(keyrepeat.DefaultDelay, keyrepeat.DefaultInterval)
}

// DisableKeyRepeat turns off key repetition.
func (inp *Input) DisableKeyRepeat() {
	inp.keyRepeat = false
	inp.platform.SetKeyRepeat(0, 0)
}

// KeyRepeat returns true if key repeat is enabled.
func (inp *Input) KeyRepeat() bool {
	return inp.keyRepeat
}

// Controls returns the current game controls. The returned instance will be
// replaced by ReloadControls() so it should not be retained.
func (inp *Input) Controls() *controls.Controls {
	return inp.controls
}

// ReloadControls replaces the current game controls with a new instance. On
// error, the current controls are kept.
func (inp *Input) ReloadControls() error {
	c, err := inp.loader()
	if err != nil {
		return curated.Errorf("userinput: %v", err)
	}
	inp.controls = c
	return nil
}

// Joysticks returns the joysticks that were found when the Input type was
// created. Joysticks connected later are not reported.
func (inp *Input) Joysticks() []Joystick {
	return inp.joysticks
}

// KeyName returns a name for the key code suitable for display.
func (inp *Input) KeyName(key keycode.KeyCode) string {
	return keycode.Name(key, inp.platform.KeyName)
}

// Dump writes a graphviz representation of the joystick state.
func (inp *Input) Dump(w io.Writer) {
	memviz.Map(w, inp.devices)
}

// Service sends the events that are in the platform queue at the start of the
// call to the listeners. Events posted while the batch is being handled are
// left for the next call. Service should be called once per tick from the
// main goroutine.
func (inp *Input) Service() {
	inp.owner.Check("userinput")
	for n := inp.platform.Pending(); n > 0; n-- {
		ev := inp.platform.Poll()
		if ev == nil {
			return
		}
		inp.handle(ev)
	}
}

func (inp *Input) handle(ev Event) {
	switch ev := ev.(type) {
	case EventQuit:
		inp.system.broadcast(func(l SystemListener) bool { return l.Quit() })

	case EventResize:
		inp.system.broadcast(func(l SystemListener) bool { return l.ScreenResized(ev.Size) })

	case EventMusicFinished:
		inp.system.broadcast(func(l SystemListener) bool { return l.MusicFinished() })

	case EventKeyboard:
		if ev.Down {
			inp.keyPressed(ev.Key, ev.Text)
		} else {
			inp.keyReleased(ev.Key)
		}

	case EventMouseMotion:
		inp.mouse.broadcast(func(l MouseListener) bool { return l.MouseMoved(ev.Pos, ev.Rel) })

	case EventMouseButton:
		if ev.Down {
			inp.mouse.broadcast(func(l MouseListener) bool { return l.MouseButtonPressed(ev.Button, ev.Pos) })
		} else {
			inp.mouse.broadcast(func(l MouseListener) bool { return l.MouseButtonReleased(ev.Button, ev.Pos) })
		}

	case EventJoyButton:
		inp.joyButton(ev)

	case EventJoyAxis:
		inp.joyAxis(ev)

	case EventJoyHat:
		inp.joyHat(ev)

	default:
		logger.Logf(logger.Allow, "userinput", "unhandled event type: %T", ev)
	}
}

// keyPressed offers the key press to the priority listeners before the
// regular listeners.
func (inp *Input) keyPressed(key keycode.KeyCode, text rune) bool {
	if inp.priorityKeys.broadcast(func(l KeyListener) bool { return l.KeyPressed(key, text) }) {
		return true
	}
	return inp.keys.broadcast(func(l KeyListener) bool { return l.KeyPressed(key, text) })
}

func (inp *Input) keyReleased(key keycode.KeyCode) bool {
	if inp.priorityKeys.broadcast(func(l KeyListener) bool { return l.KeyReleased(key) }) {
		return true
	}
	return inp.keys.broadcast(func(l KeyListener) bool { return l.KeyReleased(key) })
}

// RestartRequested notifies the system listeners that a restart has been
// requested. The Input type never calls this itself.
func (inp *Input) RestartRequested() bool {
	return inp.system.broadcast(func(l SystemListener) bool { return l.RestartRequested() })
}
