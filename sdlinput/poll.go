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

package sdlinput

import (
	"bytes"
	"image"
	"time"
	"unicode/utf8"

	"github.com/jetsetilly/fretinput/keycode"
	"github.com/jetsetilly/fretinput/logger"
	"github.com/jetsetilly/fretinput/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Poll implements the userinput.Platform interface.
func (plt *Platform) Poll() userinput.Event {
	if len(plt.queue) == 0 {
		plt.fill()
	}
	return plt.dequeue()
}

// Pending implements the userinput.Platform interface. The SDL queue is
// translated in its entirety so that the count is exact. Events pushed to SDL
// after this point are counted by the next call to Pending().
func (plt *Platform) Pending() int {
	plt.fill()
	return len(plt.queue)
}

// fill translates every event in the SDL queue and adds the result to the end
// of the platform queue.
func (plt *Platform) fill() {
	for ev := plt.next(); ev != nil; ev = plt.next() {
		if tev := plt.translate(ev); tev != nil {
			plt.queue = append(plt.queue, tev)
		}
	}

	// repeated key presses are added once the SDL queue is empty
	for _, r := range plt.repeater.Due(time.Now()) {
		plt.queue = append(plt.queue, userinput.EventKeyboard{
			Key:  r.Key,
			Text: r.Text,
			Down: true,
		})
	}
}

func (plt *Platform) dequeue() userinput.Event {
	if len(plt.queue) == 0 {
		return nil
	}
	ev := plt.queue[0]
	plt.queue = plt.queue[1:]
	return ev
}

// next returns the pending event if there is one, otherwise the next event in
// the SDL queue.
func (plt *Platform) next() sdl.Event {
	if plt.pending != nil {
		ev := plt.pending
		plt.pending = nil
		return ev
	}
	return sdl.PollEvent()
}

// translate an SDL event. returns nil if the event is not of interest.
func (plt *Platform) translate(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.UserEvent:
		if ev.Type == plt.postType {
			return plt.popPosted()
		}

	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_RESIZED {
			return userinput.EventResize{
				Size: image.Pt(int(ev.Data1), int(ev.Data2)),
			}
		}

	case *sdl.KeyboardEvent:
		// we generate our own key repeat events
		if ev.Repeat != 0 {
			return nil
		}

		key := keycode.KeyCode(ev.Keysym.Scancode)

		switch ev.Type {
		case sdl.KEYDOWN:
			text := plt.text()
			plt.repeater.Press(key, text, time.Now())
			return userinput.EventKeyboard{
				Key:  key,
				Text: text,
				Down: true,
			}
		case sdl.KEYUP:
			plt.repeater.Release(key)
			return userinput.EventKeyboard{
				Key:  key,
				Down: false,
			}
		}

	case *sdl.TextInputEvent:
		// text input events are consumed by text() when they follow a key
		// down event. a text input event on its own (from an input method for
		// example) is ignored

	case *sdl.MouseMotionEvent:
		return userinput.EventMouseMotion{
			Pos: image.Pt(int(ev.X), int(ev.Y)),
			Rel: image.Pt(int(ev.XRel), int(ev.YRel)),
		}

	case *sdl.MouseButtonEvent:
		return userinput.EventMouseButton{
			Button: int(ev.Button),
			Pos:    image.Pt(int(ev.X), int(ev.Y)),
			Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
		}

	case *sdl.MouseWheelEvent:
		var button int
		switch {
		case ev.Y > 0:
			button = userinput.MouseButtonWheelUp
		case ev.Y < 0:
			button = userinput.MouseButtonWheelDown
		default:
			return nil
		}

		x, y, _ := sdl.GetMouseState()
		pos := image.Pt(int(x), int(y))

		// the wheel is treated as a button that is pressed and immediately
		// released
		plt.queue = append(plt.queue,
			userinput.EventMouseButton{
				Button: button,
				Pos:    pos,
				Down:   true,
			},
			userinput.EventMouseButton{
				Button: button,
				Pos:    pos,
				Down:   false,
			},
		)

	case *sdl.JoyButtonEvent:
		joy, ok := plt.device(ev.Which)
		if !ok {
			return nil
		}
		return userinput.EventJoyButton{
			Joy:    joy,
			Button: int(ev.Button),
			Down:   ev.State == sdl.PRESSED,
		}

	case *sdl.JoyAxisEvent:
		joy, ok := plt.device(ev.Which)
		if !ok {
			return nil
		}
		return userinput.EventJoyAxis{
			Joy:   joy,
			Axis:  int(ev.Axis),
			Value: normaliseAxis(ev.Value),
		}

	case *sdl.JoyHatEvent:
		joy, ok := plt.device(ev.Which)
		if !ok {
			return nil
		}
		return userinput.EventJoyHat{
			Joy:   joy,
			Hat:   int(ev.Hat),
			Value: hatPosition(ev.Value),
		}
	}

	return nil
}

// text looks at the next event in the SDL queue. if it is a text input event
// then the first character of the text is returned. otherwise the event is
// kept and translated next.
func (plt *Platform) text() rune {
	ev := sdl.PollEvent()
	if ev == nil {
		return 0
	}

	tev, ok := ev.(*sdl.TextInputEvent)
	if !ok {
		plt.pending = ev
		return 0
	}

	b := tev.Text[:]
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	r, _ := utf8.DecodeRune(b)
	if r == utf8.RuneError {
		return 0
	}

	return r
}

// device returns the device index for the joystick instance. an unknown
// instance is logged the first time it is seen.
func (plt *Platform) device(instance sdl.JoystickID) (int, bool) {
	joy, ok := plt.instances[instance]
	if !ok && !plt.unknown[instance] {
		plt.unknown[instance] = true
		logger.Logf(logger.Allow, "sdl", "dropping events from unknown joystick (instance %d)", instance)
	}
	return joy, ok
}

// normaliseAxis converts the SDL axis value to the range -1.0 to 1.0.
func normaliseAxis(v int16) float32 {
	f := float32(v) / 32767
	if f < -1.0 {
		f = -1.0
	}
	return f
}

// hatPosition converts the SDL hat bitmask to a hat position. up is positive.
func hatPosition(v uint8) keycode.HatPosition {
	var p keycode.HatPosition
	if v&sdl.HAT_UP != 0 {
		p.Y++
	}
	if v&sdl.HAT_DOWN != 0 {
		p.Y--
	}
	if v&sdl.HAT_RIGHT != 0 {
		p.X++
	}
	if v&sdl.HAT_LEFT != 0 {
		p.X--
	}
	return p
}
