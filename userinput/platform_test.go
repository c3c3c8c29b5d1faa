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

package userinput_test

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/jetsetilly/fretinput/keycode"
	"github.com/jetsetilly/fretinput/userinput"
)

// fakePlatform is a queue of events that can be filled by the test.
type fakePlatform struct {
	crit      sync.Mutex
	queue     []userinput.Event
	joysticks []userinput.Joystick

	delay    time.Duration
	interval time.Duration
}

func (p *fakePlatform) Poll() userinput.Event {
	p.crit.Lock()
	defer p.crit.Unlock()
	if len(p.queue) == 0 {
		return nil
	}
	ev := p.queue[0]
	p.queue = p.queue[1:]
	return ev
}

func (p *fakePlatform) Pending() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return len(p.queue)
}

func (p *fakePlatform) Post(ev userinput.Event) error {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.queue = append(p.queue, ev)
	return nil
}

func (p *fakePlatform) Joysticks() []userinput.Joystick {
	return p.joysticks
}

func (p *fakePlatform) SetKeyRepeat(delay time.Duration, interval time.Duration) {
	p.delay = delay
	p.interval = interval
}

func (p *fakePlatform) KeyName(key keycode.KeyCode) string {
	return fmt.Sprintf("native %d", key)
}

// fakeMusic stores the end of music callback.
type fakeMusic struct {
	end func()
}

func (m *fakeMusic) SetEndEvent(f func()) {
	m.end = f
}

// recorder implements all listener interfaces and records every call in a
// shared journal.
type recorder struct {
	name    string
	journal *[]string
	consume bool

	// called on key press if not nil
	onPress func()
}

func (r *recorder) record(s string, args ...any) bool {
	*r.journal = append(*r.journal, fmt.Sprintf("%s: %s", r.name, fmt.Sprintf(s, args...)))
	return r.consume
}

func (r *recorder) KeyPressed(key keycode.KeyCode, text rune) bool {
	if r.onPress != nil {
		r.onPress()
	}
	if text == 0 {
		return r.record("press %#x", int(key))
	}
	return r.record("press %#x %c", int(key), text)
}

func (r *recorder) KeyReleased(key keycode.KeyCode) bool {
	return r.record("release %#x", int(key))
}

func (r *recorder) MouseButtonPressed(button int, pos image.Point) bool {
	return r.record("mouse press %d %v", button, pos)
}

func (r *recorder) MouseButtonReleased(button int, pos image.Point) bool {
	return r.record("mouse release %d %v", button, pos)
}

func (r *recorder) MouseMoved(pos image.Point, rel image.Point) bool {
	return r.record("mouse moved %v %v", pos, rel)
}

func (r *recorder) ScreenResized(size image.Point) bool {
	return r.record("resized %v", size)
}

func (r *recorder) RestartRequested() bool {
	return r.record("restart")
}

func (r *recorder) MusicFinished() bool {
	return r.record("music finished")
}

func (r *recorder) Quit() bool {
	return r.record("quit")
}
