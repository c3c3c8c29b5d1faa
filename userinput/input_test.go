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
	"bytes"
	"errors"
	"fmt"
	"image"
	"testing"

	"github.com/jetsetilly/fretinput/controls"
	"github.com/jetsetilly/fretinput/keycode"
	"github.com/jetsetilly/fretinput/keyrepeat"
	"github.com/jetsetilly/fretinput/test"
	"github.com/jetsetilly/fretinput/userinput"
)

var guitar = userinput.Joystick{
	ID:         0,
	Name:       "guitar",
	NumAxes:    2,
	NumHats:    1,
	NumButtons: 10,
}

func newInput(t *testing.T, joysticks ...userinput.Joystick) (*userinput.Input, *fakePlatform) {
	t.Helper()
	plt := &fakePlatform{joysticks: joysticks}
	inp, err := userinput.NewInput(plt, nil, nil)
	test.DemandSuccess(t, err)
	return inp, plt
}

func press(name string, key keycode.KeyCode) string {
	return fmt.Sprintf("%s: press %#x", name, int(key))
}

func release(name string, key keycode.KeyCode) string {
	return fmt.Sprintf("%s: release %#x", name, int(key))
}

func expectJournal(t *testing.T, journal []string, expected ...string) {
	t.Helper()
	if !test.ExpectEquality(t, len(journal), len(expected), "journal length") {
		t.Logf("journal: %q", journal)
		return
	}
	for i := range expected {
		test.ExpectEquality(t, journal[i], expected[i], i)
	}
}

func TestKeyboard(t *testing.T) {
	inp, plt := newInput(t)

	var journal []string
	inp.AddKeyListener(&recorder{name: "a", journal: &journal}, false)

	plt.Post(userinput.EventKeyboard{Key: keycode.HIDA, Text: 'a', Down: true})
	plt.Post(userinput.EventKeyboard{Key: keycode.HIDA, Down: false})
	inp.Service()

	expectJournal(t, journal,
		fmt.Sprintf("a: press %#x a", int(keycode.HIDA)),
		release("a", keycode.HIDA),
	)

	// queue is empty. service does nothing
	journal = journal[:0]
	inp.Service()
	expectJournal(t, journal)
}

func TestBoundedBatch(t *testing.T) {
	inp, plt := newInput(t)

	// the listener posts another key press every time it sees one
	var journal []string
	r := &recorder{name: "r", journal: &journal}
	r.onPress = func() {
		if len(journal) < 1000 {
			plt.Post(userinput.EventKeyboard{Key: keycode.HIDA, Down: true})
		}
	}
	inp.AddKeyListener(r, false)

	plt.Post(userinput.EventKeyboard{Key: keycode.HIDA, Down: true})
	inp.Service()
	expectJournal(t, journal, press("r", keycode.HIDA))
	test.ExpectEquality(t, plt.Pending(), 1)

	// the event posted during the previous call is handled by the next call
	inp.Service()
	expectJournal(t, journal, press("r", keycode.HIDA), press("r", keycode.HIDA))
	test.ExpectEquality(t, plt.Pending(), 1)

	// the listener stops posting. the queued press and the new press are
	// handled together and the queue is empty afterwards
	r.onPress = nil
	journal = journal[:0]
	plt.Post(userinput.EventKeyboard{Key: keycode.HIDZ, Down: true})
	inp.Service()
	expectJournal(t, journal, press("r", keycode.HIDA), press("r", keycode.HIDZ))
	test.ExpectEquality(t, plt.Pending(), 0)
}

func TestReverseOrder(t *testing.T) {
	inp, plt := newInput(t)

	var journal []string
	a := &recorder{name: "a", journal: &journal}
	b := &recorder{name: "b", journal: &journal}
	c := &recorder{name: "c", journal: &journal}
	inp.AddKeyListener(a, false)
	inp.AddKeyListener(b, false)
	inp.AddKeyListener(c, false)

	plt.Post(userinput.EventKeyboard{Key: keycode.HIDSpace, Down: true})
	inp.Service()

	expectJournal(t, journal,
		press("c", keycode.HIDSpace),
		press("b", keycode.HIDSpace),
		press("a", keycode.HIDSpace),
	)

	// listener b consumes the event. a does not see it
	journal = journal[:0]
	b.consume = true
	plt.Post(userinput.EventKeyboard{Key: keycode.HIDSpace, Down: true})
	inp.Service()

	expectJournal(t, journal,
		press("c", keycode.HIDSpace),
		press("b", keycode.HIDSpace),
	)
}

func TestPriority(t *testing.T) {
	inp, plt := newInput(t)

	var journal []string
	p := &recorder{name: "priority", journal: &journal, consume: true}
	r := &recorder{name: "regular", journal: &journal}

	// priority listener is added first but still sees the event first
	inp.AddKeyListener(p, true)
	inp.AddKeyListener(r, false)

	plt.Post(userinput.EventKeyboard{Key: keycode.HIDReturn, Down: true})
	plt.Post(userinput.EventKeyboard{Key: keycode.HIDReturn, Down: false})
	inp.Service()

	expectJournal(t, journal,
		press("priority", keycode.HIDReturn),
		release("priority", keycode.HIDReturn),
	)

	// the priority listener does not consume. both listeners see the event
	journal = journal[:0]
	p.consume = false
	plt.Post(userinput.EventKeyboard{Key: keycode.HIDReturn, Down: true})
	inp.Service()

	expectJournal(t, journal,
		press("priority", keycode.HIDReturn),
		press("regular", keycode.HIDReturn),
	)

	// removing a key listener removes it from both tiers
	journal = journal[:0]
	inp.AddKeyListener(r, true)
	inp.RemoveKeyListener(r)
	inp.RemoveKeyListener(p)
	plt.Post(userinput.EventKeyboard{Key: keycode.HIDReturn, Down: true})
	inp.Service()
	expectJournal(t, journal)
}

func TestIdempotentRegistration(t *testing.T) {
	inp, plt := newInput(t)

	var journal []string
	a := &recorder{name: "a", journal: &journal}
	inp.AddKeyListener(a, false)
	inp.AddKeyListener(a, false)
	inp.AddMouseListener(a)
	inp.AddMouseListener(a)
	inp.AddSystemListener(a)
	inp.AddSystemListener(a)

	plt.Post(userinput.EventKeyboard{Key: keycode.HIDTab, Down: true})
	plt.Post(userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Pos: image.Pt(1, 2), Down: true})
	plt.Post(userinput.EventQuit{})
	inp.Service()

	expectJournal(t, journal,
		press("a", keycode.HIDTab),
		"a: mouse press 1 (1,2)",
		"a: quit",
	)

	// removing twice is not an error
	journal = journal[:0]
	inp.RemoveKeyListener(a)
	inp.RemoveKeyListener(a)
	inp.RemoveMouseListener(a)
	inp.RemoveMouseListener(a)
	inp.RemoveSystemListener(a)
	inp.RemoveSystemListener(a)

	plt.Post(userinput.EventKeyboard{Key: keycode.HIDTab, Down: true})
	plt.Post(userinput.EventQuit{})
	inp.Service()
	expectJournal(t, journal)

	// nil listeners are ignored
	inp.AddKeyListener(nil, false)
	inp.AddMouseListener(nil)
	inp.AddSystemListener(nil)
	plt.Post(userinput.EventKeyboard{Key: keycode.HIDTab, Down: true})
	inp.Service()
	expectJournal(t, journal)
}

func TestRemovalDuringBroadcast(t *testing.T) {
	inp, plt := newInput(t)

	var journal []string
	a := &recorder{name: "a", journal: &journal}
	b := &recorder{name: "b", journal: &journal}
	c := &recorder{name: "c", journal: &journal}
	inp.AddKeyListener(a, false)
	inp.AddKeyListener(b, false)
	inp.AddKeyListener(c, false)

	// c is visited first. it removes a and adds a new listener d
	d := &recorder{name: "d", journal: &journal}
	c.onPress = func() {
		inp.RemoveKeyListener(a)
		inp.AddKeyListener(d, false)
	}

	plt.Post(userinput.EventKeyboard{Key: keycode.HIDEscape, Down: true})
	inp.Service()

	expectJournal(t, journal,
		press("c", keycode.HIDEscape),
		press("b", keycode.HIDEscape),
	)

	// d is visited on the next event
	journal = journal[:0]
	c.onPress = nil
	plt.Post(userinput.EventKeyboard{Key: keycode.HIDEscape, Down: true})
	inp.Service()

	expectJournal(t, journal,
		press("d", keycode.HIDEscape),
		press("c", keycode.HIDEscape),
		press("b", keycode.HIDEscape),
	)
}

func TestMouse(t *testing.T) {
	inp, plt := newInput(t)

	var journal []string
	inp.AddMouseListener(&recorder{name: "m", journal: &journal})

	// mouse events are not key events
	inp.AddKeyListener(&recorder{name: "k", journal: &journal}, false)

	plt.Post(userinput.EventMouseMotion{Pos: image.Pt(10, 20), Rel: image.Pt(-1, 2)})
	plt.Post(userinput.EventMouseButton{Button: userinput.MouseButtonRight, Pos: image.Pt(10, 20), Down: true})
	plt.Post(userinput.EventMouseButton{Button: userinput.MouseButtonRight, Pos: image.Pt(11, 20), Down: false})
	inp.Service()

	expectJournal(t, journal,
		"m: mouse moved (10,20) (-1,2)",
		"m: mouse press 3 (10,20)",
		"m: mouse release 3 (11,20)",
	)
}

func TestSystem(t *testing.T) {
	inp, plt := newInput(t)

	var journal []string
	inp.AddSystemListener(&recorder{name: "s", journal: &journal})

	plt.Post(userinput.EventResize{Size: image.Pt(640, 480)})
	plt.Post(userinput.EventMusicFinished{})
	plt.Post(userinput.EventQuit{})
	inp.Service()

	test.ExpectFailure(t, inp.RestartRequested())

	expectJournal(t, journal,
		"s: resized (640,480)",
		"s: music finished",
		"s: quit",
		"s: restart",
	)
}

func TestMusicFinished(t *testing.T) {
	plt := &fakePlatform{}
	music := &fakeMusic{}
	inp, err := userinput.NewInput(plt, music, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, music.end != nil)

	var journal []string
	inp.AddSystemListener(&recorder{name: "s", journal: &journal})

	// the callback can be called from any goroutine. the event is delivered
	// by the next call to Service()
	done := make(chan bool)
	go func() {
		music.end()
		done <- true
	}()
	<-done

	expectJournal(t, journal)
	inp.Service()
	expectJournal(t, journal, "s: music finished")

	inp.Destroy()
	test.ExpectSuccess(t, music.end == nil)
}

func TestDestroy(t *testing.T) {
	inp, plt := newInput(t)

	var journal []string
	r := &recorder{name: "r", journal: &journal}
	inp.AddKeyListener(r, true)
	inp.AddKeyListener(r, false)
	inp.AddMouseListener(r)
	inp.AddSystemListener(r)
	inp.Destroy()

	plt.Post(userinput.EventKeyboard{Key: keycode.HIDA, Down: true})
	plt.Post(userinput.EventMouseMotion{})
	plt.Post(userinput.EventQuit{})
	inp.Service()
	expectJournal(t, journal)
}

func TestKeyRepeat(t *testing.T) {
	inp, plt := newInput(t)
	test.ExpectFailure(t, inp.KeyRepeat())

	inp.EnableKeyRepeat()
	test.ExpectSuccess(t, inp.KeyRepeat())
	test.ExpectEquality(t, plt.delay, keyrepeat.DefaultDelay)
	test.ExpectEquality(t, plt.interval, keyrepeat.DefaultInterval)

	inp.DisableKeyRepeat()
	test.ExpectFailure(t, inp.KeyRepeat())
	test.ExpectEquality(t, plt.delay, 0)
}

func TestReloadControls(t *testing.T) {
	plt := &fakePlatform{}

	var loadErr error
	key := keycode.HIDA
	loader := func() (*controls.Controls, error) {
		if loadErr != nil {
			return nil, loadErr
		}
		c, err := controls.NewControls("")
		if err != nil {
			return nil, err
		}
		err = c.SetKey(controls.Action1, key)
		return c, err
	}

	inp, err := userinput.NewInput(plt, nil, loader)
	test.DemandSuccess(t, err)

	ctrl, ok := inp.Controls().Mapping(keycode.HIDA)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ctrl, controls.Action1)

	// a successful reload replaces the controls instance
	key = keycode.HIDZ
	old := inp.Controls()
	test.DemandSuccess(t, inp.ReloadControls())
	test.ExpectInequality(t, inp.Controls(), old)
	ctrl, ok = inp.Controls().Mapping(keycode.HIDZ)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ctrl, controls.Action1)

	// a failed reload keeps the current controls
	loadErr = errors.New("broken")
	old = inp.Controls()
	test.ExpectFailure(t, inp.ReloadControls())
	test.ExpectEquality(t, inp.Controls(), old)

	// a failed load at creation time is an error
	_, err = userinput.NewInput(plt, nil, loader)
	test.ExpectFailure(t, err)
}

func TestKeyName(t *testing.T) {
	inp, _ := newInput(t)
	test.ExpectEquality(t, inp.KeyName(keycode.HIDA), fmt.Sprintf("native %d", keycode.HIDA))
	test.ExpectEquality(t, inp.KeyName(keycode.EncodeButton(0, 2)), "Joy #1, C")
}

func TestJoysticks(t *testing.T) {
	inp, _ := newInput(t, guitar)
	js := inp.Joysticks()
	test.DemandEquality(t, len(js), 1)
	test.ExpectEquality(t, js[0], guitar)

	// no joysticks is fine
	inp, _ = newInput(t)
	test.ExpectEquality(t, len(inp.Joysticks()), 0)
}

func TestDump(t *testing.T) {
	inp, _ := newInput(t, guitar)
	var b bytes.Buffer
	inp.Dump(&b)
	test.ExpectSuccess(t, bytes.Contains(b.Bytes(), []byte("digraph")))
}

func TestNoPlatform(t *testing.T) {
	_, err := userinput.NewInput(nil, nil, nil)
	test.ExpectFailure(t, err)
}
