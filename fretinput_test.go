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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/fretinput/keycode"
	"github.com/jetsetilly/fretinput/test"
	"github.com/jetsetilly/fretinput/userinput"
)

// queuePlatform is a minimal implementation of userinput.Platform.
type queuePlatform struct {
	crit  sync.Mutex
	queue []userinput.Event
}

func (p *queuePlatform) Poll() userinput.Event {
	p.crit.Lock()
	defer p.crit.Unlock()
	if len(p.queue) == 0 {
		return nil
	}
	ev := p.queue[0]
	p.queue = p.queue[1:]
	return ev
}

func (p *queuePlatform) Pending() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return len(p.queue)
}

func (p *queuePlatform) Post(ev userinput.Event) error {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.queue = append(p.queue, ev)
	return nil
}

func (p *queuePlatform) Joysticks() []userinput.Joystick {
	return nil
}

func (p *queuePlatform) SetKeyRepeat(_ time.Duration, _ time.Duration) {
}

func (p *queuePlatform) KeyName(key keycode.KeyCode) string {
	return keycode.HIDName(key)
}

func TestForwardInterrupts(t *testing.T) {
	plt := &queuePlatform{}
	intChan := make(chan os.Signal, 1)
	done := forwardInterrupts(plt, intChan)

	intChan <- os.Interrupt
	close(intChan)

	// the goroutine ends once the channel is closed
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("interrupt goroutine has not ended")
	}

	test.DemandEquality(t, plt.Pending(), 1)
	_, ok := plt.Poll().(userinput.EventQuit)
	test.ExpectSuccess(t, ok)
}

func TestRun(t *testing.T) {
	logfile := filepath.Join(t.TempDir(), "log")

	repeat := false
	statsview := false
	dump := false
	prefs := "key_cancel::4"
	tick := time.Millisecond
	opts := options{
		repeat:    &repeat,
		statsview: &statsview,
		dump:      &dump,
		log:       &logfile,
		prefs:     &prefs,
		tick:      &tick,
	}

	// the start function queues a press of the key mapped to cancel by the
	// prefs option. the monitor quits when it sees it
	plt := &queuePlatform{}
	start := func() error {
		return plt.Post(userinput.EventKeyboard{Key: keycode.HIDA, Text: 'a', Down: true})
	}
	test.DemandSuccess(t, run(plt, nil, opts, start))

	data, err := os.ReadFile(logfile)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "pressed: A [Cancel]"))

	// the tick must be positive
	tick = 0
	test.ExpectFailure(t, run(plt, nil, opts, nil))
}

func TestRawWriter(t *testing.T) {
	var b strings.Builder
	w := &rawWriter{w: &b}
	n, err := w.Write([]byte("a\nb\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, b.String(), "a\r\nb\r\n")
}
