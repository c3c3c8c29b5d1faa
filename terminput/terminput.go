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
	"sync"
	"time"

	"github.com/jetsetilly/fretinput/curated"
	"github.com/jetsetilly/fretinput/keycode"
	"github.com/jetsetilly/fretinput/logger"
	"github.com/jetsetilly/fretinput/userinput"
	"github.com/pkg/term"
)

// DefaultDevice is the terminal device used when no device is specified.
const DefaultDevice = "/dev/tty"

// Platform is the terminal implementation of the userinput.Platform
// interface.
type Platform struct {
	tty *term.Term

	crit  sync.Mutex
	queue []userinput.Event

	// the reader goroutine has ended
	done chan bool
}

// NewPlatform opens the terminal device and puts it into raw mode. An empty
// device string means DefaultDevice.
func NewPlatform(device string) (*Platform, error) {
	if device == "" {
		device = DefaultDevice
	}

	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	plt := &Platform{
		tty:  tty,
		done: make(chan bool),
	}

	go plt.reader()

	return plt, nil
}

// reader runs in its own goroutine until the terminal is closed.
func (plt *Platform) reader() {
	defer close(plt.done)

	b := make([]byte, 64)
	for {
		n, err := plt.tty.Read(b)
		if err != nil {
			logger.Logf(logger.Allow, "terminal", "reader: %v", err)
			return
		}

		keys, unknown := decode(b[:n])
		if len(unknown) > 0 {
			logger.Logf(logger.Allow, "terminal", "unrecognised input: %q", unknown)
		}

		plt.crit.Lock()
		for _, k := range keys {
			if k.quit {
				plt.queue = append(plt.queue, userinput.EventQuit{})
				continue
			}

			// the terminal does not tell us when a key is released
			plt.queue = append(plt.queue,
				userinput.EventKeyboard{Key: k.code, Text: k.text, Down: true},
				userinput.EventKeyboard{Key: k.code, Down: false},
			)
		}
		plt.crit.Unlock()
	}
}

// Destroy restores the terminal to the state it was in before NewPlatform()
// was called.
func (plt *Platform) Destroy() error {
	err := plt.tty.Restore()
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}

	err = plt.tty.Close()
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}

	// wait a short time for the reader goroutine to notice that the terminal
	// has been closed
	select {
	case <-plt.done:
	case <-time.After(100 * time.Millisecond):
	}

	return nil
}

// Poll implements the userinput.Platform interface.
func (plt *Platform) Poll() userinput.Event {
	plt.crit.Lock()
	defer plt.crit.Unlock()

	if len(plt.queue) == 0 {
		return nil
	}

	ev := plt.queue[0]
	plt.queue = plt.queue[1:]
	return ev
}

// Pending implements the userinput.Platform interface.
func (plt *Platform) Pending() int {
	plt.crit.Lock()
	defer plt.crit.Unlock()
	return len(plt.queue)
}

// Post implements the userinput.Platform interface.
func (plt *Platform) Post(ev userinput.Event) error {
	plt.crit.Lock()
	defer plt.crit.Unlock()
	plt.queue = append(plt.queue, ev)
	return nil
}

// Joysticks implements the userinput.Platform interface. A terminal never has
// any joysticks.
func (plt *Platform) Joysticks() []userinput.Joystick {
	return nil
}

// SetKeyRepeat implements the userinput.Platform interface. Key repeat is
// controlled by the terminal and cannot be changed.
func (plt *Platform) SetKeyRepeat(delay time.Duration, interval time.Duration) {
	if delay > 0 {
		logger.Log(logger.Allow, "terminal", "key repeat is controlled by the terminal")
	}
}

// KeyName implements the userinput.Platform interface.
func (plt *Platform) KeyName(key keycode.KeyCode) string {
	return keycode.HIDName(key)
}
