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

// Package keyrepeat generates repeated key presses for keys that are held
// down. It is used by platforms that cannot control the rate of key repeat
// generated by the operating system.
package keyrepeat

import (
	"sort"
	"time"

	"github.com/jetsetilly/fretinput/keycode"
)

// Default delay and interval when key repeat is enabled.
const (
	DefaultDelay    = 300 * time.Millisecond
	DefaultInterval = 30 * time.Millisecond
)

// Repeat is a key press that should be reissued.
type Repeat struct {
	Key  keycode.KeyCode
	Text rune
}

type held struct {
	text rune
	next time.Time
}

// Repeater keeps track of keys that are held down. The zero value is a
// Repeater with repeat disabled.
type Repeater struct {
	delay    time.Duration
	interval time.Duration
	held     map[keycode.KeyCode]held
}

// Set the delay and interval of key repeat. A delay or interval of zero
// disables key repeat. Keys that are held when repeat is changed are
// forgotten.
func (r *Repeater) Set(delay time.Duration, interval time.Duration) {
	r.delay = delay
	r.interval = interval
	r.Reset()
}

// Enabled returns true if key repeat is active.
func (r *Repeater) Enabled() bool {
	return r.delay > 0 && r.interval > 0
}

// Reset forgets all held keys.
func (r *Repeater) Reset() {
	r.held = nil
}

// Press notes that a key has been pressed at the specified time.
func (r *Repeater) Press(key keycode.KeyCode, text rune, now time.Time) {
	if !r.Enabled() {
		return
	}
	if r.held == nil {
		r.held = make(map[keycode.KeyCode]held)
	}
	r.held[key] = held{
		text: text,
		next: now.Add(r.delay),
	}
}

// Release notes that a key is no longer held.
func (r *Repeater) Release(key keycode.KeyCode) {
	delete(r.held, key)
}

// Due returns the keys that should be repeated at the specified time. At
// most one repeat is returned for each key, even if more than one interval
// has passed since the previous call. Keys are returned in KeyCode order.
func (r *Repeater) Due(now time.Time) []Repeat {
	if !r.Enabled() || len(r.held) == 0 {
		return nil
	}

	var due []Repeat
	for k, h := range r.held {
		if now.Before(h.next) {
			continue
		}
		due = append(due, Repeat{Key: k, Text: h.text})
		h.next = now.Add(r.interval)
		r.held[k] = h
	}

	sort.Slice(due, func(i, j int) bool {
		return due[i].Key < due[j].Key
	})

	return due
}
