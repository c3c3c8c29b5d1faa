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
	"runtime"
	"sync"
	"time"

	"github.com/jetsetilly/fretinput/curated"
	"github.com/jetsetilly/fretinput/keycode"
	"github.com/jetsetilly/fretinput/keyrepeat"
	"github.com/jetsetilly/fretinput/logger"
	"github.com/jetsetilly/fretinput/userinput"
	"github.com/jetsetilly/fretinput/version"
	"github.com/veandco/go-sdl2/sdl"
)

// Platform is the SDL implementation of the userinput.Platform interface.
type Platform struct {
	window *sdl.Window

	// opened joysticks and their descriptions. indexed by device index
	joysticks []*sdl.Joystick
	info      []userinput.Joystick

	// events from SDL identify the joystick by instance ID. the instance ID is
	// not the same as the device index
	instances map[sdl.JoystickID]int

	// instances that have been logged as unknown
	unknown map[sdl.JoystickID]bool

	repeater keyrepeat.Repeater

	// an event that was taken from the SDL queue while looking for the text
	// of a key press. it is translated before any other SDL event
	pending sdl.Event

	// translated events waiting to be returned by Poll(). filled by Pending()
	queue []userinput.Event

	// events sent by Post(). each event is accompanied by an SDL user event
	// of type postType in the SDL queue
	postCrit sync.Mutex
	posted   []userinput.Event
	postType uint32
}

// NewPlatform is the preferred method of initialisation for the Platform
// type.
//
// A window is required for SDL to deliver keyboard events. The window is
// resizable.
func NewPlatform(width int, height int) (*Platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &Platform{
		instances: make(map[sdl.JoystickID]int),
		unknown:   make(map[sdl.JoystickID]bool),
	}

	plt.postType = sdl.RegisterEvents(1)
	if plt.postType == 0xffffffff {
		sdl.Quit()
		return nil, curated.Errorf("sdl: cannot register user event")
	}

	plt.window, err = sdl.CreateWindow(version.Summary(),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	sdl.StartTextInput()

	for i := 0; i < sdl.NumJoysticks(); i++ {
		joy := sdl.JoystickOpen(i)
		if joy == nil {
			logger.Logf(logger.Allow, "sdl", "cannot open joystick %d: %v", i, sdl.GetError())
			continue
		}

		id := len(plt.joysticks)
		plt.joysticks = append(plt.joysticks, joy)
		plt.instances[joy.InstanceID()] = id
		plt.info = append(plt.info, userinput.Joystick{
			ID:         id,
			Name:       joy.Name(),
			NumAxes:    joy.NumAxes(),
			NumHats:    joy.NumHats(),
			NumButtons: joy.NumButtons(),
		})
	}

	if len(plt.joysticks) == 0 {
		logger.Log(logger.Allow, "sdl", "no joysticks found")
	}

	return plt, nil
}

// Destroy closes the joysticks and the window.
func (plt *Platform) Destroy() {
	for _, joy := range plt.joysticks {
		joy.Close()
	}
	plt.joysticks = nil

	sdl.StopTextInput()

	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			logger.Log(logger.Allow, "sdl", err)
		}
		plt.window = nil
	}

	sdl.Quit()
}

// Joysticks implements the userinput.Platform interface.
func (plt *Platform) Joysticks() []userinput.Joystick {
	return plt.info
}

// SetKeyRepeat implements the userinput.Platform interface.
func (plt *Platform) SetKeyRepeat(delay time.Duration, interval time.Duration) {
	plt.repeater.Set(delay, interval)
}

// KeyName implements the userinput.Platform interface.
func (plt *Platform) KeyName(key keycode.KeyCode) string {
	if key.Range() != keycode.RangeNative {
		return keycode.Name(key, nil)
	}

	sc := sdl.Scancode(key)
	if n := sdl.GetKeyName(sdl.GetKeyFromScancode(sc)); n != "" {
		return n
	}
	if n := sdl.GetScancodeName(sc); n != "" {
		return n
	}

	return keycode.HIDName(key)
}

// Post implements the userinput.Platform interface. It is safe to call Post()
// from any goroutine.
func (plt *Platform) Post(ev userinput.Event) error {
	plt.postCrit.Lock()
	defer plt.postCrit.Unlock()

	plt.posted = append(plt.posted, ev)

	_, err := sdl.PushEvent(&sdl.UserEvent{Type: plt.postType})
	if err != nil {
		plt.posted = plt.posted[:len(plt.posted)-1]
		return curated.Errorf("sdl: post: %v", err)
	}

	return nil
}

func (plt *Platform) popPosted() userinput.Event {
	plt.postCrit.Lock()
	defer plt.postCrit.Unlock()

	if len(plt.posted) == 0 {
		return nil
	}

	ev := plt.posted[0]
	plt.posted = plt.posted[1:]
	return ev
}
