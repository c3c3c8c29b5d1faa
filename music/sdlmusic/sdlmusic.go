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

// Package sdlmusic plays music with the SDL audio queue. It implements the
// userinput.MusicNotifier interface.
package sdlmusic

import (
	"sync"
	"time"

	"github.com/jetsetilly/fretinput/curated"
	"github.com/jetsetilly/fretinput/logger"
	"github.com/jetsetilly/fretinput/music"
	"github.com/veandco/go-sdl2/sdl"
)

// how often the audio queue is checked for the end of the track
const checkInterval = 50 * time.Millisecond

// Player plays one track at a time.
type Player struct {
	crit sync.Mutex

	id     sdl.AudioDeviceID
	opened bool
	spec   sdl.AudioSpec

	// called once when a track has finished. not called when a track is
	// stopped
	end func()

	// closed to stop the watcher goroutine for the current track
	stop chan bool
}

// NewPlayer is the preferred method of initialisation for the Player type.
func NewPlayer() (*Player, error) {
	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlmusic: %v", err)
	}
	return &Player{}, nil
}

// SetEndEvent implements the userinput.MusicNotifier interface. The function
// is called from the player's own goroutine.
func (p *Player) SetEndEvent(f func()) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.end = f
}

// Play stops the current track and starts playing the PCM data.
func (p *Player) Play(pcm *music.PCM) error {
	p.Stop()

	p.crit.Lock()
	defer p.crit.Unlock()

	if !p.opened || p.spec.Freq != int32(pcm.SampleRate) || p.spec.Channels != uint8(pcm.Channels) {
		if p.opened {
			sdl.CloseAudioDevice(p.id)
			p.opened = false
		}

		spec := &sdl.AudioSpec{
			Freq:     int32(pcm.SampleRate),
			Format:   sdl.AUDIO_S16LSB,
			Channels: uint8(pcm.Channels),
			Samples:  4096,
		}

		var err error
		p.id, err = sdl.OpenAudioDevice("", false, spec, &p.spec, 0)
		if err != nil {
			return curated.Errorf("sdlmusic: %v", err)
		}
		p.opened = true

		logger.Logf(logger.Allow, "sdlmusic", "audio device: %dHz, %d channels", p.spec.Freq, p.spec.Channels)
	}

	err := sdl.QueueAudio(p.id, pcm.Bytes())
	if err != nil {
		return curated.Errorf("sdlmusic: %v", err)
	}
	sdl.PauseAudioDevice(p.id, false)

	p.stop = make(chan bool)
	go p.watch(p.id, p.stop)

	return nil
}

// watch the audio queue until it is empty or until stop is closed.
func (p *Player) watch(id sdl.AudioDeviceID, stop chan bool) {
	tck := time.NewTicker(checkInterval)
	defer tck.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tck.C:
			if sdl.GetQueuedAudioSize(id) > 0 {
				continue
			}

			// the track may have been stopped since the queue was checked
			p.crit.Lock()
			if p.stop != stop {
				p.crit.Unlock()
				return
			}
			p.stop = nil
			end := p.end
			p.crit.Unlock()

			if end != nil {
				end()
			}
			return
		}
	}
}

// Playing returns true if a track is playing.
func (p *Player) Playing() bool {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.stop != nil
}

// Stop the current track. The end of track function is not called.
func (p *Player) Stop() {
	p.crit.Lock()
	defer p.crit.Unlock()

	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}

	if p.opened {
		sdl.PauseAudioDevice(p.id, true)
		sdl.ClearQueuedAudio(p.id)
	}
}

// Destroy stops playback and closes the audio device.
func (p *Player) Destroy() {
	p.Stop()

	p.crit.Lock()
	defer p.crit.Unlock()

	if p.opened {
		sdl.CloseAudioDevice(p.id)
		p.opened = false
	}
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
}
