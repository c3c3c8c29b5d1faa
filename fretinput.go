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
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jetsetilly/fretinput/controls"
	"github.com/jetsetilly/fretinput/curated"
	"github.com/jetsetilly/fretinput/logger"
	"github.com/jetsetilly/fretinput/modalflag"
	"github.com/jetsetilly/fretinput/music"
	"github.com/jetsetilly/fretinput/music/sdlmusic"
	"github.com/jetsetilly/fretinput/paths"
	"github.com/jetsetilly/fretinput/prefs"
	"github.com/jetsetilly/fretinput/sdlinput"
	"github.com/jetsetilly/fretinput/statsview"
	"github.com/jetsetilly/fretinput/terminput"
	"github.com/jetsetilly/fretinput/userinput"
	"github.com/jetsetilly/fretinput/version"
)

// the default interval between calls to userinput.Service()
const defaultTick = time.Second / 60

const controlsFile = "controls"

// the number of log entries shown when the program ends with an error
const tailOnError = 10

const additionalHelp = `All input events are written to the log. The controls mapping is read from
the controls file in the fretinput resource directory. Press Escape (or the
key mapped to the Cancel control) to quit. Press F12 to reload the controls.`

// options common to all modes.
type options struct {
	repeat    *bool
	statsview *bool
	dump      *bool
	log       *string
	prefs     *string
	tick      *time.Duration
}

func addOptions(md *modalflag.Modes) options {
	return options{
		repeat:    md.AddBool("repeat", false, "enable key repeat (also set by key_repeat in the controls file)"),
		statsview: md.AddBool("statsview", false, "run stats server on localhost"),
		dump:      md.AddBool("dump", false, "write graphviz view of joystick state to a new file on exit"),
		log:       md.AddString("log", "", "write the log to file on exit"),
		prefs:     md.AddString("prefs", "", "override controls preferences (key::value; ...)"),
		tick:      md.AddDuration("tick", defaultTick, "interval between servicing of the event queue"),
	}
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddModes("SDL", "TERM")
	md.AdditionalHelp(fmt.Sprintf("%s\n\n%s", version.Summary(), additionalHelp))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "SDL":
		err = sdlMode(md)
	case "TERM":
		err = termMode(md)
	}

	if err != nil {
		// errors that have not been curated are not expected
		if curated.IsAny(err) {
			fmt.Printf("* error in %s mode: %s\n", md, err)
		} else {
			fmt.Printf("* unexpected error in %s mode: %s\n", md, err)
		}
		logger.Tail(os.Stdout, tailOnError)
		os.Exit(20)
	}
}

func sdlMode(md *modalflag.Modes) error {
	md.NewMode()
	opts := addOptions(md)
	track := md.AddString("music", "", "music file to play (wav or mp3)")
	width := md.AddInt("width", 640, "window width")
	height := md.AddInt("height", 480, "window height")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	plt, err := sdlinput.NewPlatform(*width, *height)
	if err != nil {
		return err
	}
	defer plt.Destroy()

	logger.SetEcho(os.Stdout)
	defer logger.SetEcho(nil)

	if *track == "" {
		return run(plt, nil, opts, nil)
	}

	pcm, err := music.Load(*track)
	if err != nil {
		return err
	}

	player, err := sdlmusic.NewPlayer()
	if err != nil {
		return err
	}
	defer player.Destroy()

	return run(plt, player, opts, func() error {
		return player.Play(pcm)
	})
}

func termMode(md *modalflag.Modes) error {
	md.NewMode()
	opts := addOptions(md)
	device := md.AddString("device", terminput.DefaultDevice, "terminal device")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	plt, err := terminput.NewPlatform(*device)
	if err != nil {
		return err
	}
	defer func() {
		if err := plt.Destroy(); err != nil {
			fmt.Println(err)
		}
	}()

	// the terminal is in raw mode so new lines need a carriage return
	logger.SetEcho(&rawWriter{w: os.Stdout})
	defer logger.SetEcho(nil)

	return run(plt, nil, opts, nil)
}

// run services the input until the monitor sees a quit request. the start
// function is called once the listeners have been added.
func run(plt userinput.Platform, notifier userinput.MusicNotifier, opts options, start func() error) error {
	if *opts.tick <= 0 {
		return curated.Errorf("tick must be greater than zero (%v)", *opts.tick)
	}

	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
		defer prefs.PopCommandLineStack()
	}

	loader := func() (*controls.Controls, error) {
		return controls.NewControls(paths.ResourcePath(controlsFile))
	}

	inp, err := userinput.NewInput(plt, notifier, loader)
	if err != nil {
		return err
	}
	defer inp.Destroy()

	if *opts.statsview {
		statsview.Launch("", os.Stdout)
	}

	if *opts.repeat || inp.Controls().KeyRepeat() {
		inp.EnableKeyRepeat()
	}

	mon := &monitor{inp: inp}
	inp.AddKeyListener(mon, false)
	inp.AddMouseListener(mon)
	inp.AddSystemListener(mon)

	// ctrl-c is turned into a quit event
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	done := forwardInterrupts(plt, intChan)
	defer func() {
		signal.Stop(intChan)
		close(intChan)
		<-done
	}()

	if start != nil {
		if err := start(); err != nil {
			return err
		}
	}

	tck := time.NewTicker(*opts.tick)
	defer tck.Stop()

	for !mon.quit {
		<-tck.C
		inp.Service()
	}

	if *opts.dump {
		fn := paths.UniqueFilename("joysticks", ".dot")
		if err := dump(inp, fn); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "fretinput", "joystick state written to %s", fn)
	}

	if *opts.log != "" {
		if err := writeLog(*opts.log); err != nil {
			return err
		}
	}

	return nil
}

// forwardInterrupts posts a quit event for every signal received on the
// channel. The returned channel is closed once the signal channel has been
// closed and drained.
func forwardInterrupts(plt userinput.Platform, intChan <-chan os.Signal) <-chan bool {
	done := make(chan bool)
	go func() {
		defer close(done)
		for range intChan {
			if err := plt.Post(userinput.EventQuit{}); err != nil {
				logger.Log(logger.Allow, "fretinput", err)
			}
		}
	}()
	return done
}

// writeLog writes the entire contents of the central log to a file.
func writeLog(filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("log: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = curated.Errorf("log: %v", err)
		}
	}()
	logger.Write(f)
	return nil
}

func dump(inp *userinput.Input, filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("dump: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = curated.Errorf("dump: %v", err)
		}
	}()
	inp.Dump(f)
	return nil
}

// rawWriter adds a carriage return to every new line.
type rawWriter struct {
	w io.Writer
}

func (r *rawWriter) Write(p []byte) (int, error) {
	_, err := io.WriteString(r.w, strings.ReplaceAll(string(p), "\n", "\r\n"))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
