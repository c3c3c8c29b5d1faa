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

package modalflag

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes handles command line arguments for programs with more than one mode
// of operation. The Output field should be set or help messages will not be
// seen.
type Modes struct {
	Output io.Writer

	flags *flag.FlagSet
	usage bytes.Buffer

	args    []string
	argsIdx int

	// modes available for the next call to Parse()
	modes []string

	// modes selected by all calls to Parse() so far
	path []string

	additionalHelp string
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. Mode() should be checked if
	// modes were added before the call to Parse()
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// error is returned as the second return value of Parse()
	ParseError
)

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs sets the arguments to be parsed and begins a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode discards the flags and modes added since the previous call to
// Parse(). Arguments not yet consumed are used for the next call to Parse().
func (md *Modes) NewMode() {
	md.modes = nil
	md.additionalHelp = ""
	md.usage.Reset()
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(&md.usage)
}

// AddModes adds to the list of modes for the next call to Parse(). The first
// mode added is the default.
func (md *Modes) AddModes(modes ...string) {
	for _, m := range modes {
		md.modes = append(md.modes, strings.ToUpper(m))
	}
}

// AdditionalHelp is printed after the flag and mode information when help is
// requested.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all selected modes joined by a separator.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// Parse the arguments for the current mode.
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.help()
			return ParseHelp, nil
		}

		// the flags may belong to the default mode. arguments are not
		// consumed so they are seen by the next call to Parse()
		if len(md.modes) > 0 {
			md.usage.Reset()
			md.path = append(md.path, md.modes[0])
			return ParseContinue, nil
		}

		return ParseError, err
	}

	// the number of arguments consumed by the flags
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.modes) == 0 {
		return ParseContinue, nil
	}

	mode := md.modes[0]
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.modes {
		if m == arg {
			mode = m
			md.argsIdx++
			break
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments after the most recent call to Parse()
// that are neither flags nor a mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	// the flag package writes a usage line followed by the flag defaults
	usage := strings.TrimPrefix(md.usage.String(), "Usage:\n")

	if usage == "" && len(md.modes) == 0 {
		if md.Path() == "" {
			fmt.Fprintln(md.Output, "No help available")
		} else {
			fmt.Fprintf(md.Output, "No help available for %s\n", md.Path())
		}
		return
	}

	if md.Path() == "" {
		fmt.Fprintln(md.Output, "Usage:")
	} else {
		fmt.Fprintf(md.Output, "Usage for %s mode:\n", md.Path())
	}

	fmt.Fprint(md.Output, usage)

	if len(md.modes) > 0 {
		if usage != "" {
			fmt.Fprintln(md.Output)
		}
		fmt.Fprintf(md.Output, "  available modes: %s\n", strings.Join(md.modes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.modes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}

	md.usage.Reset()
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
