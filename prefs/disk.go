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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/fretinput/curated"
)

// WarningBoilerPlate is written to the top of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand: use the application to change these values ***"

// separator between key and value in the prefs file.
const separator = " :: "

// Sentinel error patterns.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	InvalidKey   = "prefs: invalid key (%s)"
	LoadError    = "prefs: load: %v"
	SaveError    = "prefs: save: %v"
)

// Disk represents the preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file need not exist.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(LoadError, "no path specified")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the filename of the prefs file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from Disk. The key
// must not contain the separator or a newline.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, strings.TrimSpace(separator)) || strings.ContainsAny(key, "\n;") {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all added values to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// read the prefs file into a map of key/value strings. a missing file is not
// an error and results in an empty map.
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line is the warning boilerplate. if it's not there then the
	// file is not a prefs file
	if !scanner.Scan() {
		return data, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), separator, 2)
		if len(kv) != 2 {
			continue
		}
		data[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	return data, scanner.Err()
}

// Load values from disk. Values that are not in the file keep their current
// value. Values on the top of the command line stack take precedence over
// values in the file.
func (dsk *Disk) Load() error {
	data, err := dsk.read()
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	for key, p := range dsk.entries {
		if ok, v := GetCommandLinePref(key); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(LoadError, err)
			}
			continue
		}
		if v, ok := data[key]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(LoadError, err)
			}
		}
	}

	return nil
}

// Save current values to disk. Entries in the existing file that are not
// part of this Disk are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	for key, p := range dsk.entries {
		data[key] = p.String()
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return curated.Errorf(SaveError, err)
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, key := range keys {
		fmt.Fprintf(w, "%s%s%s\n", key, separator, data[key])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf(SaveError, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(SaveError, err)
	}

	return nil
}
