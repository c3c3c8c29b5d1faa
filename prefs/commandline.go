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
	"fmt"
	"sort"
	"strings"
)

// the command line stack is a list of key/value groups. only the top group is
// consulted by GetCommandLinePref().
var commandLineStack []map[string]Value

// PushCommandLineStack parses a prefs string and adds the key/value pairs as
// a new group on the top of the stack. The prefs string is of the form:
//
//	key::value; key::value
//
// Entries that are not of that form are ignored.
func PushCommandLineStack(prefs string) {
	group := make(map[string]Value)
	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			group[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	commandLineStack = append(commandLineStack, group)
}

// PopCommandLineStack removes the top group from the stack and returns the
// entries that were not consumed by GetCommandLinePref(), as a normalised
// prefs string with keys in sorted order.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(popped))
	for key := range popped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, key := range keys {
		s = append(s, fmt.Sprintf("%s::%v", key, popped[key]))
	}

	return strings.Join(s, "; ")
}

// GetCommandLinePref returns the value for the key from the top group of the
// stack. A returned value is removed from the group so that it is only used
// once.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	top := commandLineStack[len(commandLineStack)-1]
	if v, ok := top[key]; ok {
		delete(top, key)
		return true, v
	}

	return false, nil
}
