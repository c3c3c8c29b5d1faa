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

// Package assert contains checks that are useful while developing but which
// should never fail in a correct program.
package assert

import (
	"bytes"
	"runtime"
	"strconv"

	"github.com/jetsetilly/fretinput/logger"
)

// GoroutineID returns an identifier for the current goroutine. The result is
// different between goroutines and consistent for a given goroutine. It should
// only ever be used for debugging or testing purposes.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that created it.
type Owner struct {
	id uint64
}

// NewOwner returns an Owner for the current goroutine.
func NewOwner() Owner {
	return Owner{id: GoroutineID()}
}

// Check returns false if it is called from a goroutine other than the owner.
// The first failed check for an Owner is logged with the tag.
func (o *Owner) Check(tag string) bool {
	if o.id == 0 {
		return true
	}
	if id := GoroutineID(); id != o.id {
		logger.Logf(logger.Allow, tag, "called from goroutine %d but owned by goroutine %d", id, o.id)
		o.id = 0
		return false
	}
	return true
}
