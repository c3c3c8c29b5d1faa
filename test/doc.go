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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectSuccess and ExpectFailure functions test for success and failure
// under generic conditions. A nil value is considered a success, because of
// how errors usually work (nil to indicate no error).
//
// The ExpectEquality and ExpectInequality functions compare like-typed
// values. The Demand variants stop the test immediately on failure.
//
// All functions accept optional tags which are prepended to the failure
// message. Tags are useful when the test is being run in a loop.
package test
