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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The Has() function is similar but checks if a pattern
// occurs somewhere in the error chain.
//
//	const UnknownControl = "controls: unknown control: %s"
//
//	e := curated.Errorf(UnknownControl, "key_7")
//	f := curated.Errorf("input: %v", e)
//
//	curated.Is(e, UnknownControl)  // true
//	curated.Is(f, UnknownControl)  // false
//	curated.Has(f, UnknownControl) // true
//
// The Error() function ensures that the error chain is normalised.
// Specifically, that the chain does not contain duplicate adjacent parts. For
// example, a function that wraps an error with "controls: %v" when the error
// is already prefixed with "controls: " will not result in the message
// "controls: controls: ...".
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// Sentinel patterns should be stored as an exported const string in the
// package that creates the error.
package curated
