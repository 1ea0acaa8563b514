// This file is part of Gbasave.
//
// Gbasave is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gbasave is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gbasave.  If not, see <https://www.gnu.org/licenses/>.

package colorterm

// list of ASCII codes for non-alphanumeric characters
const (
	keyInterrupt      = 3 // end-of-text character
	keyEndOfFile      = 4
	keyBackspace      = 8
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keyDelete         = 127
)

// list of ASCII code for characters that can follow keyEsc
const (
	escCursor = '['
)

// list of ASCII code for characters that can follow escCursor
const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
	cursorHome     = 'H'
	cursorEnd      = 'F'

	// delete is sent as ESC [ 3 ~
	cursorDelete = '3'
	tilde        = '~'
)
