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

package ansi

import "fmt"

// CSI sequences for cursor movement.
const (
	CursorForwardOne  = "\033[C"
	CursorBackwardOne = "\033[D"
	CursorStore       = "\033[s"
	CursorRestore     = "\033[u"
)

// CursorMove returns the CSI sequence to move the cursor the number of
// columns. A negative number moves the cursor backwards.
func CursorMove(columns int) string {
	switch {
	case columns > 0:
		return fmt.Sprintf("\033[%dC", columns)
	case columns < 0:
		return fmt.Sprintf("\033[%dD", -columns)
	}
	return ""
}
