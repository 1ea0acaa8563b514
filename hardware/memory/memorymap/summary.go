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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	s := strings.Builder{}

	// areas are decided by the top byte of the address so there is no need to
	// look at every address
	var sa uint32
	_, current := MapAddress(0)

	for tag := 1; tag <= 0xff; tag++ {
		a := uint32(tag) << 24
		_, area := MapAddress(a)

		// if the area has changed print out the summary line and start the
		// next one
		if area != current {
			s.WriteString(fmt.Sprintf("%08x -> %08x\t%s\n", sa, a-1, current.String()))
			current = area
			sa = a
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%08x -> %08x\t%s\n", sa, uint32(0xffffffff), current.String()))

	return s.String()
}
