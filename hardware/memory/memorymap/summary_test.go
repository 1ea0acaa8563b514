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

package memorymap_test

import (
	"testing"

	"github.com/gbasave/gbasave/hardware/memory/memorymap"
	"github.com/gbasave/gbasave/test"
)

const validMemMap = `00000000 -> 00ffffff	BIOS
01000000 -> 01ffffff	undefined
02000000 -> 02ffffff	EWRAM
03000000 -> 03ffffff	IWRAM
04000000 -> 04ffffff	IO
05000000 -> 05ffffff	Palette
06000000 -> 06ffffff	VRAM
07000000 -> 07ffffff	OAM
08000000 -> 0dffffff	ROM
0e000000 -> 0effffff	Save
0f000000 -> ffffffff	undefined
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestMapAddress(t *testing.T) {
	var offset uint32
	var area memorymap.Area

	offset, area = memorymap.MapAddress(0x0e001234)
	test.ExpectEquality(t, area, memorymap.Save)
	test.ExpectEquality(t, offset, uint32(0x001234))

	// the whole of the low 24 bits are passed through for the save area
	offset, area = memorymap.MapAddress(0x0effffff)
	test.ExpectEquality(t, area, memorymap.Save)
	test.ExpectEquality(t, offset, uint32(0xffffff))

	// rom mirrors for each wait state
	for _, a := range []uint32{0x08000100, 0x0a000100, 0x0c000100} {
		offset, area = memorymap.MapAddress(a)
		test.ExpectEquality(t, area, memorymap.ROM, a)
		test.ExpectEquality(t, offset, uint32(0x000100), a)
	}
	offset, area = memorymap.MapAddress(0x09000100)
	test.ExpectEquality(t, area, memorymap.ROM)
	test.ExpectEquality(t, offset, uint32(0x01000100))

	offset, area = memorymap.MapAddress(0x10000000)
	test.ExpectEquality(t, area, memorymap.Undefined)
	test.ExpectEquality(t, offset, uint32(0x10000000))

	test.ExpectSuccess(t, memorymap.IsArea(0x03007ff0, memorymap.IWRAM))
	test.ExpectFailure(t, memorymap.IsArea(0x0f000000, memorymap.Save))
	test.ExpectEquality(t, memorymap.Tag(0x0e000000), memorymap.TagSave)
}
