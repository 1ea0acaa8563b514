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

package monitor

import (
	"testing"

	"github.com/gbasave/gbasave/test"
)

func TestTokens(t *testing.T) {
	tk := tokeniseInput("  poke $0e000000   0x10 ")
	test.ExpectEquality(t, tk.remaining(), 3)

	s, ok := tk.get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "poke")

	s, _ = tk.get()
	test.ExpectEquality(t, s, "0x0e000000")

	s, _ = tk.get()
	test.ExpectEquality(t, s, "0x10")

	_, ok = tk.get()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, tk.remaining(), 0)
}

func TestHexdump(t *testing.T) {
	data := make([]uint8, 18)
	for i := range data {
		data[i] = uint8(i)
	}
	expected := "00100: 00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f\n" +
		"00110: 10 11\n"
	test.ExpectEquality(t, hexdump(data, 0x100), expected)
}
