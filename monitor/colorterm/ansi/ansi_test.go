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

package ansi_test

import (
	"testing"

	"github.com/gbasave/gbasave/monitor/colorterm/ansi"
	"github.com/gbasave/gbasave/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91m")

	s, err = ansi.ColorBuild("blue", "bold", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[34;1m")

	s, err = ansi.ColorBuild("", "", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, ansi.NormalPen)

	_, err = ansi.ColorBuild("mauve", "", false)
	test.ExpectFailure(t, err)
}

func TestTables(t *testing.T) {
	test.ExpectEquality(t, ansi.Pens["green"], "\033[92m")
	test.ExpectEquality(t, ansi.DimPens["green"], "\033[32m")
	test.ExpectEquality(t, ansi.PenStyles["underline"], "\033[4m")
}

func TestCursorMove(t *testing.T) {
	test.ExpectEquality(t, ansi.CursorMove(0), "")
	test.ExpectEquality(t, ansi.CursorMove(3), "\033[3C")
	test.ExpectEquality(t, ansi.CursorMove(-12), "\033[12D")
}
