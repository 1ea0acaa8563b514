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

package logger

import (
	"io"
	"strings"

	"github.com/gbasave/gbasave/monitor/colorterm/ansi"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// log entry is drawn with a dim pen.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	for _, l := range strings.SplitAfter(string(p), "\n") {
		if len(l) == 0 {
			continue
		}

		tag, detail, ok := strings.Cut(l, ": ")
		if ok {
			l = ansi.DimPens["blue"] + tag + ansi.NormalPen + ": " + detail
		}

		m, err := io.WriteString(c.out, l)
		n += m
		if err != nil {
			return n, err
		}
	}

	// report the number of bytes consumed from p, not the number of bytes
	// written to the underlying writer
	return len(p), nil
}
