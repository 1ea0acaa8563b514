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

package memory

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Visualise writes a graph of the memory bus and the active save device, in
// the DOT language, to the io.Writer.
func (mem *Memory) Visualise(w io.Writer) {
	memviz.Map(w, mem)
}
