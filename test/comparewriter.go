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

package test

import "strings"

// CompareWriter captures everything written to it so that output can be
// compared with an expected string.
type CompareWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	return tw.buffer.Write(p)
}

// Clear empties the buffer.
func (tw *CompareWriter) Clear() {
	tw.buffer.Reset()
}

// Compare returns true if the captured output is the same as the string.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.buffer.String() == s
}

func (tw *CompareWriter) String() string {
	return tw.buffer.String()
}
