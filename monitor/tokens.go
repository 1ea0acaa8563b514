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
	"fmt"
	"strings"
)

// tokens represents tokenised user input.
type tokens struct {
	input []string
	curr  int
}

func (tk tokens) remaining() int {
	return len(tk.input) - tk.curr
}

func (tk *tokens) get() (string, bool) {
	if tk.curr >= len(tk.input) {
		return "", false
	}
	tk.curr++
	return tk.input[tk.curr-1], true
}

func tokeniseInput(input string) *tokens {
	tk := new(tokens)

	// divide user input into tokens
	tk.input = strings.Fields(input)

	// normalise hex notation
	for i := range tk.input {
		if tk.input[i][0] == '$' {
			tk.input[i] = fmt.Sprintf("0x%s", tk.input[i][1:])
		}
	}

	return tk
}
