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

import (
	"io"
	"unicode"

	"github.com/gbasave/gbasave/curated"
	"github.com/gbasave/gbasave/monitor/colorterm/ansi"
	"github.com/gbasave/gbasave/monitor/terminal"
)

// editor reads a line of input from a terminal in cbreak mode, redrawing the
// line after every key press.
type editor struct {
	reader io.RuneReader
	output io.Writer

	history []string
}

func (ed *editor) print(s string) {
	io.WriteString(ed.output, s)
}

// redraw the prompt and the input and place the cursor.
func (ed *editor) redraw(prompt string, input []rune, cursor int) {
	ed.print(ansi.ClearLine)
	ed.print(ansi.PenStyles["bold"])
	ed.print(prompt)
	ed.print(ansi.NormalPen)
	ed.print(string(input))
	ed.print(ansi.CursorMove(cursor - len(input)))
}

// readLine returns the next line of input. the line is added to the history
// if it isn't empty and isn't the same as the most recent history entry.
func (ed *editor) readLine(prompt string) (string, error) {
	var input []rune
	cursor := 0

	// index into the history. equal to len(history) when the input is not
	// from the history
	history := len(ed.history)

	// the input being edited before moving through the history
	var stash []rune

	recall := func(s []rune) {
		input = append(input[:0], s...)
		cursor = len(input)
	}

	for {
		ed.redraw(prompt, input, cursor)

		r, _, err := ed.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case keyCarriageReturn, keyLineFeed:
			ed.print("\n")
			s := string(input)
			if len(s) > 0 && (len(ed.history) == 0 || ed.history[len(ed.history)-1] != s) {
				ed.history = append(ed.history, s)
			}
			return s, nil

		case keyInterrupt:
			ed.print("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case keyEndOfFile:
			if len(input) == 0 {
				ed.print("\n")
				return "", io.EOF
			}

		case keyBackspace, keyDelete:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				history = len(ed.history)
			}

		case keyEsc:
			r, _, err = ed.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != escCursor {
				continue
			}

			r, _, err = ed.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case cursorUp:
				if history > 0 {
					if history == len(ed.history) {
						stash = append(stash[:0], input...)
					}
					history--
					recall([]rune(ed.history[history]))
				}
			case cursorDown:
				if history < len(ed.history)-1 {
					history++
					recall([]rune(ed.history[history]))
				} else if history == len(ed.history)-1 {
					history++
					recall(stash)
				}
			case cursorForward:
				if cursor < len(input) {
					cursor++
				}
			case cursorBackward:
				if cursor > 0 {
					cursor--
				}
			case cursorHome:
				cursor = 0
			case cursorEnd:
				cursor = len(input)
			case cursorDelete:
				r, _, err = ed.reader.ReadRune()
				if err != nil {
					return "", err
				}
				if r == tilde && cursor < len(input) {
					input = append(input[:cursor], input[cursor+1:]...)
					history = len(ed.history)
				}
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input, 0)
				copy(input[cursor+1:], input[cursor:])
				input[cursor] = r
				cursor++
				history = len(ed.history)
			}
		}
	}
}
