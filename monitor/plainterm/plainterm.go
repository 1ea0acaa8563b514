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

// Package plainterm implements the Terminal interface for the monitor. It's
// as simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gbasave/gbasave/monitor/terminal"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. As such, it
// offers only rudimentary editing facility and little control over output.
type PlainTerminal struct {
	input     io.Reader
	output    io.Writer
	realInput bool
	scanner   *bufio.Scanner
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. A nil input or output means the standard input or
// standard output is used.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	pt := &PlainTerminal{
		input:  input,
		output: output,
	}
	if pt.input == nil {
		pt.input = os.Stdin
	}
	if pt.output == nil {
		pt.output = os.Stdout
	}
	return pt
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	pt.scanner = bufio.NewScanner(pt.input)

	// the prompt is only shown if the input is a character device
	if f, ok := pt.input.(*os.File); ok {
		if fi, err := f.Stat(); err == nil {
			pt.realInput = fi.Mode()&os.ModeCharDevice == os.ModeCharDevice
		}
	}

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	if style.IsError() {
		s = fmt.Sprintf("* %s", s)
	}

	io.WriteString(pt.output, s)
	io.WriteString(pt.output, "\n")
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt string) (string, error) {
	if pt.realInput {
		io.WriteString(pt.output, prompt)
	}

	if !pt.scanner.Scan() {
		if err := pt.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return pt.scanner.Text(), nil
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput
}
