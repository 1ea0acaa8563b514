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
	"bufio"
	"io"
	"os"

	"github.com/gbasave/gbasave/curated"
	"github.com/gbasave/gbasave/monitor/colorterm/ansi"
	"github.com/gbasave/gbasave/monitor/terminal"
	"github.com/pkg/term"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal
type ColorTerminal struct {
	tty    *term.Term
	output io.Writer
	editor editor
}

// the terminal device used for input
const ttyDevice = "/dev/tty"

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type. Output is written to the io.Writer or to the standard
// output if it is nil. Input is always read from the terminal device.
func NewColorTerminal(output io.Writer) *ColorTerminal {
	return &ColorTerminal{
		output: output,
	}
}

// Initialise perfoms any setting up required for the terminal
func (ct *ColorTerminal) Initialise() error {
	tty, err := term.Open(ttyDevice, term.CBreakMode)
	if err != nil {
		return curated.Errorf("colorterm: %v", err)
	}

	ct.tty = tty
	if ct.output == nil {
		ct.output = os.Stdout
	}
	ct.editor = editor{
		reader: bufio.NewReader(tty),
		output: ct.output,
	}

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal
func (ct *ColorTerminal) CleanUp() {
	if ct.tty == nil {
		return
	}
	io.WriteString(ct.output, "\r")
	_ = ct.tty.Restore()
	_ = ct.tty.Close()
	ct.tty = nil
}

// IsInteractive implements the terminal.Input interface
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermRead implements the terminal.Input interface
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	return ct.editor.readLine(prompt)
}

// TermPrintLine implements the terminal.Output interface
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	printLine(ct.output, style, s)
}

// printLine writes the string in the pen for the style. the line is cleared
// first because the cursor may be part way along a line after an edit.
func printLine(w io.Writer, style terminal.Style, s string) {
	io.WriteString(w, ansi.ClearLine)

	switch style {
	case terminal.StyleEcho:
		io.WriteString(w, ansi.DimPens["white"])
	case terminal.StyleHelp:
		io.WriteString(w, ansi.DimPens["cyan"])
	case terminal.StyleFeedback:
		io.WriteString(w, ansi.Pens["white"])
	case terminal.StyleDump:
		io.WriteString(w, ansi.DimPens["green"])
	case terminal.StyleLog:
		io.WriteString(w, ansi.DimPens["yellow"])
	case terminal.StyleError:
		io.WriteString(w, ansi.Pens["red"])
		io.WriteString(w, "* ")
	}

	io.WriteString(w, s)
	io.WriteString(w, ansi.NormalPen)
	io.WriteString(w, "\n")
}
