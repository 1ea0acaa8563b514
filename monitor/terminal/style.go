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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can choose
// to interpret the style however it wants, including ignoring it completely.
type Style int

// List of terminal styles.
const (
	// the input from the user being echoed back to the user. echoed input
	// has been "normalised" (eg. capitalised, leading space removed, etc.)
	StyleEcho Style = iota

	// information from the internal help system
	StyleHelp

	// information about the result of a command
	StyleFeedback

	// the output of the DUMP command
	StyleDump

	// entries from the log
	StyleLog

	// errors can be generated by the monitor or by the emulation
	StyleError
)

// IsError returns true if the style is StyleError.
func (s Style) IsError() bool {
	return s == StyleError
}
