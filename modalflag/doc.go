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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are first given to the Modes type with NewArgs() and are then
// processed with Parse(). For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MONITOR", "INFO", "VIZ", "STATE")
//	p, err := md.Parse()
//
// The first sub-mode is the default. If the first argument after the flags
// names one of the sub-modes then that sub-mode is selected and the argument
// is consumed. The selected mode is returned by Mode(). Sub-mode comparisons
// are case insensitive and modes are always reported in upper case.
//
// Each mode can then define its own flags by calling NewMode() and parsing
// again:
//
//	switch md.Mode() {
//	case "MONITOR":
//		md.NewMode()
//		saveType := md.AddString("savetype", "AUTO", "save type of cartridge")
//		p, err := md.Parse()
//		...
//	}
//
// Non-flag arguments remaining after a Parse() are available with
// RemainingArgs() and GetArg().
//
// Help is handled automatically. When the -help flag is given, Parse() writes
// a help message to the Output field, including the list of sub-modes, and
// returns ParseHelp.
package modalflag
