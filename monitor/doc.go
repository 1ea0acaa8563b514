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

// Package monitor implements a line oriented command interface to the memory
// bus and its save device. It is used to inspect and modify save data, to
// drive the flash command protocol by hand, and to load and save device
// state.
//
// Commands are read from a terminal.Terminal. See the plainterm and colorterm
// packages for the implementations. Commands and their arguments are case
// insensitive and numbers can be given in decimal, or in hex with either the
// 0x or the $ prefix.
//
//	PEEK 0x0e000000
//	POKE $0e005555 $aa
//	DUMP 0 32
//
// The HELP command lists the available commands.
package monitor
