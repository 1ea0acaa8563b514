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

// Package storage implements the save devices found on GBA cartridges. A save
// device is visible to the CPU in the save area of the memory map (see the
// memorymap package) and holds the data that a game wants to keep between
// sessions.
//
// Two types of device are emulated. Sram is a simple 64K array of bytes. Flash
// is a NOR flash chip driven by a command protocol. Commands are written to
// the chip preceded by a two write unlock sequence:
//
//	0x5555 <- 0xaa
//	0x2aaa <- 0x55
//	0x5555 <- command
//
// The commands are:
//
//	0x90	enter chip identification mode
//	0xf0	leave chip identification mode
//	0x80	prepare erase. must be followed by another unlock sequence and
//		either 0x10 (erase chip) or 0x30 (erase sector)
//	0xa0	program single byte. the next write is ANDed with the existing value
//	0xb0	bank change. the next write to address zero selects the bank
//
// The 128K flash chip is divided into two banks of 64K. Only one bank is
// visible at any one time.
//
// EEPROM devices are not emulated. Requests for an EEPROM device produce an
// Sram device instead.
//
// Devices never fail. Out of bounds accesses and unrecognised commands are
// reported to the logger of the environment given to the device and are
// otherwise ignored. Conditions that can only occur because of a programming
// error, such as a Flash device with an impossible size, cause a panic.
//
// Devices are not safe for concurrent use.
package storage
