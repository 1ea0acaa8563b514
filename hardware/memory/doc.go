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

// Package memory implements the address bus of the GBA as far as it is needed
// to reach the save device of a cartridge. Addresses are decoded with the
// memorymap package. Accesses to the save area are forwarded to the active
// save device (see the storage package) with the area tag stripped from the
// address. Accesses to all other areas are unhandled: reads return 0xff and
// writes are ignored. In both cases a diagnostic is logged.
//
// There is exactly one save device at any one time. The power-on device is a
// zero filled SRAM. SetSaveDevice() replaces the device and returns the
// previous device to the caller so that the data can be written to disk if
// required.
//
// Memory is not safe for concurrent use. Callers that access memory from
// more than one goroutine must serialise access.
package memory
