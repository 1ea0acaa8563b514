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

// Package memorymap facilitates the translation of addresses on the 32bit
// address bus to the area of memory the address belongs to.
//
// The area is decided by the top byte of the address. Within an area the
// address is reduced to an offset relative to the origin of the area. For most
// areas that means the low 24 bits of the address. Cartridge ROM is mirrored
// three times, once for each wait state, and the offset is the low 25 bits.
//
// The save area is the region in which the cartridge's save device (SRAM or
// Flash) is visible. The Offset passed to the device is the address with the
// save tag stripped.
package memorymap
