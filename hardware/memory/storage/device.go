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

package storage

import (
	"github.com/gbasave/gbasave/environment"
)

// Sizes of the save devices and their subdivisions.
const (
	SramSize      = 0x10000
	Flash64KSize  = 0x10000
	Flash128KSize = 0x20000
	BankSize      = 0x10000
	SectorSize    = 0x1000
)

// Device is implemented by the emulated save devices. The only
// implementations are Sram and Flash.
//
// Read() and Write() never fail. The offset is relative to the start of the
// save area in the memory map.
type Device interface {
	Read(offset uint32) uint8
	Write(offset uint32, value uint8)

	// the raw data of the device. the returned slice must not be modified
	Data() []uint8

	SaveType() SaveType

	// human readable description of the device type
	Label() string

	// Snapshot creates a deep copy of the device. The copy retains the
	// environment of the original device and should be plumbed in if it is
	// to be used in another emulation.
	Snapshot() Device

	// Plumb attaches the device to a new environment.
	Plumb(env *environment.Environment)

	// single line summary of the device's state
	String() string

	// index of the data visible at offset. the bool is false if offset is
	// outside the device. unexported so that the set of devices is closed
	index(offset uint32) (int, bool)
}

// seed creates a new data buffer of the specified size. If data is of the
// correct length it is copied into the buffer, otherwise the buffer is
// filled with the fill value. A diagnostic is logged if data is not of the
// correct length. A nil data slice means that there is no seed. An empty
// slice is a seed of the wrong length.
func seed(env *environment.Environment, tag string, size int, data []uint8, fill uint8) []uint8 {
	d := make([]uint8, size)

	if len(data) == size {
		copy(d, data)
		return d
	}

	if data != nil {
		env.Logf(tag, "invalid storage size: %d bytes, expected %d bytes", len(data), size)
	}

	if fill != 0x00 {
		for i := range d {
			d[i] = fill
		}
	}

	return d
}
