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

import "github.com/gbasave/gbasave/curated"

// AddressError is the pattern of the error returned by Peek() and Poke() when
// the offset is outside of the device.
const AddressError = "storage: offset out of range: %#08x"

// Peek returns the data visible at the offset. Unlike Device.Read() the read
// mode of a Flash device is ignored and out of range offsets result in an
// error rather than a diagnostic.
func Peek(dev Device, offset uint32) (uint8, error) {
	idx, ok := dev.index(offset)
	if !ok {
		return 0, curated.Errorf(AddressError, offset)
	}
	return dev.Data()[idx], nil
}

// Poke sets the data visible at the offset. The value is written directly to
// the data of the device. The Flash command protocol is not involved and
// bits can be set as well as cleared.
func Poke(dev Device, offset uint32, value uint8) error {
	idx, ok := dev.index(offset)
	if !ok {
		return curated.Errorf(AddressError, offset)
	}
	dev.Data()[idx] = value
	return nil
}
