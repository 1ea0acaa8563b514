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

package cartridgeloader

import (
	"bytes"

	"github.com/gbasave/gbasave/hardware/memory/storage"
)

// the library identification strings embedded in ROMs that use a save device.
// the strings are followed by a three digit version number.
//
// the order of the list is important. EEPROM is checked first because some
// games that use EEPROM also contain one of the other strings.
var saveIDs = []struct {
	id       []byte
	saveType storage.SaveType
}{
	{[]byte("EEPROM_V"), storage.EEPROM4K},
	{[]byte("SRAM_V"), storage.SRAM},
	{[]byte("SRAM_F_V"), storage.SRAM},
	{[]byte("FLASH1M_V"), storage.Flash128K},
	{[]byte("FLASH512_V"), storage.Flash64K},
	{[]byte("FLASH_V"), storage.Flash64K},
}

// InferSaveType looks for the library identification strings in the ROM data
// and returns the save type of the first match. If there is no match then the
// cartridge has no save device and the None type is returned.
//
// The size of an EEPROM device can not be inferred from the ROM data.
// EEPROM4K is returned for all EEPROM cartridges.
func InferSaveType(data []byte) storage.SaveType {
	for _, s := range saveIDs {
		if bytes.Contains(data, s.id) {
			return s.saveType
		}
	}
	return storage.None
}
