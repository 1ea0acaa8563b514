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
	"strings"

	"github.com/gbasave/gbasave/curated"
)

// SaveType identifies the type of save device in a cartridge.
type SaveType int

// List of valid SaveType values. Only None, SRAM, Flash64K and Flash128K
// result in an emulated device of that type.
const (
	None SaveType = iota
	SRAM
	Flash64K
	Flash128K
	EEPROM4K
	EEPROM64K
)

// SaveTypes lists all the valid SaveType values in order.
var SaveTypes = []SaveType{None, SRAM, Flash64K, Flash128K, EEPROM4K, EEPROM64K}

func (t SaveType) String() string {
	switch t {
	case None:
		return "None"
	case SRAM:
		return "SRAM"
	case Flash64K:
		return "Flash64K"
	case Flash128K:
		return "Flash128K"
	case EEPROM4K:
		return "EEPROM4K"
	case EEPROM64K:
		return "EEPROM64K"
	}
	return "unknown"
}

// UnknownSaveType is the pattern of the error returned by ParseSaveType().
const UnknownSaveType = "storage: unknown save type: %s"

// ParseSaveType converts a string into a SaveType. The string is compared
// to the result of the String() function of each SaveType, ignoring case.
func ParseSaveType(s string) (SaveType, error) {
	s = strings.TrimSpace(s)
	for _, t := range SaveTypes {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return None, curated.Errorf(UnknownSaveType, s)
}
