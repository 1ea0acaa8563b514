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

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case BIOS:
		return "BIOS"
	case EWRAM:
		return "EWRAM"
	case IWRAM:
		return "IWRAM"
	case IO:
		return "IO"
	case Palette:
		return "Palette"
	case VRAM:
		return "VRAM"
	case OAM:
		return "OAM"
	case ROM:
		return "ROM"
	case Save:
		return "Save"
	}

	return "undefined"
}

// The different memory areas on the address bus
const (
	Undefined Area = iota
	BIOS
	EWRAM
	IWRAM
	IO
	Palette
	VRAM
	OAM
	ROM
	Save
)

// The tag for each area of memory is the value of the top byte of the address.
// Cartridge ROM occupies three tags, one for each wait state.
const (
	TagBIOS    = uint8(0x00)
	TagEWRAM   = uint8(0x02)
	TagIWRAM   = uint8(0x03)
	TagIO      = uint8(0x04)
	TagPalette = uint8(0x05)
	TagVRAM    = uint8(0x06)
	TagOAM     = uint8(0x07)
	TagROMWS0  = uint8(0x08)
	TagROMWS1  = uint8(0x0a)
	TagROMWS2  = uint8(0x0c)
	TagSave    = uint8(0x0e)
)

// Origin of the save area. The save device sees addresses relative to this.
const OriginSave = uint32(TagSave) << 24

// OffsetBits identifies the bits of an address that are relevant within an
// area. The top byte of an address is the area tag.
//
//	0x0e001234 & OffsetBits == 0x001234
const (
	OffsetBits    = uint32(0x00ffffff)
	OffsetBitsROM = uint32(0x01ffffff)
)

// Tag returns the top byte of the address.
func Tag(address uint32) uint8 {
	return uint8(address >> 24)
}

// MapAddress translates the address argument into an offset relative to the
// origin of the area that it belongs to. Addresses in unused parts of the bus
// are returned unchanged with an area of Undefined.
func MapAddress(address uint32) (uint32, Area) {
	switch Tag(address) {
	case TagBIOS:
		return address & OffsetBits, BIOS
	case TagEWRAM:
		return address & OffsetBits, EWRAM
	case TagIWRAM:
		return address & OffsetBits, IWRAM
	case TagIO:
		return address & OffsetBits, IO
	case TagPalette:
		return address & OffsetBits, Palette
	case TagVRAM:
		return address & OffsetBits, VRAM
	case TagOAM:
		return address & OffsetBits, OAM
	case TagROMWS0, TagROMWS0 + 1, TagROMWS1, TagROMWS1 + 1, TagROMWS2, TagROMWS2 + 1:
		return address & OffsetBitsROM, ROM
	case TagSave:
		return address & OffsetBits, Save
	}

	return address, Undefined
}

// IsArea returns true if the address is in the specificied area
func IsArea(address uint32, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
