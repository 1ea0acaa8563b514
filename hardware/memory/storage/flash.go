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
	"fmt"

	"github.com/gbasave/gbasave/environment"
)

// ReadMode of the flash device.
type ReadMode uint8

// List of valid ReadMode values.
const (
	ReadData ReadMode = iota
	ReadChipID

	// number of read modes. not a valid mode
	numReadModes
)

func (m ReadMode) String() string {
	switch m {
	case ReadData:
		return "data"
	case ReadChipID:
		return "chip id"
	}
	return "unknown"
}

// chip identification. the 64K chip identifies as an SST device and the 128K
// chip identifies as a Sanyo device.
var (
	chipID64K  = [2]uint8{0xbf, 0xd4}
	chipID128K = [2]uint8{0x62, 0x13}
)

// Flash implements the Device interface for the flash chip. The command
// protocol is described in the package documentation.
type Flash struct {
	env *environment.Environment

	state flashState
	mode  ReadMode

	// the currently visible bank. always zero for the 64K chip
	bank int

	// length of data is either Flash64KSize or Flash128KSize
	data []uint8
}

// NewFlash is the preferred method of initialisation for the Flash type. The
// size argument must be Flash64KSize or Flash128KSize.
//
// The contents of data are copied into the new device. If data is nil, or
// not of the requested size, the device is filled with 0xff, the value of
// erased flash memory.
func NewFlash(env *environment.Environment, size int, data []uint8) *Flash {
	if size != Flash64KSize && size != Flash128KSize {
		panic(fmt.Sprintf("flash: unsupported size (%d)", size))
	}

	return &Flash{
		env:  env,
		data: seed(env, "flash", size, data, 0xff),
	}
}

// the bank is applied to the low 16 bits of the offset
func (f *Flash) index(offset uint32) (int, bool) {
	idx := f.bank*BankSize + int(offset&0xffff)
	return idx, idx < len(f.data)
}

// Bank returns the currently selected bank.
func (f *Flash) Bank() int {
	return f.bank
}

// Mode returns the current read mode.
func (f *Flash) Mode() ReadMode {
	return f.mode
}

// NumBanks returns the number of 64K banks in the device.
func (f *Flash) NumBanks() int {
	return len(f.data) / BankSize
}

func (f *Flash) chipID() [2]uint8 {
	if len(f.data) == Flash64KSize {
		return chipID64K
	}
	return chipID128K
}

// Read implements the Device interface.
func (f *Flash) Read(offset uint32) uint8 {
	addr := offset & 0xffff

	if f.mode == ReadChipID {
		switch addr {
		case 0x0000:
			return f.chipID()[0]
		case 0x0001:
			return f.chipID()[1]
		}
		return 0x00
	}

	idx, ok := f.index(offset)
	if !ok {
		f.env.Logf("flash", "out of bounds read at %#04x (bank %d)", addr, f.bank)
		return 0xff
	}

	return f.data[idx]
}

// Write implements the Device interface. Writes drive the command protocol.
func (f *Flash) Write(offset uint32, value uint8) {
	addr := uint16(offset & 0xffff)

	switch {
	case f.state == flashWriteSingleByte:
		// the device remains ready to program a byte if the write is out of
		// bounds
		idx, ok := f.index(offset)
		if !ok {
			f.env.Logf("flash", "out of bounds write at %#04x (bank %d)", addr, f.bank)
			return
		}

		// programming can only clear bits
		f.data[idx] &= value
		f.state = flashReady

	case f.state == flashBankChange:
		if addr != 0x0000 {
			panic(fmt.Sprintf("flash: bank change must be written to address zero (%#04x)", addr))
		}

		if int(value) >= f.NumBanks() {
			f.env.Logf("flash", "invalid bank selection: %d (maximum bank is %d)", value, f.NumBanks()-1)
			f.state = flashReady
			return
		}

		f.bank = int(value)
		f.state = flashReady

	case f.state.waiting():
		next, op, ok := transition(f.state, addr, value)
		if !ok {
			f.env.Logf("flash", "invalid command: %#02x written to %#04x (%s)", value, addr, f.state)
			return
		}

		switch op {
		case flashEnterChipID:
			f.mode = ReadChipID
		case flashExitChipID:
			if f.mode != ReadChipID {
				f.env.Logf("flash", "leaving chip id mode without entering it")
			}
			f.mode = ReadData
		case flashEraseChip:
			for i := range f.data {
				f.data[i] = 0xff
			}
		case flashEraseSector:
			start := f.bank*BankSize + int(addr>>12)*SectorSize
			for i := start; i < start+SectorSize; i++ {
				f.data[i] = 0xff
			}
		}

		f.state = next

	default:
		panic(fmt.Sprintf("flash: unknown protocol state (%d)", f.state))
	}
}

// Data implements the Device interface.
func (f *Flash) Data() []uint8 {
	return f.data
}

// SaveType implements the Device interface.
func (f *Flash) SaveType() SaveType {
	switch len(f.data) {
	case Flash64KSize:
		return Flash64K
	case Flash128KSize:
		return Flash128K
	}
	panic(fmt.Sprintf("flash: unexpected size (%d)", len(f.data)))
}

// Label implements the Device interface.
func (f *Flash) Label() string {
	switch len(f.data) {
	case Flash64KSize:
		return "FLASH (512K)"
	case Flash128KSize:
		return "FLASH (1M)"
	}
	panic(fmt.Sprintf("flash: unexpected size (%d)", len(f.data)))
}

// Snapshot implements the Device interface.
func (f *Flash) Snapshot() Device {
	n := *f
	n.data = make([]uint8, len(f.data))
	copy(n.data, f.data)
	return &n
}

// Plumb implements the Device interface.
func (f *Flash) Plumb(env *environment.Environment) {
	f.env = env
}

func (f *Flash) String() string {
	return fmt.Sprintf("%s bank=%d mode=%s state=%s", f.Label(), f.bank, f.mode, f.state)
}
