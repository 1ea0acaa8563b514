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

package memory

import (
	"fmt"
	"io"

	"github.com/gbasave/gbasave/curated"
	"github.com/gbasave/gbasave/environment"
	"github.com/gbasave/gbasave/hardware/memory/memorymap"
	"github.com/gbasave/gbasave/hardware/memory/storage"
)

// Memory is the top-level type for the memory bus. It implements the bus.CPUBus
// and bus.DebugBus interfaces.
type Memory struct {
	env *environment.Environment

	// the active save device. never nil
	save storage.Device
}

// NewMemory is the preferred method of initialisation for Memory.
func NewMemory(env *environment.Environment) *Memory {
	return &Memory{
		env:  env,
		save: storage.NewSram(env, nil),
	}
}

func (mem *Memory) String() string {
	return fmt.Sprintf("save: %s", mem.save.String())
}

// Snapshot creates a copy of the memory bus and the save device it contains.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.save = mem.save.Snapshot()
	return &n
}

// Plumb a new environment into the memory bus and the save device.
func (mem *Memory) Plumb(env *environment.Environment) {
	mem.env = env
	mem.save.Plumb(env)
}

// SaveDevice returns the active save device.
func (mem *Memory) SaveDevice() storage.Device {
	return mem.save
}

// SetSaveDevice creates a new save device of the specified type and makes it
// the active device. The previous device is returned.
//
// The data argument seeds the new device. It is copied and can be nil. If it
// is not of the correct length for the device it is ignored and the device
// is given default content: zero for SRAM and 0xff for Flash.
//
// The None type produces a zero filled SRAM device, regardless of the data
// argument. EEPROM devices are not supported and produce an SRAM device
// seeded with the data.
func (mem *Memory) SetSaveDevice(saveType storage.SaveType, data []uint8) storage.Device {
	prev := mem.save

	switch saveType {
	case storage.None:
		mem.save = storage.NewSram(mem.env, nil)
	case storage.SRAM:
		mem.save = storage.NewSram(mem.env, data)
	case storage.Flash64K:
		mem.save = storage.NewFlash(mem.env, storage.Flash64KSize, data)
	case storage.Flash128K:
		mem.save = storage.NewFlash(mem.env, storage.Flash128KSize, data)
	default:
		mem.env.Logf("memory", "unsupported save type: %s. using SRAM", saveType)
		mem.save = storage.NewSram(mem.env, data)
	}

	return prev
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint32) uint8 {
	offset, area := memorymap.MapAddress(address)
	if area == memorymap.Save {
		return mem.save.Read(offset)
	}
	mem.env.Logf("memory", "unhandled read from %s at %#08x", area, address)
	return 0xff
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(address uint32, data uint8) {
	offset, area := memorymap.MapAddress(address)
	if area == memorymap.Save {
		mem.save.Write(offset, data)
		return
	}
	mem.env.Logf("memory", "unhandled write to %s at %#08x (%#02x)", area, address, data)
}

// UnmappedError is the pattern of the error returned by Peek() and Poke()
// for addresses outside of the save area.
const UnmappedError = "memory: address not mapped: %#08x (%s)"

// Peek implements the bus.DebugBus interface.
func (mem *Memory) Peek(address uint32) (uint8, error) {
	offset, area := memorymap.MapAddress(address)
	if area != memorymap.Save {
		return 0, curated.Errorf(UnmappedError, address, area)
	}
	return storage.Peek(mem.save, offset)
}

// Poke implements the bus.DebugBus interface.
func (mem *Memory) Poke(address uint32, value uint8) error {
	offset, area := memorymap.MapAddress(address)
	if area != memorymap.Save {
		return curated.Errorf(UnmappedError, address, area)
	}
	return storage.Poke(mem.save, offset, value)
}

// SaveState writes the state of the active save device.
func (mem *Memory) SaveState(w io.Writer) error {
	return storage.WriteState(w, mem.save)
}

// LoadState replaces the active save device with the device stored in the
// state. The previous device is returned. If there is an error the active
// device is unchanged.
func (mem *Memory) LoadState(r io.Reader) (storage.Device, error) {
	dev, err := storage.ReadState(mem.env, r)
	if err != nil {
		return nil, err
	}
	prev := mem.save
	mem.save = dev
	return prev, nil
}
