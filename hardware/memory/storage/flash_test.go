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

package storage_test

import (
	"strings"
	"testing"

	"github.com/gbasave/gbasave/environment"
	"github.com/gbasave/gbasave/hardware/memory/storage"
	"github.com/gbasave/gbasave/logger"
	"github.com/gbasave/gbasave/test"
)

// newEnv returns an environment with a private logger.
func newEnv() (*environment.Environment, *logger.Logger) {
	log := logger.NewLogger(1000)
	return &environment.Environment{Log: log}, log
}

// command writes the unlock sequence followed by the command value.
func command(dev storage.Device, cmd uint8) {
	dev.Write(0x5555, 0xaa)
	dev.Write(0x2aaa, 0x55)
	dev.Write(0x5555, cmd)
}

func selectBank(dev storage.Device, bank uint8) {
	command(dev, 0xb0)
	dev.Write(0x0000, bank)
}

// pattern returns a buffer of the specified size that is unlikely to match
// any fill value.
func pattern(size int) []uint8 {
	d := make([]uint8, size)
	for i := range d {
		d[i] = uint8(i*7 + i>>8)
	}
	return d
}

func TestFlashImplementsDevice(t *testing.T) {
	var dev storage.Device
	test.ExpectImplements(t, storage.NewFlash(nil, storage.Flash64KSize, nil), dev)
	test.ExpectImplements(t, storage.NewSram(nil, nil), dev)
}

func TestFlashErased(t *testing.T) {
	env, log := newEnv()

	f := storage.NewFlash(env, storage.Flash64KSize, nil)
	test.ExpectEquality(t, len(f.Data()), storage.Flash64KSize)
	for i, v := range f.Data() {
		if v != 0xff {
			t.Fatalf("new flash is not erased at %#04x", i)
		}
	}
	test.ExpectEquality(t, log.Len(), 0)

	// seed of the wrong length
	f = storage.NewFlash(env, storage.Flash64KSize, pattern(storage.Flash128KSize))
	test.ExpectEquality(t, len(f.Data()), storage.Flash64KSize)
	for i, v := range f.Data() {
		if v != 0xff {
			t.Fatalf("flash with incorrect seed is not erased at %#04x", i)
		}
	}
	test.ExpectEquality(t, log.Len(), 1)
}

func TestFlashSeedIsCopied(t *testing.T) {
	data := pattern(storage.Flash128KSize)
	f := storage.NewFlash(nil, storage.Flash128KSize, data)
	test.ExpectEquality(t, f.Read(0x1234), data[0x1234])

	data[0x1234] ^= 0xff
	test.ExpectInequality(t, f.Read(0x1234), data[0x1234])
}

func TestFlashProgram(t *testing.T) {
	env, log := newEnv()
	f := storage.NewFlash(env, storage.Flash64KSize, pattern(storage.Flash64KSize))

	for b := uint32(0); b < storage.Flash64KSize; b++ {
		v := uint8(b*13 + 5)
		prev := f.Read(b)
		command(f, 0xa0)
		f.Write(b, v)
		if f.Read(b) != prev&v {
			t.Fatalf("program at %#04x: expected %#02x got %#02x", b, prev&v, f.Read(b))
		}
	}

	test.ExpectEquality(t, log.Len(), 0)
}

func TestFlashProgramCannotSetBits(t *testing.T) {
	f := storage.NewFlash(nil, storage.Flash64KSize, nil)

	command(f, 0xa0)
	f.Write(0x0100, 0x0f)
	test.ExpectEquality(t, f.Read(0x0100), uint8(0x0f))

	command(f, 0xa0)
	f.Write(0x0100, 0xf1)
	test.ExpectEquality(t, f.Read(0x0100), uint8(0x01))

	// a write without the program command is a command write, not a program
	f.Write(0x0100, 0x00)
	test.ExpectEquality(t, f.Read(0x0100), uint8(0x01))
}

func TestFlashEraseChip(t *testing.T) {
	for _, size := range []int{storage.Flash64KSize, storage.Flash128KSize} {
		f := storage.NewFlash(nil, size, pattern(size))

		command(f, 0x80)
		command(f, 0x10)

		for i, v := range f.Data() {
			if v != 0xff {
				t.Fatalf("chip erase (size %d) failed at %#05x", size, i)
			}
		}
	}
}

func TestFlashEraseSector(t *testing.T) {
	data := pattern(storage.Flash128KSize)
	f := storage.NewFlash(nil, storage.Flash128KSize, data)

	selectBank(f, 1)
	test.ExpectEquality(t, f.Bank(), 1)

	// sector 3. the sector erase command can be written to any address in the
	// sector
	command(f, 0x80)
	f.Write(0x5555, 0xaa)
	f.Write(0x2aaa, 0x55)
	f.Write(0x3abc, 0x30)

	start := storage.BankSize + 3*storage.SectorSize
	end := start + storage.SectorSize

	for i, v := range f.Data() {
		if i >= start && i < end {
			if v != 0xff {
				t.Fatalf("sector erase failed at %#05x", i)
			}
		} else if v != data[i] {
			t.Fatalf("sector erase changed data outside of sector at %#05x", i)
		}
	}
}

func TestFlashBankChange(t *testing.T) {
	data := pattern(storage.Flash128KSize)
	f := storage.NewFlash(nil, storage.Flash128KSize, data)

	test.ExpectEquality(t, f.NumBanks(), 2)
	test.ExpectEquality(t, f.Read(0x0020), data[0x0020])

	selectBank(f, 1)
	test.ExpectEquality(t, f.Bank(), 1)
	test.ExpectEquality(t, f.Read(0x0020), data[0x10020])

	// address is masked to 16 bits before the bank is applied
	test.ExpectEquality(t, f.Read(0x00ff0020), data[0x10020])

	command(f, 0xa0)
	f.Write(0x0020, 0x00)
	test.ExpectEquality(t, f.Data()[0x10020], uint8(0x00))
	test.ExpectEquality(t, f.Data()[0x00020], data[0x00020])

	selectBank(f, 0)
	test.ExpectEquality(t, f.Bank(), 0)
	test.ExpectEquality(t, f.Read(0x0020), data[0x0020])
}

func TestFlashInvalidBank(t *testing.T) {
	env, log := newEnv()
	f := storage.NewFlash(env, storage.Flash64KSize, nil)

	selectBank(f, 1)
	test.ExpectEquality(t, f.Bank(), 0)
	test.ExpectEquality(t, log.Len(), 1)

	// device has returned to waiting for a command
	command(f, 0x90)
	test.ExpectEquality(t, f.Mode(), storage.ReadChipID)
	test.ExpectEquality(t, log.Len(), 1)
}

func TestFlashBankChangeAddress(t *testing.T) {
	f := storage.NewFlash(nil, storage.Flash128KSize, nil)
	command(f, 0xb0)
	test.ExpectPanic(t, func() {
		f.Write(0x0001, 0x01)
	})
}

func TestFlashChipID(t *testing.T) {
	type id struct {
		size         int
		manufacturer uint8
		device       uint8
	}

	for _, tt := range []id{
		{storage.Flash64KSize, 0xbf, 0xd4},
		{storage.Flash128KSize, 0x62, 0x13},
	} {
		data := pattern(tt.size)
		f := storage.NewFlash(nil, tt.size, data)

		command(f, 0x90)
		test.ExpectEquality(t, f.Mode(), storage.ReadChipID)
		test.ExpectEquality(t, f.Read(0x0000), tt.manufacturer, tt.size)
		test.ExpectEquality(t, f.Read(0x0001), tt.device, tt.size)
		test.ExpectEquality(t, f.Read(0x0002), uint8(0x00), tt.size)
		test.ExpectEquality(t, f.Read(0x00010000), tt.manufacturer, tt.size)

		command(f, 0xf0)
		test.ExpectEquality(t, f.Mode(), storage.ReadData)
		test.ExpectEquality(t, f.Read(0x0000), data[0], tt.size)
		test.ExpectEquality(t, f.Read(0x0001), data[1], tt.size)
	}
}

func TestFlashChipIDIgnoresBank(t *testing.T) {
	f := storage.NewFlash(nil, storage.Flash128KSize, nil)
	selectBank(f, 1)
	command(f, 0x90)
	test.ExpectEquality(t, f.Read(0x0000), uint8(0x62))
	test.ExpectEquality(t, f.Read(0x0001), uint8(0x13))
}

func TestFlashExitChipIDWithoutEntering(t *testing.T) {
	env, log := newEnv()
	f := storage.NewFlash(env, storage.Flash64KSize, nil)

	command(f, 0xf0)
	test.ExpectEquality(t, f.Mode(), storage.ReadData)
	test.ExpectEquality(t, log.Len(), 1)
}

func TestFlashInvalidCommand(t *testing.T) {
	env, log := newEnv()
	f := storage.NewFlash(env, storage.Flash64KSize, nil)

	// first write of the unlock sequence followed by an invalid write. the
	// sequence is not reset so the remainder of the sequence is accepted
	f.Write(0x5555, 0xaa)
	f.Write(0x0000, 0x00)
	test.ExpectEquality(t, log.Len(), 1)
	test.ExpectSuccess(t, strings.HasSuffix(f.String(), "state=Unlocked1"))

	f.Write(0x2aaa, 0x55)
	f.Write(0x5555, 0x90)
	test.ExpectEquality(t, f.Mode(), storage.ReadChipID)
	test.ExpectEquality(t, log.Len(), 1)

	// chip id is not a valid command in the erase context
	command(f, 0xf0)
	command(f, 0x80)
	f.Write(0x5555, 0xaa)
	f.Write(0x2aaa, 0x55)
	f.Write(0x5555, 0x90)
	test.ExpectEquality(t, f.Mode(), storage.ReadData)
	test.ExpectSuccess(t, strings.HasSuffix(f.String(), "state=EraseUnlocked2"))
}

func TestFlashTypes(t *testing.T) {
	f := storage.NewFlash(nil, storage.Flash64KSize, nil)
	test.ExpectEquality(t, f.SaveType(), storage.Flash64K)
	test.ExpectEquality(t, f.Label(), "FLASH (512K)")

	f = storage.NewFlash(nil, storage.Flash128KSize, nil)
	test.ExpectEquality(t, f.SaveType(), storage.Flash128K)
	test.ExpectEquality(t, f.Label(), "FLASH (1M)")
	test.ExpectEquality(t, f.String(), "FLASH (1M) bank=0 mode=data state=Ready")

	test.ExpectPanic(t, func() {
		_ = storage.NewFlash(nil, storage.SramSize+1, nil)
	})
}

func TestFlashSnapshot(t *testing.T) {
	f := storage.NewFlash(nil, storage.Flash128KSize, nil)
	selectBank(f, 1)

	s := f.Snapshot().(*storage.Flash)
	command(f, 0xa0)
	f.Write(0x0000, 0x00)

	test.ExpectEquality(t, f.Read(0x0000), uint8(0x00))
	test.ExpectEquality(t, s.Read(0x0000), uint8(0xff))
	test.ExpectEquality(t, s.Bank(), 1)
}
