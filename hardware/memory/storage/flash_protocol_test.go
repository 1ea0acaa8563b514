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
	"testing"

	"github.com/gbasave/gbasave/environment"
	"github.com/gbasave/gbasave/logger"
	"github.com/gbasave/gbasave/test"
)

func TestTransitions(t *testing.T) {
	type tr struct {
		state   flashState
		address uint16
		value   uint8
		next    flashState
		op      flashOperation
		ok      bool
	}

	tests := []tr{
		// unlock sequence with and without erase context
		{flashReady, 0x5555, 0xaa, flashUnlocked1, flashNoOperation, true},
		{flashUnlocked1, 0x2aaa, 0x55, flashUnlocked2, flashNoOperation, true},
		{flashEraseReady, 0x5555, 0xaa, flashEraseUnlocked1, flashNoOperation, true},
		{flashEraseUnlocked1, 0x2aaa, 0x55, flashEraseUnlocked2, flashNoOperation, true},

		// commands
		{flashUnlocked2, 0x5555, 0x90, flashReady, flashEnterChipID, true},
		{flashUnlocked2, 0x5555, 0xf0, flashReady, flashExitChipID, true},
		{flashUnlocked2, 0x5555, 0x80, flashEraseReady, flashNoOperation, true},
		{flashUnlocked2, 0x5555, 0xa0, flashWriteSingleByte, flashNoOperation, true},
		{flashUnlocked2, 0x5555, 0xb0, flashBankChange, flashNoOperation, true},
		{flashEraseUnlocked2, 0x5555, 0x10, flashReady, flashEraseChip, true},
		{flashEraseUnlocked2, 0x3000, 0x30, flashReady, flashEraseSector, true},
		{flashEraseUnlocked2, 0x5555, 0x30, flashReady, flashEraseSector, true},

		// erase, program and bank change commands are accepted in the erase
		// context
		{flashEraseUnlocked2, 0x5555, 0x80, flashEraseReady, flashNoOperation, true},
		{flashEraseUnlocked2, 0x5555, 0xa0, flashWriteSingleByte, flashNoOperation, true},
		{flashEraseUnlocked2, 0x5555, 0xb0, flashBankChange, flashNoOperation, true},

		// chip id commands are not accepted in the erase context
		{flashEraseUnlocked2, 0x5555, 0x90, flashEraseUnlocked2, flashNoOperation, false},
		{flashEraseUnlocked2, 0x5555, 0xf0, flashEraseUnlocked2, flashNoOperation, false},

		// erase commands are not accepted outside of the erase context
		{flashUnlocked2, 0x5555, 0x10, flashUnlocked2, flashNoOperation, false},
		{flashUnlocked2, 0x1000, 0x30, flashUnlocked2, flashNoOperation, false},

		// commands must be written to the command address, except for the
		// sector erase command
		{flashUnlocked2, 0x5554, 0x90, flashUnlocked2, flashNoOperation, false},
		{flashEraseUnlocked2, 0x2aaa, 0x10, flashEraseUnlocked2, flashNoOperation, false},

		// unrecognised writes do not reset the sequence
		{flashReady, 0x2aaa, 0x55, flashReady, flashNoOperation, false},
		{flashUnlocked1, 0x5555, 0xaa, flashUnlocked1, flashNoOperation, false},
		{flashUnlocked1, 0x2aaa, 0x56, flashUnlocked1, flashNoOperation, false},
		{flashEraseUnlocked1, 0x0000, 0x00, flashEraseUnlocked1, flashNoOperation, false},
		{flashUnlocked2, 0x5555, 0x00, flashUnlocked2, flashNoOperation, false},

		// the armed states are not handled by the transition function
		{flashWriteSingleByte, 0x5555, 0xaa, flashWriteSingleByte, flashNoOperation, false},
		{flashBankChange, 0x0000, 0x01, flashBankChange, flashNoOperation, false},
	}

	for _, tt := range tests {
		next, op, ok := transition(tt.state, tt.address, tt.value)
		test.ExpectEquality(t, next, tt.next, tt.state, tt.address, tt.value)
		test.ExpectEquality(t, op, tt.op, tt.state, tt.address, tt.value)
		test.ExpectEquality(t, ok, tt.ok, tt.state, tt.address, tt.value)
	}
}

func TestStateClassification(t *testing.T) {
	for s := flashReady; s < numFlashStates; s++ {
		test.ExpectEquality(t, s.waiting(), s != flashWriteSingleByte && s != flashBankChange, s)
	}
	test.ExpectSuccess(t, flashEraseUnlocked1.erase())
	test.ExpectFailure(t, flashUnlocked1.erase())
	test.ExpectFailure(t, flashBankChange.erase())
}

func TestUnknownStatePanics(t *testing.T) {
	f := NewFlash(nil, Flash64KSize, nil)
	f.state = numFlashStates
	test.ExpectPanic(t, func() { f.Write(0x5555, 0xaa) })
}

func TestInvalidCommandKeepsState(t *testing.T) {
	log := logger.NewLogger(100)
	f := NewFlash(&environment.Environment{Log: log}, Flash64KSize, nil)

	f.Write(0x5555, 0xaa)
	f.Write(0x2aaa, 0x55)
	test.ExpectEquality(t, f.state, flashUnlocked2)

	f.Write(0x1234, 0x42)
	test.ExpectEquality(t, f.state, flashUnlocked2)
	test.ExpectEquality(t, log.Len(), 1)

	// the command is still accepted after the invalid write
	f.Write(0x5555, 0x90)
	test.ExpectEquality(t, f.state, flashReady)
	test.ExpectEquality(t, f.mode, ReadChipID)
}

func TestOutOfBoundsProgramStaysArmed(t *testing.T) {
	log := logger.NewLogger(100)
	f := NewFlash(&environment.Environment{Log: log}, Flash64KSize, nil)

	f.Write(0x5555, 0xaa)
	f.Write(0x2aaa, 0x55)
	f.Write(0x5555, 0xa0)
	test.ExpectEquality(t, f.state, flashWriteSingleByte)

	// a bank value that is impossible to reach through the protocol
	f.bank = 1

	f.Write(0x0010, 0x00)
	test.ExpectEquality(t, f.state, flashWriteSingleByte)
	test.ExpectEquality(t, log.Len(), 1)

	test.ExpectEquality(t, f.Read(0x0010), uint8(0xff))
	test.ExpectEquality(t, log.Len(), 2)

	// restoring the bank allows the program to complete
	f.bank = 0
	f.Write(0x0010, 0x0f)
	test.ExpectEquality(t, f.state, flashReady)
	test.ExpectEquality(t, f.Read(0x0010), uint8(0x0f))
}

func TestReadDoesNotTransition(t *testing.T) {
	f := NewFlash(nil, Flash128KSize, nil)

	f.Write(0x5555, 0xaa)
	for a := uint32(0); a < 0x10000; a += 0x1111 {
		_ = f.Read(a)
	}
	test.ExpectEquality(t, f.state, flashUnlocked1)
}
