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

// flashState is the state of the flash command protocol. The unlock sequence
// is tracked with and without a pending erase command, so the position in the
// unlock sequence and the erase context are never separated.
type flashState uint8

const (
	flashReady flashState = iota
	flashUnlocked1
	flashUnlocked2
	flashEraseReady
	flashEraseUnlocked1
	flashEraseUnlocked2
	flashWriteSingleByte
	flashBankChange

	// number of states. not a valid state
	numFlashStates
)

func (s flashState) String() string {
	switch s {
	case flashReady:
		return "Ready"
	case flashUnlocked1:
		return "Unlocked1"
	case flashUnlocked2:
		return "Unlocked2"
	case flashEraseReady:
		return "EraseReady"
	case flashEraseUnlocked1:
		return "EraseUnlocked1"
	case flashEraseUnlocked2:
		return "EraseUnlocked2"
	case flashWriteSingleByte:
		return "WriteSingleByte"
	case flashBankChange:
		return "BankChange"
	}
	return "unknown"
}

// waiting returns true if the state is part of the unlock/command sequence.
// ie. not one of the armed states that consume the next write as data.
func (s flashState) waiting() bool {
	return s <= flashEraseUnlocked2
}

// erase returns true if the state is part of the unlock sequence following
// the erase command.
func (s flashState) erase() bool {
	return s >= flashEraseReady && s <= flashEraseUnlocked2
}

// addresses and values of the unlock sequence.
const (
	flashUnlockAddr1 = uint16(0x5555)
	flashUnlockAddr2 = uint16(0x2aaa)
	flashUnlockVal1  = uint8(0xaa)
	flashUnlockVal2  = uint8(0x55)

	// commands are written to the first unlock address
	flashCommandAddr = flashUnlockAddr1
)

// flash command values.
const (
	flashCmdEnterChipID = uint8(0x90)
	flashCmdExitChipID  = uint8(0xf0)
	flashCmdErase       = uint8(0x80)
	flashCmdEraseChip   = uint8(0x10)
	flashCmdEraseSector = uint8(0x30)
	flashCmdProgram     = uint8(0xa0)
	flashCmdBankChange  = uint8(0xb0)
)

// flashOperation is the side effect of a transition on the flash data or
// read mode.
type flashOperation uint8

const (
	flashNoOperation flashOperation = iota
	flashEnterChipID
	flashExitChipID
	flashEraseChip
	flashEraseSector
)

// transition decides the next state of the protocol from the current state
// and the address/value of a write. Only the states that wait for the
// unlock sequence or a command are handled. The address should be masked to
// 16 bits.
//
// If the write is not recognised then the returned bool is false and the
// current state is returned unchanged.
func transition(state flashState, address uint16, value uint8) (flashState, flashOperation, bool) {
	switch state {
	case flashReady, flashEraseReady:
		if address == flashUnlockAddr1 && value == flashUnlockVal1 {
			return state + 1, flashNoOperation, true
		}

	case flashUnlocked1, flashEraseUnlocked1:
		if address == flashUnlockAddr2 && value == flashUnlockVal2 {
			return state + 1, flashNoOperation, true
		}

	case flashUnlocked2, flashEraseUnlocked2:
		erase := state.erase()

		// the order of these checks is important. the sector erase command
		// can be written to any address
		switch {
		case address == flashCommandAddr && value == flashCmdEnterChipID && !erase:
			return flashReady, flashEnterChipID, true
		case address == flashCommandAddr && value == flashCmdExitChipID && !erase:
			return flashReady, flashExitChipID, true
		case address == flashCommandAddr && value == flashCmdErase:
			return flashEraseReady, flashNoOperation, true
		case address == flashCommandAddr && value == flashCmdEraseChip && erase:
			return flashReady, flashEraseChip, true
		case value == flashCmdEraseSector && erase:
			return flashReady, flashEraseSector, true
		case address == flashCommandAddr && value == flashCmdProgram:
			return flashWriteSingleByte, flashNoOperation, true
		case address == flashCommandAddr && value == flashCmdBankChange:
			return flashBankChange, flashNoOperation, true
		}
	}

	return state, flashNoOperation, false
}
