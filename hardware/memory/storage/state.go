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
	"encoding/binary"
	"fmt"
	"io"

	"github.com/gbasave/gbasave/curated"
	"github.com/gbasave/gbasave/environment"
)

// StateError is the pattern of all errors returned by WriteState() and
// ReadState().
const StateError = "storage state: %v"

// the first four bytes of every state file
var stateMagic = [4]uint8{'G', 'B', 'S', 'V'}

const stateVersion = 1

// the kind of device stored in the state file
const (
	stateSram  = uint8(0)
	stateFlash = uint8(1)
)

// stateHeader precedes the device data in a state file. all multi byte values
// are little endian.
type stateHeader struct {
	Magic   [4]uint8
	Version uint8
	Kind    uint8

	// flash only. zero for sram
	Bank  uint8
	Mode  uint8
	State uint8

	Length uint32
}

// WriteState serialises the device to the io.Writer. The serialised form
// contains everything needed to recreate the device with ReadState(),
// including the state of the flash command protocol.
func WriteState(w io.Writer, dev Device) error {
	hdr := stateHeader{
		Magic:   stateMagic,
		Version: stateVersion,
		Length:  uint32(len(dev.Data())),
	}

	switch d := dev.(type) {
	case *Sram:
		hdr.Kind = stateSram
	case *Flash:
		hdr.Kind = stateFlash
		hdr.Bank = uint8(d.bank)
		hdr.Mode = uint8(d.mode)
		hdr.State = uint8(d.state)
	default:
		return curated.Errorf(StateError, fmt.Sprintf("unsupported device (%T)", dev))
	}

	err := binary.Write(w, binary.LittleEndian, hdr)
	if err != nil {
		return curated.Errorf(StateError, err)
	}

	_, err = w.Write(dev.Data())
	if err != nil {
		return curated.Errorf(StateError, err)
	}

	return nil
}

// ReadState recreates a device from data written by WriteState(). The new
// device is attached to the environment.
func ReadState(env *environment.Environment, r io.Reader) (Device, error) {
	var hdr stateHeader

	err := binary.Read(r, binary.LittleEndian, &hdr)
	if err != nil {
		return nil, curated.Errorf(StateError, err)
	}

	if hdr.Magic != stateMagic {
		return nil, curated.Errorf(StateError, "not a save device state")
	}
	if hdr.Version != stateVersion {
		return nil, curated.Errorf(StateError, fmt.Sprintf("unsupported version (%d)", hdr.Version))
	}

	switch hdr.Kind {
	case stateSram:
		if hdr.Length != SramSize {
			return nil, curated.Errorf(StateError, fmt.Sprintf("invalid sram size (%d)", hdr.Length))
		}
		if hdr.Bank != 0 || hdr.Mode != 0 || hdr.State != 0 {
			return nil, curated.Errorf(StateError, "sram state has flash fields")
		}

		s := &Sram{
			env:  env,
			data: make([]uint8, hdr.Length),
		}
		_, err = io.ReadFull(r, s.data)
		if err != nil {
			return nil, curated.Errorf(StateError, err)
		}
		return s, nil

	case stateFlash:
		if hdr.Length != Flash64KSize && hdr.Length != Flash128KSize {
			return nil, curated.Errorf(StateError, fmt.Sprintf("invalid flash size (%d)", hdr.Length))
		}
		if int(hdr.Bank) >= int(hdr.Length)/BankSize {
			return nil, curated.Errorf(StateError, fmt.Sprintf("invalid flash bank (%d)", hdr.Bank))
		}
		if ReadMode(hdr.Mode) >= numReadModes {
			return nil, curated.Errorf(StateError, fmt.Sprintf("invalid flash read mode (%d)", hdr.Mode))
		}
		if flashState(hdr.State) >= numFlashStates {
			return nil, curated.Errorf(StateError, fmt.Sprintf("invalid flash protocol state (%d)", hdr.State))
		}

		f := &Flash{
			env:   env,
			bank:  int(hdr.Bank),
			mode:  ReadMode(hdr.Mode),
			state: flashState(hdr.State),
			data:  make([]uint8, hdr.Length),
		}
		_, err = io.ReadFull(r, f.data)
		if err != nil {
			return nil, curated.Errorf(StateError, err)
		}
		return f, nil
	}

	return nil, curated.Errorf(StateError, fmt.Sprintf("unknown device kind (%d)", hdr.Kind))
}
