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

// Sram implements the Device interface for static RAM.
type Sram struct {
	env  *environment.Environment
	data []uint8
}

// NewSram is the preferred method of initialisation for the Sram type. The
// contents of data are copied into the new device. If data is nil, or not of
// length SramSize, the device is zero filled.
func NewSram(env *environment.Environment, data []uint8) *Sram {
	return &Sram{
		env:  env,
		data: seed(env, "sram", SramSize, data, 0x00),
	}
}

func (s *Sram) index(offset uint32) (int, bool) {
	return int(offset), offset < uint32(len(s.data))
}

// Read implements the Device interface.
func (s *Sram) Read(offset uint32) uint8 {
	idx, ok := s.index(offset)
	if !ok {
		s.env.Logf("sram", "out of bounds read at %#08x", offset)
		return 0xff
	}
	return s.data[idx]
}

// Write implements the Device interface.
func (s *Sram) Write(offset uint32, value uint8) {
	idx, ok := s.index(offset)
	if !ok {
		s.env.Logf("sram", "out of bounds write at %#08x", offset)
		return
	}
	s.data[idx] = value
}

// Data implements the Device interface.
func (s *Sram) Data() []uint8 {
	return s.data
}

// SaveType implements the Device interface.
func (s *Sram) SaveType() SaveType {
	return SRAM
}

// Label implements the Device interface.
func (s *Sram) Label() string {
	return "SRAM (64K)"
}

// Snapshot implements the Device interface.
func (s *Sram) Snapshot() Device {
	n := *s
	n.data = make([]uint8, len(s.data))
	copy(n.data, s.data)
	return &n
}

// Plumb implements the Device interface.
func (s *Sram) Plumb(env *environment.Environment) {
	s.env = env
}

func (s *Sram) String() string {
	return fmt.Sprintf("%s size=%d", s.Label(), len(s.data))
}
