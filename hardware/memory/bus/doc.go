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

// Package bus is used to define access patterns to memory. The CPUBus is how
// the emulated CPU sees memory and every access can have side effects. For
// example, writes to the save area drive the Flash command protocol.
//
// The DebugBus is for the exclusive use of debuggers and tools. Accesses
// through the DebugBus do not have side effects beyond the changing of the
// value at the address.
package bus
