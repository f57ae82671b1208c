// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"errors"
	"fmt"
)

// Size is the number of bytes in the address space.
const Size = 0x10000

// LoadOverflow is returned by Load() when the data does not fit between the
// origin and the top of memory.
var LoadOverflow = errors.New("memory: data extends beyond top of memory")

// Memory is the 64KiB address space. The zero value is ready to use and
// all bytes are zero.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{}
}

// Snapshot creates a copy of memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

// Clear sets every byte in memory to zero.
func (mem *Memory) Clear() {
	mem.data = [Size]uint8{}
}

// Read returns the byte at address.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write stores data at address.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// Read16 returns the little-endian word at address. The high byte is read
// from address+1, wrapping to 0x0000 at the top of memory.
func (mem *Memory) Read16(address uint16) uint16 {
	lo := uint16(mem.data[address])
	hi := uint16(mem.data[address+1])
	return (hi << 8) | lo
}

// Write16 stores data at address as a little-endian word. The inverse of
// Read16(), including the wrap at the top of memory.
func (mem *Memory) Write16(address uint16, data uint16) {
	mem.data[address] = uint8(data)
	mem.data[address+1] = uint8(data >> 8)
}

// Load copies data into memory starting at origin. Nothing is written if the
// data would extend beyond the top of memory.
func (mem *Memory) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > Size {
		return fmt.Errorf("%w: %d bytes at %#04x", LoadOverflow, len(data), origin)
	}
	copy(mem.data[origin:], data)
	return nil
}
