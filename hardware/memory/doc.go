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

// Package memory implements the flat 64KiB address space seen by the CPU.
// There is no memory mapping and no mirroring: every 16 bit address refers to
// exactly one byte and every byte is readable and writable.
//
// Sixteen bit values are stored little-endian. A sixteen bit access at the
// top of memory wraps around, so the high byte of Read16(0xffff) is the byte
// at address 0x0000.
//
//	mem := memory.NewMemory()
//	mem.Write16(0xfffc, 0x8000)
//	mem.Read(0xfffc) // 0x00
//	mem.Read(0xfffd) // 0x80
package memory
